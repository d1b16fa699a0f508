package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"civicai-be/models"

	"github.com/redis/go-redis/v9"
)

// feedChannel is the Redis pub/sub channel carrying issue change events.
// There is no server-side filtering: every subscriber sees every mutation.
const feedChannel = "issues:changes"

// Feed is the change-feed transport, backed by Redis pub/sub.
type Feed struct {
	client *redis.Client
}

// NewFeed returns a change feed on the given Redis client.
func NewFeed(client *redis.Client) *Feed {
	return &Feed{client: client}
}

// Publish announces a mutation to all subscribers. Publish failures are
// logged, not returned: the mutation itself has already committed and a
// missed event only delays the next reload.
func (f *Feed) Publish(event models.ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal change event: %v", err)
		return
	}
	if err := f.client.Publish(context.Background(), feedChannel, payload).Err(); err != nil {
		log.Printf("Failed to publish change event: %v", err)
	}
}

// Subscribe delivers every change event to onChange until Unsubscribe is
// called. If the underlying pub/sub connection drops, delivery stops; there
// is no automatic reconnect.
func (f *Feed) Subscribe(onChange func(models.ChangeEvent)) (Subscription, error) {
	pubsub := f.client.Subscribe(context.Background(), feedChannel)

	// Confirm the subscription before returning so no event published after
	// Subscribe returns can be missed.
	if _, err := pubsub.Receive(context.Background()); err != nil {
		pubsub.Close()
		return nil, err
	}

	sub := &feedSubscription{pubsub: pubsub}

	go func() {
		for msg := range pubsub.Channel() {
			var event models.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("Ignoring malformed change event: %v", err)
				continue
			}
			onChange(event)
		}
	}()

	return sub, nil
}

type feedSubscription struct {
	pubsub *redis.PubSub
	once   sync.Once
}

// Unsubscribe tears the subscription down. Safe to call more than once.
func (s *feedSubscription) Unsubscribe() {
	s.once.Do(func() {
		if err := s.pubsub.Close(); err != nil {
			log.Printf("Failed to close change feed subscription: %v", err)
		}
	})
}
