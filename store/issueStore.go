package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"civicai-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when the referenced issue does not exist.
	ErrNotFound = errors.New("issue not found")
	// ErrStoreUnreachable wraps transport-level failures talking to the store.
	ErrStoreUnreachable = errors.New("issue store unreachable")
)

// Subscription is a handle on an active change-feed subscription.
type Subscription interface {
	Unsubscribe()
}

// IssueStore is the persistence collaborator: insert, query, update and a
// change feed firing on any mutation of the issue collection.
type IssueStore interface {
	Create(ctx context.Context, issue models.Issue) (models.Issue, error)
	ListAll(ctx context.Context) ([]models.Issue, error)
	UpdateStatus(ctx context.Context, id string, status models.IssueStatus, assignedTo *string) (models.Issue, error)
	Subscribe(onChange func(models.ChangeEvent)) (Subscription, error)
}

const storeTimeout = 10 * time.Second

// MongoStore implements IssueStore on a MongoDB collection, publishing a
// change event to the feed after every successful mutation.
type MongoStore struct {
	collection *mongo.Collection
	feed       *Feed
}

// NewMongoStore wires the issue collection to the change feed. The feed may
// be nil, in which case mutations are stored but not announced.
func NewMongoStore(collection *mongo.Collection, feed *Feed) *MongoStore {
	return &MongoStore{collection: collection, feed: feed}
}

// Create inserts a new issue. The store assigns identity and timestamps;
// whatever the caller put in those fields is overwritten.
func (s *MongoStore) Create(ctx context.Context, issue models.Issue) (models.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	now := time.Now()
	issue.ID = primitive.NewObjectID()
	issue.CreatedAt = now
	issue.UpdatedAt = now

	if _, err := s.collection.InsertOne(ctx, issue); err != nil {
		return models.Issue{}, fmt.Errorf("%w: %v", ErrStoreUnreachable, err)
	}

	s.publish(models.ChangeEvent{Kind: models.ChangeInsert, IssueID: issue.ID.Hex()})
	return issue, nil
}

// ListAll returns the full issue set, newest created first.
func (s *MongoStore) ListAll(ctx context.Context) ([]models.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnreachable, err)
	}
	defer cursor.Close(ctx)

	issues := []models.Issue{}
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnreachable, err)
	}

	return issues, nil
}

// UpdateStatus sets the status (and optionally the assignee) of one issue
// and refreshes its updatedAt timestamp. Returns the updated record.
func (s *MongoStore) UpdateStatus(ctx context.Context, id string, status models.IssueStatus, assignedTo *string) (models.Issue, error) {
	issueID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Issue{}, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	update := bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}
	if assignedTo != nil {
		update["assignedTo"] = *assignedTo
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Issue
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": issueID}, bson.M{"$set": update}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Issue{}, ErrNotFound
		}
		return models.Issue{}, fmt.Errorf("%w: %v", ErrStoreUnreachable, err)
	}

	s.publish(models.ChangeEvent{Kind: models.ChangeUpdate, IssueID: id})
	return updated, nil
}

// Subscribe registers onChange with the change feed.
func (s *MongoStore) Subscribe(onChange func(models.ChangeEvent)) (Subscription, error) {
	if s.feed == nil {
		return nil, errors.New("change feed not configured")
	}
	return s.feed.Subscribe(onChange)
}

func (s *MongoStore) publish(event models.ChangeEvent) {
	if s.feed != nil {
		s.feed.Publish(event)
	}
}
