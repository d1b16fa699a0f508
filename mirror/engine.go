package mirror

import (
	"context"
	"log"
	"sync"

	"civicai-be/models"
	"civicai-be/store"
)

// Engine maintains a client-local mirror of the store's issue set, kept
// consistent with the change feed, and derives filtered views and
// statistics from it.
//
// The mirror is only ever replaced wholesale by Load: no incremental
// diff-patching, so it is always exactly what a full fetch would produce.
type Engine struct {
	issues store.IssueStore

	mu      sync.Mutex
	mirror  []models.Issue
	nextSeq uint64
	applied uint64
	sub     store.Subscription
}

// NewEngine returns an engine over the given store. Call Activate to begin
// following the change feed.
func NewEngine(issues store.IssueStore) *Engine {
	return &Engine{issues: issues}
}

// Load fetches the full issue set (newest created first) and replaces the
// mirror. Loads may overlap: each carries a monotonic sequence number and a
// stale result never overwrites a newer one.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.Lock()
	e.nextSeq++
	seq := e.nextSeq
	e.mu.Unlock()

	issues, err := e.issues.ListAll(ctx)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if seq > e.applied {
		e.mirror = issues
		e.applied = seq
	}
	return nil
}

// Activate performs the initial load and subscribes to the change feed.
// Every feed event triggers a full reload. No-op if already active.
func (e *Engine) Activate(ctx context.Context) error {
	e.mu.Lock()
	if e.sub != nil {
		e.mu.Unlock()
		return nil
	}
	e.mu.Unlock()

	sub, err := e.issues.Subscribe(func(models.ChangeEvent) {
		// Reload off the feed goroutine so a slow fetch never stalls
		// delivery of subsequent events.
		go func() {
			if err := e.Load(context.Background()); err != nil {
				log.Printf("Feed-triggered reload failed: %v", err)
			}
		}()
	})
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.sub = sub
	e.mu.Unlock()

	return e.Load(ctx)
}

// Deactivate tears down the feed subscription. Idempotent. A dangling
// subscription after teardown would keep reloading a view nobody displays,
// so the handle is dropped deterministically here.
func (e *Engine) Deactivate() {
	e.mu.Lock()
	sub := e.sub
	e.sub = nil
	e.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}

// Snapshot returns a copy of the current mirror.
func (e *Engine) Snapshot() []models.Issue {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Issue, len(e.mirror))
	copy(out, e.mirror)
	return out
}
