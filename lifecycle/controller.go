package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"civicai-be/models"
	"civicai-be/store"
)

var (
	// ErrInvalidStatus means the requested status is outside the lifecycle.
	ErrInvalidStatus = errors.New("invalid issue status")
	// ErrUpdateFailed wraps store failures while applying a transition.
	ErrUpdateFailed = errors.New("failed to update issue")
)

// Controller applies status transitions to a single issue and writes them
// through to the store. Transitions are operator-invoked point-to-point:
// any state may be set directly regardless of the current one. The mirror
// is never updated optimistically; the authoritative state arrives through
// the change feed.
type Controller struct {
	issues store.IssueStore
}

// NewController returns a lifecycle controller over the store.
func NewController(issues store.IssueStore) *Controller {
	return &Controller{issues: issues}
}

// SetStatus issues one update call. Assignment additionally sets the
// worker tag; the store refreshes updatedAt on every call.
func (c *Controller) SetStatus(ctx context.Context, id string, status models.IssueStatus, assignedTo *string) (models.Issue, error) {
	if !models.ValidStatus(status) {
		return models.Issue{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	updated, err := c.issues.UpdateStatus(ctx, id, status, assignedTo)
	if err != nil {
		// Keep the cause in the chain so the HTTP layer can tell a vanished
		// record apart from an unreachable store.
		return models.Issue{}, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	return updated, nil
}

// Assign is a convenience for the assign action: sets the worker and moves
// the issue to assigned in one update.
func (c *Controller) Assign(ctx context.Context, id, workerID string) (models.Issue, error) {
	return c.SetStatus(ctx, id, models.StatusAssigned, &workerID)
}
