package lifecycle

import (
	"context"
	"testing"
	"time"

	"civicai-be/models"
	"civicai-be/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeIssueStore struct {
	issue     models.Issue
	updateErr error
	updates   int
}

func (f *fakeIssueStore) Create(context.Context, models.Issue) (models.Issue, error) {
	return models.Issue{}, nil
}

func (f *fakeIssueStore) ListAll(context.Context) ([]models.Issue, error) {
	return nil, nil
}

func (f *fakeIssueStore) UpdateStatus(_ context.Context, id string, status models.IssueStatus, assignedTo *string) (models.Issue, error) {
	f.updates++
	if f.updateErr != nil {
		return models.Issue{}, f.updateErr
	}
	if id != f.issue.ID.Hex() {
		return models.Issue{}, store.ErrNotFound
	}
	f.issue.Status = status
	if assignedTo != nil {
		f.issue.AssignedTo = assignedTo
	}
	f.issue.UpdatedAt = time.Now()
	return f.issue, nil
}

func (f *fakeIssueStore) Subscribe(func(models.ChangeEvent)) (store.Subscription, error) {
	return nil, nil
}

func newIssue() models.Issue {
	created := time.Now().Add(-time.Hour)
	return models.Issue{
		ID:        primitive.NewObjectID(),
		Title:     "Pothole Issue Report",
		Category:  models.Pothole,
		Priority:  models.PriorityMedium,
		Status:    models.StatusNew,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestSetStatusDirectTransition(t *testing.T) {
	issue := newIssue()
	fake := &fakeIssueStore{issue: issue}
	c := NewController(fake)

	// Point-to-point: new -> resolved with no intermediate states.
	updated, err := c.SetStatus(context.Background(), issue.ID.Hex(), models.StatusResolved, nil)

	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, updated.Status)
	assert.True(t, updated.UpdatedAt.After(issue.UpdatedAt), "updatedAt must strictly increase")
	assert.Equal(t, 1, fake.updates)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	issue := newIssue()
	fake := &fakeIssueStore{issue: issue}
	c := NewController(fake)

	_, err := c.SetStatus(context.Background(), issue.ID.Hex(), "archived", nil)

	require.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, 0, fake.updates, "invalid statuses never reach the store")
}

func TestAssignSetsWorkerAndStatus(t *testing.T) {
	issue := newIssue()
	fake := &fakeIssueStore{issue: issue}
	c := NewController(fake)

	updated, err := c.Assign(context.Background(), issue.ID.Hex(), "worker_789")

	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, updated.Status)
	require.NotNil(t, updated.AssignedTo)
	assert.Equal(t, "worker_789", *updated.AssignedTo)
}

func TestSetStatusVanishedRecord(t *testing.T) {
	fake := &fakeIssueStore{issue: newIssue()}
	c := NewController(fake)

	_, err := c.SetStatus(context.Background(), primitive.NewObjectID().Hex(), models.StatusResolved, nil)

	require.ErrorIs(t, err, ErrUpdateFailed)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSetStatusStoreFailure(t *testing.T) {
	fake := &fakeIssueStore{issue: newIssue(), updateErr: store.ErrStoreUnreachable}
	c := NewController(fake)

	_, err := c.SetStatus(context.Background(), fake.issue.ID.Hex(), models.StatusInProgress, nil)

	require.ErrorIs(t, err, ErrUpdateFailed)
	assert.ErrorIs(t, err, store.ErrStoreUnreachable)
}
