package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"civicai-be/capture"
	"civicai-be/models"
	"civicai-be/store"
)

var (
	// ErrIncompleteDraft guards against submission before readiness holds.
	// The caller is expected to keep submission disabled until the draft is
	// complete; this re-validation is defense in depth.
	ErrIncompleteDraft = errors.New("draft is incomplete: media, location, category and description are all required")
	// ErrSubmitInFlight means a submit is already running on this pipeline.
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	// ErrCreateFailed wraps a store create failure after a successful upload.
	ErrCreateFailed = errors.New("failed to create issue record")
)

// Uploader validates and stores a media asset, returning its reference.
type Uploader interface {
	Upload(asset models.MediaAsset) (models.MediaRef, error)
}

// Draft is the transient input assembled by a citizen before submission.
type Draft struct {
	Media       *models.MediaAsset
	Location    *capture.Coordinates
	Address     *string
	Category    models.IssueCategory
	Description string
	ReportedBy  string
}

// Ready reports whether all four required pieces are present.
func (d Draft) Ready() bool {
	return d.Media != nil && len(d.Media.Data) > 0 &&
		d.Location != nil &&
		d.Category != "" &&
		strings.TrimSpace(d.Description) != ""
}

// Pipeline composes capture output, the upload orchestrator and the issue
// store into a single exactly-once create. It is stateless across calls;
// each Submit is independent.
type Pipeline struct {
	uploader Uploader
	issues   store.IssueStore
	inFlight atomic.Bool
}

// New returns a submission pipeline.
func New(uploader Uploader, issues store.IssueStore) *Pipeline {
	return &Pipeline{uploader: uploader, issues: issues}
}

// Submit uploads the draft's media and creates the issue record. Upload
// strictly precedes create: if the upload fails, no record is ever created.
// At most one submit may be in flight per pipeline instance.
func (p *Pipeline) Submit(ctx context.Context, draft Draft) (models.Issue, error) {
	if !p.inFlight.CompareAndSwap(false, true) {
		return models.Issue{}, ErrSubmitInFlight
	}
	defer p.inFlight.Store(false)

	if !draft.Ready() {
		return models.Issue{}, ErrIncompleteDraft
	}
	if !models.ValidCategory(draft.Category) {
		return models.Issue{}, fmt.Errorf("%w: unknown category %q", ErrIncompleteDraft, draft.Category)
	}

	ref, err := p.uploader.Upload(*draft.Media)
	if err != nil {
		return models.Issue{}, err
	}

	issue := models.Issue{
		Title:       models.TitleFor(draft.Category),
		Description: draft.Description,
		Category:    draft.Category,
		Priority:    models.PriorityMedium,
		Status:      models.StatusNew,
		Latitude:    draft.Location.Latitude,
		Longitude:   draft.Location.Longitude,
		Address:     draft.Address,
		MediaURL:    ref.URL,
		MediaKind:   ref.Kind,
		ReportedBy:  draft.ReportedBy,
		Department:  models.DepartmentFor(draft.Category),
	}

	created, err := p.issues.Create(ctx, issue)
	if err != nil {
		// The blob is already stored with no record referencing it. There
		// is no compensating delete; the orphan is accepted and logged.
		log.Printf("Issue create failed after upload, orphaned blob at %s: %v", ref.URL, err)
		return models.Issue{}, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}

	return created, nil
}
