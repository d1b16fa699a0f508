package upload

import (
	"errors"
	"fmt"
	"mime"
	"strings"
	"time"

	"civicai-be/models"

	"github.com/google/uuid"
)

var (
	// ErrUnsupportedMediaType means the asset is neither an image nor a video.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrUploadFailed wraps transport-level failures from the blob store.
	ErrUploadFailed = errors.New("media upload failed")
)

// Size ceilings by kind. Video evidence is inherently larger, so its
// ceiling is asymmetric; both bound storage cost.
const (
	MaxImageBytes = 10 << 20  // 10 MiB
	MaxVideoBytes = 100 << 20 // 100 MiB
)

// Buckets by media kind, so image and video retention policies can differ.
const (
	ImageBucket = "issue-images"
	VideoBucket = "issue-videos"
)

// MediaTooLargeError reports a size-ceiling violation, carrying the limit
// that was exceeded.
type MediaTooLargeError struct {
	Kind  models.MediaKind
	Size  int64
	Limit int64
}

func (e *MediaTooLargeError) Error() string {
	return fmt.Sprintf("%s of %d bytes exceeds the %d byte limit", e.Kind, e.Size, e.Limit)
}

// BlobStore is the external blob storage collaborator.
type BlobStore interface {
	Put(data []byte, mimeType, bucket, key string) (publicURL string, err error)
}

// Orchestrator validates a media asset against the size/type policy and
// hands the bytes to the blob store. It does not retry; retry policy is the
// caller's decision.
type Orchestrator struct {
	blobs BlobStore
}

// NewOrchestrator returns an orchestrator uploading to blobs.
func NewOrchestrator(blobs BlobStore) *Orchestrator {
	return &Orchestrator{blobs: blobs}
}

// Upload validates the asset and stores it, returning the typed reference.
// Policy violations are detected before any call to the blob store.
func (o *Orchestrator) Upload(asset models.MediaAsset) (models.MediaRef, error) {
	kind, err := kindOf(asset.MimeType)
	if err != nil {
		return models.MediaRef{}, err
	}

	limit := int64(MaxImageBytes)
	bucket := ImageBucket
	if kind == models.KindVideo {
		limit = MaxVideoBytes
		bucket = VideoBucket
	}
	if asset.Size() > limit {
		return models.MediaRef{}, &MediaTooLargeError{Kind: kind, Size: asset.Size(), Limit: limit}
	}

	url, err := o.blobs.Put(asset.Data, asset.MimeType, bucket, storageKey(asset.MimeType))
	if err != nil {
		return models.MediaRef{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return models.MediaRef{URL: url, Kind: kind}, nil
}

func kindOf(mimeType string) (models.MediaKind, error) {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return models.KindImage, nil
	case strings.HasPrefix(mimeType, "video/"):
		return models.KindVideo, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMediaType, mimeType)
	}
}

// storageKey builds a collision-resistant key. The timestamp alone is not
// enough under concurrent submissions in the same second, hence the random
// component.
func storageKey(mimeType string) string {
	ext := ""
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString(), ext)
}
