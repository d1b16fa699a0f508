package capture

import (
	"context"

	"civicai-be/models"
)

// Constraints describe the stream the caller wants from the camera.
type Constraints struct {
	FacingMode string
	Width      int
	Height     int
}

// DefaultConstraints requests the rear-facing camera at 1280x720, the
// resolution the reporting flow targets on mobile devices.
var DefaultConstraints = Constraints{FacingMode: "environment", Width: 1280, Height: 720}

// Stream is a live camera stream. FrameSize may report zero dimensions
// while the camera is still warming up.
type Stream interface {
	FrameSize() (width, height int)
	Snapshot() (models.MediaAsset, error)
	Close() error
}

// Camera acquires the capture device. The device is an exclusive resource:
// at most one open Stream may exist at a time and every holder must close it.
type Camera interface {
	Open(ctx context.Context, c Constraints) (Stream, error)
}

// RecordingSession is an in-flight audio+video recording. Chunks delivers
// buffered data at a fixed interval while recording is active; Stop ends
// delivery and closes the channel.
type RecordingSession interface {
	Chunks() <-chan []byte
	MimeType() string
	Stop() error
}

// Recorder acquires combined audio+video capture on top of an open stream.
type Recorder interface {
	Start(ctx context.Context, s Stream) (RecordingSession, error)
}

// Coordinates is a geographic fix.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geolocator produces a one-shot position fix from the platform.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (Coordinates, error)
}

// Geocoder resolves free-text entered by the citizen to a coordinate pair.
type Geocoder interface {
	Resolve(ctx context.Context, text string) (Coordinates, error)
}
