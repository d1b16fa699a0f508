package capture

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"civicai-be/models"
)

var (
	// ErrDeviceAccessDenied means the platform refused camera or microphone access.
	ErrDeviceAccessDenied = errors.New("camera access denied")
	// ErrDeviceNotReady means the camera is still warming up; retry without re-opening.
	ErrDeviceNotReady = errors.New("camera is still loading")
	// ErrInvalidPhase means the operation is not legal in the current capture phase.
	ErrInvalidPhase = errors.New("operation not valid in current capture phase")
	// ErrNoRecording means stop was called with no recording to finalize.
	ErrNoRecording = errors.New("no recording in progress")
)

// Phase enum for the capture state machine.
type Phase string

const (
	Idle         Phase = "idle"
	CameraActive Phase = "camera-active"
	Recording    Phase = "recording"
	PhotoReady   Phase = "photo-ready"
	VideoReady   Phase = "video-ready"
)

// MaxRecordingDuration is the recording ceiling. Recording auto-terminates
// at this point even if the citizen forgets to stop it, bounding device and
// upload cost.
const MaxRecordingDuration = 30 * time.Second

// MediaCapture coordinates the camera and recorder through the
// Idle -> CameraActive -> {PhotoReady | Recording -> VideoReady} machine.
//
// The capture device must never remain acquired after a terminal or
// cancelled transition. Every exit path funnels through releaseLocked.
type MediaCapture struct {
	camera       Camera
	recorder     Recorder
	maxRecording time.Duration

	mu       sync.Mutex
	phase    Phase
	stream   Stream
	session  RecordingSession
	autoStop *time.Timer
	chunks   [][]byte
	drained  chan struct{}
	asset    *models.MediaAsset
}

// NewMediaCapture returns an idle capture coordinator.
func NewMediaCapture(camera Camera, recorder Recorder) *MediaCapture {
	return &MediaCapture{
		camera:       camera,
		recorder:     recorder,
		maxRecording: MaxRecordingDuration,
		phase:        Idle,
	}
}

// Phase returns the current state of the capture machine.
func (m *MediaCapture) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

// OpenCamera requests a rear-facing stream. On denial the machine stays
// Idle; on success it moves to CameraActive and the live stream is held
// until a capture completes or the citizen cancels.
func (m *MediaCapture) OpenCamera(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != Idle {
		return fmt.Errorf("%w: camera already open", ErrInvalidPhase)
	}

	stream, err := m.camera.Open(ctx, DefaultConstraints)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeviceAccessDenied, err)
	}

	m.stream = stream
	m.phase = CameraActive
	return nil
}

// CaptureSnapshot renders the current frame into a still image, releases
// the device and moves to PhotoReady. If the camera reports zero frame
// dimensions it is still warming up: the machine stays CameraActive and the
// caller may retry without re-opening.
func (m *MediaCapture) CaptureSnapshot() (models.MediaAsset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != CameraActive {
		return models.MediaAsset{}, fmt.Errorf("%w: snapshot requires an active camera", ErrInvalidPhase)
	}

	width, height := m.stream.FrameSize()
	if width == 0 || height == 0 {
		return models.MediaAsset{}, ErrDeviceNotReady
	}

	asset, err := m.stream.Snapshot()
	if err != nil {
		// Failed render is a terminal exit for this camera session: release
		// the device so a fresh attempt can re-acquire it.
		m.releaseLocked()
		m.phase = Idle
		return models.MediaAsset{}, fmt.Errorf("snapshot failed: %w", err)
	}

	asset.Origin = models.OriginCameraSnapshot
	m.releaseLocked()
	m.phase = PhotoReady
	m.asset = &asset
	return asset, nil
}

// StartRecording acquires combined audio+video capture and begins buffering
// chunks. Recording auto-terminates after the ceiling.
func (m *MediaCapture) StartRecording(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != CameraActive {
		return fmt.Errorf("%w: recording requires an active camera", ErrInvalidPhase)
	}

	session, err := m.recorder.Start(ctx, m.stream)
	if err != nil {
		// Camera stays open; the citizen can retry or fall back to a snapshot.
		return fmt.Errorf("%w: %v", ErrDeviceAccessDenied, err)
	}

	m.session = session
	m.chunks = nil
	m.drained = make(chan struct{})
	m.phase = Recording

	go m.collect(session, m.drained)

	m.autoStop = time.AfterFunc(m.maxRecording, func() {
		if _, err := m.StopRecording(); err != nil && !errors.Is(err, ErrNoRecording) {
			log.Printf("Recording auto-stop failed: %v", err)
		}
	})

	return nil
}

// collect buffers chunks until the session closes its channel.
func (m *MediaCapture) collect(session RecordingSession, drained chan struct{}) {
	for chunk := range session.Chunks() {
		m.mu.Lock()
		m.chunks = append(m.chunks, chunk)
		m.mu.Unlock()
	}
	close(drained)
}

// StopRecording finalizes the buffered chunks into one media asset,
// releases the device and moves to VideoReady. Idempotent: stopping an
// already-finalized recording (manual stop racing the auto-stop timer)
// returns the same asset.
func (m *MediaCapture) StopRecording() (models.MediaAsset, error) {
	m.mu.Lock()

	if m.phase == VideoReady && m.asset != nil {
		asset := *m.asset
		m.mu.Unlock()
		return asset, nil
	}
	if m.phase != Recording || m.session == nil {
		m.mu.Unlock()
		return models.MediaAsset{}, ErrNoRecording
	}

	session := m.session
	drained := m.drained
	m.session = nil // claim the stop; a racing cancel must not stop twice
	m.stopTimerLocked()
	m.mu.Unlock()

	// Stop outside the lock: the collector goroutine needs the lock to
	// append the final chunks before the channel closes.
	if err := session.Stop(); err != nil {
		log.Printf("Recorder stop reported: %v", err)
	}
	<-drained

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != Recording {
		// Cancelled while the final chunks were draining; nothing to produce.
		return models.MediaAsset{}, ErrNoRecording
	}

	var data []byte
	for _, chunk := range m.chunks {
		data = append(data, chunk...)
	}

	asset := models.MediaAsset{
		Data:     data,
		MimeType: session.MimeType(),
		Origin:   models.OriginCameraRecording,
	}

	m.session = nil
	m.chunks = nil
	m.releaseLocked()
	m.phase = VideoReady
	m.asset = &asset
	return asset, nil
}

// Cancel releases the device without producing an asset and returns the
// machine to Idle. Effective from any state and idempotent: cancelling
// twice, or after natural completion, neither errors nor double-releases.
func (m *MediaCapture) Cancel() {
	m.mu.Lock()

	if m.phase == Recording && m.session != nil {
		session := m.session
		drained := m.drained
		m.stopTimerLocked()
		m.session = nil
		m.mu.Unlock()

		if err := session.Stop(); err != nil {
			log.Printf("Recorder stop reported: %v", err)
		}
		<-drained

		m.mu.Lock()
	}

	defer m.mu.Unlock()
	m.chunks = nil
	m.asset = nil
	m.releaseLocked()
	m.phase = Idle
}

// releaseLocked closes the stream exactly once. Callers hold m.mu.
func (m *MediaCapture) releaseLocked() {
	if m.stream == nil {
		return
	}
	if err := m.stream.Close(); err != nil {
		log.Printf("Failed to release capture device: %v", err)
	}
	m.stream = nil
}

func (m *MediaCapture) stopTimerLocked() {
	if m.autoStop != nil {
		m.autoStop.Stop()
		m.autoStop = nil
	}
}
