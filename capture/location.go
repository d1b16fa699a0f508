package capture

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrLocationUnavailable means the platform could not produce a fix.
	// Recoverable: the citizen falls back to manual entry.
	ErrLocationUnavailable = errors.New("location unavailable")
	// ErrEmptyAddress means manual entry was attempted with blank text.
	ErrEmptyAddress = errors.New("address must not be empty")
)

// PlaceholderGeocoder resolves any non-empty text to a fixed coordinate.
// It is a stand-in for a real geocoding collaborator: the non-empty text is
// taken as evidence of intent and paired with a default city-center fix.
type PlaceholderGeocoder struct{}

func (PlaceholderGeocoder) Resolve(_ context.Context, _ string) (Coordinates, error) {
	return Coordinates{Latitude: 19.0760, Longitude: 72.8777}, nil
}

// LocationCapture owns geolocation acquisition with manual fallback.
// Exactly one coordinate pair is active at a time: a GPS fix clears any
// manual entry and vice versa.
type LocationCapture struct {
	geo      Geolocator
	geocoder Geocoder

	mu      sync.Mutex
	fix     *Coordinates
	address string // non-empty only for manual entries
}

// NewLocationCapture returns a capture using geo for GPS fixes and geocoder
// for manual entry. A nil geocoder falls back to the placeholder.
func NewLocationCapture(geo Geolocator, geocoder Geocoder) *LocationCapture {
	if geocoder == nil {
		geocoder = PlaceholderGeocoder{}
	}
	return &LocationCapture{geo: geo, geocoder: geocoder}
}

// RequestCurrentLocation asks the platform for a one-shot position fix.
// A successful fix overwrites any prior manual entry.
func (l *LocationCapture) RequestCurrentLocation(ctx context.Context) (Coordinates, error) {
	coords, err := l.geo.CurrentPosition(ctx)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.fix = &coords
	l.address = ""
	return coords, nil
}

// SetManual resolves free-text to a coordinate pair, overwriting any prior
// automatic fix.
func (l *LocationCapture) SetManual(ctx context.Context, text string) (Coordinates, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Coordinates{}, ErrEmptyAddress
	}

	coords, err := l.geocoder.Resolve(ctx, text)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.fix = &coords
	l.address = text
	return coords, nil
}

// Current returns the active coordinate pair, the manual address text if
// any, and whether a fix is set.
func (l *LocationCapture) Current() (Coordinates, string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fix == nil {
		return Coordinates{}, "", false
	}
	return *l.fix, l.address, true
}

// Clear drops the active fix.
func (l *LocationCapture) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fix = nil
	l.address = ""
}
