package capture

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGeolocator struct {
	coords Coordinates
	err    error
}

func (g *fakeGeolocator) CurrentPosition(context.Context) (Coordinates, error) {
	if g.err != nil {
		return Coordinates{}, g.err
	}
	return g.coords, nil
}

func TestRequestCurrentLocation(t *testing.T) {
	geo := &fakeGeolocator{coords: Coordinates{Latitude: 19.0760, Longitude: 72.8777}}
	l := NewLocationCapture(geo, nil)

	coords, err := l.RequestCurrentLocation(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 19.0760, coords.Latitude)
	assert.Equal(t, 72.8777, coords.Longitude)

	active, address, ok := l.Current()
	assert.True(t, ok)
	assert.Equal(t, coords, active)
	assert.Empty(t, address)
}

func TestRequestCurrentLocationDenied(t *testing.T) {
	geo := &fakeGeolocator{err: errors.New("permission denied")}
	l := NewLocationCapture(geo, nil)

	_, err := l.RequestCurrentLocation(context.Background())

	require.ErrorIs(t, err, ErrLocationUnavailable)
	_, _, ok := l.Current()
	assert.False(t, ok)
}

func TestSetManualResolvesText(t *testing.T) {
	l := NewLocationCapture(&fakeGeolocator{}, nil)

	coords, err := l.SetManual(context.Background(), "Main Street, Mumbai")

	require.NoError(t, err)
	assert.Equal(t, 19.0760, coords.Latitude)

	active, address, ok := l.Current()
	assert.True(t, ok)
	assert.Equal(t, coords, active)
	assert.Equal(t, "Main Street, Mumbai", address)
}

func TestSetManualRejectsEmptyText(t *testing.T) {
	l := NewLocationCapture(&fakeGeolocator{}, nil)

	_, err := l.SetManual(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestManualOverwritesAutomaticFix(t *testing.T) {
	geo := &fakeGeolocator{coords: Coordinates{Latitude: 12.9716, Longitude: 77.5946}}
	l := NewLocationCapture(geo, nil)

	_, err := l.RequestCurrentLocation(context.Background())
	require.NoError(t, err)

	manual, err := l.SetManual(context.Background(), "Oak Avenue")
	require.NoError(t, err)

	active, address, ok := l.Current()
	assert.True(t, ok)
	assert.Equal(t, manual, active)
	assert.Equal(t, "Oak Avenue", address)
}

func TestAutomaticFixClearsManualEntry(t *testing.T) {
	geo := &fakeGeolocator{coords: Coordinates{Latitude: 12.9716, Longitude: 77.5946}}
	l := NewLocationCapture(geo, nil)

	_, err := l.SetManual(context.Background(), "Oak Avenue")
	require.NoError(t, err)

	coords, err := l.RequestCurrentLocation(context.Background())
	require.NoError(t, err)

	active, address, ok := l.Current()
	assert.True(t, ok)
	assert.Equal(t, coords, active)
	assert.Empty(t, address, "manual entry should be cleared by a fresh GPS fix")
}

func TestClear(t *testing.T) {
	geo := &fakeGeolocator{coords: Coordinates{Latitude: 1, Longitude: 2}}
	l := NewLocationCapture(geo, nil)

	_, err := l.RequestCurrentLocation(context.Background())
	require.NoError(t, err)

	l.Clear()

	_, _, ok := l.Current()
	assert.False(t, ok)
}
