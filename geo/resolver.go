package geo

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// Position is a device location fix.
type Position struct {
	Latitude  float64
	Longitude float64
	Timestamp time.Time
}

// PositionSource yields the device's current position. Failures (permission
// denied, no fix, timeout) are expected and must be non-fatal to callers.
type PositionSource interface {
	Current(ctx context.Context) (*Position, error)
}

// StaticSource is a fixed-coordinate PositionSource, fed from configuration
// or flags on machines without a location service.
type StaticSource struct {
	Latitude  float64
	Longitude float64
}

func (s StaticSource) Current(ctx context.Context) (*Position, error) {
	return &Position{Latitude: s.Latitude, Longitude: s.Longitude, Timestamp: time.Now()}, nil
}

const (
	defaultTimeout = 10 * time.Second
	defaultMaxAge  = 5 * time.Minute
)

// Resolver enriches bookings with a best-effort address from the device
// position plus reverse geocoding. Every failure path returns something the
// caller can log and move past; resolution never blocks a submission.
type Resolver struct {
	source   PositionSource
	geocoder *Geocoder
	timeout  time.Duration
	maxAge   time.Duration

	mu     sync.Mutex
	cached *Position
}

func NewResolver(source PositionSource, geocoder *Geocoder, timeout, maxAge time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if maxAge <= 0 {
		maxAge = defaultMaxAge
	}
	return &Resolver{
		source:   source,
		geocoder: geocoder,
		timeout:  timeout,
		maxAge:   maxAge,
	}
}

// CurrentPosition returns a recent fix, reusing a cached one within the
// allowed age rather than waking the position source again.
func (r *Resolver) CurrentPosition(ctx context.Context) (*Position, error) {
	r.mu.Lock()
	if r.cached != nil && time.Since(r.cached.Timestamp) <= r.maxAge {
		pos := *r.cached
		r.mu.Unlock()
		return &pos, nil
	}
	r.mu.Unlock()

	if r.source == nil {
		return nil, fmt.Errorf("no position source available")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	pos, err := r.source.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current position: %w", err)
	}
	if pos.Timestamp.IsZero() {
		pos.Timestamp = time.Now()
	}

	r.mu.Lock()
	r.cached = pos
	r.mu.Unlock()

	fresh := *pos
	return &fresh, nil
}

// CurrentAddress resolves the device position to a postal address. When
// geocoding fails the raw coordinates come back instead: still better than
// an empty address field.
func (r *Resolver) CurrentAddress(ctx context.Context) (string, error) {
	pos, err := r.CurrentPosition(ctx)
	if err != nil {
		return "", err
	}

	addr, err := r.geocoder.ReverseGeocode(ctx, pos.Latitude, pos.Longitude)
	if err != nil {
		log.Printf("reverse geocoding failed, falling back to coordinates: %v", err)
		return fmt.Sprintf("%.5f, %.5f", pos.Latitude, pos.Longitude), nil
	}
	return addr, nil
}
