// Package geo resolves the device's current position. The actual
// position feed is an injected Source; this package normalizes its
// success/failure into coordinates or a coded error.
package geo

import (
	"context"
	"errors"
	"strconv"
	"time"
)

// Code classifies geolocation failures 1:1 with the platform's numeric
// error codes. Anything outside 1-3 is CodeUnknown.
type Code int

const (
	CodeUnknown             Code = 0
	CodePermissionDenied    Code = 1
	CodePositionUnavailable Code = 2
	CodeTimeout             Code = 3
)

// Error is a geolocation failure with a user-facing message.
type Error struct {
	Code Code
}

func (e *Error) Error() string {
	switch e.Code {
	case CodePermissionDenied:
		return "Location permission denied. Please enable location access."
	case CodePositionUnavailable:
		return "Location information is unavailable."
	case CodeTimeout:
		return "Location request timed out."
	default:
		return "An unknown error occurred while getting your location."
	}
}

// ErrorFromCode maps a raw platform error code to an Error.
func ErrorFromCode(code int) *Error {
	switch code {
	case 1, 2, 3:
		return &Error{Code: Code(code)}
	default:
		return &Error{Code: CodeUnknown}
	}
}

// Coordinates is a resolved position in floating-point degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Query renders the coordinates as a "<lat>,<lon>" weather query.
func (c Coordinates) Query() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// Options are passed to the position source on every resolution.
type Options struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration // 0 = no cached fix accepted
}

// DefaultOptions requests a fresh, high-accuracy fix within 10 seconds.
func DefaultOptions() Options {
	return Options{
		HighAccuracy: true,
		Timeout:      10 * time.Second,
		MaximumAge:   0,
	}
}

// Source is the platform collaborator producing a single position fix.
type Source interface {
	CurrentPosition(ctx context.Context, opts Options) (Coordinates, error)
}

// Resolver wraps a Source and turns its outcome into a normalized
// coordinate-or-*Error result.
type Resolver struct {
	source Source
	opts   Options
}

// NewResolver creates a Resolver around the given source. A nil source
// resolves to CodePositionUnavailable.
func NewResolver(source Source, opts Options) *Resolver {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	return &Resolver{source: source, opts: opts}
}

// Resolve blocks until the source responds or the configured timeout
// elapses. Failures always come back as *Error.
func (r *Resolver) Resolve(ctx context.Context) (Coordinates, error) {
	if r.source == nil {
		return Coordinates{}, &Error{Code: CodePositionUnavailable}
	}

	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	coords, err := r.source.CurrentPosition(ctx, r.opts)
	if err == nil {
		return coords, nil
	}

	var geoErr *Error
	if errors.As(err, &geoErr) {
		return Coordinates{}, geoErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Coordinates{}, &Error{Code: CodeTimeout}
	}
	return Coordinates{}, &Error{Code: CodeUnknown}
}
