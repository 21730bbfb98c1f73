// Package plot - point construction over orbit record batches.
package plot

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/collatz/orbit"
)

// Sentinel errors returned by BuildPoints.
var (
	// ErrNilBuilder indicates that BuildPoints was called without a builder.
	ErrNilBuilder = errors.New("plot: point builder is nil")

	// ErrLengthMismatch indicates that a supplied label or color list does
	// not have exactly one entry per record.
	ErrLengthMismatch = errors.New("plot: labels/colors length must match record count")
)

// Point is one renderable scatter point: three coordinates plus an optional
// label (hover text) and color.
type Point struct {
	X, Y, Z float64
	Label   string
	Color   string
}

// Builder maps one orbit record to a 3-tuple of plot coordinates.
type Builder func(rec orbit.OrbitRecord) (x, y, z float64)

// Options configures BuildPoints.
//
// Labels – optional hover text, one per record.
// Colors – optional color names, one per record.
type Options struct {
	Labels []string
	Colors []string
}

// Option represents a functional option for configuring BuildPoints.
type Option func(*Options)

// WithLabels attaches one label per record. The length is validated against
// the record count inside BuildPoints.
func WithLabels(labels []string) Option {
	return func(o *Options) {
		o.Labels = labels
	}
}

// WithColors attaches one color per record. The length is validated against
// the record count inside BuildPoints.
func WithColors(colors []string) Option {
	return func(o *Options) {
		o.Colors = colors
	}
}

// BuildPoints projects every record through the builder, attaching labels
// and colors when supplied.
//
// Precondition rejection (before any point is built): a nil builder fails
// with ErrNilBuilder; a label or color list whose length differs from
// len(records) fails with ErrLengthMismatch.
//
// Complexity: O(len(records)).
func BuildPoints(records []orbit.OrbitRecord, build Builder, opts ...Option) ([]Point, error) {
	if build == nil {
		return nil, ErrNilBuilder
	}

	cfg := Options{}
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if cfg.Labels != nil && len(cfg.Labels) != len(records) {
		return nil, fmt.Errorf("%w: %d labels for %d records", ErrLengthMismatch, len(cfg.Labels), len(records))
	}
	if cfg.Colors != nil && len(cfg.Colors) != len(records) {
		return nil, fmt.Errorf("%w: %d colors for %d records", ErrLengthMismatch, len(cfg.Colors), len(records))
	}

	points := make([]Point, len(records))
	var i int
	for i = range records {
		x, y, z := build(records[i])
		points[i] = Point{X: x, Y: y, Z: z}
		if cfg.Labels != nil {
			points[i].Label = cfg.Labels[i]
		}
		if cfg.Colors != nil {
			points[i].Color = cfg.Colors[i]
		}
	}

	return points, nil
}

// DropBuilder projects a record onto its classification coordinates:
// (start, first-drop length, stopping modulus).
func DropBuilder(rec orbit.OrbitRecord) (x, y, z float64) {
	return float64(rec.Start), float64(rec.FirstDrop), float64(rec.StopMod)
}

// LengthBuilder projects a record onto its trajectory shape:
// (start, total orbit length, peak value reached).
func LengthBuilder(rec orbit.OrbitRecord) (x, y, z float64) {
	var peak int64
	var v int64
	for _, v = range rec.TotalOrbit {
		if v > peak {
			peak = v
		}
	}

	return float64(rec.Start), float64(len(rec.TotalOrbit)), float64(peak)
}
