// Package plot_test contains unit tests for point construction: builder
// projection, label/color attachment, and precondition rejection.
package plot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collatz/orbit"
	"github.com/katalvlaran/collatz/plot"
	"github.com/katalvlaran/collatz/rules"
)

func sampleRecords(t *testing.T) []orbit.OrbitRecord {
	t.Helper()
	records, err := orbit.GenerateBatch(4, rules.NewM3A1())
	require.NoError(t, err)
	require.Len(t, records, 3)

	return records
}

func TestBuildPoints_NilBuilder(t *testing.T) {
	_, err := plot.BuildPoints(sampleRecords(t), nil)
	assert.ErrorIs(t, err, plot.ErrNilBuilder)
}

func TestBuildPoints_LengthMismatch(t *testing.T) {
	records := sampleRecords(t)

	_, err := plot.BuildPoints(records, plot.DropBuilder, plot.WithLabels([]string{"only one"}))
	assert.ErrorIs(t, err, plot.ErrLengthMismatch)

	_, err = plot.BuildPoints(records, plot.DropBuilder, plot.WithColors([]string{"red", "green"}))
	assert.ErrorIs(t, err, plot.ErrLengthMismatch)
}

func TestBuildPoints_DropBuilder(t *testing.T) {
	records := sampleRecords(t)

	points, err := plot.BuildPoints(records, plot.DropBuilder)
	require.NoError(t, err)
	require.Len(t, points, 3)

	// Start 3: first drop 6, slot 1.
	assert.Equal(t, plot.Point{X: 3, Y: 6, Z: 1}, points[2])
	// No labels/colors requested: fields stay empty.
	assert.Empty(t, points[0].Label)
	assert.Empty(t, points[0].Color)
}

func TestBuildPoints_LabelsAndColors(t *testing.T) {
	records := sampleRecords(t)
	labels := []string{"one", "two", "three"}
	colors := []string{"red", "green", "blue"}

	points, err := plot.BuildPoints(records, plot.DropBuilder,
		plot.WithLabels(labels), plot.WithColors(colors))
	require.NoError(t, err)

	for i := range points {
		assert.Equal(t, labels[i], points[i].Label)
		assert.Equal(t, colors[i], points[i].Color)
	}
}

func TestBuildPoints_LengthBuilder(t *testing.T) {
	records := sampleRecords(t)

	points, err := plot.BuildPoints(records, plot.LengthBuilder)
	require.NoError(t, err)

	// Start 3: orbit [3,10,5,16,8,4,2,1] → length 8, peak 16.
	assert.Equal(t, plot.Point{X: 3, Y: 8, Z: 16}, points[2])
}

func TestBuildPoints_EmptyBatch(t *testing.T) {
	points, err := plot.BuildPoints(nil, plot.DropBuilder)
	require.NoError(t, err)
	assert.Empty(t, points)
}
