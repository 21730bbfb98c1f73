// Internal tests for the batch driver: range contract, classification
// assignments over a real prefix, and fatal-error containment (staged
// in-package so the lookup table can be doctored).
package orbit

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collatz/rules"
)

func TestGenerateBatch_NilRule(t *testing.T) {
	_, err := GenerateBatch(10, nil)
	assert.ErrorIs(t, err, ErrNilRule)
}

// TestGenerateBatch_Monotonic verifies the half-open range contract:
// exactly total − MinStart records, starts forming the ascending range
// [MinStart, total).
func TestGenerateBatch_Monotonic(t *testing.T) {
	records, err := GenerateBatch(50, rules.NewM3A1())
	require.NoError(t, err)

	require.Len(t, records, 49)
	var i int
	for i = range records {
		assert.Equal(t, int64(i+1), records[i].Start)
	}
}

// TestGenerateBatch_ClassificationPrefix pins the full classification of the
// first nine starts of m3a1: drop lengths, wheel slots and ordinals, with
// the length-1 wheel (magnitude 1) wrapping on every even start.
func TestGenerateBatch_ClassificationPrefix(t *testing.T) {
	records, err := GenerateBatch(10, rules.NewM3A1())
	require.NoError(t, err)
	require.Len(t, records, 9)

	want := []struct {
		start     int64
		firstDrop int
		stopMod   int
		stopIndex int
	}{
		{1, 1, 1, 1}, // shortcut case
		{2, 1, 1, 1},
		{3, 6, 1, 1},
		{4, 1, 1, 2},
		{5, 3, 1, 1},
		{6, 1, 1, 3},
		{7, 11, 1, 1},
		{8, 1, 1, 4},
		{9, 3, 1, 2},
	}

	for i, w := range want {
		rec := records[i]
		assert.Equal(t, w.start, rec.Start)
		assert.Equalf(t, w.firstDrop, rec.FirstDrop, "start %d: first drop", w.start)
		assert.Equalf(t, w.stopMod, rec.StopMod, "start %d: stopping modulus", w.start)
		assert.Equalf(t, w.stopIndex, rec.StopIndex, "start %d: stopping index", w.start)
	}

	// Spot-check the first orbit of 3: [3, 10, 5, 16, 8, 4], dropping to 2.
	assert.Equal(t, []int64{3, 10, 5, 16, 8, 4}, records[2].FirstOrbit)
	assert.Equal(t, []int64{3, 10, 5, 16, 8, 4, 2, 1}, records[2].TotalOrbit)
}

// TestGenerateBatch_IneligibleRule runs m3a3: records are produced for the
// whole range, but nothing is classified beyond the shortcut case.
func TestGenerateBatch_IneligibleRule(t *testing.T) {
	records, err := GenerateBatch(10, rules.NewM3A3())
	require.NoError(t, err)

	require.Len(t, records, 7, "m3a3 starts at 3")
	assert.Equal(t, int64(3), records[0].Start)
	assert.Equal(t, 1, records[0].StopMod, "shortcut orbit carries fixed classification")

	var i int
	for i = 1; i < len(records); i++ {
		assert.Zerof(t, records[i].StopMod, "start %d must stay unclassified", records[i].Start)
	}
}

func TestGenerateBatch_EmptyRange(t *testing.T) {
	records, err := GenerateBatch(1, rules.NewM3A1())
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = GenerateBatch(-5, rules.NewM3A1())
	require.NoError(t, err)
	assert.Empty(t, records)
}

// TestRunBatch_FatalContainment doctors the lookup table so the orbit of 3
// (first drop 6) cannot be classified: the batch must return the records for
// starts 1 and 2, log the condition, and not propagate any error.
func TestRunBatch_FatalContainment(t *testing.T) {
	st, err := NewClassState(rules.NameM3A1)
	require.NoError(t, err)
	delete(st.lookup, 6)

	var buf bytes.Buffer
	cfg := Options{Logger: log.New(&buf, "", 0)}

	records := runBatch(10, rules.NewM3A1(), st, cfg)

	require.Len(t, records, 2, "only the starts strictly before the failure survive")
	assert.Equal(t, int64(1), records[0].Start)
	assert.Equal(t, int64(2), records[1].Start)
	assert.Contains(t, buf.String(), "start=3")
	assert.Contains(t, buf.String(), "not in lookup table")
}
