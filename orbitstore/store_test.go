// Package orbitstore_test exercises the SQLite store end to end against an
// in-memory database: schema creation, atomic batch save, round-trip
// fidelity of every field, and the not-found contract.
package orbitstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collatz/orbit"
	"github.com/katalvlaran/collatz/orbitstore"
	"github.com/katalvlaran/collatz/rules"
)

func openMemStore(t *testing.T) *orbitstore.Store {
	t.Helper()
	st, err := orbitstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return st
}

func TestStore_SaveBatchAndCount(t *testing.T) {
	st := openMemStore(t)

	records, err := orbit.GenerateBatch(10, rules.NewM3A1())
	require.NoError(t, err)

	batchID, err := st.SaveBatch(records)
	require.NoError(t, err)
	assert.NotEmpty(t, batchID)

	total, err := st.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(9), total)
}

// TestStore_RoundTrip verifies field-for-field fidelity through JSON TEXT
// columns for a non-trivial record (start 3: drop 6, classified).
func TestStore_RoundTrip(t *testing.T) {
	st := openMemStore(t)

	records, err := orbit.GenerateBatch(10, rules.NewM3A1())
	require.NoError(t, err)
	_, err = st.SaveBatch(records)
	require.NoError(t, err)

	got, err := st.ByStart(3)
	require.NoError(t, err)

	want := records[2]
	assert.Equal(t, want.Start, got.Start)
	assert.Equal(t, want.FirstDrop, got.FirstDrop)
	assert.Equal(t, want.FirstOrbit, got.FirstOrbit)
	assert.Equal(t, want.TotalOrbit, got.TotalOrbit)
	assert.Equal(t, want.StopMod, got.StopMod)
	assert.Equal(t, want.StopIndex, got.StopIndex)
	assert.Equal(t, want.FirstOpIDs, got.FirstOpIDs)
	assert.Equal(t, want.FirstOpCounts, got.FirstOpCounts)
	assert.Equal(t, want.TotalOpIDs, got.TotalOpIDs)
	assert.Equal(t, want.TotalOpCounts, got.TotalOpCounts)
}

// TestStore_ByStartLatest checks that re-saving a start value surfaces the
// most recent row.
func TestStore_ByStartLatest(t *testing.T) {
	st := openMemStore(t)

	rec, err := orbit.Simulate(7, rules.NewM3A1(), nil)
	require.NoError(t, err)

	_, err = st.SaveBatch([]orbit.OrbitRecord{rec})
	require.NoError(t, err)

	// Second save of the same start with classification state attached.
	cls, err := orbit.NewClassState(rules.NameM3A1)
	require.NoError(t, err)
	classified, err := orbit.Simulate(7, rules.NewM3A1(), cls)
	require.NoError(t, err)
	_, err = st.SaveBatch([]orbit.OrbitRecord{classified})
	require.NoError(t, err)

	got, err := st.ByStart(7)
	require.NoError(t, err)
	assert.Equal(t, classified.StopMod, got.StopMod, "latest row wins")
	assert.NotZero(t, got.StopMod)
}

func TestStore_ByStartNotFound(t *testing.T) {
	st := openMemStore(t)

	_, err := st.ByStart(12345)
	assert.ErrorIs(t, err, orbitstore.ErrNotFound)
}

func TestStore_EmptyBatch(t *testing.T) {
	st := openMemStore(t)

	batchID, err := st.SaveBatch(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, batchID, "an empty batch still gets an id")

	total, err := st.Count()
	require.NoError(t, err)
	assert.Zero(t, total)
}
