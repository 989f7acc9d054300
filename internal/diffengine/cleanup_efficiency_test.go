package diffengine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanupEfficiency_DissolvesShortEquality(t *testing.T) {
	in := []Diff{
		{OpDeleted, "AB"},
		{OpInserted, "12"},
		{OpUnchanged, "xyz"},
		{OpDeleted, "CD"},
		{OpInserted, "34"},
	}
	out := CleanupEfficiency(in, 4)
	require.Equal(t, ApplyOld(in), ApplyOld(out))
	require.Equal(t, ApplyNew(in), ApplyNew(out))
	require.Less(t, len(out), len(in))
}

func TestCleanupEfficiency_KeepsLongEquality(t *testing.T) {
	in := []Diff{
		{OpDeleted, "AB"},
		{OpInserted, "12"},
		{OpUnchanged, "wxyz1234wxyz1234"},
		{OpDeleted, "CD"},
		{OpInserted, "34"},
	}
	out := CleanupEfficiency(in, 4)
	require.Equal(t, in, out)
}

func TestCleanupEfficiency_DefaultsEditCost(t *testing.T) {
	in := []Diff{{OpUnchanged, "x"}}
	out := CleanupEfficiency(in, 0)
	require.Equal(t, in, out)
}
