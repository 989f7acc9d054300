package diffengine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanupSemantic_EliminatesSmallEquality(t *testing.T) {
	in := []Diff{
		{OpDeleted, "ab"},
		{OpUnchanged, "cd"},
		{OpDeleted, "e"},
		{OpUnchanged, "f"},
		{OpInserted, "g"},
	}
	out := CleanupSemantic(in)
	require.Equal(t, "abcdef", ApplyOld(in))
	require.Equal(t, "abcdef", ApplyOld(out))
	require.Equal(t, ApplyNew(in), ApplyNew(out))
}

func TestCleanupSemantic_ShiftsBoundaryToWordEdge(t *testing.T) {
	in := []Diff{
		{OpUnchanged, "The c"},
		{OpInserted, "at c"},
		{OpUnchanged, "ame."},
	}
	out := CleanupSemantic(in)
	require.Equal(t, ApplyOld(in), ApplyOld(out))
	require.Equal(t, ApplyNew(in), ApplyNew(out))
	require.Equal(t, "The ", out[0].Text)
}

func TestCleanupSemantic_ElimiatesOverlap(t *testing.T) {
	in := []Diff{
		{OpDeleted, "abcxxx"},
		{OpInserted, "xxxdef"},
	}
	out := CleanupSemantic(in)
	require.Equal(t, ApplyOld(in), ApplyOld(out))
	require.Equal(t, ApplyNew(in), ApplyNew(out))
	require.Equal(t, []Diff{
		{OpDeleted, "abc"},
		{OpUnchanged, "xxx"},
		{OpInserted, "def"},
	}, out)
}
