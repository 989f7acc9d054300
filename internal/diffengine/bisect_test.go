package diffengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBisect_FindsMiddleSnake(t *testing.T) {
	old := []rune("cat")
	new := []rune("map")
	diffs := bisect(old, new, DefaultOptions())
	require.Equal(t, "cat", ApplyOld(toPublic(diffs)))
	require.Equal(t, "map", ApplyNew(toPublic(diffs)))
}

func TestBisect_ExpiredDeadlineFallsBackToFlatDiff(t *testing.T) {
	opts := DefaultOptions()
	opts.Deadline = time.Now().Add(-time.Hour)
	old := []rune("abcdefghijklmnopqrstuvwxyz")
	new := []rune("zyxwvutsrqponmlkjihgfedcba")
	diffs := bisect(old, new, opts)
	require.Equal(t, []rdiff{
		{OpDeleted, old},
		{OpInserted, new},
	}, diffs)
}
