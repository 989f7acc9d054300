package diffengine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineModeDiff_ReconstructsLargeInputs(t *testing.T) {
	var oldLines, newLines []string
	for i := 0; i < 200; i++ {
		oldLines = append(oldLines, "shared line")
	}
	newLines = append([]string(nil), oldLines...)
	oldLines[50] = "old fifty"
	newLines[50] = "new fifty"
	oldLines = append(oldLines, "trailing old")
	newLines = append(newLines, "trailing new")

	old := strings.Join(oldLines, "\n")
	new := strings.Join(newLines, "\n")

	opts := DefaultOptions()
	opts.LineModeThreshold = 50
	diffs := lineModeDiff([]rune(old), []rune(new), opts)

	require.Equal(t, old, ApplyOld(toPublic(diffs)))
	require.Equal(t, new, ApplyNew(toPublic(diffs)))
}

func TestWordDiff_ReconstructsWhitespaceExactly(t *testing.T) {
	old := "alpha   beta\tgamma\n"
	new := "alpha   delta\tgamma\n"
	diffs := WordDiff(old, new, DefaultOptions())
	require.Equal(t, old, ApplyOld(diffs))
	require.Equal(t, new, ApplyNew(diffs))
}
