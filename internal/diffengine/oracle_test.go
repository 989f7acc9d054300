package diffengine

import (
	"fmt"
	"testing"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"
)

// These tests use go-diff purely as an oracle: they don't assert byte-for-byte
// agreement with its edit script (the two engines make independent, equally
// valid shortcut choices), only that inklet's result reconstructs both
// inputs and does not spend meaningfully more edits than go-diff's does.
func TestDiff_AgreesWithOracleOnEditVolume(t *testing.T) {
	pairs := []struct{ old, new string }{
		{"The quick brown fox jumps over the lazy dog.", "The quick brown fox leaps over the lazy cat."},
		{"function add(a, b) {\n  return a + b;\n}\n", "function add(a, b, c) {\n  return a + b + c;\n}\n"},
		{"", "brand new content"},
		{"going away entirely", ""},
		{"a b c d e f g h i j", "a b X d e Y g h i j"},
		{"1111111111", "1111111111"},
	}

	oracle := dmp.New()
	for i, p := range pairs {
		t.Run(fmt.Sprintf("pair-%d", i), func(t *testing.T) {
			opts := DefaultOptions()
			opts.UseHalfMatch = true
			diffs := Diff(p.old, p.new, opts)
			require.Equal(t, p.old, ApplyOld(diffs))
			require.Equal(t, p.new, ApplyNew(diffs))

			oracleDiffs := oracle.DiffMain(p.old, p.new, false)
			oracleLen := oracle.DiffLevenshtein(oracleDiffs)
			gotLen := LevenshteinDistance(diffs)

			require.LessOrEqual(t, gotLen, 2*oracleLen+1,
				"inklet diff (%d edits) much worse than oracle (%d edits)", gotLen, oracleLen)
		})
	}
}
