package diffengine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommonPrefixLen(t *testing.T) {
	require.Equal(t, 4, commonPrefixLen([]rune("abcdefg"), []rune("abcdxyz")))
	require.Equal(t, 0, commonPrefixLen([]rune("abc"), []rune("xyz")))
	require.Equal(t, 3, commonPrefixLen([]rune("abc"), []rune("abc")))
}

func TestCommonSuffixLen(t *testing.T) {
	require.Equal(t, 4, commonSuffixLen([]rune("xyzdefg"), []rune("abcdefg")))
	require.Equal(t, 0, commonSuffixLen([]rune("abc"), []rune("xyz")))
}

func TestCommonOverlapLen(t *testing.T) {
	require.Equal(t, 0, commonOverlapLen([]rune(""), []rune("abcd")))
	require.Equal(t, 3, commonOverlapLen([]rune("abc"), []rune("abcd")))
	require.Equal(t, 0, commonOverlapLen([]rune("123456"), []rune("abcd")))
	require.Equal(t, 3, commonOverlapLen([]rune("123456xxx"), []rune("xxxabcd")))
}

func TestApplyOldNew(t *testing.T) {
	diffs := []Diff{
		{OpUnchanged, "The "},
		{OpDeleted, "quick "},
		{OpInserted, "slow "},
		{OpUnchanged, "fox"},
	}
	require.Equal(t, "The quick fox", ApplyOld(diffs))
	require.Equal(t, "The slow fox", ApplyNew(diffs))
}
