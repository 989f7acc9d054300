package diffengine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHalfMatch_NoMatchWhenTooShort(t *testing.T) {
	_, ok := halfMatch([]rune("1234567890"), []rune("abc"))
	require.False(t, ok)
}

func TestHalfMatch_FindsSharedMiddle(t *testing.T) {
	old := []rune("1234567890123456789012345678901234567890")
	new := []rune("abc1234567890123456789012345678901234567890xyz")
	hm, ok := halfMatch(old, new)
	require.True(t, ok)
	require.Equal(t, string(old), string(hm.oldPrefix)+string(hm.common)+string(hm.oldSuffix))
	require.Equal(t, string(new), string(hm.newPrefix)+string(hm.common)+string(hm.newSuffix))
}

func TestHalfMatch_PicksLongerOfTwoCandidates(t *testing.T) {
	old := []rune("qHilloHelloHzz")
	new := []rune("z-jjHilloHellozz")
	hm, ok := halfMatch(old, new)
	require.True(t, ok)
	require.NotEmpty(t, hm.common)
}
