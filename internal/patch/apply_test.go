package patch

import (
	"testing"

	"github.com/inklet/inklet/internal/diffengine"
	"github.com/stretchr/testify/require"
)

// TestApply_TailCheckAcceptsExactConsumption exercises the corrected form of
// spec.md §9's tail-check bug: a revision whose last patch consumes the
// original text exactly must succeed, not be rejected.
func TestApply_TailCheckAcceptsExactConsumption(t *testing.T) {
	rev := Revision{{Op: diffengine.OpUnchanged, Length: 5}}
	got, err := rev.Apply("hello")
	require.NoError(t, err)
	require.Equal(t, "hello", got)
}

func TestApply_TailCheckRejectsUnconsumedRemainder(t *testing.T) {
	rev := Revision{{Op: diffengine.OpUnchanged, Length: 3}}
	_, err := rev.Apply("hello")
	require.ErrorIs(t, err, ErrTailNotConsumed)
}

func TestApply_RejectsLengthPastEndOfText(t *testing.T) {
	rev := Revision{{Op: diffengine.OpDeleted, Length: 100}}
	_, err := rev.Apply("short")
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestApply_UnchangedDoesNotContentMatch(t *testing.T) {
	// Per spec.md §9's substring-only note: the applier checks shape, not
	// content, since a Revision retains no reference to either original
	// text.
	rev := Revision{{Op: diffengine.OpUnchanged, Length: 5}}
	got, err := rev.Apply("xxxxx")
	require.NoError(t, err)
	require.Equal(t, "xxxxx", got)
}

func TestParseRevision_EmptyTokensIgnored(t *testing.T) {
	rev, ok := ParseRevision("=5\t\t-3")
	require.True(t, ok)
	require.Len(t, rev, 2)
}

func TestParseRevision_RejectsUnknownSigil(t *testing.T) {
	_, ok := ParseRevision("?5")
	require.False(t, ok)
}

func TestParseRevision_RejectsNonPositiveLength(t *testing.T) {
	_, ok := ParseRevision("-0")
	require.False(t, ok)
}

func TestParseRevision_RejectsUndecodableInsertion(t *testing.T) {
	_, ok := ParseRevision("+not valid base64!!!")
	require.False(t, ok)
}
