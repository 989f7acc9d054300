package format

import (
	"testing"

	"github.com/inklet/inklet/internal/diffengine"
	"github.com/inklet/inklet/internal/patch"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

func patchRevisionFixture() patch.Revision {
	return patch.NewRevision("The quick fox", "The slow fox", diffengine.DefaultOptions())
}

func sampleDiffs() []diffengine.Diff {
	return []diffengine.Diff{
		{Op: diffengine.OpUnchanged, Text: "The "},
		{Op: diffengine.OpDeleted, Text: "quick "},
		{Op: diffengine.OpInserted, Text: "slow "},
		{Op: diffengine.OpUnchanged, Text: "fox"},
	}
}

func TestFormat_Delta(t *testing.T) {
	out, err := Format(sampleDiffs(), Delta)
	require.NoError(t, err)
	require.Contains(t, out, "=4")
	require.Contains(t, out, "-6")
	require.Contains(t, out, "+")
}

func TestFormat_GNU(t *testing.T) {
	out, err := Format(sampleDiffs(), GNU)
	require.NoError(t, err)
	require.Equal(t, "The \n- quick \n+ slow \nfox", out)
}

func TestFormat_MD(t *testing.T) {
	out, err := Format(sampleDiffs(), MD)
	require.NoError(t, err)
	require.Equal(t, "The ~~quick ~~++slow ++fox", out)

	// Validate the output parses as well-formed Markdown (a non-nil AST),
	// the way internal/specmd validates generated fences before trusting
	// their structure.
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader([]byte(out)))
	require.NotNil(t, root)
}

func TestFormat_HTML_EscapesText(t *testing.T) {
	diffs := []diffengine.Diff{
		{Op: diffengine.OpDeleted, Text: "<script>"},
		{Op: diffengine.OpInserted, Text: "safe & sound"},
	}
	out, err := Format(diffs, HTML)
	require.NoError(t, err)
	require.Equal(t, `<span class="diff-deleted">&lt;script&gt;</span><span class="diff-inserted">safe &amp; sound</span>`, out)
}

func TestFormat_UnknownTag(t *testing.T) {
	_, err := Format(sampleDiffs(), Tag(99))
	require.ErrorIs(t, err, ErrUnknownTag)
}

func TestFormatRevision_UsesDelta(t *testing.T) {
	rev := patchRevisionFixture()
	require.Equal(t, rev.String(), FormatRevision(rev))
}
