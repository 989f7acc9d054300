package format

import (
	"fmt"
	"html"
	"strings"

	"github.com/inklet/inklet/internal/codec"
	"github.com/inklet/inklet/internal/diffengine"
	"github.com/inklet/inklet/internal/patch"
)

// Tag selects a rendering for Format.
type Tag int

const (
	Delta Tag = iota
	GNU
	MD
	HTML
)

// ErrUnknownTag is returned by Format for any Tag value it doesn't
// recognize.
var ErrUnknownTag = fmt.Errorf("format: unknown tag")

// Format renders diffs under tag. delta uses codec.SchemeDeflate for
// inserted text, matching internal/patch's wire scheme.
func Format(diffs []diffengine.Diff, tag Tag) (string, error) {
	switch tag {
	case Delta:
		return formatDelta(diffs), nil
	case GNU:
		return formatGNU(diffs), nil
	case MD:
		return formatMD(diffs), nil
	case HTML:
		return formatHTML(diffs), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownTag, tag)
	}
}

// FormatRevision renders a revision in the delta format. This is the only
// format meaningful for a Revision, since it retains no reference to
// either original text (spec.md §3): gnu/md/html need real diff text to
// render, not just lengths.
func FormatRevision(rev patch.Revision) string {
	return rev.String()
}

func formatDelta(diffs []diffengine.Diff) string {
	tokens := make([]string, len(diffs))
	for i, d := range diffs {
		p := patch.NewPatch(d, codec.SchemeDeflate)
		switch p.Op {
		case diffengine.OpInserted:
			tokens[i] = "+" + p.Text
		case diffengine.OpDeleted:
			tokens[i] = fmt.Sprintf("-%d", p.Length)
		default:
			tokens[i] = fmt.Sprintf("=%d", p.Length)
		}
	}
	return strings.Join(tokens, "\t")
}

func formatGNU(diffs []diffengine.Diff) string {
	lines := make([]string, len(diffs))
	for i, d := range diffs {
		switch d.Op {
		case diffengine.OpInserted:
			lines[i] = "+ " + d.Text
		case diffengine.OpDeleted:
			lines[i] = "- " + d.Text
		default:
			lines[i] = d.Text
		}
	}
	return strings.Join(lines, "\n")
}

func formatMD(diffs []diffengine.Diff) string {
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Op {
		case diffengine.OpInserted:
			sb.WriteString("++" + d.Text + "++")
		case diffengine.OpDeleted:
			sb.WriteString("~~" + d.Text + "~~")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

func formatHTML(diffs []diffengine.Diff) string {
	var sb strings.Builder
	for _, d := range diffs {
		escaped := html.EscapeString(d.Text)
		switch d.Op {
		case diffengine.OpInserted:
			sb.WriteString(`<span class="diff-inserted">` + escaped + `</span>`)
		case diffengine.OpDeleted:
			sb.WriteString(`<span class="diff-deleted">` + escaped + `</span>`)
		default:
			sb.WriteString(escaped)
		}
	}
	return sb.String()
}
