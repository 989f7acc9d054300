package patch

import (
	"strconv"
	"strings"

	"github.com/inklet/inklet/internal/codec"
	"github.com/inklet/inklet/internal/diffengine"
)

// wireScheme is the compression scheme used for every Patch this package
// produces or parses. The delta format itself carries no scheme tag (per
// spec.md §6 it is "selectable at build time"), so this is a single
// process-wide constant rather than a per-Revision field.
const wireScheme = codec.SchemeDeflate

// Revision is an ordered sequence of patches describing one string's
// transformation into another. It retains no reference to either string.
type Revision []Patch

// NewRevision computes the diff between old and new and converts it to a
// Revision.
func NewRevision(old, new string, opts diffengine.Options) Revision {
	diffs := diffengine.Diff(old, new, opts)
	rev := make(Revision, len(diffs))
	for i, d := range diffs {
		rev[i] = NewPatch(d, wireScheme)
	}
	return rev
}

// String serializes the revision to the delta wire format: patch tokens
// joined by tabs, each beginning with exactly one sigil (+/-/=).
func (r Revision) String() string {
	tokens := make([]string, len(r))
	for i, p := range r {
		switch p.Op {
		case diffengine.OpInserted:
			tokens[i] = "+" + p.Text
		case diffengine.OpDeleted:
			tokens[i] = "-" + strconv.FormatUint(uint64(p.Length), 10)
		default:
			tokens[i] = "=" + strconv.FormatUint(uint64(p.Length), 10)
		}
	}
	return strings.Join(tokens, "\t")
}
