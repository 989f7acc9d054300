package patch

import (
	"errors"
	"fmt"

	"github.com/inklet/inklet/internal/codec"
	"github.com/inklet/inklet/internal/diffengine"
)

// ErrMalformedInsertion is returned when an Inserted patch's Text cannot be
// decompressed. A well-formed Revision never triggers this: it can only
// happen given a hand-constructed Patch with a corrupt Text field.
var ErrMalformedInsertion = errors.New("patch: insertion payload does not decompress")

// ErrOutOfRange is returned when a patch's length would read past the end
// of the text being patched.
var ErrOutOfRange = errors.New("patch: length exceeds remaining text")

// ErrTailNotConsumed is returned when, after every patch has been applied,
// the walked index has not reached the end of the original text. This is
// the corrected form of the historical tail-check bug (spec §9): the guard
// on each Deleted/Unchanged patch is a strict `>` against the remaining
// text length, and completeness is verified once at the end, so a revision
// that consumes the input exactly is never wrongly rejected.
var ErrTailNotConsumed = errors.New("patch: revision did not consume the original text exactly")

// Apply walks the revision against text, producing the reconstructed
// result. It only validates shape (lengths, not content) for Deleted
// patches: the original text at an Unchanged patch's position is copied
// through verbatim without being compared against anything, since a
// Revision retains no reference to the text it was computed from.
func (r Revision) Apply(text string) (string, error) {
	runes := []rune(text)
	i := 0
	var out []rune

	for _, p := range r {
		switch p.Op {
		case diffengine.OpInserted:
			text, ok := codec.Decompress(p.Text, wireScheme)
			if !ok {
				return "", fmt.Errorf("%w: %q", ErrMalformedInsertion, p.Text)
			}
			out = append(out, []rune(text)...)
		case diffengine.OpDeleted, diffengine.OpUnchanged:
			length := int(p.Length)
			if i+length > len(runes) {
				return "", fmt.Errorf("%w: at index %d, length %d, text length %d", ErrOutOfRange, i, length, len(runes))
			}
			if p.Op == diffengine.OpUnchanged {
				out = append(out, runes[i:i+length]...)
			}
			i += length
		}
	}

	if i != len(runes) {
		return "", fmt.Errorf("%w: consumed %d of %d runes", ErrTailNotConsumed, i, len(runes))
	}

	return string(out), nil
}

// ApplySequence applies revs to text in order. The first failure aborts
// the chain: the remainder of the sequence is not attempted.
func ApplySequence(revs []Revision, text string) (string, error) {
	current := text
	for i, r := range revs {
		next, err := r.Apply(current)
		if err != nil {
			return "", fmt.Errorf("applying revision %d of %d: %w", i, len(revs), err)
		}
		current = next
	}
	return current, nil
}
