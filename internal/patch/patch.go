package patch

import (
	"github.com/inklet/inklet/internal/codec"
	"github.com/inklet/inklet/internal/diffengine"
)

// Patch is the compact transport form of a single diffengine.Diff.
//
// Invariants: OpInserted patches carry Text (the compressed insertion) and
// ignore Length; OpDeleted and OpUnchanged patches carry a positive Length
// (a rune count) and no Text.
type Patch struct {
	Op     diffengine.Op
	Length uint32
	Text   string
}

// NewPatch converts a diff into its transport form, compressing inserted
// text under scheme.
func NewPatch(d diffengine.Diff, scheme codec.Scheme) Patch {
	if d.Op == diffengine.OpInserted {
		return Patch{Op: diffengine.OpInserted, Text: codec.Compress(d.Text, scheme)}
	}
	return Patch{Op: d.Op, Length: uint32(len([]rune(d.Text)))}
}
