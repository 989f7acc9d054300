package patch

import (
	"github.com/inklet/inklet/internal/codec"
	"github.com/inklet/inklet/internal/diffengine"
)

// Stats summarizes a revision's shape without applying it: the rune counts
// of inserted, deleted, and unchanged text it describes.
func (r Revision) Stats() (inserted, deleted, unchanged int) {
	for _, p := range r {
		switch p.Op {
		case diffengine.OpInserted:
			if text, ok := codec.Decompress(p.Text, wireScheme); ok {
				inserted += len([]rune(text))
			}
		case diffengine.OpDeleted:
			deleted += int(p.Length)
		case diffengine.OpUnchanged:
			unchanged += int(p.Length)
		}
	}
	return inserted, deleted, unchanged
}
