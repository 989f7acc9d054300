package termwidth

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

func condition() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return cond
}

// TextWidth returns s's column width for a monospace terminal, summing
// each grapheme cluster's width rather than each rune's, so a cluster like
// "e"+combining-acute or a multi-rune emoji counts once.
func TextWidth(s string) int {
	cond := condition()
	width := 0
	iter := graphemes.FromString(s)
	for iter.Next() {
		width += cond.StringWidth(iter.Value())
	}
	return width
}

// PadRight returns s followed by enough spaces to reach width columns. If s
// is already at or beyond width, s is returned unchanged.
func PadRight(s string, width int) string {
	pad := width - TextWidth(s)
	if pad <= 0 {
		return s
	}
	out := make([]byte, len(s)+pad)
	n := copy(out, s)
	for ; n < len(out); n++ {
		out[n] = ' '
	}
	return string(out)
}
