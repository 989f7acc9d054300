package diffengine

import "unicode"

// semanticScore rates how good a boundary between two rune runs is as a
// place to end one diff and start the next, from 0 (worst, mid-word) to 6
// (best, an edge of the text); a blank line scores 5. Used by CleanupSemantic to slide an edit's
// boundaries toward whitespace/punctuation instead of splitting a word.
func semanticScore(one, two []rune) int {
	if len(one) == 0 || len(two) == 0 {
		return 6
	}

	c1 := one[len(one)-1]
	c2 := two[0]

	nonAlnum1 := !isWordRune(c1)
	nonAlnum2 := !isWordRune(c2)
	whitespace1 := nonAlnum1 && unicode.IsSpace(c1)
	whitespace2 := nonAlnum2 && unicode.IsSpace(c2)
	lineBreak1 := whitespace1 && isLineBreak(c1)
	lineBreak2 := whitespace2 && isLineBreak(c2)
	blankLine1 := lineBreak1 && endsBlankLine(one)
	blankLine2 := lineBreak2 && startsBlankLine(two)

	switch {
	case blankLine1 || blankLine2:
		return 5
	case lineBreak1 || lineBreak2:
		return 4
	case nonAlnum1 && !whitespace1 && whitespace2:
		return 3
	case whitespace1 || whitespace2:
		return 2
	case nonAlnum1 || nonAlnum2:
		return 1
	default:
		return 0
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

// endsBlankLine reports whether text ends with two consecutive newlines
// (allowing a trailing \r before each \n), i.e. a paragraph break.
func endsBlankLine(text []rune) bool {
	n := len(text)
	seen := 0
	for i := n - 1; i >= 0 && seen < 2; i-- {
		switch text[i] {
		case '\n':
			seen++
		case '\r':
			continue
		default:
			return false
		}
	}
	return seen >= 2
}

// startsBlankLine reports whether text begins with two consecutive
// newlines.
func startsBlankLine(text []rune) bool {
	seen := 0
	for i := 0; i < len(text) && seen < 2; i++ {
		switch text[i] {
		case '\n':
			seen++
		case '\r':
			continue
		default:
			return false
		}
	}
	return seen >= 2
}
