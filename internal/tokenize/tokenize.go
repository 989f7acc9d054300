package tokenize

import "unicode"

// Soft caps on unique dictionary entries, per spec.md §4.2: once the
// dictionary holds maxTokensA entries, a's remaining text becomes one extra
// tail entry; b is treated the same way at maxTokensB. Both are counted against the same shared dictionary
// (excluding the reserved empty slot at code 0), since codes must fit in a
// single rune usable as a diff-able "character".
const (
	maxTokensA = 40000
	maxTokensB = 65535
)

// splitFunc returns the length, in runes, of the next token at the start of
// rs. rs is always non-empty when splitFunc is called.
type splitFunc func(rs []rune) int

// ByLines tokenizes a and b on line boundaries: a token ends at the first
// '\n' (inclusive) or at end of text.
func ByLines(a, b string) (codesA, codesB string, dict []string) {
	return tokenizeBoth(a, b, splitLine)
}

// ByWords tokenizes a and b into runs of whitespace or non-whitespace: if
// the first rune of the remaining text is whitespace, the token runs until
// the first non-whitespace rune; otherwise it runs until the next
// whitespace rune.
func ByWords(a, b string) (codesA, codesB string, dict []string) {
	return tokenizeBoth(a, b, splitWord)
}

// Expand rewrites a code string back into the token text it represents, by
// concatenating dict[c] for every code unit c in codes. Codes outside the
// bounds of dict are treated as the empty string (defensive; the engine
// never itself produces such codes).
func Expand(codes string, dict []string) string {
	if codes == "" {
		return ""
	}
	var out []byte
	for _, c := range codes {
		idx := int(c)
		if idx < 0 || idx >= len(dict) {
			continue
		}
		out = append(out, dict[idx]...)
	}
	return string(out)
}

func tokenizeBoth(a, b string, split splitFunc) (string, string, []string) {
	dict := []string{""}
	index := map[string]int{"": 0}
	codesA := tokenizeOne([]rune(a), &dict, index, maxTokensA, split)
	codesB := tokenizeOne([]rune(b), &dict, index, maxTokensB, split)
	return string(codesA), string(codesB), dict
}

// tokenizeOne greedily splits rs into tokens via split, interning each into
// dict/index and appending the assigned code to the returned code string. If
// assigning a new token would push len(*dict)-1 (the count of real entries,
// excluding the reserved empty slot) past cap, the entire untokenized
// remainder of rs is folded into a single final token instead.
func tokenizeOne(rs []rune, dict *[]string, index map[string]int, cap int, split splitFunc) []rune {
	var codes []rune
	for len(rs) > 0 {
		n := split(rs)
		tok := string(rs[:n])

		if _, seen := index[tok]; !seen && len(*dict)-1 >= cap {
			tail := string(rs)
			codes = append(codes, rune(intern(tail, dict, index)))
			return codes
		}

		codes = append(codes, rune(intern(tok, dict, index)))
		rs = rs[n:]
	}
	return codes
}

func intern(tok string, dict *[]string, index map[string]int) int {
	if code, ok := index[tok]; ok {
		return code
	}
	code := len(*dict)
	index[tok] = code
	*dict = append(*dict, tok)
	return code
}

func splitLine(rs []rune) int {
	for i, r := range rs {
		if r == '\n' {
			return i + 1
		}
	}
	return len(rs)
}

func splitWord(rs []rune) int {
	isSpace := unicode.IsSpace(rs[0])
	for i := 1; i < len(rs); i++ {
		if unicode.IsSpace(rs[i]) != isSpace {
			return i
		}
	}
	return len(rs)
}
