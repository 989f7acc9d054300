package diffengine

// commonPrefixLen returns how many leading runes a and b share.
func commonPrefixLen(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// commonSuffixLen returns how many trailing runes a and b share.
func commonSuffixLen(a, b []rune) int {
	la, lb := len(a), len(b)
	n := la
	if lb < n {
		n = lb
	}
	i := 0
	for i < n && a[la-1-i] == b[lb-1-i] {
		i++
	}
	return i
}

// commonOverlapLen returns the number of runes of overlap between a suffix
// of a and a prefix of b: the largest k such that a[len(a)-k:] == b[:k].
// Used by CleanupSemantic to find text that reads as both the tail of a
// deletion and the head of the following insertion.
func commonOverlapLen(a, b []rune) int {
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0
	}
	if la > lb {
		a = a[la-lb:]
	} else if la < lb {
		b = b[:la]
	}
	n := len(a)
	if runesEqual(a, b) {
		return n
	}

	best := 0
	length := 1
	for length <= n {
		pattern := a[n-length:]
		found := runeIndex(b, pattern)
		if found == -1 {
			return best
		}
		length += found
		if found == 0 || runesEqual(a[n-length:], b[:length]) {
			best = length
			length++
		}
	}
	return best
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// runeIndex returns the index of the first occurrence of pattern in s, or
// -1. Both are treated as opaque rune slices (not text needing collation).
func runeIndex(s, pattern []rune) int {
	if len(pattern) == 0 {
		return 0
	}
	if len(pattern) > len(s) {
		return -1
	}
outer:
	for i := 0; i+len(pattern) <= len(s); i++ {
		for j, r := range pattern {
			if s[i+j] != r {
				continue outer
			}
		}
		return i
	}
	return -1
}

// ApplyNew reconstructs the new string a diff script produces: OpUnchanged
// and OpInserted text, in order.
func ApplyNew(diffs []Diff) string {
	var out []byte
	for _, d := range diffs {
		if d.Op != OpDeleted {
			out = append(out, d.Text...)
		}
	}
	return string(out)
}

// ApplyOld reconstructs the old string a diff script was computed from:
// OpUnchanged and OpDeleted text, in order.
func ApplyOld(diffs []Diff) string {
	var out []byte
	for _, d := range diffs {
		if d.Op != OpInserted {
			out = append(out, d.Text...)
		}
	}
	return string(out)
}

// LevenshteinDistance returns the number of edits a diff script represents.
// Each run of adjacent Deleted/Inserted diffs between two Unchanged diffs is
// charged the larger of its inserted and deleted rune counts, so a
// substitution counts once, matching the standard diff-match-patch
// definition.
func LevenshteinDistance(diffs []Diff) int {
	levenshtein := 0
	insertions := 0
	deletions := 0
	for _, d := range diffs {
		switch d.Op {
		case OpInserted:
			insertions += len([]rune(d.Text))
		case OpDeleted:
			deletions += len([]rune(d.Text))
		case OpUnchanged:
			if insertions > deletions {
				levenshtein += insertions
			} else {
				levenshtein += deletions
			}
			insertions = 0
			deletions = 0
		}
	}
	if insertions > deletions {
		levenshtein += insertions
	} else {
		levenshtein += deletions
	}
	return levenshtein
}
