package diffengine

// mergeRunes coalesces the raw output of diffCompute into the engine's
// normal form: adjacent same-op diffs combined, any common prefix/suffix
// between a Deleted/Inserted pair factored out into a neighboring
// Unchanged, and single edits shifted across an Unchanged run when doing so
// eliminates that run entirely. Runs to a fixed point, since eliminating one
// Unchanged run can expose another shift opportunity.
func mergeRunes(diffs []rdiff) []rdiff {
	diffs = coalesce(diffs)
	diffs, changed := shiftAcrossEqualities(diffs)
	if changed {
		return mergeRunes(diffs)
	}
	return diffs
}

// coalesce runs one pass of: merge adjacent Inserted runs and adjacent
// Deleted runs, factor a common prefix/suffix out of a Delete+Insert (or
// Insert+Delete) block into the surrounding Unchanged text, and merge
// adjacent Unchanged runs.
func coalesce(diffs []rdiff) []rdiff {
	diffs = append(diffs, rdiff{OpUnchanged, nil})

	out := make([]rdiff, 0, len(diffs))
	var textDelete, textInsert []rune

	flush := func() {
		if len(textDelete) == 0 && len(textInsert) == 0 {
			return
		}
		if len(textDelete) > 0 && len(textInsert) > 0 {
			if n := commonPrefixLen(textInsert, textDelete); n > 0 {
				if len(out) > 0 && out[len(out)-1].op == OpUnchanged {
					out[len(out)-1].text = append(out[len(out)-1].text, textInsert[:n]...)
				} else {
					out = append(out, rdiff{OpUnchanged, append([]rune(nil), textInsert[:n]...)})
				}
				textInsert = textInsert[n:]
				textDelete = textDelete[n:]
			}
			if n := commonSuffixLen(textInsert, textDelete); n > 0 {
				// The trailing common text belongs to whatever Unchanged
				// diff follows; stash it by pre-pending to the next flush's
				// output via a synthetic Unchanged entry appended now and
				// merged on the next equality below.
				tail := append([]rune(nil), textInsert[len(textInsert)-n:]...)
				textInsert = textInsert[:len(textInsert)-n]
				textDelete = textDelete[:len(textDelete)-n]
				if len(textDelete) > 0 {
					out = append(out, rdiff{OpDeleted, textDelete})
				}
				if len(textInsert) > 0 {
					out = append(out, rdiff{OpInserted, textInsert})
				}
				out = append(out, rdiff{OpUnchanged, tail})
				textDelete, textInsert = nil, nil
				return
			}
		}
		if len(textDelete) > 0 {
			out = append(out, rdiff{OpDeleted, textDelete})
		}
		if len(textInsert) > 0 {
			out = append(out, rdiff{OpInserted, textInsert})
		}
		textDelete, textInsert = nil, nil
	}

	for _, d := range diffs {
		switch d.op {
		case OpInserted:
			textInsert = append(textInsert, d.text...)
		case OpDeleted:
			textDelete = append(textDelete, d.text...)
		case OpUnchanged:
			flush()
			if len(d.text) == 0 {
				continue
			}
			if len(out) > 0 && out[len(out)-1].op == OpUnchanged {
				out[len(out)-1].text = append(out[len(out)-1].text, d.text...)
			} else {
				out = append(out, rdiff{OpUnchanged, d.text})
			}
		}
	}

	if len(out) > 0 && out[len(out)-1].op == OpUnchanged && len(out[len(out)-1].text) == 0 {
		out = out[:len(out)-1]
	}
	return out
}

// shiftAcrossEqualities looks for a single edit bracketed by two Unchanged
// runs and, if the edit's text has the earlier Unchanged run as a suffix or
// the later one as a prefix, shifts the edit across that run and removes it
// entirely — e.g. A<ins>BA</ins>C -> <ins>AB</ins>AC. Returns whether it
// made any change, since a change requires another coalesce+shift pass.
func shiftAcrossEqualities(diffs []rdiff) ([]rdiff, bool) {
	changed := false
	for i := 1; i < len(diffs)-1; i++ {
		if diffs[i-1].op != OpUnchanged || diffs[i+1].op != OpUnchanged {
			continue
		}
		prev, edit, next := diffs[i-1].text, diffs[i].text, diffs[i+1].text

		if hasSuffix(edit, prev) {
			diffs[i].text = append(append([]rune(nil), prev...), edit[:len(edit)-len(prev)]...)
			diffs[i+1].text = append(append([]rune(nil), prev...), next...)
			diffs = append(diffs[:i-1], diffs[i:]...)
			changed = true
			i--
			continue
		}
		if hasPrefix(edit, next) {
			diffs[i-1].text = append(append([]rune(nil), prev...), next...)
			diffs[i].text = append(append([]rune(nil), edit[len(next):]...), next...)
			diffs = append(diffs[:i+1], diffs[i+2:]...)
			changed = true
		}
	}
	return diffs, changed
}

func hasSuffix(s, suffix []rune) bool {
	if len(suffix) > len(s) {
		return false
	}
	return runesEqual(s[len(s)-len(suffix):], suffix)
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	return runesEqual(s[:len(prefix)], prefix)
}
