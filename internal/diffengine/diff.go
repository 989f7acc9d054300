package diffengine

// Diff computes a minimal-quality edit script transforming old into new,
// operating at rune granularity. See the package doc for the shape of the
// result and the guarantees the engine makes about it.
func Diff(old, new string, opts Options) []Diff {
	diffs := toPublic(diffRunes([]rune(old), []rune(new), true, opts))
	return cleanup(diffs, opts)
}

// WordDiff computes a word-granularity edit script: old and new are first
// tokenized into whitespace/non-whitespace runs (see internal/tokenize),
// diffed as token streams, and the result expanded back into real text, which
// then goes through the same cleanup passes as Diff. The token-level diff
// only splits at word and whitespace boundaries, giving a coarser (larger)
// edit script than Diff would produce for the same inputs. The cleanup passes
// work on characters, so a returned Diff can still split a word (for example
// when the tail of a deleted word is the head of the inserted one).
func WordDiff(old, new string, opts Options) []Diff {
	return cleanup(wordDiff(old, new, opts), opts)
}

// cleanup runs the semantic and efficiency cleanup passes on a raw edit
// script, the final step of the diff pipeline. It is skipped for scripts of
// two diffs or fewer.
func cleanup(diffs []Diff, opts Options) []Diff {
	if len(diffs) <= 2 {
		return diffs
	}
	diffs = CleanupSemantic(diffs)
	diffs = CleanupEfficiency(diffs, opts.EditCost)
	return diffs
}

// diffRunes is the shared recursive core: prefix/suffix peeling around a
// call to diffCompute, which chooses among the available shortcuts before
// falling through to full bisection. checklines gates the line-mode
// reduction, which is only useful (and only correct to attempt) at the
// top level and after a half-match split — never inside line-mode's own
// character-level rediff pass, which sets it to false to avoid recursing
// into line-mode forever.
func diffRunes(old, new []rune, checklines bool, opts Options) []rdiff {
	if len(old) == 0 && len(new) == 0 {
		return nil
	}
	if runesEqual(old, new) {
		if len(old) == 0 {
			return nil
		}
		return []rdiff{{OpUnchanged, old}}
	}

	prefixLen := commonPrefixLen(old, new)
	prefix := old[:prefixLen]
	old = old[prefixLen:]
	new = new[prefixLen:]

	suffixLen := commonSuffixLen(old, new)
	suffix := old[len(old)-suffixLen:]
	old = old[:len(old)-suffixLen]
	new = new[:len(new)-suffixLen]

	diffs := diffCompute(old, new, checklines, opts)

	if len(prefix) > 0 {
		diffs = append([]rdiff{{OpUnchanged, prefix}}, diffs...)
	}
	if len(suffix) > 0 {
		diffs = append(diffs, rdiff{OpUnchanged, suffix})
	}

	return mergeRunes(diffs)
}

// diffCompute picks the cheapest applicable strategy for a pair of texts
// that share no common prefix or suffix: the trivial insert/delete-only
// cases, the substring shortcut, the single-rune shortcut, the half-match
// divide-and-conquer split, line-mode reduction (for large inputs), and
// finally full Myers bisection.
func diffCompute(old, new []rune, checklines bool, opts Options) []rdiff {
	if len(old) == 0 {
		if len(new) == 0 {
			return nil
		}
		return []rdiff{{OpInserted, new}}
	}
	if len(new) == 0 {
		return []rdiff{{OpDeleted, old}}
	}

	longText, shortText := old, new
	longIsOld := true
	if len(new) > len(old) {
		longText, shortText = new, old
		longIsOld = false
	}

	if i := runeIndex(longText, shortText); i != -1 {
		op := OpInserted
		if longIsOld {
			op = OpDeleted
		}
		diffs := []rdiff{
			{op, longText[:i]},
			{OpUnchanged, shortText},
			{op, longText[i+len(shortText):]},
		}
		return diffs
	}

	if len(shortText) == 1 {
		return []rdiff{
			{OpDeleted, old},
			{OpInserted, new},
		}
	}

	if opts.UseHalfMatch {
		if hm, ok := halfMatch(old, new); ok {
			diffsA := diffRunes(hm.oldPrefix, hm.newPrefix, checklines, opts)
			diffsB := diffRunes(hm.oldSuffix, hm.newSuffix, checklines, opts)
			out := make([]rdiff, 0, len(diffsA)+len(diffsB)+1)
			out = append(out, diffsA...)
			out = append(out, rdiff{OpUnchanged, hm.common})
			out = append(out, diffsB...)
			return out
		}
	}

	if checklines && len(old) > opts.lineModeThreshold() && len(new) > opts.lineModeThreshold() {
		return lineModeDiff(old, new, opts)
	}

	return bisect(old, new, opts)
}
