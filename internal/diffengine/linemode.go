package diffengine

import "github.com/inklet/inklet/internal/tokenize"

// lineModeDiff diffs two large texts a line at a time and then rediffs each
// resulting replacement block character by character, trading a small
// amount of accuracy (it can produce a non-minimal diff) for a large
// constant-factor speedup on inputs too big to bisect directly.
func lineModeDiff(old, new []rune, opts Options) []rdiff {
	codesOld, codesNew, dict := tokenize.ByLines(string(old), string(new))

	diffs := diffRunes([]rune(codesOld), []rune(codesNew), false, opts)
	diffs = expandTokens(diffs, dict)

	diffs = fromPublic(CleanupSemantic(toPublic(diffs)))

	return rediffReplacementBlocks(diffs, opts)
}

func expandTokens(diffs []rdiff, dict []string) []rdiff {
	out := make([]rdiff, len(diffs))
	for i, d := range diffs {
		out[i] = rdiff{d.op, []rune(tokenize.Expand(string(d.text), dict))}
	}
	return out
}

// rediffReplacementBlocks walks a line-mode result looking for adjacent
// runs of Delete/Insert diffs (a "replacement block") and reruns the full
// character-level diff on just that block, since line-mode's line-at-a-time
// view can miss small intra-line edits.
func rediffReplacementBlocks(diffs []rdiff, opts Options) []rdiff {
	diffs = append(diffs, rdiff{OpUnchanged, nil})

	out := make([]rdiff, 0, len(diffs))
	var textDelete, textInsert []rune

	flush := func() {
		if len(textDelete) == 0 || len(textInsert) == 0 {
			if len(textDelete) > 0 {
				out = append(out, rdiff{OpDeleted, textDelete})
			}
			if len(textInsert) > 0 {
				out = append(out, rdiff{OpInserted, textInsert})
			}
		} else {
			out = append(out, diffRunes(textDelete, textInsert, false, opts)...)
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
			if len(d.text) > 0 {
				out = append(out, d)
			}
		}
	}
	return out
}

// wordDiff tokenizes old and new into whitespace/non-whitespace runs,
// diffs the resulting code strings, and expands the result back into real
// text. Unlike lineModeDiff this never rediffs at a finer granularity: the
// coarser word-level result is the point.
func wordDiff(old, new string, opts Options) []Diff {
	codesOld, codesNew, dict := tokenize.ByWords(old, new)
	diffs := diffRunes([]rune(codesOld), []rune(codesNew), false, opts)
	diffs = expandTokens(diffs, dict)
	return toPublic(diffs)
}
