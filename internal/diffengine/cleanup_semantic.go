package diffengine

// CleanupSemantic rewrites diffs to be more meaningful to a human reader, at
// the possible cost of being longer. It has three passes: eliminating
// Unchanged runs too small to be meaningful next to the edits around them,
// sliding single-edit boundaries toward whitespace/punctuation, and
// factoring out overlap between an adjacent Delete/Insert pair into an
// Unchanged run between them.
func CleanupSemantic(diffs []Diff) []Diff {
	rd := fromPublic(diffs)
	rd = eliminateSmallEqualities(rd)
	rd = shiftBoundaries(rd)
	rd = eliminateOverlaps(rd)
	return toPublic(rd)
}

// eliminateSmallEqualities removes an Unchanged run whose length does not
// exceed the edits on either side of it, since such a run is too short to
// be worth calling out as "unchanged" versus just extending the edit
// through it.
func eliminateSmallEqualities(diffs []rdiff) []rdiff {
	changed := false
	var equalityIdx []int
	var lastEquality []rune
	insLen1, delLen1, insLen2, delLen2 := 0, 0, 0, 0

	pointer := 0
	for pointer < len(diffs) {
		if diffs[pointer].op == OpUnchanged {
			equalityIdx = append(equalityIdx, pointer)
			insLen1, delLen1 = insLen2, delLen2
			insLen2, delLen2 = 0, 0
			lastEquality = diffs[pointer].text
		} else {
			if diffs[pointer].op == OpInserted {
				insLen2 += len(diffs[pointer].text)
			} else {
				delLen2 += len(diffs[pointer].text)
			}
			if len(lastEquality) > 0 &&
				len(lastEquality) <= max(insLen1, delLen1) &&
				len(lastEquality) <= max(insLen2, delLen2) {

				insertAt := equalityIdx[len(equalityIdx)-1]
				dup := rdiff{OpDeleted, lastEquality}
				tail := append([]rdiff{dup}, diffs[insertAt:]...)
				diffs = append(diffs[:insertAt], tail...)
				diffs[insertAt+1].op = OpInserted

				equalityIdx = equalityIdx[:len(equalityIdx)-1]
				if len(equalityIdx) > 0 {
					pointer = equalityIdx[len(equalityIdx)-1]
				} else {
					pointer = -1
				}

				insLen1, delLen1, insLen2, delLen2 = 0, 0, 0, 0
				lastEquality = nil
				changed = true
			}
		}
		pointer++
	}

	if changed {
		diffs = mergeRunes(diffs)
	}
	return diffs
}

// shiftBoundaries looks at every single edit bracketed by two Unchanged
// runs, slides it (character by character, wrapping through both
// neighboring runs) to the position with the best semanticScore, and
// commits the best position found.
func shiftBoundaries(diffs []rdiff) []rdiff {
	pointer := 1
	for pointer < len(diffs)-1 {
		if diffs[pointer-1].op != OpUnchanged || diffs[pointer+1].op != OpUnchanged {
			pointer++
			continue
		}

		equality1 := diffs[pointer-1].text
		edit := diffs[pointer].text
		equality2 := diffs[pointer+1].text

		if n := commonSuffixLen(equality1, edit); n > 0 {
			common := edit[len(edit)-n:]
			equality1 = equality1[:len(equality1)-n]
			edit = append(append([]rune(nil), common...), edit[:len(edit)-n]...)
			equality2 = append(append([]rune(nil), common...), equality2...)
		}

		bestEquality1, bestEdit, bestEquality2 := equality1, edit, equality2
		bestScore := semanticScore(equality1, edit) + semanticScore(edit, equality2)

		for len(edit) != 0 && len(equality2) != 0 && edit[0] == equality2[0] {
			equality1 = append(append([]rune(nil), equality1...), edit[0])
			edit = append(edit[1:], equality2[0])
			equality2 = equality2[1:]
			score := semanticScore(equality1, edit) + semanticScore(edit, equality2)
			if score >= bestScore {
				bestScore = score
				bestEquality1, bestEdit, bestEquality2 = equality1, edit, equality2
			}
		}

		if !runesEqual(diffs[pointer-1].text, bestEquality1) {
			if len(bestEquality1) != 0 {
				diffs[pointer-1].text = bestEquality1
			} else {
				diffs = append(diffs[:pointer-1], diffs[pointer:]...)
				pointer--
			}
			diffs[pointer].text = bestEdit
			if len(bestEquality2) != 0 {
				diffs[pointer+1].text = bestEquality2
			} else {
				diffs = append(diffs[:pointer+1], diffs[pointer+2:]...)
				pointer--
			}
		}
		pointer++
	}
	return diffs
}

// eliminateOverlaps finds Delete-then-Insert pairs where the tail of the
// deletion equals the head of the insertion (or vice versa) and factors
// that shared text out into an Unchanged run between them, provided the
// overlap is at least half the length of either side.
func eliminateOverlaps(diffs []rdiff) []rdiff {
	pointer := 1
	for pointer < len(diffs) {
		if diffs[pointer-1].op == OpDeleted && diffs[pointer].op == OpInserted {
			deletion := diffs[pointer-1].text
			insertion := diffs[pointer].text
			overlap1 := commonOverlapLen(deletion, insertion)
			overlap2 := commonOverlapLen(insertion, deletion)

			if overlap1 >= overlap2 {
				if 2*overlap1 >= len(deletion) || 2*overlap1 >= len(insertion) {
					mid := rdiff{OpUnchanged, insertion[:overlap1]}
					diffs = append(diffs[:pointer], append([]rdiff{mid}, diffs[pointer:]...)...)
					diffs[pointer-1].text = deletion[:len(deletion)-overlap1]
					diffs[pointer+1].text = insertion[overlap1:]
					pointer++
				}
			} else if 2*overlap2 >= len(deletion) || 2*overlap2 >= len(insertion) {
				mid := rdiff{OpUnchanged, deletion[:overlap2]}
				diffs = append(diffs[:pointer], append([]rdiff{mid}, diffs[pointer:]...)...)
				diffs[pointer-1] = rdiff{OpInserted, insertion[:len(insertion)-overlap2]}
				diffs[pointer+1] = rdiff{OpDeleted, deletion[overlap2:]}
				pointer++
			}
		}
		pointer++
	}
	return diffs
}
