package diffengine

// CleanupEfficiency dissolves Unchanged runs shorter than editCost when they
// sit between edits on both sides, trading a larger edit script for one
// with fewer total operations — cheaper to transmit or apply even though it
// touches more text. Unlike CleanupSemantic this is a pure efficiency
// tradeoff with no notion of "meaning".
func CleanupEfficiency(diffs []Diff, editCost int) []Diff {
	if editCost <= 0 {
		editCost = 4
	}
	rd := fromPublic(diffs)
	rd = dissolveShortEqualities(rd, editCost)
	return toPublic(rd)
}

func dissolveShortEqualities(diffs []rdiff, editCost int) []rdiff {
	changed := false
	var equalityIdx []int
	var lastEquality []rune
	preIns, preDel, postIns, postDel := false, false, false, false

	pointer := 0
	for pointer < len(diffs) {
		if diffs[pointer].op == OpUnchanged {
			if len(diffs[pointer].text) < editCost && (postIns || postDel) {
				equalityIdx = append(equalityIdx, pointer)
				preIns, preDel = postIns, postDel
				lastEquality = diffs[pointer].text
			} else {
				equalityIdx = nil
				lastEquality = nil
			}
			postIns, postDel = false, false
		} else {
			if diffs[pointer].op == OpDeleted {
				postDel = true
			} else {
				postIns = true
			}

			sumPre := 0
			for _, b := range [4]bool{preIns, preDel, postIns, postDel} {
				if b {
					sumPre++
				}
			}

			if len(lastEquality) > 0 &&
				((preIns && preDel && postIns && postDel) ||
					(len(lastEquality) < editCost/2 && sumPre == 3)) {

				at := equalityIdx[len(equalityIdx)-1]
				diffs = insertDiff(diffs, at, rdiff{OpDeleted, lastEquality})
				diffs[at+1] = rdiff{OpInserted, lastEquality}

				equalityIdx = equalityIdx[:len(equalityIdx)-1]
				lastEquality = nil

				if preIns && preDel {
					postIns, postDel = true, true
					equalityIdx = nil
				} else {
					if len(equalityIdx) > 0 {
						equalityIdx = equalityIdx[:len(equalityIdx)-1]
					}
					if len(equalityIdx) > 0 {
						pointer = equalityIdx[len(equalityIdx)-1]
					} else {
						pointer = -1
					}
					postIns, postDel = true, false
				}
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

// insertDiff inserts d into diffs at index at, shifting later elements
// right by one.
func insertDiff(diffs []rdiff, at int, d rdiff) []rdiff {
	diffs = append(diffs, rdiff{})
	copy(diffs[at+1:], diffs[at:])
	diffs[at] = d
	return diffs
}
