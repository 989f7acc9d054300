package diffengine

// halfMatchResult splits old and new around a shared substring at least
// half the length of the longer text.
type halfMatchResult struct {
	oldPrefix, oldSuffix []rune
	newPrefix, newSuffix []rune
	common               []rune
}

// halfMatch looks for a substring shared by old and new that is at least
// half the length of the longer of the two, seeded at the longer text's
// quarter and half points. This is a pure speed/quality tradeoff (it can
// produce a non-minimal diff) and is only attempted when Options.UseHalfMatch
// is set.
func halfMatch(old, new []rune) (halfMatchResult, bool) {
	var long, short []rune
	oldIsLong := len(old) >= len(new)
	if oldIsLong {
		long, short = old, new
	} else {
		long, short = new, old
	}

	if len(long) < 4 || len(short)*2 < len(long) {
		return halfMatchResult{}, false
	}

	hm1, ok1 := halfMatchSeed(long, short, (len(long)+3)/4)
	hm2, ok2 := halfMatchSeed(long, short, (len(long)+1)/2)

	var hm halfMatchResult
	switch {
	case !ok1 && !ok2:
		return halfMatchResult{}, false
	case !ok2:
		hm = hm1
	case !ok1:
		hm = hm2
	case len(hm1.common) > len(hm2.common):
		hm = hm1
	default:
		hm = hm2
	}

	if oldIsLong {
		return hm, true
	}
	return halfMatchResult{
		oldPrefix: hm.newPrefix,
		oldSuffix: hm.newSuffix,
		newPrefix: hm.oldPrefix,
		newSuffix: hm.oldSuffix,
		common:    hm.common,
	}, true
}

// halfMatchSeed looks for the best match of a quarter-length substring of
// long, seeded at index i, against short. Returns ok=false if no candidate
// covers at least half of long.
func halfMatchSeed(long, short []rune, i int) (halfMatchResult, bool) {
	seed := long[i : i+len(long)/4]

	var best halfMatchResult
	bestLen := 0
	j := runeIndex(short, seed)
	for j != -1 {
		prefixLen := commonPrefixLen(long[i:], short[j:])
		suffixLen := commonSuffixLen(long[:i], short[:j])
		if bestLen < suffixLen+prefixLen {
			bestLen = suffixLen + prefixLen
			best = halfMatchResult{
				oldPrefix: long[:i-suffixLen],
				oldSuffix: long[i+prefixLen:],
				newPrefix: short[:j-suffixLen],
				newSuffix: short[j+prefixLen:],
				common:    short[j-suffixLen : j+prefixLen],
			}
		}
		next := runeIndex(short[j+1:], seed)
		if next == -1 {
			break
		}
		j = j + 1 + next
	}

	if len(best.common)*2 >= len(long) {
		return best, true
	}
	return halfMatchResult{}, false
}
