// Package tokenize maps a pair of texts to a pair of "token strings" plus a
// shared dictionary, for coarse-grained (line- or word-granularity) diffing.
//
// Each unique token seen while tokenizing a and b is assigned a single rune
// (a "code unit") in the returned code strings; the dictionary maps codes
// back to their original token text. Rune 0 is reserved as an empty slot and
// is never assigned to a real token. a is tokenized first, capped at 40,000
// unique tokens; when the cap is hit, the untokenized remainder of a is
// folded into one final "tail" token. b is tokenized second (sharing the
// same dictionary), capped at 65,535 total dictionary entries.
//
// This exists so a character-wise diff engine can be reused for line- or
// word-granularity diffing: diff the two code strings as if they were
// ordinary text, then Expand the result back into real token text.
package tokenize
