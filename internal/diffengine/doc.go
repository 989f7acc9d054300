// Package diffengine computes a minimal-quality edit script between two
// strings using the Myers O((N+M)D) bidirectional algorithm with bisection,
// common-affix peeling, substring/half-match shortcuts, and a
// deadline-bounded fall-through.
//
// Representation: Diff returns an ordered []Diff. Each Diff is a single
// contiguous edit: OpUnchanged and OpDeleted draw Text from the old string,
// OpInserted draws Text from the new string. The engine never emits two
// adjacent diffs with the same Op, and never emits an empty Text.
//
// Getting a diff:
//
//	diffs := diffengine.Diff("hello", "hullo", diffengine.DefaultOptions())
//	new := diffengine.ApplyNew(diffs) // "hullo"
//	old := diffengine.ApplyOld(diffs) // "hello"
//
// Granularity: diffing operates on runes, not bytes or grapheme clusters —
// this keeps every emitted Text a valid UTF-8 string while staying at
// "code unit" granularity (Go's natural string element is the rune, not the
// UTF-16 code unit the original diff-match-patch family assumes).
//
// Cleanup: after the raw edit script is computed, it is normalized (adjacent
// same-op runs merged, common text factored out of edit pairs), and
// (when the script has more than two diffs) CleanupSemantic and
// CleanupEfficiency rewrite it into a more human- or transport-friendly
// form without changing what it reconstructs.
package diffengine
