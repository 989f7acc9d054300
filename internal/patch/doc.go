// Package patch implements the compact transport form of a diff (Patch),
// an ordered sequence of patches describing one text's transformation into
// another (Revision), and a strict, non-fuzzy applier: applying a Revision
// requires the exact original text at exactly the expected positions, with
// no context search or offset recovery.
package patch
