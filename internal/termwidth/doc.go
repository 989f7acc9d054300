// Package termwidth measures the terminal column width of text, accounting
// for grapheme clusters (so combining marks and multi-rune emoji count
// once) and East Asian wide characters. It is display-only: the diff
// engine itself never segments by grapheme (spec.md's Non-goals exclude
// grapheme-aware diff granularity). No other package in this module
// imports it; the CLI's gnu output does not align gutters.
package termwidth
