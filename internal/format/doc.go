// Package format renders a diff or revision as one of four textual forms:
// delta (the canonical wire format), gnu (unified-diff-style line
// prefixes), md (Markdown strikethrough/insertion markup), and html (CSS
// span classes).
package format
