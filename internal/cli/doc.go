// Package cli implements inklet's command-line surface: diff, worddiff,
// and patch make/apply/batch subcommands over the internal/diffengine,
// internal/patch, and internal/format libraries. It is pure plumbing —
// flag parsing, file I/O, and output formatting — with no diffing or
// patching logic of its own.
package cli
