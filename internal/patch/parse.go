package patch

import (
	"strconv"

	"github.com/inklet/inklet/internal/codec"
	"github.com/inklet/inklet/internal/diffengine"
)

// ParseRevision parses the delta wire format produced by Revision.String.
// Empty tokens (from two consecutive tabs, or leading/trailing tabs) are
// ignored. It reports ok=false, never panics, on any malformed token: an
// unrecognized sigil, a non-positive or non-numeric length, or an
// undecodable compressed insertion payload.
func ParseRevision(s string) (Revision, bool) {
	if s == "" {
		return Revision{}, true
	}

	var rev Revision
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != '\t' {
			continue
		}
		token := s[start:i]
		start = i + 1
		if token == "" {
			continue
		}
		p, ok := parseToken(token)
		if !ok {
			return nil, false
		}
		rev = append(rev, p)
	}
	return rev, true
}

func parseToken(token string) (Patch, bool) {
	sigil, rest := token[0], token[1:]
	switch sigil {
	case '+':
		if _, ok := codec.Decompress(rest, wireScheme); !ok {
			return Patch{}, false
		}
		return Patch{Op: diffengine.OpInserted, Text: rest}, true
	case '-':
		n, ok := parsePositiveUint32(rest)
		if !ok {
			return Patch{}, false
		}
		return Patch{Op: diffengine.OpDeleted, Length: n}, true
	case '=':
		n, ok := parsePositiveUint32(rest)
		if !ok {
			return Patch{}, false
		}
		return Patch{Op: diffengine.OpUnchanged, Length: n}, true
	default:
		return Patch{}, false
	}
}

func parsePositiveUint32(s string) (uint32, bool) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint32(n), true
}
