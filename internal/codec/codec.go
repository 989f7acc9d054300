package codec

import (
	"bytes"
	"encoding/base64"
	"io"
	"net/url"
	"strings"

	"github.com/klauspost/compress/flate"
)

// Scheme selects a compression scheme for Compress/Decompress.
type Scheme int

const (
	// SchemeDeflate compresses with raw DEFLATE and base64-encodes the
	// result. Smaller output than SchemeURL for most text, but opaque.
	SchemeDeflate Scheme = iota
	// SchemeURL percent-encodes bytes that aren't in a small unreserved
	// whitelist. Larger output, but the result stays human-legible for
	// mostly-ASCII text, matching the historical diff-match-patch delta
	// format.
	SchemeURL
)

// urlSafeWhitelist are bytes url.QueryEscape escapes that this scheme
// leaves literal, matching the delta format's convention of keeping
// URL-structural punctuation readable in the wire text.
const urlSafeWhitelist = "!*'();/?:@&=+$,# ~"

// Compress encodes s under scheme. The result is always safe to embed in a
// tab-and-newline-delimited revision line: SchemeDeflate output is base64
// (no tabs/newlines), and SchemeURL escapes both.
func Compress(s string, scheme Scheme) string {
	switch scheme {
	case SchemeURL:
		return compressURL(s)
	default:
		return compressDeflate(s)
	}
}

// Decompress reverses Compress. It reports ok=false, never panics, on
// malformed input.
func Decompress(s string, scheme Scheme) (string, bool) {
	switch scheme {
	case SchemeURL:
		return decompressURL(s)
	default:
		return decompressDeflate(s)
	}
}

func compressDeflate(s string) string {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestSpeed)
	if err != nil {
		// flate.BestSpeed is a valid level; NewWriter only errors on a bad
		// level constant, which is a programmer error, not a runtime one.
		panic(err)
	}
	if _, err := w.Write([]byte(s)); err != nil {
		panic(err)
	}
	if err := w.Close(); err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decompressDeflate(s string) (string, bool) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", false
	}
	r := flate.NewReader(bytes.NewReader(raw))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return "", false
	}
	return string(out), true
}

func compressURL(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	for _, c := range []byte(urlSafeWhitelist) {
		encoded := "%" + strings.ToUpper(hexByte(c))
		escaped = strings.ReplaceAll(escaped, encoded, string(c))
	}
	return escaped
}

func decompressURL(s string) (string, bool) {
	// PathUnescape, unlike QueryUnescape, never reinterprets a literal '+'
	// as an encoded space: compressURL always escapes real spaces as
	// "%20" and leaves whitelisted '+' literal, so unescaping must not
	// apply application/x-www-form-urlencoded's '+'-is-space rule.
	unescaped, err := url.PathUnescape(s)
	if err != nil {
		return "", false
	}
	return unescaped, true
}

func hexByte(b byte) string {
	const hex = "0123456789ABCDEF"
	return string([]byte{hex[b>>4], hex[b&0xF]})
}
