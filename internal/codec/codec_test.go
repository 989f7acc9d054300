package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressDecompress_Deflate_RoundTrips(t *testing.T) {
	cases := []string{
		"",
		"hello world",
		"unicode: café 日本語 🎉",
		"line one\nline two\ttabbed\n",
	}
	for _, s := range cases {
		compressed := Compress(s, SchemeDeflate)
		got, ok := Decompress(compressed, SchemeDeflate)
		require.True(t, ok)
		require.Equal(t, s, got)
	}
}

func TestCompressDecompress_URL_RoundTrips(t *testing.T) {
	cases := []string{
		"",
		"hello world",
		"unicode: café 日本語 🎉",
		"tab\tand\nnewline",
		"!*'();/?:@&=+$,# ~ literal punctuation",
	}
	for _, s := range cases {
		compressed := Compress(s, SchemeURL)
		got, ok := Decompress(compressed, SchemeURL)
		require.True(t, ok)
		require.Equal(t, s, got)
	}
}

func TestCompress_URL_KeepsWhitelistLiteral(t *testing.T) {
	compressed := Compress("a b", SchemeURL)
	require.Equal(t, "a b", compressed)
}

func TestCompress_URL_EscapesReservedPunctuation(t *testing.T) {
	compressed := Compress("100%", SchemeURL)
	require.Equal(t, "100%25", compressed)
}

func TestCompressDecompress_URL_LiteralPlusRoundTrips(t *testing.T) {
	// A literal '+' is whitelisted and left unescaped by compressURL; the
	// decoder must not reinterpret it as an encoded space the way
	// application/x-www-form-urlencoded unescaping would.
	compressed := Compress("a+b", SchemeURL)
	require.Equal(t, "a+b", compressed)
	got, ok := Decompress(compressed, SchemeURL)
	require.True(t, ok)
	require.Equal(t, "a+b", got)
}

func TestDecompress_Deflate_MalformedInputReportsFalse(t *testing.T) {
	_, ok := Decompress("not valid base64!!!", SchemeDeflate)
	require.False(t, ok)
}

func TestDecompress_URL_MalformedInputReportsFalse(t *testing.T) {
	_, ok := Decompress("%zz", SchemeURL)
	require.False(t, ok)
}
