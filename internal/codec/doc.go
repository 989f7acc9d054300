// Package codec compresses and decompresses the insertion payload carried
// by a wire-format revision. Two interchangeable schemes are supported (the
// encoded text does not record which one produced it): SchemeDeflate (raw DEFLATE, base64-encoded) and SchemeURL
// (percent-encoding restricted to an unreserved whitelist). Both are
// bijective on well-formed input: Decompress(Compress(s)) == s always
// holds, for either scheme.
package codec
