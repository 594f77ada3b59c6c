package lzindex

import (
	"encoding/binary"
	"math/bits"
)

const wordSize = 8

// MatchLength returns the length of the common run starting at source and
// matchedPos, bounded by maxLen and by buffer length. skip bytes at the
// start are already known to match and are not re-compared.
//
// Long runs are compared a word at a time (XOR + trailing-zero-count),
// mirroring the chunked comparison the format's reference implementation
// uses in place of a byte-by-byte loop; Go does not vectorize this the way
// an explicit SIMD routine would, but the access pattern is the same.
func MatchLength(buf []byte, source, matchedPos, maxLen, skip int) int {
	s := source + skip
	m := matchedPos + skip
	limit := maxLen - skip
	if limit <= 0 {
		return skip
	}

	n := 0
	for n+wordSize <= limit && s+n+wordSize <= len(buf) && m+n+wordSize <= len(buf) {
		sw := binary.LittleEndian.Uint64(buf[s+n : s+n+wordSize])
		mw := binary.LittleEndian.Uint64(buf[m+n : m+n+wordSize])
		if xor := sw ^ mw; xor != 0 {
			return skip + n + bits.TrailingZeros64(xor)/8
		}
		n += wordSize
	}

	for n < limit && s+n < len(buf) && m+n < len(buf) && buf[s+n] == buf[m+n] {
		n++
	}
	return skip + n
}

// byteOffsetMatches reports whether the bytes at source+skip and
// matchedPos+skip are equal, treating an out-of-range source as a mismatch.
func byteOffsetMatches(buf []byte, source, matchedPos, skip int) bool {
	si := source + skip
	if si >= len(buf) {
		return false
	}
	mi := matchedPos + skip
	return buf[si] == buf[mi]
}

// MatchLengthOr measures the match at matchedPos up to maxLen. If that
// exactly equals orMatchLen, it additionally credits one more byte unless
// orMatchPos's byte at that offset also matches — letting the caller
// prefer a candidate already known to extend orMatchLen bytes.
func MatchLengthOr(buf []byte, source, matchedPos, orMatchPos, orMatchLen, skip, maxLen int) int {
	length := MatchLength(buf, source, matchedPos, maxLen, skip)
	if length == orMatchLen && !byteOffsetMatches(buf, orMatchPos, matchedPos, length) {
		return length + 1
	}
	return length
}

// CommonPrefixLen returns the length of the common prefix of a and b using
// a naive byte comparison.
func CommonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
