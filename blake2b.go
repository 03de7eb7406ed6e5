package argon2

import (
	"encoding/binary"

	"github.com/dchest/blake2b"
)

// hashLen is the native output length of one BLAKE2b call
// (spec.md §6: "must accept arbitrary byte strings and produce at least 64
// bytes per call").
const hashLen = 64

// preHash computes the 64-byte pre-hash H0 (spec.md §4.6 step 1): a single
// plain BLAKE2b-512 digest of the concatenated parameter and input bytes,
// with no extra framing. This is the one call to the external hash that is
// NOT routed through the length-prefixed long-output construction below —
// spec.md §6 describes H generically as "a variable-output-length BLAKE2b
// construction", but the published Argon2 reference vectors (spec.md §8)
// are only reproduced if H0 itself is an unframed blake2b-512 call, as in
// the teacher's argon2.go InitialHash step.
func preHash(parts ...[]byte) [hashLen]byte {
	hh := blake2b.New512()
	for _, p := range parts {
		hh.Write(p)
	}
	var out [hashLen]byte
	hh.Sum(out[:0])
	return out
}

// hashLong writes len(out) bytes of the standard Argon2 long-output hash
// construction into out: a length-prefixed BLAKE2b digest (sized to len(out)
// directly when len(out) <= 64, or 64 bytes otherwise), then — for outputs
// longer than 64 bytes — repeated rehashing of the previous 64-byte digest,
// taking the first 32 bytes of each intermediate step and the full final
// digest for the last chunk. Used for seed-block expansion (§4.6 step 3) and
// final tag extraction (§4.7).
//
// original_source's headers declare InitialHash/FillFirstBlocks/Finalize but
// not this helper's byte layout; it follows the teacher's blake2b_long
// (argon2.go) with one correction: the short/long branch boundary is
// len(out) <= 64, not len(out) < 64 as the teacher has it — the official
// construction always prepends the length prefix and takes the single-call
// path through outlen == 64 inclusive, and the teacher's off-by-one would
// diverge from the reference vectors whenever a caller requests exactly a
// 64-byte tag.
func hashLong(out []byte, parts ...[]byte) {
	if len(out) <= hashLen {
		hh, err := blake2b.New(&blake2b.Config{Size: uint8(len(out))})
		if err != nil {
			panic(err) // unreachable: len(out) in [1,64] is always a valid Size
		}
		writeUint32LE(hh, uint32(len(out)))
		for _, p := range parts {
			hh.Write(p)
		}
		hh.Sum(out[:0])
		return
	}

	hh := blake2b.New512()
	writeUint32LE(hh, uint32(len(out)))
	for _, p := range parts {
		hh.Write(p)
	}
	var buf [hashLen]byte
	hh.Sum(buf[:0])
	copy(out, buf[:32])

	n := 32
	for ; n < len(out)-hashLen; n += 32 {
		hh.Reset()
		hh.Write(buf[:])
		hh.Sum(buf[:0])
		copy(out[n:], buf[:32])
	}

	// The final chunk's length is whatever remains, which is not in
	// general 64 bytes: BLAKE2b's output length is part of its parameter
	// block and changes the digest itself, not just where it gets
	// truncated, so the last call must be freshly sized rather than reusing
	// the 64-byte hasher above and truncating its digest.
	remaining := len(out) - n
	last, err := blake2b.New(&blake2b.Config{Size: uint8(remaining)})
	if err != nil {
		panic(err) // unreachable: remaining is in [1,64] whenever this branch runs
	}
	last.Write(buf[:])
	last.Sum(out[n:n])
}

// writeUint32LE writes v as 4 little-endian bytes to w.
func writeUint32LE(w interface{ Write([]byte) (int, error) }, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.Write(b[:])
}

// appendUint32LE appends v as 4 little-endian bytes to b.
func appendUint32LE(b []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(b, tmp[:]...)
}

// appendLenPrefixed appends encode_u32_le(len(s)) || s to b, the
// len_prefixed(s) encoding used throughout the pre-hash input (spec.md §4.6).
func appendLenPrefixed(b, s []byte) []byte {
	b = appendUint32LE(b, uint32(len(s)))
	return append(b, s...)
}
