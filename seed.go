package argon2

// variantTag maps a Variant to the 32-bit tag used in the pre-hash input
// (spec.md §6 "Variant tag encoding").
func variantTag(v Variant) uint32 {
	return uint32(v)
}

// initialize builds the working memory for p: it computes the pre-hash H0,
// optionally clears the password, and expands H0 into the first two blocks
// of every lane (spec.md §4.6). It mirrors Initialize/InitialHash/
// FillFirstBlocks in original_source/Source/Core/argon2-core.h.
func initialize(p *Params) *instance {
	inst := newInstance(p)

	h0 := preHashInput(p)

	if p.ClearPassword {
		for i := range p.Password {
			p.Password[i] = 0
		}
	}

	fillFirstBlocks(inst, h0)

	// h0 held secret-derived material; clear it before it goes out of
	// scope (spec.md §5 "Memory safety").
	for i := range h0 {
		h0[i] = 0
	}

	return inst
}

// preHashInput assembles and hashes the pre-hash digest input (spec.md
// §4.6 step 1):
//
//	H0 = H(64, LE32(p), LE32(tag_len), LE32(m), LE32(t), LE32(version),
//	        LE32(variant_tag), len_prefixed(password), len_prefixed(salt),
//	        len_prefixed(secret), len_prefixed(associated_data))
func preHashInput(p *Params) [hashLen]byte {
	buf := make([]byte, 0, 6*4+4*4+len(p.Password)+len(p.Salt)+len(p.Secret)+len(p.AssociatedData))
	buf = appendUint32LE(buf, p.Parallelism)
	buf = appendUint32LE(buf, p.TagLength)
	buf = appendUint32LE(buf, p.effectiveMemoryCost())
	buf = appendUint32LE(buf, p.Passes)
	buf = appendUint32LE(buf, uint32(p.Version))
	buf = appendUint32LE(buf, variantTag(p.Variant))
	buf = appendLenPrefixed(buf, p.Password)
	buf = appendLenPrefixed(buf, p.Salt)
	buf = appendLenPrefixed(buf, p.Secret)
	buf = appendLenPrefixed(buf, p.AssociatedData)
	return preHash(buf)
}

// fillFirstBlocks expands h0 into the first two blocks of every lane
// (spec.md §4.6 step 3): for each lane and each slot k in {0, 1}, the
// 72-byte seed h0 || LE32(k) || LE32(lane) is expanded via hashLong to 1024
// bytes and stored at (lane, k). (spec.md §4.6 step 3 describes this as an
// "80-byte seed"; 64 + 4 + 4 is 72, and original_source/Source/Core's
// FillFirstBlocks uses a 72-byte buffer, so 72 is treated as correct here.)
func fillFirstBlocks(inst *instance, h0 [hashLen]byte) {
	var seed [hashLen + 8]byte
	copy(seed[:hashLen], h0[:])

	var expanded [BlockSize]byte
	for lane := uint32(0); lane < inst.lanes; lane++ {
		for k := uint32(0); k < 2; k++ {
			binaryPutUint32LE(seed[hashLen:hashLen+4], k)
			binaryPutUint32LE(seed[hashLen+4:hashLen+8], lane)

			hashLong(expanded[:], seed[:])
			inst.memory[inst.blockAt(lane, k)] = loadBlockLE(expanded[:])
		}
	}
}

func binaryPutUint32LE(dst []byte, v uint32) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}
