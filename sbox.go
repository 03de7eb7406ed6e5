package argon2

// sboxSize is the number of 64-bit entries in the S-box table (§4.9).
const sboxSize = 1024

// sboxMask is the low-order mask used to index the S-box; it addresses the
// low half of the table (sboxSize/2 - 1), each lookup drawing a pair of
// entries from the low and high half (spec.md §4.1: "the mask is 511
// (indexes the low half as a pair)").
const sboxMask = sboxSize/2 - 1

// sbox is the 1024-entry substitution table used by VariantDependentSBox. It
// is regenerated once per pass from the then-current first block of the
// first lane (spec.md §4.9).
type sbox struct {
	table [sboxSize]uint64
}

// lookup samples a pair of 64-bit entries keyed by (a XOR d) & sboxMask, one
// from the table's low half and one from its high half, to fold into the two
// designated words of a BlaMka mixing step.
func (s *sbox) lookup(a, d uint64) (uint64, uint64) {
	idx := (a ^ d) & sboxMask
	return s.table[idx], s.table[idx+sboxSize/2]
}

// generateSbox builds a fresh S-box from seed, the first block of the first
// lane as it stands when a pass begins (the initial seed block on pass 0,
// otherwise that block as the previous pass left it). It repeatedly applies the plain
// compression function G to expand the seed into sboxSize/WordsInBlock
// blocks worth of pseudo-random 64-bit words, matching GenerateSbox in the
// reference header (original_source/Source/Core/argon2-core.h).
func generateSbox(seed *Block) *sbox {
	sb := &sbox{}
	var zero Block
	cur := *seed

	n := sboxSize / WordsInBlock // 8 blocks of 128 words each == 1024 words
	for i := 0; i < n; i++ {
		cur = G(&cur, &zero)
		copy(sb.table[i*WordsInBlock:(i+1)*WordsInBlock], cur[:])
	}
	return sb
}
