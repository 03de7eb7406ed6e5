package argon2

import "math/bits"

// G is the Argon2 compression function. It takes two input blocks, XORs them
// to form R, applies the BLaMka-mixed BLAKE2b permutation P to R's eight rows
// and then to its eight columns to form Q, and returns Z = Q XOR R.
//
// Per spec.md §4.1 this is "the single BLAKE2 round without message
// injection" — R plays both the role of state and message, and the mixing
// primitive itself is the multiply-enhanced "BlaMka" variant of the BLAKE2b
// G function that the reference Argon2 construction uses, not the plain
// addition-based G from the BLAKE2b hash proper.
func G(x, y *Block) Block {
	return gWithSbox(x, y, nil)
}

// gWithSbox is G with the optional data-dependent S-box fold (§4.9)
// interleaved into the permutation; sb == nil reduces to plain G.
func gWithSbox(x, y *Block, sb *sbox) Block {
	r := xorBlocks(x, y)
	q := r
	permute(&q, sb)
	z := xorBlocks(&q, &r)
	return z
}

// permute applies the BLAKE2b round (column then diagonal mixing) first to
// the eight 16-word rows of b, then to the eight 16-word "columns" (pairs of
// adjacent words taken one pair per row, per the official Argon2 layout).
// When sbox is non-nil, the data-dependent S-box fold (§4.9) is interleaved
// into every G application.
func permute(b *Block, sbox *sbox) {
	for i := 0; i < 8; i++ {
		row := b[i*16 : i*16+16]
		blakeRound(row, sbox)
	}
	for i := 0; i < 8; i++ {
		col := [16]uint64{
			b[2*i+0], b[2*i+1],
			b[2*i+16], b[2*i+17],
			b[2*i+32], b[2*i+33],
			b[2*i+48], b[2*i+49],
			b[2*i+64], b[2*i+65],
			b[2*i+80], b[2*i+81],
			b[2*i+96], b[2*i+97],
			b[2*i+112], b[2*i+113],
		}
		blakeRound(col[:], sbox)
		b[2*i+0], b[2*i+1] = col[0], col[1]
		b[2*i+16], b[2*i+17] = col[2], col[3]
		b[2*i+32], b[2*i+33] = col[4], col[5]
		b[2*i+48], b[2*i+49] = col[6], col[7]
		b[2*i+64], b[2*i+65] = col[8], col[9]
		b[2*i+80], b[2*i+81] = col[10], col[11]
		b[2*i+96], b[2*i+97] = col[12], col[13]
		b[2*i+112], b[2*i+113] = col[14], col[15]
	}
}

// blakeRound applies the eight-G-call BLAKE2b round to a 16-word group:
// four column mixes followed by four diagonal mixes.
func blakeRound(v []uint64, sb *sbox) {
	blamkaG(v, 0, 4, 8, 12, sb)
	blamkaG(v, 1, 5, 9, 13, sb)
	blamkaG(v, 2, 6, 10, 14, sb)
	blamkaG(v, 3, 7, 11, 15, sb)

	blamkaG(v, 0, 5, 10, 15, sb)
	blamkaG(v, 1, 6, 11, 12, sb)
	blamkaG(v, 2, 7, 8, 13, sb)
	blamkaG(v, 3, 4, 9, 14, sb)
}

// blamkaG is the BlaMka-mixed G function: standard BLAKE2b G with the
// addition steps replaced by fBlaMka(x, y) = x + y + 2*lo32(x)*lo32(y),
// rotating by 32, 24, 16, 63 bits in the standard order (spec.md §4.1).
func blamkaG(v []uint64, a, b, c, d int, sb *sbox) {
	va, vb, vc, vd := v[a], v[b], v[c], v[d]

	va = fBlaMka(va, vb)
	vd = bits.RotateLeft64(vd^va, -32)
	vc = fBlaMka(vc, vd)
	vb = bits.RotateLeft64(vb^vc, -24)

	va = fBlaMka(va, vb)
	vd = bits.RotateLeft64(vd^va, -16)
	vc = fBlaMka(vc, vd)
	vb = bits.RotateLeft64(vb^vc, -63)

	if sb != nil {
		s1, s2 := sb.lookup(va, vd)
		va ^= s1
		vc ^= s2
	}

	v[a], v[b], v[c], v[d] = va, vb, vc, vd
}

// fBlaMka is the multiply-enhanced mixing primitive Argon2 substitutes for
// plain addition in the BLAKE2b G function. All arithmetic wraps mod 2^64.
func fBlaMka(x, y uint64) uint64 {
	const mask = 0xFFFFFFFF
	xy := (x & mask) * (y & mask)
	return x + y + 2*xy
}
