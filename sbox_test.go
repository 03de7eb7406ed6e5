package argon2

import "testing"

func TestGenerateSboxIsDeterministic(t *testing.T) {
	var seed Block
	seed.fill(0x07)

	a := generateSbox(&seed)
	b := generateSbox(&seed)
	if a.table != b.table {
		t.Fatalf("generateSbox is not deterministic for a fixed seed")
	}
}

func TestGenerateSboxVariesWithSeed(t *testing.T) {
	var seed1, seed2 Block
	seed1.fill(0x07)
	seed2.fill(0x08)

	a := generateSbox(&seed1)
	b := generateSbox(&seed2)
	if a.table == b.table {
		t.Fatalf("generateSbox produced identical tables for different seeds")
	}
}

func TestSboxLookupStaysInBounds(t *testing.T) {
	var seed Block
	seed.fill(0x09)
	sb := generateSbox(&seed)

	for _, pair := range [][2]uint64{
		{0, 0},
		{^uint64(0), 0},
		{0, ^uint64(0)},
		{^uint64(0), ^uint64(0)},
		{0x123456789abcdef0, 0xfedcba9876543210},
	} {
		lo, hi := sb.lookup(pair[0], pair[1])
		idx := (pair[0] ^ pair[1]) & sboxMask
		if lo != sb.table[idx] || hi != sb.table[idx+sboxSize/2] {
			t.Fatalf("lookup(%#x,%#x) returned entries outside the expected pair", pair[0], pair[1])
		}
	}
}
