package argon2

// addressGenerator produces the stream of pseudo-random 64-bit values used
// for data-independent addressing within one segment (spec.md §4.3). It
// builds an input block whose first words encode (pass, lane, slice, m, t,
// variant, counter), applies G twice (G(0, G(0, Z))) to obtain 128 addresses
// per counter value, and regenerates whenever the 128 addresses in the
// current block are exhausted.
type addressGenerator struct {
	input   Block
	address Block
	counter uint64
	used    int // how many of address's 128 words have been consumed
}

// newAddressGenerator prepares the generator for one (pass, lane, slice).
func newAddressGenerator(inst *instance, pos *position) *addressGenerator {
	ag := &addressGenerator{}
	ag.input[0] = uint64(pos.pass)
	ag.input[1] = uint64(pos.lane)
	ag.input[2] = uint64(pos.slice)
	ag.input[3] = uint64(inst.memoryBlocks)
	ag.input[4] = uint64(inst.passes)
	ag.input[5] = uint64(inst.variant)
	// input[6] is the counter, incremented before each regeneration.
	ag.used = WordsInBlock // force generation on first call
	return ag
}

// next returns the next pseudo-random 64-bit address value.
func (ag *addressGenerator) next() uint64 {
	if ag.used >= WordsInBlock {
		ag.regenerate()
	}
	v := ag.address[ag.used]
	ag.used++
	return v
}

func (ag *addressGenerator) regenerate() {
	var zero Block
	ag.counter++
	ag.input[6] = ag.counter
	mid := G(&zero, &ag.input)
	ag.address = G(&zero, &mid)
	ag.used = 0
}
