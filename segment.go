package argon2

// fillSegment fills segmentLength consecutive blocks of one (lane, slice),
// starting at position.index (spec.md §4.4). The caller sets index to 2 for
// (pass 0, slice 0) to skip the seed blocks, and 0 otherwise.
func fillSegment(inst *instance, pos position) {
	dataIndependent := usesDataIndependentAddressing(inst.variant, pos.pass, pos.slice)

	var ag *addressGenerator
	if dataIndependent {
		ag = newAddressGenerator(inst, &pos)
		// Addresses are indexed by in-segment position, so a segment that
		// starts past index 0 (pass 0, slice 0) skips the addresses of the
		// seed positions before it.
		for i := uint32(0); i < pos.index; i++ {
			ag.next()
		}
	}

	for index := pos.index; index < inst.segmentLength; index++ {
		cur := inst.blockAt(pos.lane, pos.slice*inst.segmentLength+index)

		prev := cur - 1
		if index == 0 && pos.slice == 0 {
			prev = inst.blockAt(pos.lane, inst.laneLength-1)
		}

		var rand uint64
		if dataIndependent {
			rand = ag.next()
		} else {
			rand = inst.memory[prev][0]
		}

		p := pos
		p.index = index
		ref := indexAlpha(inst, &p, rand)

		var fresh Block
		if inst.variant == VariantDependentSBox {
			fresh = gWithSbox(&inst.memory[prev], &inst.memory[ref], inst.sbox)
		} else {
			fresh = G(&inst.memory[prev], &inst.memory[ref])
		}

		switch {
		case pos.pass == 0:
			inst.memory[cur] = fresh
		case inst.version >= Version13:
			inst.memory[cur].xorWith(&fresh)
		default:
			inst.memory[cur] = fresh
		}
	}
}

// usesDataIndependentAddressing reports whether the segment at (pass, slice)
// should use the data-independent address generator rather than reading J
// from the previous block, per spec.md §4.3.
func usesDataIndependentAddressing(v Variant, pass, slice uint32) bool {
	switch v {
	case VariantIndependent:
		return true
	case VariantHybrid:
		// First pass uses data-independent addressing; later passes use
		// data-dependent addressing.
		return pass == 0
	default:
		return false
	}
}
