package argon2

import "testing"

func TestPhiStaysWithinLane(t *testing.T) {
	const laneLength = 64
	for _, refLane := range []uint32{0, 1, 3} {
		for _, rand := range []uint64{0, 1, 0xFFFFFFFF, 0xDEADBEEF12345678, ^uint64(0)} {
			for _, areaSize := range []uint64{1, 5, 16, 63} {
				for _, start := range []uint64{0, 16, 48} {
					idx := phi(rand, areaSize, start, refLane, laneLength)
					lo := refLane * laneLength
					hi := lo + laneLength
					if idx < lo || idx >= hi {
						t.Fatalf("phi(%#x,%d,%d,%d,%d) = %d, outside lane [%d,%d)",
							rand, areaSize, start, refLane, laneLength, idx, lo, hi)
					}
				}
			}
		}
	}
}

func TestPhiIsDeterministic(t *testing.T) {
	a := phi(0x123456789, 10, 3, 2, 32)
	b := phi(0x123456789, 10, 3, 2, 32)
	if a != b {
		t.Fatalf("phi is not deterministic")
	}
}

func TestIndexAlphaFirstWriteReferencesOwnLane(t *testing.T) {
	p := &Params{Passes: 2, MemoryCost: 32, Parallelism: 4, TagLength: 32, Variant: VariantDependent, Version: Version13}
	inst := newInstance(p)
	defer inst.release()

	pos := &position{pass: 0, lane: 2, slice: 0, index: 0}
	ref := indexAlpha(inst, pos, 0xFFFFFFFFFFFFFFFF)

	lo := pos.lane * inst.laneLength
	hi := lo + inst.laneLength
	if ref < lo || ref >= hi {
		t.Fatalf("the very first reference block must come from the writer's own lane; got %d, want in [%d,%d)", ref, lo, hi)
	}
}

func TestIndexAlphaStaysWithinMemory(t *testing.T) {
	p := &Params{Passes: 3, MemoryCost: 64, Parallelism: 4, TagLength: 32, Variant: VariantDependent, Version: Version13}
	inst := newInstance(p)
	defer inst.release()

	for pass := uint32(0); pass < inst.passes; pass++ {
		for slice := uint32(0); slice < syncPoints; slice++ {
			for lane := uint32(0); lane < inst.lanes; lane++ {
				startIndex := uint32(0)
				if pass == 0 && slice == 0 {
					startIndex = 2
				}
				for index := startIndex; index < inst.segmentLength; index++ {
					pos := &position{pass: pass, lane: lane, slice: slice, index: index}
					for _, rand := range []uint64{0, 1, 0x8000000080000000, ^uint64(0)} {
						ref := indexAlpha(inst, pos, rand)
						if ref >= inst.memoryBlocks {
							t.Fatalf("indexAlpha(pass=%d,lane=%d,slice=%d,index=%d,rand=%#x) = %d, out of range [0,%d)",
								pass, lane, slice, index, rand, ref, inst.memoryBlocks)
						}
					}
				}
			}
		}
	}
}
