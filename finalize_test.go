package argon2

import "testing"

func TestFinalizeProducesRequestedLength(t *testing.T) {
	for _, n := range []uint32{4, 16, 32, 64, 100} {
		p := smallParams()
		p.TagLength = n
		inst := initialize(p)
		if err := fillMemory(inst, 0, nil); err != nil {
			t.Fatalf("fillMemory: %v", err)
		}
		tag := finalize(inst, n)
		inst.release()
		if uint32(len(tag)) != n {
			t.Fatalf("finalize tag length = %d, want %d", len(tag), n)
		}
	}
}

func TestFinalizeIsDeterministic(t *testing.T) {
	p1 := smallParams()
	inst1 := initialize(p1)
	_ = fillMemory(inst1, 0, nil)
	tag1 := finalize(inst1, p1.TagLength)
	inst1.release()

	p2 := smallParams()
	inst2 := initialize(p2)
	_ = fillMemory(inst2, 0, nil)
	tag2 := finalize(inst2, p2.TagLength)
	inst2.release()

	if string(tag1) != string(tag2) {
		t.Fatalf("finalize is not deterministic for identical inputs")
	}
}

func TestFinalizeXorsEveryLanesLastBlock(t *testing.T) {
	p := smallParams()
	inst := initialize(p)
	_ = fillMemory(inst, 0, nil)

	var want Block
	for lane := uint32(0); lane < inst.lanes; lane++ {
		last := inst.memory[inst.blockAt(lane, inst.laneLength-1)]
		want.xorWith(&last)
	}
	var wantBytes [BlockSize]byte
	want.littleEndianBytes(wantBytes[:])

	gotFullTag := make([]byte, BlockSize)
	hashLong(gotFullTag, wantBytes[:])

	tag := finalize(inst, BlockSize)
	inst.release()

	if string(tag) != string(gotFullTag) {
		t.Fatalf("finalize did not match the expected XOR-then-hashLong construction")
	}
}
