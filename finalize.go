package argon2

// finalize computes the output tag from the filled working memory
// (spec.md §4.7): XOR the last block of every lane together, then expand
// the result through the external hash to tagLen bytes. The caller is
// responsible for releasing inst afterwards (spec.md §5 lifetimes).
func finalize(inst *instance, tagLen uint32) []byte {
	var c Block
	for lane := uint32(0); lane < inst.lanes; lane++ {
		last := inst.memory[inst.blockAt(lane, inst.laneLength-1)]
		c.xorWith(&last)
	}

	var serialized [BlockSize]byte
	c.littleEndianBytes(serialized[:])

	tag := make([]byte, tagLen)
	hashLong(tag, serialized[:])
	return tag
}
