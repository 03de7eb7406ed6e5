package argon2

// Variant selects the reference-indexing strategy used while filling memory
// (spec.md §3, §4.3).
type Variant uint32

const (
	// VariantDependent selects addresses from previously written memory
	// (Argon2d). Fast, but vulnerable to cache-timing side channels.
	VariantDependent Variant = 0
	// VariantIndependent derives addresses from a counter stream,
	// independent of any secret data (Argon2i). Side-channel resistant.
	VariantIndependent Variant = 1
	// VariantHybrid uses data-independent addressing for the first pass and
	// data-dependent addressing thereafter (Argon2id). spec.md §9(a) fixes
	// the hybrid tag at 2, resolving the ambiguity in the original headers.
	VariantHybrid Variant = 2
	// VariantDependentSBox is VariantDependent augmented with the S-box
	// substitution described in spec.md §4.9 (Argon2ds).
	VariantDependentSBox Variant = 4
)

// String returns the canonical short name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantDependent:
		return "argon2d"
	case VariantIndependent:
		return "argon2i"
	case VariantHybrid:
		return "argon2id"
	case VariantDependentSBox:
		return "argon2ds"
	default:
		return "unknown"
	}
}

func (v Variant) valid() bool {
	switch v {
	case VariantDependent, VariantIndependent, VariantHybrid, VariantDependentSBox:
		return true
	default:
		return false
	}
}

// Version selects the pass ≥ 1 write policy in the segment filler
// (spec.md §4.4).
type Version uint8

const (
	// Version10 is the historical version: pass ≥ 1 overwrites rather than
	// XORs into the existing block.
	Version10 Version = 0x10
	// Version13 is the current version: pass ≥ 1 XORs the new block into
	// the existing contents.
	Version13 Version = 0x13
)

func (v Version) valid() bool {
	return v == Version10 || v == Version13
}

// syncPoints is the fixed number of slices per lane (spec.md §3).
const syncPoints = 4

// instance holds the immutable cost parameters and the working memory for
// one computation, mirroring Argon2_instance_t in
// original_source/Source/Core/argon2-core.h.
type instance struct {
	memory []Block

	passes        uint32
	memoryBlocks  uint32
	lanes         uint32
	laneLength    uint32
	segmentLength uint32
	tagLength     uint32
	variant       Variant
	version       Version

	sbox *sbox // only set for VariantDependentSBox, regenerated each pass
}

// newInstance allocates the working memory array for the given validated
// parameters. Callers must have already validated p before calling this.
//
// It uses p.effectiveMemoryCost(), not the raw p.MemoryCost, so the
// allocated address space always matches the m that went into the pre-hash
// input (seed.go's preHashInput; spec.md §3 "m … adjusted so that m is a
// multiple of 4·p"). Validate only enforces the 8*Parallelism floor, not
// the 4*Parallelism multiple, so a raw MemoryCost that isn't already a
// multiple of 4*Parallelism would otherwise allocate blocks past the end of
// every lane's addressable segment layout, violating P3's "total bytes
// touched … exactly t·m·1024".
func newInstance(p *Params) *instance {
	memoryBlocks := p.effectiveMemoryCost()
	laneLength := memoryBlocks / p.Parallelism
	segmentLength := laneLength / syncPoints

	return &instance{
		memory:        make([]Block, memoryBlocks),
		passes:        p.Passes,
		memoryBlocks:  memoryBlocks,
		lanes:         p.Parallelism,
		laneLength:    laneLength,
		segmentLength: segmentLength,
		tagLength:     p.TagLength,
		variant:       p.Variant,
		version:       p.Version,
	}
}

// blockAt returns the linear index of the block at (lane, j) within a lane.
func (inst *instance) blockAt(lane, j uint32) uint32 {
	return lane*inst.laneLength + j
}

// release zeroises the working memory and S-box, per spec.md §5 ("Memory
// safety") and property P5. Safe to call more than once.
func (inst *instance) release() {
	for i := range inst.memory {
		inst.memory[i] = Block{}
	}
	inst.memory = nil
	if inst.sbox != nil {
		for i := range inst.sbox.table {
			inst.sbox.table[i] = 0
		}
		inst.sbox = nil
	}
}

// position identifies the block currently being written, mirroring
// Argon2_position_t in the reference header.
type position struct {
	pass  uint32
	lane  uint32
	slice uint32
	index uint32
}
