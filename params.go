package argon2

const (
	// minSaltLength is the minimum salt length accepted by Validate
	// (spec.md §4.8 "salt shorter than the required minimum").
	minSaltLength = 8
	// minTagLength is the minimum output length (spec.md §3).
	minTagLength = 4
	// maxParallelism bounds lane count; spec.md §3 allows up to 2^24 but
	// notes practical implementations cap far lower.
	maxParallelism = 1 << 24
	// maxLength bounds password/secret/associated-data length, matching the
	// 32-bit length prefix used to encode them in the pre-hash input
	// (spec.md §4.6 step 1).
	maxLength = (1 << 32) - 1
)

// Params holds every input to one Argon2 computation: the secret and public
// inputs (spec.md §6) plus the cost parameters (spec.md §3). It is the one
// exposed operation's argument aggregate — the caller-facing string/CLI
// parsing that produces a Params is out of scope (spec.md §1).
type Params struct {
	Password       []byte
	Salt           []byte
	Secret         []byte
	AssociatedData []byte

	Passes      uint32
	MemoryCost  uint32
	Parallelism uint32
	TagLength   uint32

	Variant Variant
	Version Version

	// ClearPassword, if true, zeroises Password in place once the pre-hash
	// has consumed it (spec.md §4.6 step 2, §7 "the zeroisation step runs
	// only after successful pre-hash").
	ClearPassword bool

	// Workers bounds how many lanes are processed concurrently within a
	// slice. Zero means "one worker per lane" (spec.md §4.5).
	Workers int

	// Cancel, if non-nil, is polled at each slice barrier; a closed channel
	// aborts the computation with ErrCancelled (spec.md §5).
	Cancel <-chan struct{}
}

// Validate checks p against spec.md §4.8's bounds and returns a typed error
// for the first violation found, checking Passes, Parallelism, MemoryCost,
// TagLength, Salt, Password, Secret, AssociatedData, Variant and Version in
// that order. It
// performs no allocation and mutates nothing, including Password (spec.md
// §7 "On any error, the output buffer is untouched, the password buffer is
// untouched").
func (p *Params) Validate() error {
	if p.Passes < 1 {
		return &ParameterError{ParameterPasses, int64(p.Passes), "must be at least 1"}
	}
	if p.Parallelism < 1 {
		return &ParameterError{ParameterParallelism, int64(p.Parallelism), "must be at least 1"}
	}
	if p.Parallelism > maxParallelism {
		return &ParameterError{ParameterParallelism, int64(p.Parallelism), "exceeds implementation limit"}
	}
	minMemory := int64(8) * int64(p.Parallelism)
	if int64(p.MemoryCost) < minMemory {
		return &ParameterError{ParameterMemoryCost, int64(p.MemoryCost), "must be at least 8 * Parallelism"}
	}
	if p.TagLength < minTagLength {
		return &ParameterError{ParameterTagLength, int64(p.TagLength), "must be at least 4 bytes"}
	}
	if len(p.Salt) < minSaltLength {
		return &ParameterError{ParameterSaltLength, int64(len(p.Salt)), "must be at least 8 bytes"}
	}
	if len(p.Password) > maxLength {
		return &ParameterError{ParameterPasswordLength, int64(len(p.Password)), "exceeds maximum length"}
	}
	if len(p.Secret) > maxLength {
		return &ParameterError{ParameterSecretLength, int64(len(p.Secret)), "exceeds maximum length"}
	}
	if len(p.AssociatedData) > maxLength {
		return &ParameterError{ParameterAssociatedDataLength, int64(len(p.AssociatedData)), "exceeds maximum length"}
	}
	if !p.Variant.valid() {
		return &UnknownVariantError{p.Variant}
	}
	if !p.Version.valid() {
		return &UnknownVersionError{p.Version}
	}
	return nil
}

// effectiveMemoryCost rounds MemoryCost down to the nearest multiple of
// 4*Parallelism, the adjustment spec.md §3 describes ("m is a multiple of
// 4·p"). Validate has already rejected MemoryCost below the 8*Parallelism
// floor, so the result still satisfies segment_length >= 2.
func (p *Params) effectiveMemoryCost() uint32 {
	block := 4 * p.Parallelism
	return (p.MemoryCost / block) * block
}
