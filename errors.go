package argon2

import "fmt"

// Parameter identifies which cost or length parameter a ParameterError
// refers to (spec.md §7).
type Parameter int

const (
	ParameterPasses Parameter = iota
	ParameterMemoryCost
	ParameterParallelism
	ParameterTagLength
	ParameterSaltLength
	ParameterPasswordLength
	ParameterSecretLength
	ParameterAssociatedDataLength
)

func (p Parameter) String() string {
	switch p {
	case ParameterPasses:
		return "Passes"
	case ParameterMemoryCost:
		return "MemoryCost"
	case ParameterParallelism:
		return "Parallelism"
	case ParameterTagLength:
		return "TagLength"
	case ParameterSaltLength:
		return "SaltLength"
	case ParameterPasswordLength:
		return "PasswordLength"
	case ParameterSecretLength:
		return "SecretLength"
	case ParameterAssociatedDataLength:
		return "AssociatedDataLength"
	default:
		return "Unknown"
	}
}

// ParameterError reports that a cost or length parameter is outside its
// valid range (spec.md §7 "ParameterOutOfRange").
type ParameterError struct {
	Parameter Parameter
	Value     int64
	Reason    string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("argon2: parameter %s out of range (value=%d): %s", e.Parameter, e.Value, e.Reason)
}

// UnknownVariantError reports an unrecognised Variant value
// (spec.md §7 "UnknownVariant").
type UnknownVariantError struct {
	Variant Variant
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("argon2: unknown variant %d", uint32(e.Variant))
}

// UnknownVersionError reports an unrecognised Version value
// (spec.md §7 "UnknownVersion").
type UnknownVersionError struct {
	Version Version
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("argon2: unknown version 0x%02x", uint8(e.Version))
}

// NilInputError reports a nil byte slice paired with a claimed nonzero
// length (spec.md §7 "NullInputWithNonZeroLength"). The core never
// constructs this itself — Go slices carry their own length — but it is
// kept for callers assembling Params from foreign-memory buffers where a nil
// pointer and a nonzero length can genuinely disagree.
type NilInputError struct {
	Field string
}

func (e *NilInputError) Error() string {
	return fmt.Sprintf("argon2: nil input for %s with nonzero claimed length", e.Field)
}

// AllocationFailedError reports that the working memory array could not be
// allocated (spec.md §7 "AllocationFailed").
type AllocationFailedError struct {
	MemoryBlocks uint32
}

func (e *AllocationFailedError) Error() string {
	return fmt.Sprintf("argon2: failed to allocate %d memory blocks", e.MemoryBlocks)
}
