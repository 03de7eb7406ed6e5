package argon2

// Compute runs one Argon2 computation end to end: validate p, expand the
// seed, fill memory for p.Passes passes, and extract the tag (spec.md §6).
// On any validation error, no memory is allocated, p.Password is left
// untouched, and the returned tag is nil.
func Compute(p *Params) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	inst := initialize(p)
	defer inst.release()

	if err := fillMemory(inst, p.Workers, p.Cancel); err != nil {
		return nil, err
	}

	return finalize(inst, p.TagLength), nil
}
