package argon2

import "testing"

func TestVariantTagMatchesVariantValue(t *testing.T) {
	for _, v := range []Variant{VariantDependent, VariantIndependent, VariantHybrid, VariantDependentSBox} {
		if variantTag(v) != uint32(v) {
			t.Errorf("variantTag(%v) = %d, want %d", v, variantTag(v), uint32(v))
		}
	}
}

func TestPreHashInputIsSensitiveToEveryField(t *testing.T) {
	base := func() *Params {
		return &Params{
			Password:       []byte("password"),
			Salt:            []byte("saltsaltsaltsalt"),
			Secret:         []byte("secret"),
			AssociatedData: []byte("ad"),
			Passes:         2,
			MemoryCost:     32,
			Parallelism:    4,
			TagLength:      32,
			Variant:        VariantDependent,
			Version:        Version13,
		}
	}

	h0 := preHashInput(base())

	mutations := []func(*Params){
		func(p *Params) { p.Password = []byte("Password") },
		func(p *Params) { p.Salt = []byte("Saltsaltsaltsalt") },
		func(p *Params) { p.Secret = []byte("Secret") },
		func(p *Params) { p.AssociatedData = []byte("Ad") },
		func(p *Params) { p.Passes = 3 },
		func(p *Params) { p.MemoryCost = 64 },
		func(p *Params) { p.TagLength = 64 },
		func(p *Params) { p.Variant = VariantIndependent },
		func(p *Params) { p.Version = Version10 },
	}

	for i, mutate := range mutations {
		p := base()
		mutate(p)
		got := preHashInput(p)
		if got == h0 {
			t.Errorf("mutation %d did not change the pre-hash input", i)
		}
	}
}

func TestFillFirstBlocksPopulatesSlotsZeroAndOneOfEveryLane(t *testing.T) {
	p := &Params{
		Password:    []byte("password"),
		Salt:        []byte("saltsaltsaltsalt"),
		Passes:      2,
		MemoryCost:  32,
		Parallelism: 4,
		TagLength:   32,
		Variant:     VariantDependent,
		Version:     Version13,
	}
	inst := newInstance(p)
	defer inst.release()

	h0 := preHashInput(p)
	fillFirstBlocks(inst, h0)

	var zero Block
	for lane := uint32(0); lane < inst.lanes; lane++ {
		b0 := inst.memory[inst.blockAt(lane, 0)]
		b1 := inst.memory[inst.blockAt(lane, 1)]
		if b0 == zero || b1 == zero {
			t.Errorf("lane %d: seed blocks were not populated", lane)
		}
		if b0 == b1 {
			t.Errorf("lane %d: slot 0 and slot 1 must differ (different k)", lane)
		}
	}

	l0 := inst.memory[inst.blockAt(0, 0)]
	l1 := inst.memory[inst.blockAt(1, 0)]
	if l0 == l1 {
		t.Errorf("lane 0 and lane 1 seed blocks must differ")
	}
}

func TestInitializeClearsPasswordWhenRequested(t *testing.T) {
	pw := []byte("clear me please!")
	p := &Params{
		Password:      pw,
		Salt:          []byte("saltsaltsaltsalt"),
		Passes:        1,
		MemoryCost:    32,
		Parallelism:   4,
		TagLength:     32,
		Variant:       VariantDependent,
		Version:       Version13,
		ClearPassword: true,
	}
	inst := initialize(p)
	defer inst.release()

	for i, b := range pw {
		if b != 0 {
			t.Fatalf("byte %d of Password was not cleared", i)
		}
	}
}

func TestInitializeLeavesPasswordWhenNotRequested(t *testing.T) {
	pw := []byte("leave me alone!!")
	original := append([]byte(nil), pw...)
	p := &Params{
		Password:    pw,
		Salt:        []byte("saltsaltsaltsalt"),
		Passes:      1,
		MemoryCost:  32,
		Parallelism: 4,
		TagLength:   32,
		Variant:     VariantDependent,
		Version:     Version13,
	}
	inst := initialize(p)
	defer inst.release()

	if string(pw) != string(original) {
		t.Fatalf("Password was mutated despite ClearPassword being false")
	}
}
