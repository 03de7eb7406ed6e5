package argon2

import (
	"sync"
)

// ErrCancelled is returned by fillMemory when the caller-supplied
// cancellation channel fires at a slice barrier (spec.md §5 "Cancellation").
type ErrCancelled struct{}

func (ErrCancelled) Error() string { return "argon2: computation cancelled" }

// fillMemory runs the pass scheduler (spec.md §4.5): for each pass, for each
// of the four slices in order, fill every lane's segment for that slice
// concurrently, then barrier before advancing. workers bounds the number of
// lanes processed concurrently within a slice; workers <= 0 means "one
// worker per lane" (fully parallel). cancel, if non-nil, is polled only at
// slice barriers.
func fillMemory(inst *instance, workers int, cancel <-chan struct{}) error {
	if workers <= 0 || workers > int(inst.lanes) {
		workers = int(inst.lanes)
	}

	for pass := uint32(0); pass < inst.passes; pass++ {
		if inst.variant == VariantDependentSBox {
			first := inst.memory[inst.blockAt(0, 0)]
			inst.sbox = generateSbox(&first)
		}

		for slice := uint32(0); slice < syncPoints; slice++ {
			if isCancelled(cancel) {
				return ErrCancelled{}
			}

			runSlice(inst, pass, slice, workers)
		}
	}
	return nil
}

// runSlice fills every lane's segment for (pass, slice), distributing the
// inst.lanes segment-fills across workers goroutines drawing from a shared
// queue, then waits for all of them (the only synchronisation point,
// spec.md §5).
func runSlice(inst *instance, pass, slice uint32, workers int) {
	lanes := make(chan uint32, inst.lanes)
	for lane := uint32(0); lane < inst.lanes; lane++ {
		lanes <- lane
	}
	close(lanes)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for lane := range lanes {
				index := uint32(0)
				if pass == 0 && slice == 0 {
					index = 2
				}
				fillSegment(inst, position{pass: pass, lane: lane, slice: slice, index: index})
			}
		}()
	}
	wg.Wait()
}

func isCancelled(cancel <-chan struct{}) bool {
	if cancel == nil {
		return false
	}
	select {
	case <-cancel:
		return true
	default:
		return false
	}
}
