// Package coverage implements the random-vector fault-coverage harness:
// an external collaborator of the core three operations (spec §1 calls
// mass coverage measurement out of scope for the core itself), generating
// seeded random primary-input vectors and accumulating the single
// stuck-at faults the deductive simulator detects across them.
package coverage

import (
	"context"
	"math/rand"
	"sync"

	"github.com/circuitlab/atpg/internal/circuit"
	"github.com/circuitlab/atpg/internal/faultset"
	"github.com/circuitlab/atpg/internal/logic"
	"github.com/circuitlab/atpg/internal/parallel"
	"github.com/circuitlab/atpg/internal/sim"
)

// EnumerateFaults returns the full single-stuck-at fault universe for c:
// both polarities at every net.
func EnumerateFaults(c *circuit.Circuit) faultset.Set {
	all := faultset.New()
	for _, n := range c.Nets() {
		all.Add(circuit.Fault{NetID: n.ID, Label: n.Label, StuckAt: logic.Zero})
		all.Add(circuit.Fault{NetID: n.ID, Label: n.Label, StuckAt: logic.One})
	}
	return all
}

// Report summarizes one coverage run.
type Report struct {
	Vectors  int
	Detected faultset.Set
	Total    faultset.Set
	Coverage float64 // len(Detected)/len(Total), 0 if Total is empty
}

// Run generates `vectors` random primary-input patterns from a seeded PRNG
// — deterministic given the same (circuit, vectors, seed), since rng is
// used only by the submitting goroutine, which draws each vector in
// sequence before dispatching its task — and simulates each with the
// deductive fault simulator across a bounded worker pool, unioning the
// faults detected. The union is commutative, so the result does not depend
// on goroutine completion order.
func Run(ctx context.Context, c *circuit.Circuit, vectors int, seed int64, workers int) (Report, error) {
	rng := rand.New(rand.NewSource(seed))
	total := EnumerateFaults(c)

	pool := parallel.NewPool(workers)
	var mu sync.Mutex
	detected := faultset.New()
	var firstErr error
	var wg sync.WaitGroup

	for i := 0; i < vectors; i++ {
		vector := randomVector(rng, len(c.Inputs))
		wg.Add(1)
		task := func() {
			defer wg.Done()
			found, err := sim.DetectFaults(c, vector)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			detected = detected.Union(found)
		}
		if err := pool.Submit(ctx, task); err != nil {
			wg.Done()
			pool.Close()
			return Report{}, err
		}
	}
	wg.Wait()
	pool.Close()

	if firstErr != nil {
		return Report{}, firstErr
	}

	var coveragePct float64
	if len(total) > 0 {
		coveragePct = float64(len(detected)) / float64(len(total))
	}
	return Report{Vectors: vectors, Detected: detected, Total: total, Coverage: coveragePct}, nil
}

func randomVector(rng *rand.Rand, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		if rng.Intn(2) == 0 {
			buf[i] = '0'
		} else {
			buf[i] = '1'
		}
	}
	return string(buf)
}
