package placement

import (
	"math/rand"
	"sync"

	"github.com/andrewsmike/redhdl/internal/layout"
	"github.com/andrewsmike/redhdl/internal/netlist"
	"github.com/andrewsmike/redhdl/internal/search/anneal"
)

// problem adapts one netlist and Config into an anneal.Problem[layout.
// Placement]; its InitialState is resolved once, up front, by Run (not
// lazily here), since seeding can fail and anneal.Problem has no error
// return.
type problem struct {
	nl       *netlist.Netlist
	cfg      Config
	schedule func(step int) float64
	initial  layout.Placement
}

func (pr *problem) InitialState() layout.Placement { return pr.initial }

func (pr *problem) Neighbor(state layout.Placement, rng *rand.Rand) layout.Placement {
	return neighbor(pr.nl, state, pr.cfg, rng)
}

func (pr *problem) Energy(state layout.Placement) float64 {
	return energy(pr.nl, state, pr.cfg)
}

func (pr *problem) Schedule(step int) float64 { return pr.schedule(step) }

// Result is the outcome of Run: the best placement found and the report
// of the worker that found it.
type Result struct {
	Placement layout.Placement
	Report    anneal.Report
}

// Run searches for a low-energy placement of nl's instances using
// simulated annealing. With cfg.Workers > 1, Workers independent SA runs
// are raced in parallel, each seeded from a distinct stream derived from
// cfg.Seed via anneal.DeriveRNG, and the lowest-BestEnergy result wins;
// this keeps the result deterministic for a fixed cfg.Seed and
// cfg.Workers regardless of scheduling.
//
// Run fails with an *rherrors.InfeasibleError if no worker can seed a
// valid initial placement within cfg.RejectionBudget attempts per
// instance.
func Run(nl *netlist.Netlist, cfg Config) (Result, error) {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	outcomes := make([]outcomeResult, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[w] = runOne(nl, cfg, uint64(w))
		}()
	}
	wg.Wait()

	var best *Result
	var firstErr error
	for _, o := range outcomes {
		if o.err != nil {
			if firstErr == nil {
				firstErr = o.err
			}
			continue
		}
		if best == nil || o.result.Report.BestEnergy < best.Report.BestEnergy {
			r := o.result
			best = &r
		}
	}

	if best == nil {
		return Result{}, firstErr
	}
	return *best, nil
}

func runOne(nl *netlist.Netlist, cfg Config, stream uint64) outcomeResult {
	seedRNG := anneal.DeriveRNG(cfg.Seed, stream)
	initSeed := seedRNG.Int63()
	annealSeed := anneal.DeriveSeed(cfg.Seed, stream)

	initial, err := buildInitialPlacement(nl, cfg, rand.New(rand.NewSource(initSeed)))
	if err != nil {
		return outcomeResult{err: err}
	}

	pr := &problem{
		nl:       nl,
		cfg:      cfg,
		schedule: anneal.ExponentialSchedule(cfg.T0, cfg.Alpha),
		initial:  initial,
	}

	annealResult := anneal.Run[layout.Placement](pr, anneal.Config{MaxSteps: cfg.MaxSteps, Seed: annealSeed})
	return outcomeResult{result: Result{Placement: annealResult.Best, Report: annealResult.Report}}
}

type outcomeResult struct {
	result Result
	err    error
}
