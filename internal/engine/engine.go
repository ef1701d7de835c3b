// Package engine orchestrates rule evaluation: it selects the applicable
// rules for a request, runs each matcher independently and aggregates the
// findings into one deterministic ValidationResult.
package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"conform/internal/diag"
	"conform/internal/rules"
)

// Options tune evaluation; the zero value is a sensible default.
type Options struct {
	// MaxDiagnostics caps the aggregated diagnostics (0 = default 100).
	MaxDiagnostics int
	// Parallel evaluates the applicable rules concurrently. Matchers are
	// pure, so this never changes the result, only the latency.
	Parallel bool
	// Jobs bounds parallel evaluation (0 = GOMAXPROCS).
	Jobs int
}

const defaultMaxDiagnostics = 100

// Engine borrows an immutable rule set. Safe for concurrent use.
type Engine struct {
	set  *rules.Set
	opts Options
}

func New(set *rules.Set, opts Options) *Engine {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = defaultMaxDiagnostics
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.GOMAXPROCS(0)
	}
	return &Engine{set: set, opts: opts}
}

// Validate applies every applicable rule to the request. Rules never observe
// each other's outcome; a set with zero applicable rules yields OK with no
// diagnostics. The final order is registration order regardless of the
// evaluation mode.
func (e *Engine) Validate(ctx context.Context, req rules.Request) Result {
	applicable := e.set.Applicable(req)
	if len(applicable) == 0 {
		return Result{OK: true}
	}

	found := make([]*diag.Diagnostic, len(applicable))
	if e.opts.Parallel && len(applicable) > 1 {
		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(e.opts.Jobs)
		for i, a := range applicable {
			i, a := i, a
			g.Go(func() error {
				if d, ok := a.Rule.Apply(req, a.Seq); ok {
					found[i] = &d
				}
				return nil
			})
		}
		// Матчеры не возвращают ошибок; Wait только для синхронизации.
		_ = g.Wait()
	} else {
		for i, a := range applicable {
			if ctx.Err() != nil {
				break
			}
			if d, ok := a.Rule.Apply(req, a.Seq); ok {
				found[i] = &d
			}
		}
	}

	bag := diag.NewBag(e.opts.MaxDiagnostics)
	for _, d := range found {
		if d != nil {
			bag.Add(*d)
		}
	}
	bag.Sort()
	bag.Dedup()

	out := make([]diag.Diagnostic, bag.Len())
	copy(out, bag.Items())
	return Result{
		OK:          !bag.HasErrors(),
		Diagnostics: out,
	}
}
