// Package selection runs a compiled query filter over discovered test cases.
package selection

import (
	"cmp"
	"context"
	"runtime"
	"slices"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/testsel/testsel/internal/queryfilter"
	"github.com/testsel/testsel/internal/testcase"
	"github.com/testsel/testsel/internal/worker"
	"github.com/testsel/testsel/pkg/log"
)

const (
	// DefaultBatchSize is the number of test cases evaluated by a single worker task.
	DefaultBatchSize = 256

	cancelCheckInterval = 64
)

// Result is the outcome of a selection run.
type Result struct {
	// Assemblies holds the per-assembly counts in order of first appearance.
	Assemblies []*AssemblyResult `json:"assemblies"`
	// Selected holds the matching test cases in their input order.
	Selected testcase.TestCases `json:"selected"`
	RunID    string             `json:"run_id"`
	Filter   string             `json:"filter"`
	Total    int                `json:"total"`
	Matched  int                `json:"matched"`
}

// AssemblyResult counts the tests of one assembly.
type AssemblyResult struct {
	Name    string `json:"name"`
	Total   int    `json:"total"`
	Matched int    `json:"matched"`
}

// Select evaluates filter against every test case on a pool of parallelism workers.
// A parallelism below one uses the number of CPUs.
func Select(ctx context.Context, l log.Logger, filter queryfilter.Filter, cases testcase.TestCases, parallelism int) (*Result, error) {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	runID := uuid.NewString()
	l = l.WithField(log.FieldKeyRunID, runID)

	result := &Result{
		RunID:    runID,
		Filter:   filter.String(),
		Total:    len(cases),
		Selected: testcase.TestCases{},
	}

	err := queryfilter.TraceSelect(ctx, filter, len(cases), func(ctx context.Context) error {
		counts := &counters{
			totals:  xsync.NewMapOf[string, int](),
			matched: xsync.NewMapOf[string, int](),
		}

		matches, err := evaluate(ctx, filter, cases, parallelism, counts)
		if err != nil {
			return err
		}

		for i, tc := range cases {
			if matches[i] {
				result.Selected = append(result.Selected, tc)
			}
		}

		for _, name := range cases.Assemblies() {
			asm := &AssemblyResult{Name: name}
			asm.Total, _ = counts.totals.Load(name)
			asm.Matched, _ = counts.matched.Load(name)

			l.WithField(log.FieldKeyAssembly, name).Debugf("Selected %d of %d tests", asm.Matched, asm.Total)

			result.Assemblies = append(result.Assemblies, asm)
		}

		result.Matched = len(result.Selected)

		return nil
	})
	if err != nil {
		return nil, err
	}

	l.Debugf("Selected %d of %d tests with filter %s", result.Matched, result.Total, result.Filter)

	return result, nil
}

// counters holds per-assembly counts updated concurrently by the workers.
type counters struct {
	totals  *xsync.MapOf[string, int]
	matched *xsync.MapOf[string, int]
}

func increment(old int, _ bool) (int, bool) {
	return old + 1, false
}

// evaluate returns one match flag per test case, computed in batches on the worker pool.
func evaluate(ctx context.Context, filter queryfilter.Filter, cases testcase.TestCases, parallelism int, counts *counters) ([]bool, error) {
	matches := make([]bool, len(cases))

	wp := worker.NewWorkerPool(ctx, parallelism)
	defer wp.Stop()

	for start := 0; start < len(cases); start += DefaultBatchSize {
		batch := cases[start:min(start+DefaultBatchSize, len(cases))]
		offset := start

		wp.Submit(func(ctx context.Context) error {
			for i, tc := range batch {
				if i%cancelCheckInterval == 0 && ctx.Err() != nil {
					return ctx.Err()
				}

				counts.totals.Compute(tc.Assembly, increment)

				if filter.Filter(tc.Assembly, tc) {
					matches[offset+i] = true

					counts.matched.Compute(tc.Assembly, increment)
				}
			}

			return nil
		})
	}

	if err := wp.Wait(); err != nil {
		return nil, err
	}

	return matches, nil
}

// Sorted returns the selected test cases ordered by assembly and fully qualified name.
func (result *Result) Sorted() testcase.TestCases {
	sorted := slices.Clone(result.Selected)

	slices.SortStableFunc(sorted, func(a, b *testcase.TestCase) int {
		return cmp.Or(
			cmp.Compare(a.Assembly, b.Assembly),
			cmp.Compare(a.FullyQualifiedName(), b.FullyQualifiedName()),
		)
	})

	return sorted
}
