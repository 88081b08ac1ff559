package rspecjson

import (
	"fmt"
	"io/fs"
)

// FailedExample pairs a failed example with the seed of the run it came from.
type FailedExample struct {
	Example Example
	Seed    *int64
}

// Aggregate accumulates counters and buckets across result files.
type Aggregate struct {
	Files         []string
	TotalExamples int
	TotalFailures int
	TotalPending  int
	MaxRuntime    float64 // longest single file's summed run_time, in seconds
	Failed        []FailedExample
	Pending       []Example
}

// Collect reads every file in fsys matching pattern and aggregates them.
// The first unreadable or invalid file aborts collection.
func Collect(fsys fs.FS, pattern string) (*Aggregate, error) {
	names, err := Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	agg := &Aggregate{}
	for _, name := range names {
		f, err := ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		agg.Add(name, f)
	}
	return agg, nil
}

// Add folds one result file into the aggregate.
func (a *Aggregate) Add(name string, f *ResultFile) {
	a.Files = append(a.Files, name)
	if rt := f.TotalRunTime(); rt > a.MaxRuntime {
		a.MaxRuntime = rt
	}

	a.TotalExamples += len(f.Examples)
	for _, ex := range f.Examples {
		switch ex.Status {
		case StatusFailed:
			a.TotalFailures++
			a.Failed = append(a.Failed, FailedExample{Example: ex, Seed: f.Seed})
		case StatusPending:
			a.TotalPending++
			a.Pending = append(a.Pending, ex)
		}
	}
}

type seedKey struct {
	set bool
	v   int64
}

func keyOf(seed *int64) seedKey {
	if seed == nil {
		return seedKey{}
	}
	return seedKey{set: true, v: *seed}
}

// AllSameSeed reports whether every failed example came from runs sharing
// one seed. It is false when there are no failures.
func (a *Aggregate) AllSameSeed() bool {
	if len(a.Failed) == 0 {
		return false
	}
	first := keyOf(a.Failed[0].Seed)
	for _, f := range a.Failed[1:] {
		if keyOf(f.Seed) != first {
			return false
		}
	}
	return true
}

// SharedSeed returns the seed common to all failures, if there is one.
func (a *Aggregate) SharedSeed() (int64, bool) {
	if !a.AllSameSeed() || a.Failed[0].Seed == nil {
		return 0, false
	}
	return *a.Failed[0].Seed, true
}

// String reports the counts on one line, in the order RSpec prints them.
func (a *Aggregate) String() string {
	return fmt.Sprintf("%d examples, %d failures, %d pending", a.TotalExamples, a.TotalFailures, a.TotalPending)
}
