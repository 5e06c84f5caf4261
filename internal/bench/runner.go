// Package bench drives ordered indexes with workloads, times every query at
// the call boundary and turns the measurements into tables.
package bench

import (
	"fmt"
	"time"

	"github.com/g-m-twostay/dast/Trees"
	"github.com/g-m-twostay/dast/internal/workload"
	"github.com/rs/zerolog"
)

// UnsupportedError is returned when a workload asks a Target for a query it
// can't answer.
type UnsupportedError struct {
	Target string
	Kind   workload.Kind
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("target %s does not support %s queries", e.Target, e.Kind)
}

// Result of running one workload against one Target.
type Result struct {
	Target  string
	Size    int
	Queries int
	// AvgLatency per query, in microseconds.
	AvgLatency float64
	// AvgDepth is the mean search path length of the queries. Only reported
	// by targets implementing Statser.
	AvgDepth  float64
	Splays    uint64
	Rotations uint64
	// Checksum folds the query answers so the work can't be optimized away
	// and different targets can be cross checked.
	Checksum int64
}

// Runner executes workloads and logs its progress.
type Runner struct {
	Log zerolog.Logger
}

// Run ops against t. Insertions are not timed; t is cleared first.
func (r *Runner) Run(t Target, ops []workload.Op) (Result, error) {
	t.Clear()
	res := Result{Target: t.Name()}
	st, hasStats := t.(Statser)
	var elapsed time.Duration
	statsReset := false
	for _, o := range ops {
		if o.Kind == workload.Insert {
			t.Insert(o.A)
			continue
		}
		if hasStats && !statsReset {
			st.ResetStats()
			statsReset = true
		}
		v, d, err := r.query(t, o)
		if err != nil {
			return res, err
		}
		elapsed += d
		res.Queries++
		res.Checksum += v
	}
	res.Size = t.Len()
	if res.Queries > 0 {
		res.AvgLatency = float64(elapsed.Nanoseconds()) / 1e3 / float64(res.Queries)
	}
	if hasStats && statsReset {
		s := st.Stats()
		res.AvgDepth, res.Splays, res.Rotations = s.AvgLookupDepth(), s.Splays, s.Rotations
	}
	r.Log.Debug().Str("target", res.Target).Int("size", res.Size).Int("queries", res.Queries).
		Float64("avg_us", res.AvgLatency).Float64("avg_depth", res.AvgDepth).Uint64("splays", res.Splays).
		Msg("run finished")
	return res, nil
}

func (r *Runner) query(t Target, o workload.Op) (int64, time.Duration, error) {
	switch o.Kind {
	case workload.Find:
		start := time.Now()
		k, ok := t.Find(o.A)
		d := time.Since(start)
		if !ok {
			return -1, d, nil
		}
		return int64(k), d, nil
	case workload.Select:
		s, ok := t.(Selector)
		if !ok {
			return 0, 0, &UnsupportedError{t.Name(), o.Kind}
		}
		start := time.Now()
		k, _ := s.Select(o.A)
		return int64(k), time.Since(start), nil
	case workload.Sum:
		s, ok := t.(Summer)
		if !ok {
			return 0, 0, &UnsupportedError{t.Name(), o.Kind}
		}
		start := time.Now()
		v := s.SumRange(o.A, o.B)
		return v, time.Since(start), nil
	}
	return 0, 0, &UnsupportedError{t.Name(), o.Kind}
}

// Row groups the results measured for one value of the varied parameter.
type Row struct {
	Param   int
	Results []Result
}

// Compare runs gen(size) against a fresh Target of every factory for each
// size.
func (r *Runner) Compare(sizes []int, factories []Factory, gen func(size int) []workload.Op) ([]Row, error) {
	rows := make([]Row, 0, len(sizes))
	for _, size := range sizes {
		r.Log.Info().Int("size", size).Msg("testing tree size")
		ops := gen(size)
		row := Row{Param: size}
		for _, f := range factories {
			res, err := r.Run(f(), ops)
			if err != nil {
				return rows, fmt.Errorf("size %d: %w", size, err)
			}
			row.Results = append(row.Results, res)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Sweep runs ops against an AugDAST with FixedPolicy(th) for every threshold.
func (r *Runner) Sweep(thresholds []int, ops []workload.Op) ([]Row, error) {
	rows := make([]Row, 0, len(thresholds))
	for _, th := range thresholds {
		res, err := r.Run(NewAug(fmt.Sprintf("threshold-%d", th), Trees.FixedPolicy(th)), ops)
		if err != nil {
			return rows, fmt.Errorf("threshold %d: %w", th, err)
		}
		r.Log.Info().Int("threshold", th).Float64("avg_us", res.AvgLatency).
			Float64("avg_depth", res.AvgDepth).Uint64("splays", res.Splays).Msg("threshold done")
		rows = append(rows, Row{Param: th, Results: []Result{res}})
	}
	return rows, nil
}

// Powers returns 1, 2, 4, ... up to and including limit.
func Powers(limit int) []int {
	var s []int
	for i := 1; i <= limit && i > 0; i <<= 1 {
		s = append(s, i)
	}
	return s
}

// Span returns from, from+1, ..., to-1.
func Span(from, to int) []int {
	s := make([]int, 0, max(to-from, 0))
	for i := from; i < to; i++ {
		s = append(s, i)
	}
	return s
}
