package main

import (
	"fmt"

	"github.com/g-m-twostay/dast/internal/bench"
	"github.com/g-m-twostay/dast/internal/workload"
	"github.com/spf13/cobra"
)

// workloadFunc returns the generator of the named access pattern.
func workloadFunc(name string, seed int64, accesses, subset, cycles int) (func(size int) []workload.Op, error) {
	switch name {
	case "random":
		return func(size int) []workload.Op { return workload.New(seed).Random(size, accesses) }, nil
	case "sequential":
		return func(size int) []workload.Op { return workload.New(seed).Sequential(size, accesses) }, nil
	case "gradual":
		return func(size int) []workload.Op { return workload.New(seed).Gradual(size, cycles) }, nil
	case "cache":
		return func(size int) []workload.Op { return workload.New(seed).Cache(size, subset, accesses) }, nil
	}
	return nil, fmt.Errorf("unknown workload %q: want random, sequential, gradual or cache", name)
}

type compareConfig struct {
	MaxSize  int
	Accesses int
	Workload string
	Subset   int
	Cycles   int
	Targets  []string
	Stats    bool
}

func newCompareCmd(root *rootConfig) *cobra.Command {
	cfg := &compareConfig{}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Average lookup latency per tree over doubling tree sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, sink, err := root.setup(cmd)
			if err != nil {
				return err
			}
			fs, err := bench.Lookup(cfg.Targets)
			if err != nil {
				return err
			}
			gen, err := workloadFunc(cfg.Workload, root.Seed, cfg.Accesses, cfg.Subset, cfg.Cycles)
			if err != nil {
				return err
			}
			rows, err := r.Compare(bench.Powers(cfg.MaxSize), fs, gen)
			if err != nil {
				return err
			}
			if cfg.Stats {
				return sink.Write(bench.StatsTable("TreeSize", rows))
			}
			return sink.Write(bench.CompareTable("TreeSize", rows))
		},
	}
	cmd.Flags().IntVar(&cfg.MaxSize, "max-size", 1<<16, "largest tree size; sizes double from 1")
	cmd.Flags().BoolVar(&cfg.Stats, "stats", false, "one line per tree and size with depth and splay counts")
	cmd.Flags().IntVar(&cfg.Accesses, "accesses", 1<<16, "number of lookups per size")
	cmd.Flags().StringVar(&cfg.Workload, "workload", "random", "access pattern: random, sequential, gradual or cache")
	cmd.Flags().IntVar(&cfg.Subset, "subset", 64, "distinct keys looked up by the cache workload")
	cmd.Flags().IntVar(&cfg.Cycles, "cycles", 4, "passes over the keys of the gradual workload")
	cmd.Flags().StringSliceVar(&cfg.Targets, "targets", []string{"dast", "splay", "sbtree", "rbtree", "btree", "llrb"}, fmt.Sprintf("trees to compare, any of %v", bench.Names()))
	return cmd
}

type sweepConfig struct {
	Size     int
	Accesses int
	Workload string
	From, To int
}

func newSweepCmd(root *rootConfig) *cobra.Command {
	cfg := &sweepConfig{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Latency, depth and splay count of the tree for a range of fixed thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, sink, err := root.setup(cmd)
			if err != nil {
				return err
			}
			if cfg.To <= cfg.From {
				return fmt.Errorf("empty threshold range [%d, %d)", cfg.From, cfg.To)
			}
			gen, err := workloadFunc(cfg.Workload, root.Seed, cfg.Accesses, 64, 4)
			if err != nil {
				return err
			}
			rows, err := r.Sweep(bench.Span(cfg.From, cfg.To), gen(cfg.Size))
			if err != nil {
				return err
			}
			return sink.Write(bench.SweepTable(rows))
		},
	}
	cmd.Flags().IntVar(&cfg.Size, "size", 10000, "tree size")
	cmd.Flags().IntVar(&cfg.Accesses, "accesses", 100000, "number of lookups")
	cmd.Flags().StringVar(&cfg.Workload, "workload", "random", "access pattern: random, sequential, gradual or cache")
	cmd.Flags().IntVar(&cfg.From, "from", 0, "first threshold")
	cmd.Flags().IntVar(&cfg.To, "to", 120, "threshold after the last one")
	return cmd
}

type queryConfig struct {
	MaxSize int
	Queries int
	Targets []string
}

func newQueryCmd(root *rootConfig, use, short string, defTargets []string, gen func(seed int64, size, queries int) []workload.Op) *cobra.Command {
	cfg := &queryConfig{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, sink, err := root.setup(cmd)
			if err != nil {
				return err
			}
			fs, err := bench.Lookup(cfg.Targets)
			if err != nil {
				return err
			}
			rows, err := r.Compare(bench.Powers(cfg.MaxSize), fs, func(size int) []workload.Op {
				return gen(root.Seed, size, cfg.Queries)
			})
			if err != nil {
				return err
			}
			return sink.Write(bench.CompareTable("TreeSize", rows))
		},
	}
	cmd.Flags().IntVar(&cfg.MaxSize, "max-size", 1<<16, "largest tree size; sizes double from 1")
	cmd.Flags().IntVar(&cfg.Queries, "queries", 1<<16, "number of queries per size")
	cmd.Flags().StringSliceVar(&cfg.Targets, "targets", defTargets, "trees to compare")
	return cmd
}

func newRangesCmd(root *rootConfig) *cobra.Command {
	return newQueryCmd(root, "ranges", "Average inclusive range sum latency per tree",
		[]string{"aug", "sbtree", "btree", "llrb"},
		func(seed int64, size, queries int) []workload.Op { return workload.New(seed).Ranges(size, queries) })
}

func newSelectCmd(root *rootConfig) *cobra.Command {
	return newQueryCmd(root, "select", "Average select-by-rank latency per tree",
		[]string{"aug", "sbtree"},
		func(seed int64, size, queries int) []workload.Op { return workload.New(seed).Selects(size, queries) })
}
