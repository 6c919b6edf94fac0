// Command evorun runs evolutionary optimization experiments against the
// built-in benchmark problems, either from command line flags or from a
// YAML experiment file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	configv1alpha1 "github.com/evolab/evolve/apis/config/v1alpha1"
	"github.com/evolab/evolve/pkg/evolution"
	"github.com/evolab/evolve/pkg/evolution/framework"
	"github.com/evolab/evolve/pkg/evolution/util"
)

type options struct {
	configPath    string
	problem       string
	dimension     int
	algorithms    []string
	population    int
	generations   int
	seed          int64
	plotDir       string
	cache         bool
	maxConcurrent int
	list          bool
}

func main() {
	klog.InitFlags(nil)
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)

	var opts options
	pflag.StringVar(&opts.configPath, "config", "", "YAML experiment file; overrides the problem/algorithm flags")
	pflag.StringVar(&opts.problem, "problem", "sphere", "benchmark problem id")
	pflag.IntVar(&opts.dimension, "dimension", 2, "genotype dimension")
	pflag.StringSliceVar(&opts.algorithms, "algorithms", []string{"ga"}, "algorithm ids to run")
	pflag.IntVar(&opts.population, "population", 0, "population size (0 uses each algorithm's default)")
	pflag.IntVar(&opts.generations, "generations", 0, "generation cap (0 uses each algorithm's default)")
	pflag.Int64Var(&opts.seed, "seed", 0, "rng seed (0 picks a time-based seed)")
	pflag.StringVar(&opts.plotDir, "plot-dir", "", "write history charts into this directory")
	pflag.BoolVar(&opts.cache, "cache", false, "memoize evaluations and report their counts")
	pflag.IntVar(&opts.maxConcurrent, "max-concurrent", 0, "concurrent runs (0 means one per algorithm)")
	pflag.BoolVar(&opts.list, "list", false, "list available problems and algorithms, then exit")
	pflag.Parse()

	ctx := klog.NewContext(context.Background(), klog.Background())
	if err := run(ctx, opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	if opts.list {
		printCatalogs()
		return nil
	}
	if opts.plotDir != "" {
		if err := os.MkdirAll(opts.plotDir, 0o755); err != nil {
			return fmt.Errorf("creating plot directory: %w", err)
		}
	}
	if opts.configPath != "" {
		return runExperiment(ctx, opts)
	}
	return runFlags(ctx, opts)
}

func runFlags(ctx context.Context, opts options) error {
	results, err := evolution.Compare(ctx, evolution.CompareOptions{
		Problem:    opts.problem,
		Dimension:  opts.dimension,
		Algorithms: opts.algorithms,
		Params: framework.Params{
			PopulationSize: opts.population,
			MaxGenerations: opts.generations,
			Seed:           opts.seed,
		},
		MaxConcurrent:    opts.maxConcurrent,
		CacheEvaluations: opts.cache,
	})
	if err != nil {
		return err
	}
	for _, result := range results {
		report(result)
		if opts.plotDir != "" {
			if _, err := util.PlotHistory(opts.plotDir, result.Stats, result.Problem, result.Algorithm); err != nil {
				return err
			}
		}
	}
	return nil
}

func runExperiment(ctx context.Context, opts options) error {
	spec, err := configv1alpha1.LoadExperiment(opts.configPath)
	if err != nil {
		return err
	}
	plotDir := opts.plotDir
	if plotDir == "" && spec.PlotDir != "" {
		plotDir = spec.PlotDir
		if err := os.MkdirAll(plotDir, 0o755); err != nil {
			return fmt.Errorf("creating plot directory: %w", err)
		}
	}

	for _, algorithmRun := range spec.Algorithms {
		params := algorithmRun.Params
		if params.Seed == 0 {
			params.Seed = spec.Seed
		}
		session, err := evolution.NewSession(ctx, evolution.Options{
			Problem:          spec.Problem,
			Dimension:        spec.Dimension,
			Algorithm:        algorithmRun.ID,
			Params:           params,
			CacheEvaluations: spec.CacheEvaluations || opts.cache,
		})
		if err != nil {
			return err
		}
		result, err := session.Run(ctx)
		if err != nil {
			return fmt.Errorf("algorithm %q: %w", algorithmRun.ID, err)
		}
		report(result)
		if plotDir != "" {
			if _, err := util.PlotHistory(plotDir, result.Stats, result.Problem, result.Algorithm); err != nil {
				return err
			}
		}
	}
	return nil
}

func report(result *evolution.Result) {
	fmt.Printf("run=%s algorithm=%s problem=%s best=%.6g generations=%s elapsed=%s\n",
		result.RunID,
		result.Algorithm,
		result.Problem,
		result.BestValue,
		humanize.Comma(int64(result.Generations)),
		result.Elapsed.Round(time.Millisecond),
	)
	if result.Evaluations > 0 {
		fmt.Printf("  evaluations=%s cache_hits=%s hit_rate=%s%%\n",
			humanize.Comma(result.Evaluations),
			humanize.Comma(result.CacheHits),
			humanize.FtoaWithDigits(hitRate(result), 1),
		)
	}
}

func hitRate(result *evolution.Result) float64 {
	if result.Evaluations == 0 {
		return 0
	}
	return 100 * float64(result.CacheHits) / float64(result.Evaluations)
}

func printCatalogs() {
	fmt.Println("problems:")
	for _, p := range configv1alpha1.BuiltinProblems() {
		fmt.Printf("  %-12s %-14s bounds=[%g,%g]\n", p.ID, p.DisplayName, p.LowerBound, p.UpperBound)
	}
	fmt.Println("algorithms:")
	for _, a := range configv1alpha1.BuiltinAlgorithms() {
		fmt.Printf("  %-12s %-28s parameters=%d\n", a.ID, a.DisplayName, len(a.Parameters))
	}
}
