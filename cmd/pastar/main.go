// Command pastar aligns 2–8 FASTA sequences with hash-partitioned
// parallel A*, writing (or printing) the resulting alignment.
//
// Exit codes: 0 on success, 1 on invalid input or configuration, 2 when
// the search completed without finding an alignment.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/msapastar/pastar/fasta"
	"github.com/msapastar/pastar/internal/backtrace"
	"github.com/msapastar/pastar/internal/config"
	"github.com/msapastar/pastar/internal/costmodel"
	"github.com/msapastar/pastar/internal/engine"
	"github.com/msapastar/pastar/internal/heuristic"
	"github.com/msapastar/pastar/printer"
	"github.com/msapastar/pastar/timing"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pastar: building logger:", err)
		return 1
	}
	defer log.Sync() //nolint:errcheck

	cfg, err := parseFlags(args)
	if err != nil {
		log.Error("invalid flags", zap.Error(err))
		return 1
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", zap.Error(err))
		return 1
	}

	code, err := align(log, cfg)
	if err != nil {
		log.Error("alignment failed", zap.Error(err))
	}
	return code
}

// parseFlags builds a config.Config from the command line.
func parseFlags(args []string) (config.Config, error) {
	cfg := config.Default()

	fs := pflag.NewFlagSet("pastar", pflag.ContinueOnError)
	fs.StringVarP(&cfg.OutputPath, "output", "f", "", "output FASTA file (default: stdout)")
	fs.BoolVarP(&cfg.Nucleotide, "nucleotide", "n", false, "use the nucleotide cost matrix instead of PAM250")
	fs.IntVarP(&cfg.Workers, "threads", "t", cfg.Workers, "number of search workers (default: GOMAXPROCS)")
	fs.StringVar(&cfg.HashName, "hash-type", cfg.HashName, "routing hash: fzorder, pzorder, fsum, psum")
	shift := fs.Uint("hash-shift", cfg.Shift, "right-shift applied to the routing hash before the modulus")
	noAffinity := fs.Bool("no-affinity", false, "disable worker thread CPU pinning")
	fs.IntSliceVar(&cfg.Affinity, "affinity", nil, "comma-separated CPU list to pin workers to")
	pCoresNum := fs.Int("p-cores-num", 0, "hybrid CPU: number of performance cores")
	pCoresSize := fs.Int("p-cores-size", 0, "hybrid CPU: routing slots per performance core")
	eCoresNum := fs.Int("e-cores-num", 0, "hybrid CPU: number of efficiency cores")
	eCoresSize := fs.Int("e-cores-size", 0, "hybrid CPU: routing slots per efficiency core")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "no effect: terminal output is never styled")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() < 1 {
		return cfg, fmt.Errorf("pastar: missing input FASTA file")
	}
	cfg.InputPath = fs.Arg(0)
	cfg.Shift = *shift
	cfg.NoAffinity = *noAffinity

	if *pCoresNum > 0 || *eCoresNum > 0 {
		cfg.Hybrid = config.HybridCPU{
			PCoresNum: *pCoresNum, PCoresSize: *pCoresSize,
			ECoresNum: *eCoresNum, ECoresSize: *eCoresSize,
		}
	}
	return cfg, nil
}

// align runs the full read -> search -> backtrace -> emit pipeline and
// returns the process exit code.
func align(log *zap.Logger, cfg config.Config) (int, error) {
	readTimer := timing.Start(log, "reading input")
	store, err := fasta.Read(cfg.InputPath)
	readTimer.Stop()
	if err != nil {
		return 1, err
	}

	var cm *costmodel.Model
	if cfg.Nucleotide {
		cm = costmodel.Nucleotide()
	} else {
		cm = costmodel.PAM250()
	}

	heuristicTimer := timing.Start(log, "building heuristic tables")
	h := heuristic.Build(store, cm)
	heuristicTimer.Stop()

	searchTimer := timing.Start(log, "searching")
	result, err := engine.Run(
		engine.Config{Seqs: store, Cost: cm, Heuristic: h},
		engine.WithContext(context.Background()),
		engine.WithWorkers(cfg.EffectiveWorkers()),
		engine.WithHashType(cfg.HashType()),
		engine.WithShift(cfg.Shift),
		engine.WithThreadMap(cfg.ThreadMap()),
		engine.WithCPUs(cfg.CPUs()),
		engine.WithLogger(log),
	)
	searchTimer.Stop()
	if err != nil {
		if err == engine.ErrNoSolution {
			return 2, err
		}
		return 1, err
	}

	aligned, err := backtrace.Reconstruct(result.Final, result.Closed, store)
	if err != nil {
		return 1, err
	}

	names := make([]string, store.N())
	for i := range names {
		names[i] = store.Name(i)
	}

	if cfg.OutputPath != "" {
		if err := fasta.Write(cfg.OutputPath, names, aligned); err != nil {
			return 1, err
		}
		return 0, nil
	}
	if err := printer.Print(os.Stdout, names, aligned); err != nil {
		return 1, err
	}
	return 0, nil
}
