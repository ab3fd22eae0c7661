package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/msapastar/pastar/internal/routing"
)

// Sentinel errors returned by Config.Validate.
var (
	// ErrMissingInput indicates no FASTA input path was given.
	ErrMissingInput = errors.New("config: input path is required")

	// ErrBadWorkerCount indicates Workers was set to a non-positive value.
	ErrBadWorkerCount = errors.New("config: worker count must be positive")

	// ErrBadShift indicates Shift would discard every routing bit.
	ErrBadShift = errors.New("config: shift must be less than 64")

	// ErrBadHybridTuple indicates a partially-specified hybrid CPU topology:
	// once either core count is positive, all four fields (both counts and
	// both sizes) must be positive.
	ErrBadHybridTuple = errors.New("config: hybrid CPU tuple must pair a positive core count with a positive per-core size")

	// ErrBadAffinity indicates a negative CPU index in the affinity list.
	ErrBadAffinity = errors.New("config: affinity CPU indices must be non-negative")
)

// HybridCPU describes a heterogeneous performance/efficiency core layout
// for worker-to-thread affinity. A zero value means "no hybrid mapping";
// routing falls back to a flat worker index.
type HybridCPU struct {
	PCoresNum  int
	PCoresSize int
	ECoresNum  int
	ECoresSize int
}

// enabled reports whether a non-default hybrid topology was requested.
func (h HybridCPU) enabled() bool {
	return h.PCoresNum > 0 || h.ECoresNum > 0
}

// Config is the fully-assembled, validated runtime configuration for one
// pastar invocation.
type Config struct {
	InputPath  string
	OutputPath string

	// Nucleotide selects the identity nucleotide cost model; otherwise
	// PAM250 is used.
	Nucleotide bool

	Workers  int
	HashName string
	Shift    uint
	Hybrid   HybridCPU

	// Affinity lists the CPUs worker threads are pinned to, one per worker
	// (reused round-robin when shorter than the worker count). Empty means
	// no pinning. NoAffinity forces pinning off even when a list or hybrid
	// topology was given.
	Affinity   []int
	NoAffinity bool

	// NoColor is set by the --no-color flag but is not read anywhere;
	// printer output carries no ANSI styling either way.
	NoColor bool
}

// Default returns a Config with GOMAXPROCS workers, the PZorder hash at
// shift 12, and no hybrid topology.
func Default() Config {
	return Config{
		Workers:  runtime.GOMAXPROCS(0),
		HashName: routing.PZorder.String(),
		Shift:    12,
	}
}

// Validate checks the configuration for internal consistency, returning
// the first violated sentinel.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return ErrMissingInput
	}
	if c.Workers < 1 {
		return ErrBadWorkerCount
	}
	if c.Shift >= 64 {
		return ErrBadShift
	}
	if _, err := routing.ParseHashType(c.HashName); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Hybrid.enabled() {
		if c.Hybrid.PCoresNum <= 0 || c.Hybrid.PCoresSize <= 0 ||
			c.Hybrid.ECoresNum <= 0 || c.Hybrid.ECoresSize <= 0 {
			return ErrBadHybridTuple
		}
	}
	for _, cpu := range c.Affinity {
		if cpu < 0 {
			return ErrBadAffinity
		}
	}
	return nil
}

// HashType returns the parsed routing.HashType, assuming Validate has
// already succeeded.
func (c Config) HashType() routing.HashType {
	h, _ := routing.ParseHashType(c.HashName)
	return h
}

// ThreadMap returns the hybrid-CPU worker indirection table, or nil when
// no hybrid topology was configured.
func (c Config) ThreadMap() []int {
	if !c.Hybrid.enabled() {
		return nil
	}
	return routing.HybridMap(c.Hybrid.PCoresNum, c.Hybrid.PCoresSize, c.Hybrid.ECoresNum, c.Hybrid.ECoresSize)
}

// CPUs returns the CPU list worker threads should be pinned to, or nil
// when pinning is disabled or unconfigured. With a hybrid topology and no
// explicit list, workers pin to CPUs 0..cores-1 in order, P-cores first,
// matching the layout HybridMap assumes.
func (c Config) CPUs() []int {
	if c.NoAffinity {
		return nil
	}
	if len(c.Affinity) > 0 {
		return c.Affinity
	}
	if c.Hybrid.enabled() {
		cores := c.Hybrid.PCoresNum + c.Hybrid.ECoresNum
		cpus := make([]int, cores)
		for i := range cpus {
			cpus[i] = i
		}
		return cpus
	}
	return nil
}

// EffectiveWorkers returns the worker count the engine should actually
// launch: the distinct core count named by the hybrid topology when one
// is configured (every ThreadMap entry must address a live worker
// goroutine), otherwise Workers unchanged.
func (c Config) EffectiveWorkers() int {
	if !c.Hybrid.enabled() {
		return c.Workers
	}
	return c.Hybrid.PCoresNum + c.Hybrid.ECoresNum
}
