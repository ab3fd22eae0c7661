package engine

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/msapastar/pastar/internal/coord"
	"github.com/msapastar/pastar/internal/costmodel"
	"github.com/msapastar/pastar/internal/heuristic"
	"github.com/msapastar/pastar/internal/node"
	"github.com/msapastar/pastar/internal/routing"
	"github.com/msapastar/pastar/internal/seqstore"
)

// ErrNoSolution is returned when every worker drains without ever
// committing the goal node. A cancelled run returns the context's error
// instead.
var ErrNoSolution = errors.New("engine: no alignment found")

// ErrBadWorkerCount is returned by WithWorkers for a non-positive count.
var ErrBadWorkerCount = errors.New("engine: worker count must be positive")

// emptyPollThreshold is how many consecutive empty pops a worker tolerates
// before checking whether every worker has drained; polling keeps the
// common path free of a global barrier.
const emptyPollThreshold = 100

// Config is the immutable, fully-resolved input to a run: the sequences
// being aligned, the cost model scoring each move, and the heuristic
// guiding expansion. Passed explicitly by pointer; nothing lives in
// package-level state.
type Config struct {
	Seqs      *seqstore.Store
	Cost      *costmodel.Model
	Heuristic *heuristic.Heuristic
}

// Options configures a Run. Build with DefaultOptions and the With*
// constructors.
type Options struct {
	Ctx       context.Context
	Workers   int
	HashType  routing.HashType
	Shift     uint
	ThreadMap []int
	CPUs      []int
	Log       *zap.Logger
	err       error
}

// Option mutates an Options during construction.
type Option func(*Options)

// DefaultOptions returns single-worker, shift-12, Z-order-hashed defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Workers:  1,
		HashType: routing.FZorder,
		Shift:    12,
		Log:      zap.NewNop(),
	}
}

// WithContext sets the cancellation context checked between pops.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithWorkers sets the number of search partitions. n must be positive.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrBadWorkerCount
			return
		}
		o.Workers = n
	}
}

// WithHashType selects the routing hash scheme.
func WithHashType(h routing.HashType) Option {
	return func(o *Options) { o.HashType = h }
}

// WithShift sets the right-shift applied to a hash before the modulus.
func WithShift(shift uint) Option {
	return func(o *Options) { o.Shift = shift }
}

// WithThreadMap installs a hybrid-CPU worker-index indirection table, as
// built by routing.HybridMap.
func WithThreadMap(m []int) Option {
	return func(o *Options) { o.ThreadMap = m }
}

// WithCPUs pins each worker's OS thread to cpus[worker % len(cpus)]. An
// empty slice leaves placement to the OS scheduler.
func WithCPUs(cpus []int) Option {
	return func(o *Options) { o.CPUs = cpus }
}

// WithLogger installs the run-diagnostics logger. nil restores the no-op
// default.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log == nil {
			log = zap.NewNop()
		}
		o.Log = log
	}
}

// Result is the outcome of a completed run: the best goal node found, the
// merged closed set backtrace walks over, and how many nodes each worker
// committed along the way.
type Result struct {
	Final     node.Node
	Closed    map[coord.Coord]node.Node
	Processed []int64
}

// TotalProcessed sums the per-worker committed-node counters.
func (r *Result) TotalProcessed() int64 {
	var total int64
	for _, p := range r.Processed {
		total += p
	}
	return total
}
