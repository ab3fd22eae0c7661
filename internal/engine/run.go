package engine

import (
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/msapastar/pastar/internal/affinity"
	"github.com/msapastar/pastar/internal/coord"
	"github.com/msapastar/pastar/internal/node"
	"github.com/msapastar/pastar/internal/pqueue"
	"github.com/msapastar/pastar/internal/routing"
)

// worker owns one partition's open and closed sets, each under its own
// mutex so a worker never blocks its peers while examining its own state.
type worker struct {
	id int

	openMu sync.Mutex
	open   *pqueue.Queue

	closedMu sync.Mutex
	closed   map[coord.Coord]node.Node

	processed atomic.Int64
}

func newWorker(id int) *worker {
	return &worker{id: id, open: pqueue.New(), closed: make(map[coord.Coord]node.Node)}
}

func (w *worker) openLen() int {
	w.openMu.Lock()
	defer w.openMu.Unlock()
	return w.open.Len()
}

// allEmpty reports whether every worker's open set is currently drained.
func allEmpty(workers []*worker) bool {
	for _, w := range workers {
		if w.openLen() > 0 {
			return false
		}
	}
	return true
}

// Run launches one goroutine per configured worker and searches the
// lattice described by cfg to completion, returning the lowest-cost goal
// node found and the merged closed set backtrace needs to walk parent
// links.
func Run(cfg Config, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	workers := make([]*worker, o.Workers)
	for i := range workers {
		workers[i] = newWorker(i)
	}

	origin := node.Node{Pos: cfg.Seqs.Initial()}
	origin.F = origin.G + cfg.Heuristic.Eval(origin.Pos)
	ownerIdx := routing.Owner(origin.Pos, o.HashType, o.Workers, o.Shift, o.ThreadMap)
	pqueue.Push(workers[ownerIdx].open, origin)

	final := cfg.Seqs.Final()

	var bestMu sync.Mutex
	var best node.Node
	var haveBest bool
	var endFlag atomic.Bool

	o.Log.Info("search started",
		zap.Int("workers", o.Workers),
		zap.Stringer("hash", o.HashType),
		zap.Uint("shift", o.Shift))

	var wg sync.WaitGroup
	for _, w := range workers {
		wg.Add(1)
		go func(w *worker) {
			defer wg.Done()
			pinWorker(w.id, o)
			runWorker(w, workers, cfg, o, final, &endFlag, &bestMu, &best, &haveBest)
		}(w)
	}
	wg.Wait()

	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}
	if !haveBest {
		return nil, ErrNoSolution
	}

	processed := make([]int64, len(workers))
	for i, w := range workers {
		processed[i] = w.processed.Load()
	}
	res := &Result{Final: best, Closed: mergeClosed(workers), Processed: processed}
	o.Log.Info("search finished",
		zap.Int32("cost", best.G),
		zap.Int64("nodes_processed", res.TotalProcessed()))
	return res, nil
}

// pinWorker locks worker id's goroutine to an OS thread and binds that
// thread to its configured CPU. Pin failures are logged, not fatal: the
// search is still correct on an unpinned thread.
func pinWorker(id int, o Options) {
	if len(o.CPUs) == 0 {
		return
	}
	runtime.LockOSThread()
	cpu := o.CPUs[id%len(o.CPUs)]
	if err := affinity.Pin(cpu); err != nil {
		o.Log.Warn("cpu pin failed", zap.Int("worker", id), zap.Int("cpu", cpu), zap.Error(err))
	}
}

// runWorker is one partition's search loop: pop the cheapest own-open
// node, skip it if already closed at an equal-or-lower cost, commit it,
// and on reaching the goal update the shared best under its mutex and
// raise endFlag. Every valid neighbor is priced, given its heuristic
// estimate, routed to its owning worker, and pushed there after a
// stale-closed check — closed lock acquired and released before the open
// lock, so no goroutine ever holds two open-set locks at once.
func runWorker(
	w *worker,
	workers []*worker,
	cfg Config,
	o Options,
	final coord.Coord,
	endFlag *atomic.Bool,
	bestMu *sync.Mutex,
	best *node.Node,
	haveBest *bool,
) {
	emptyStreak := 0
	for {
		if o.Ctx.Err() != nil {
			return
		}
		if endFlag.Load() {
			return
		}

		w.openMu.Lock()
		if w.open.Len() == 0 {
			w.openMu.Unlock()
			emptyStreak++
			if emptyStreak > emptyPollThreshold {
				if allEmpty(workers) {
					return
				}
				emptyStreak = 0
			}
			runtime.Gosched()
			continue
		}
		n := pqueue.Pop(w.open)
		w.openMu.Unlock()
		emptyStreak = 0

		w.closedMu.Lock()
		if existing, ok := w.closed[n.Pos]; ok && existing.G <= n.G {
			w.closedMu.Unlock()
			continue
		}
		w.closed[n.Pos] = n
		w.closedMu.Unlock()
		w.processed.Add(1)

		if n.Pos.Equal(final) {
			bestMu.Lock()
			if !*haveBest || n.G < best.G {
				*best = n
				*haveBest = true
			}
			bestMu.Unlock()
			endFlag.Store(true)
			continue
		}

		for _, child := range childrenOf(n, cfg) {
			ownerIdx := routing.Owner(child.Pos, o.HashType, o.Workers, o.Shift, o.ThreadMap)
			target := workers[ownerIdx]

			target.closedMu.Lock()
			if existing, ok := target.closed[child.Pos]; ok && existing.G <= child.G {
				target.closedMu.Unlock()
				continue
			}
			target.closedMu.Unlock()

			target.openMu.Lock()
			pqueue.Push(target.open, child)
			target.openMu.Unlock()
		}
	}
}

// mergeClosed unions every worker's closed set, keeping the lower-cost
// entry if a position appears in more than one set. Only a position's
// routing owner pops and commits it, so the sets are disjoint in practice.
func mergeClosed(workers []*worker) map[coord.Coord]node.Node {
	merged := make(map[coord.Coord]node.Node)
	for _, w := range workers {
		for pos, n := range w.closed {
			if existing, ok := merged[pos]; !ok || n.G < existing.G {
				merged[pos] = n
			}
		}
	}
	return merged
}
