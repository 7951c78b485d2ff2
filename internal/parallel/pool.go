package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of goroutines that run row-band fills.
//
// Work items are pulled from one shared queue, so a worker that finishes a
// cheap band immediately picks up the next one. Bands of a single image are
// disjoint, which is the only synchronization the fill relies on.
//
// Thread safety: Pool is safe for concurrent use. Close must not race with
// an in-flight ExecuteAll.
type Pool struct {
	workers int
	queue   chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		queue:   make(chan func(), max(workers*4, 8)),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case work := <-p.queue:
			work()
		}
	}
}

// ExecuteAll runs every item and returns when all have finished.
// After Close the items run on the calling goroutine, so callers always
// observe completed work.
func (p *Pool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() || p.workers == 1 || len(work) == 1 {
		for _, fn := range work {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for _, fn := range work {
		p.queue <- func() {
			defer wg.Done()
			fn()
		}
	}
	wg.Wait()
}

// Rows splits height rows into bands and calls fn for each band in parallel.
// fn must only touch data belonging to rows [y0, y1).
func (p *Pool) Rows(height int, fn func(y0, y1 int)) {
	bands := SplitRows(height, p.workers)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b.Y0, b.Y1) }
	}
	p.ExecuteAll(work)
}

// Close stops the workers. Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still has live workers.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
