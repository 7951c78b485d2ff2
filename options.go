package flowgrad

import "github.com/gogpu/flowgrad/internal/trig"

// DefaultParallelThreshold is the pixel count above which Generate splits
// rows across worker goroutines (512×512).
const DefaultParallelThreshold = 512 * 512

// Option configures a Generator during creation.
//
// Example:
//
//	g := flowgrad.New(
//	    flowgrad.WithParallelThreshold(1 << 20),
//	    flowgrad.WithWorkers(4),
//	)
type Option func(*options)

// options holds optional configuration for Generator creation.
type options struct {
	tableSize int
	threshold int
	workers   int
	params    *Params
}

// defaultOptions returns the default generator options.
func defaultOptions() options {
	return options{
		tableSize: trig.DefaultSize,
		threshold: DefaultParallelThreshold,
		workers:   0, // GOMAXPROCS
	}
}

// WithTableSize sets the number of trig samples per turn. The size is a
// build-time constant for most programs; New panics if it is not a power
// of two.
func WithTableSize(n int) Option {
	return func(o *options) {
		o.tableSize = n
	}
}

// WithParallelThreshold sets the pixel count above which fills run on the
// worker pool. Zero forces the parallel path for every non-empty image; a
// negative value is treated as zero.
func WithParallelThreshold(pixels int) Option {
	return func(o *options) {
		o.threshold = max(pixels, 0)
	}
}

// WithWorkers sets the worker count of the fill pool.
// Zero or negative uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithParams sets the initial parameters instead of DefaultParams.
func WithParams(p Params) Option {
	c := p.Clone()
	return func(o *options) {
		o.params = &c
	}
}
