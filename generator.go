package flowgrad

import (
	"encoding/json"
	"sync"

	"github.com/gogpu/flowgrad/internal/field"
	"github.com/gogpu/flowgrad/internal/parallel"
	"github.com/gogpu/flowgrad/internal/trig"
)

// Generator synthesizes gradient textures from a parameter set.
//
// A Generator owns its trig table, its current parameters and the field
// compiled from them. UpdateParams (and the preset and randomization
// helpers built on it) replace that state wholesale; Generate only reads
// it. Generate may run concurrently with other Generate calls on the same
// Generator, but must not overlap an update: there is no internal locking
// between writers and readers.
type Generator struct {
	tab *trig.Table

	params Params
	field  *field.Field

	threshold int
	workers   int

	poolOnce sync.Once
	pool     *parallel.Pool
}

// New creates a generator with default parameters and a prebuilt trig table.
// It panics only if WithTableSize was given a size that is not a power of two.
func New(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Generator{
		tab:       trig.MustNew(o.tableSize),
		threshold: o.threshold,
		workers:   o.workers,
	}
	g.apply(DefaultParams())
	if o.params != nil {
		g.UpdateParams(*o.params)
	}
	return g
}

// UpdateParams replaces the current parameters and recompiles derived state.
//
// Degenerate color lists are neutralized rather than rejected: an empty list
// keeps the previous stops, and stops past MaxColors are dropped.
func (g *Generator) UpdateParams(p Params) {
	p = p.Clone()
	switch n := len(p.Colors); {
	case n == 0:
		Logger().Warn("flowgrad: empty color list, keeping previous stops",
			"stops", len(g.params.Colors))
		p.Colors = append([]RGBA(nil), g.params.Colors...)
	case n > MaxColors:
		Logger().Warn("flowgrad: too many colors, truncating", "colors", n, "max", MaxColors)
		p.Colors = p.Colors[:MaxColors]
	}
	g.apply(p)
}

// UpdateParamsJSON decodes a wire-format document and applies it.
// On error the previous parameters stay in effect and the error is a
// *ParseError.
func (g *Generator) UpdateParamsJSON(data []byte) error {
	p, err := ParseParams(data)
	if err != nil {
		Logger().Debug("flowgrad: rejected params", "err", err)
		return err
	}
	g.UpdateParams(p)
	return nil
}

func (g *Generator) apply(p Params) {
	g.params = p
	g.field = field.New(g.tab, p.config(), p.stops())
	Logger().Debug("flowgrad: params updated",
		"seed", p.Seed,
		"mode", g.field.Mode().String(),
		"stops", g.field.Stops())
}

// Params returns a copy of the current parameters.
func (g *Generator) Params() Params {
	return g.params.Clone()
}

// ParamsJSON encodes the current parameters in the wire format accepted by
// UpdateParamsJSON.
func (g *Generator) ParamsJSON() ([]byte, error) {
	return json.Marshal(g.params)
}

// Mode returns the resolved blend mode of the current parameters.
func (g *Generator) Mode() BlendMode {
	return g.field.Mode()
}

// ParallelThreshold returns the pixel count above which fills run in parallel.
func (g *Generator) ParallelThreshold() int {
	return g.threshold
}

// Close releases the fill worker pool, if one was started. The generator
// stays usable; later parallel fills run on the calling goroutine.
func (g *Generator) Close() {
	g.poolOnce.Do(func() {})
	if g.pool != nil {
		g.pool.Close()
	}
}

func (g *Generator) workerPool() *parallel.Pool {
	g.poolOnce.Do(func() {
		g.pool = parallel.NewPool(g.workers)
	})
	if g.pool == nil {
		return closedPool
	}
	return g.pool
}

// closedPool runs work inline; it backs generators closed before their
// first parallel fill.
var closedPool = func() *parallel.Pool {
	p := parallel.NewPool(1)
	p.Close()
	return p
}()
