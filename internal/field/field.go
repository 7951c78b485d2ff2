// Package field composes the per-pixel gradient pipeline: coordinate
// transform, organic warp, blend-mode mapping and color ramp lookup.
//
// A Field is compiled once from a Config and a list of stops and is then
// read-only, so a single Field may be sampled from many goroutines.
package field

import "github.com/gogpu/flowgrad/internal/trig"

// Config carries the numeric inputs of the pipeline.
type Config struct {
	Seed              uint32
	Mode              Mode
	ColorSpread       float64
	FlowIntensity     float64
	OrganicDistortion float64
	ColorVariance     float64
	CenterBias        float64
	OffsetX, OffsetY  float64
	Zoom              float64
	CanvasRotation    float64 // degrees
	GradientAngle     float64 // degrees, smooth mode only
}

// Field is a compiled pipeline.
type Field struct {
	tab *trig.Table

	xf    Transform
	warp  Warp
	blend Blender
	ramp  Ramp

	seed     float64
	spread   float64
	variance float64
}

// New compiles cfg and stops against tab.
func New(tab *trig.Table, cfg Config, stops []Color) *Field {
	seed := float64(cfg.Seed)
	return &Field{
		tab:      tab,
		xf:       NewTransform(cfg.CanvasRotation, cfg.Zoom, cfg.OffsetX, cfg.OffsetY),
		warp:     NewWarp(tab, seed, cfg.OrganicDistortion, cfg.FlowIntensity),
		blend:    NewBlender(tab, cfg.Mode, cfg.CenterBias, cfg.GradientAngle, seed),
		ramp:     NewRamp(stops),
		seed:     seed,
		spread:   cfg.ColorSpread,
		variance: cfg.ColorVariance,
	}
}

// Mode returns the resolved blend mode.
func (f *Field) Mode() Mode {
	return f.blend.Mode()
}

// Stops returns the number of ramp stops.
func (f *Field) Stops() int {
	return f.ramp.Len()
}

// Transform exposes the compiled coordinate transform.
func (f *Field) Transform() *Transform {
	return &f.xf
}

// Sample returns the color at normalized coordinates (nx, ny).
func (f *Field) Sample(nx, ny float64) Color {
	x, y := f.xf.Apply(nx, ny)
	return f.Shade(x, y)
}

// Position returns the final ramp position for sample coordinates (x, y):
// the blend position scaled by the spread plus the variance term.
func (f *Field) Position(x, y float64) float64 {
	fx, fy := f.warp.Displace(x, y)
	pos := f.blend.Position(fx, fy) * f.spread
	v := f.tab.Sin(fx*organicFreq[6]+fy*organicFreq[7]+f.seed) * f.variance
	return pos + v
}

// Shade returns the color for sample coordinates (x, y), already transformed.
func (f *Field) Shade(x, y float64) Color {
	return f.ramp.At(f.Position(x, y))
}
