package flowgrad

import (
	"math"

	"github.com/gogpu/flowgrad/internal/rng"
)

// DefaultCreativity scales the ranges used by RandomizeBlending.
const DefaultCreativity = 0.8

// RandomColors returns n reproducible colors for seed: hue anywhere on the
// wheel, saturation 50-100%, lightness 30-70%.
func RandomColors(seed int64, n int) []RGBA {
	r := rng.New(seed)
	colors := make([]RGBA, n)
	for i := range colors {
		hue := r.Next() * 360
		sat := 50 + r.Next()*50
		light := 30 + r.Next()*40
		colors[i] = HSL(hue, sat/100, light/100)
	}
	return colors
}

// RandomizeColors replaces the stops with RandomColors, keeping the current
// stop count.
func (g *Generator) RandomizeColors(seed int64) {
	p := g.Params()
	p.Colors = RandomColors(seed, stopCount(len(p.Colors)))
	g.UpdateParams(p)
}

// RandomizeBlending returns p with seed, flow, organic distortion, color
// variance, color spread and blend mode drawn from seed. creativity scales
// the ranges; 0 leaves flow, distortion and variance at zero and the spread
// at 0.5. Colors and composition are kept.
func RandomizeBlending(p Params, seed uint32, creativity float64) Params {
	if math.IsNaN(creativity) || creativity < 0 {
		creativity = 0
	}
	r := rng.New(int64(seed))
	p = p.Clone()
	p.Seed = seed
	p.FlowIntensity = r.Next() * creativity
	p.OrganicDistortion = r.Next() * creativity
	p.ColorVariance = r.Next() * creativity * 0.3
	p.ColorSpread = 0.5 + r.Next()*creativity
	modes := BlendModes()
	p.BlendMode = modes[r.Intn(len(modes))].String()
	return p
}

// RandomizeWithCreativity applies RandomizeBlending to the current
// parameters.
func (g *Generator) RandomizeWithCreativity(seed uint32, creativity float64) {
	g.UpdateParams(RandomizeBlending(g.Params(), seed, creativity))
}
