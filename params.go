package flowgrad

import "github.com/gogpu/flowgrad/internal/field"

// BlendMode selects the geometry that turns a warped coordinate into a
// gradient position.
type BlendMode = field.Mode

// Blend modes. ParseBlendMode maps unknown names to BlendSmooth.
const (
	BlendSmooth  = field.Smooth
	BlendRadial  = field.Radial
	BlendAngular = field.Angular
	BlendDiamond = field.Diamond
	BlendVortex  = field.Vortex
)

// ParseBlendMode resolves a mode name ("smooth", "radial", "angular",
// "diamond", "vortex"). Any other string resolves to BlendSmooth.
func ParseBlendMode(s string) BlendMode {
	return field.ParseMode(s)
}

// BlendModes returns every blend mode in declaration order.
func BlendModes() []BlendMode {
	return field.Modes()
}

// MinZoom is the smallest effective zoom; lower values, including zero and
// negatives, render as MinZoom.
const MinZoom = field.MinZoom

// Stop count limits. A ramp with a single stop is accepted and renders flat.
const (
	MinColors = 2
	MaxColors = 8
)

// Params is the full parameter set of one gradient. It is a value type:
// the generator keeps its own copy.
type Params struct {
	Seed              uint32
	BlendMode         string
	ColorSpread       float64
	FlowIntensity     float64
	OrganicDistortion float64
	ColorVariance     float64
	CenterBias        float64
	OffsetX           float64
	OffsetY           float64
	Zoom              float64
	CanvasRotation    float64 // degrees
	GradientAngle     float64 // degrees, smooth mode only
	Colors            []RGBA

	// Adjust is applied to images by Image, Thumbnail and the CLI; the raw
	// buffers of Generate and Fill are left untouched.
	Adjust Adjustments
}

// DefaultParams returns the built-in parameter set.
func DefaultParams() Params {
	return Params{
		Seed:              42,
		BlendMode:         "smooth",
		ColorSpread:       0.7,
		FlowIntensity:     0.3,
		OrganicDistortion: 0.2,
		ColorVariance:     0.1,
		CenterBias:        0.5,
		Zoom:              1,
		Colors: []RGBA{
			{1.0, 0.4, 0.2, 1.0},
			{0.2, 0.2, 0.3, 1.0},
			{0.6, 0.8, 0.9, 1.0},
			{0.1, 0.1, 0.1, 1.0},
		},
		Adjust: Adjustments{NoiseScale: 1},
	}
}

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	p.Colors = append([]RGBA(nil), p.Colors...)
	return p
}

// Mode returns the resolved blend mode of p.
func (p Params) Mode() BlendMode {
	return ParseBlendMode(p.BlendMode)
}

func (p Params) config() field.Config {
	return field.Config{
		Seed:              p.Seed,
		Mode:              p.Mode(),
		ColorSpread:       p.ColorSpread,
		FlowIntensity:     p.FlowIntensity,
		OrganicDistortion: p.OrganicDistortion,
		ColorVariance:     p.ColorVariance,
		CenterBias:        p.CenterBias,
		OffsetX:           p.OffsetX,
		OffsetY:           p.OffsetY,
		Zoom:              p.Zoom,
		CanvasRotation:    p.CanvasRotation,
		GradientAngle:     p.GradientAngle,
	}
}

func (p Params) stops() []field.Color {
	stops := make([]field.Color, len(p.Colors))
	for i, c := range p.Colors {
		stops[i] = c.stop()
	}
	return stops
}
