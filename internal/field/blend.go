package field

import (
	"math"

	"github.com/gogpu/flowgrad/internal/trig"
)

const degToRad = math.Pi / 180

// Mode selects how a displaced coordinate becomes a gradient position.
type Mode uint8

const (
	// Smooth is a linear gradient along the gradient angle.
	Smooth Mode = iota
	// Radial uses the Euclidean distance from a biased center.
	Radial
	// Angular sweeps around the origin.
	Angular
	// Diamond uses the L1 distance from a biased center.
	Diamond
	// Vortex is a decaying spiral around a biased center.
	Vortex
)

var modeNames = [...]string{
	Smooth:  "smooth",
	Radial:  "radial",
	Angular: "angular",
	Diamond: "diamond",
	Vortex:  "vortex",
}

// Modes returns all modes in declaration order.
func Modes() []Mode {
	return []Mode{Smooth, Radial, Angular, Diamond, Vortex}
}

// ParseMode resolves a mode name. Unknown names resolve to Smooth.
func ParseMode(s string) Mode {
	for m, name := range modeNames {
		if s == name {
			return Mode(m)
		}
	}
	return Smooth
}

// String returns the wire name of the mode.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return modeNames[Smooth]
}

// Blender maps a displaced coordinate to a scalar gradient position.
// All mode-dependent constants are resolved at construction.
type Blender struct {
	tab  *trig.Table
	mode Mode

	cx, cy float64 // mode-specific center
	offset float64 // smooth: linear offset, angular: angle offset

	cosA, sinA float64 // smooth: gradient direction
	spiral     float64 // vortex: seed phase
}

// NewBlender resolves centers and offsets for mode from the center bias,
// the gradient angle in degrees (smooth only) and the seed (vortex only).
func NewBlender(tab *trig.Table, mode Mode, centerBias, gradientAngleDeg, seed float64) Blender {
	b := Blender{tab: tab, mode: mode}
	bias := centerBias - 0.5

	switch mode {
	case Radial:
		b.cx, b.cy = bias*1.5, bias*1.5
	case Angular:
		b.offset = bias * math.Pi
	case Diamond:
		b.cx, b.cy = bias*1.2, bias*1.2
	case Vortex:
		b.cx, b.cy = bias*2.0, bias*2.0
		b.spiral = seed * 0.1
	default:
		b.mode = Smooth
		b.offset = bias * 2.0
		b.sinA, b.cosA = math.Sincos(gradientAngleDeg * degToRad)
	}
	return b
}

// Mode returns the resolved mode.
func (b *Blender) Mode() Mode {
	return b.mode
}

// Position returns the gradient position of (fx, fy), roughly in [0, 1].
func (b *Blender) Position(fx, fy float64) float64 {
	switch b.mode {
	case Radial:
		dx, dy := fx-b.cx, fy-b.cy
		return math.Sqrt(dx*dx + dy*dy)

	case Angular:
		angle := math.Atan2(fy, fx) + b.offset
		pos := math.Mod((angle+math.Pi)/(2*math.Pi), 1)
		if pos < 0 {
			pos++
		}
		if pos >= 1 {
			pos = 0
		}
		return pos

	case Diamond:
		return (math.Abs(fx-b.cx) + math.Abs(fy-b.cy)) * 0.7

	case Vortex:
		dx, dy := fx-b.cx, fy-b.cy
		radius := math.Sqrt(dx*dx + dy*dy)
		angle := math.Atan2(dy, dx)
		spiral := angle + radius*3.0 + b.spiral
		decay := math.Exp(-radius * 2.0)
		pattern := b.tab.Sin(spiral*2.0)*decay + radius*0.3
		return (pattern + 1.0) * 0.5

	default:
		rotated := fx*b.cosA + fy*b.sinA
		return (rotated + b.offset + 1.0) * 0.5
	}
}
