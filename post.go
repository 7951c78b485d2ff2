package flowgrad

import (
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Adjustments is the post-processing stage applied to rendered images:
// luminance-banded levels, an HSL hue and saturation shift, and a
// sinusoidal grain. Stages run in that order per pixel, and strong level
// changes are followed by an edge-smoothing pass. Alpha is never touched.
//
// The zero value (or any value with NoiseScale alone set) is the identity.
type Adjustments struct {
	LevelsShadows    float64 // percent, fades out towards luminance 0.33
	LevelsMidtones   float64 // percent, luminance [0.33, 0.66)
	LevelsHighlights float64 // percent, fades in from luminance 0.66
	HueShift         float64 // degrees
	Saturation       float64 // percent added to HSL saturation
	NoiseAmount      float64 // percent; zero or negative disables grain
	NoiseScale       float64 // grain frequency; 0 means 1
}

// Luminance bands used by the levels stage.
const (
	shadowBand    = 0.33
	highlightBand = 0.66
)

// Edge smoothing constants. A pixel is smoothed when its luminance differs
// from a neighbour by more than edgeContrast.
const (
	smoothingThreshold = 0.1 // summed |levels| that enables the pass
	edgeContrast       = 0.1
	maxEdgeBlend       = 0.6
	edgeWeightSum      = 4 + 4*1.0 + 4*0.7
)

// edgeNeighbors lists the 8-neighbourhood with its averaging weights.
var edgeNeighbors = [8]struct {
	dx, dy int
	w      float64
}{
	{-1, -1, 0.7}, {0, -1, 1}, {1, -1, 0.7},
	{-1, 0, 1}, {1, 0, 1},
	{-1, 1, 0.7}, {0, 1, 1}, {1, 1, 0.7},
}

// IsZero reports whether a leaves every pixel unchanged.
func (a Adjustments) IsZero() bool {
	return !a.hasLevels() && !a.hasColor() && !(a.NoiseAmount > 0)
}

func (a Adjustments) hasLevels() bool {
	return a.LevelsShadows != 0 || a.LevelsMidtones != 0 || a.LevelsHighlights != 0
}

func (a Adjustments) hasColor() bool {
	return a.HueShift != 0 || a.Saturation != 0
}

// Apply adjusts img in place.
func (a Adjustments) Apply(img *image.NRGBA) {
	if a.IsZero() {
		return
	}

	shadows := a.LevelsShadows / 100
	midtones := a.LevelsMidtones / 100
	highlights := a.LevelsHighlights / 100
	sat := a.Saturation / 100
	hasLevels, hasColor := a.hasLevels(), a.hasColor()

	grain := 0.0
	if a.NoiseAmount > 0 {
		grain = a.NoiseAmount / 100 * 0.1
	}
	scale := a.NoiseScale
	if scale == 0 {
		scale = 1
	}

	b := img.Bounds()
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		row := img.Pix[off : off+w*4]
		for x := 0; x < w; x++ {
			px := row[x*4 : x*4+3 : x*4+3]
			r := float64(px[0]) / 255
			g := float64(px[1]) / 255
			bl := float64(px[2]) / 255

			if hasLevels {
				d := levelsOffset(luminance(r, g, bl), shadows, midtones, highlights)
				r, g, bl = clamp01(r+d), clamp01(g+d), clamp01(bl+d)
			}
			if hasColor {
				r, g, bl = shiftHSL(r, g, bl, a.HueShift, sat)
			}
			if grain > 0 {
				n := grainAt(x, y, scale) * grain
				r, g, bl = clamp01(r+n), clamp01(g+n), clamp01(bl+n)
			}

			px[0] = round255(r)
			px[1] = round255(g)
			px[2] = round255(bl)
		}
	}

	if hasLevels {
		intensity := math.Abs(shadows) + math.Abs(midtones) + math.Abs(highlights)
		if intensity > smoothingThreshold {
			smoothEdges(img, min(intensity*0.8, 1))
		}
	}
}

func luminance(r, g, b float64) float64 {
	return 0.299*r + 0.587*g + 0.114*b
}

// levelsOffset returns the amount added to each channel of a pixel with
// luminance lum.
func levelsOffset(lum, shadows, midtones, highlights float64) float64 {
	switch {
	case lum < shadowBand:
		return shadows * (1 - lum/shadowBand)
	case lum < highlightBand:
		return midtones
	default:
		return highlights * ((lum - highlightBand) / (1 - highlightBand))
	}
}

// shiftHSL rotates the hue by hueDeg degrees and adds satDelta to the
// saturation, keeping lightness.
func shiftHSL(r, g, b, hueDeg, satDelta float64) (float64, float64, float64) {
	h, s, l := colorful.Color{R: r, G: g, B: b}.Hsl()
	h = math.Mod(h+hueDeg, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsl(h, clamp01(s+satDelta), l).Clamped()
	return c.R, c.G, c.B
}

// grainAt is the grain field at pixel (x, y), in [-1, 1].
func grainAt(x, y int, scale float64) float64 {
	fx, fy := float64(x)*scale, float64(y)*scale
	return (math.Sin(fx*0.1)*math.Cos(fy*0.1) + math.Sin(fx*0.07)*math.Cos(fy*0.13)) * 0.5
}

// smoothEdges blends high-contrast interior pixels towards a weighted 3×3
// average of the unadjusted neighbourhood. Border pixels are left as is.
func smoothEdges(img *image.NRGBA, strength float64) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		return
	}

	src := make([]byte, len(img.Pix))
	copy(src, img.Pix)
	lum := func(i int) float64 {
		return luminance(float64(src[i]), float64(src[i+1]), float64(src[i+2])) / 255
	}

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			ci := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			center := lum(ci)

			var idx [8]int
			contrast := 0.0
			for k, n := range edgeNeighbors {
				idx[k] = img.PixOffset(b.Min.X+x+n.dx, b.Min.Y+y+n.dy)
				contrast = max(contrast, math.Abs(center-lum(idx[k])))
			}
			if contrast <= edgeContrast {
				continue
			}

			blend := min(contrast*contrast*strength*2, maxEdgeBlend)
			for c := range 3 {
				avg := float64(src[ci+c]) * 4
				for k, n := range edgeNeighbors {
					avg += float64(src[idx[k]+c]) * n.w
				}
				avg /= edgeWeightSum
				img.Pix[ci+c] = uint8(float64(src[ci+c])*(1-blend) + avg*blend)
			}
		}
	}
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return min(v, 1)
}

// round255 converts a [0, 1] channel to a byte, rounding to nearest.
func round255(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
