package field

import "github.com/gogpu/flowgrad/internal/trig"

// Frequency multipliers for the organic distortion terms. The last two
// drive the positional color variance.
var organicFreq = [8]float64{3.0, 2.5, 1.8, 4.2, 5.1, 1.3, 7.3, 5.7}

// Frequency and phase multipliers for the flow layer: x and y frequency,
// then the seed phase factors of the first distortion term.
var flowFreq = [4]float64{2.0, 2.0, 0.1, 0.2}

// Weights of the three distortion products.
const (
	weight1 = 0.5
	weight2 = 0.3
	weight3 = 0.2
)

// Warp displaces sample coordinates with three sine/cosine products
// (organic distortion) plus a two-axis flow term.
type Warp struct {
	tab *trig.Table

	phase   [8]float64 // seed * {0.1 .. 0.8}
	organic float64
	flow    float64
}

// NewWarp precomputes seed phases and multipliers.
func NewWarp(tab *trig.Table, seed, organicDistortion, flowIntensity float64) Warp {
	w := Warp{
		tab:     tab,
		organic: organicDistortion,
		flow:    flowIntensity * 0.5,
	}
	w.phase[0] = seed * flowFreq[2]
	w.phase[1] = seed * flowFreq[3]
	w.phase[2] = seed * 0.3
	w.phase[3] = seed * 0.4
	w.phase[4] = seed * 0.5
	w.phase[5] = seed * 0.6
	w.phase[6] = seed * 0.7
	w.phase[7] = seed * 0.8
	return w
}

// Displace returns the warped coordinate for sample (x, y).
// The same organic offset is added to both axes.
func (w *Warp) Displace(x, y float64) (fx, fy float64) {
	tab := w.tab
	p := &w.phase

	d1 := tab.Sin(x*organicFreq[0]+p[0]) * tab.Cos(y*organicFreq[1]+p[1])
	d2 := tab.Cos(x*organicFreq[2]+p[2]) * tab.Sin(y*organicFreq[3]+p[3])
	d3 := tab.Sin(x*organicFreq[4]+p[4]) * tab.Cos(y*organicFreq[5]+p[5])

	offset := (d1*weight1 + d2*weight2 + d3*weight3) * w.organic

	flowX := tab.Sin(x*flowFreq[0]+p[6]) * w.flow
	flowY := tab.Cos(y*flowFreq[1]+p[7]) * w.flow

	return x + offset + flowX, y + offset + flowY
}
