package field

import "math"

// Color is a straight-alpha RGBA color with channels nominally in [0, 1].
type Color [4]float64

// Ramp interpolates an ordered list of stops with smoothstep easing.
// Stops are evenly spaced over [0, 1].
type Ramp struct {
	stops []Color
}

// NewRamp copies stops into a ramp. An empty list yields a ramp with a
// single transparent stop so that lookups stay total.
func NewRamp(stops []Color) Ramp {
	if len(stops) == 0 {
		return Ramp{stops: []Color{{}}}
	}
	return Ramp{stops: append([]Color(nil), stops...)}
}

// Len returns the number of stops.
func (r *Ramp) Len() int {
	return len(r.stops)
}

// Wrap folds t into [0, 1] with a triangle wave of period 2:
// t mod 2, mirrored on (1, 2).
func Wrap(t float64) float64 {
	t = math.Mod(math.Mod(t, 2)+2, 2)
	if t > 1 {
		return 2 - t
	}
	return t
}

// Smoothstep returns t²(3-2t).
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// At returns the color at position t, which is wrapped into [0, 1] first.
func (r *Ramp) At(t float64) Color {
	n := len(r.stops)
	if n <= 1 {
		return r.stops[0]
	}

	scaled := Wrap(t) * float64(n-1)
	segment := math.Floor(scaled)
	local := scaled - segment

	i := int(segment)
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	j := min(i+1, n-1)
	c1, c2 := &r.stops[i], &r.stops[j]

	w := Smoothstep(local)
	inv := 1 - w
	return Color{
		c1[0]*inv + c2[0]*w,
		c1[1]*inv + c2[1]*w,
		c1[2]*inv + c2[2]*w,
		c1[3]*inv + c2[3]*w,
	}
}
