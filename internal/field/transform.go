package field

import (
	"math"

	"golang.org/x/image/math/f64"
)

// MinZoom is the smallest zoom honoured by the transform. Lower values,
// including zero and negatives, are clamped to it.
const MinZoom = 0.1

// offsetScale converts user offsets (pixel-like units) into sample space.
const offsetScale = 0.001

// Viewport maps pixel indices of a width×height image to [-1, 1].
type Viewport struct {
	invW, invH float64
}

// NewViewport returns the viewport for an image of the given size.
// Zero dimensions yield a viewport that maps every index to -1 on that axis;
// no pixels exist on such an axis, so the value is never used.
func NewViewport(width, height int) Viewport {
	var v Viewport
	if width > 0 {
		v.invW = 1 / float64(width)
	}
	if height > 0 {
		v.invH = 1 / float64(height)
	}
	return v
}

// Normalize maps pixel (px, py) to normalized device coordinates.
func (v Viewport) Normalize(px, py int) (nx, ny float64) {
	nx = (float64(px)*v.invW)*2 - 1
	ny = (float64(py)*v.invH)*2 - 1
	return nx, ny
}

// NormalizeY maps only the row index; used by fill loops that hoist ny.
func (v Viewport) NormalizeY(py int) float64 {
	return (float64(py)*v.invH)*2 - 1
}

// NormalizeX maps only the column index.
func (v Viewport) NormalizeX(px int) float64 {
	return (float64(px)*v.invW)*2 - 1
}

// Transform rotates, zooms and offsets normalized coordinates into sample
// space. The rotation lives in the linear part of an affine matrix whose
// translation is zero; zoom and offset are applied afterwards so that the
// offset is independent of the zoom level.
type Transform struct {
	rot    f64.Aff3
	zoom   float64
	offset f64.Vec2
}

// NewTransform builds the transform for a canvas rotation in degrees,
// a zoom factor and an offset in user units.
func NewTransform(rotationDeg, zoom, offsetX, offsetY float64) Transform {
	if !(zoom >= MinZoom) {
		zoom = MinZoom
	}
	s, c := math.Sincos(rotationDeg * degToRad)
	return Transform{
		rot: f64.Aff3{
			c, -s, 0,
			s, c, 0,
		},
		zoom:   1 / zoom,
		offset: f64.Vec2{offsetX * offsetScale, offsetY * offsetScale},
	}
}

// Apply maps normalized (nx, ny) to sample coordinates.
func (t *Transform) Apply(nx, ny float64) (x, y float64) {
	m := &t.rot
	rx := m[0]*nx + m[1]*ny + m[2]
	ry := m[3]*nx + m[4]*ny + m[5]
	return rx*t.zoom + t.offset[0], ry*t.zoom + t.offset[1]
}

// Zoom returns the effective scale factor 1/max(zoom, MinZoom).
func (t *Transform) Zoom() float64 {
	return t.zoom
}
