// Package flowgrad synthesizes organic gradient textures on the CPU.
//
// # Overview
//
// A Generator turns a small parameter set of seed, warp strengths, blend
// mode, composition and up to eight color stops into a straight-alpha
// RGBA8 pixel buffer. Every pixel is computed independently: the pixel
// position is normalized, rotated, zoomed and offset, pushed through a
// sinusoidal warp field, mapped to a gradient position by the blend mode,
// and finally looked up in a ping-pong color ramp.
//
// # Quick Start
//
//	import "github.com/gogpu/flowgrad"
//
//	g := flowgrad.New()
//	defer g.Close()
//
//	// Pick a palette and a blend mode
//	_ = g.ApplyPreset("ocean")
//	p := g.Params()
//	p.BlendMode = "vortex"
//	g.UpdateParams(p)
//
//	// Render and save
//	img, _ := g.Image(1024, 768)
//	_ = flowgrad.SaveImage("ocean.png", img)
//
// # Parameters
//
// Params is a plain value. Hosts exchange it as a flat JSON document with
// snake_case keys and eight fixed color slots (see ParseParams and
// Generator.UpdateParamsJSON). Unknown blend mode names fall back to
// "smooth"; a zoom below MinZoom renders as MinZoom.
//
// Params.Adjust carries optional image adjustments (levels, hue and
// saturation, grain). Generator.Image applies them; Generate and Fill
// return the unadjusted field.
//
// # Determinism
//
// Output depends only on the parameters, the dimensions and the trig table
// size. Large images are filled on a worker pool in row bands; the result
// is byte-identical to the sequential fill.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - Pixel (x, y) normalizes to (2x/width - 1, 2y/height - 1)
//   - Angles in degrees
package flowgrad

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
