package flowgrad

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/flowgrad/internal/field"
)

// Generate renders the current parameters into a new width×height RGBA8
// buffer: 4 bytes per pixel, row-major, origin top-left, straight alpha.
//
// A zero dimension yields an empty buffer. Negative dimensions, or sizes
// whose byte length overflows int, return ErrInvalidSize.
func (g *Generator) Generate(width, height int) ([]byte, error) {
	n, err := bufferLen(width, height)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	g.fill(buf, width, height)
	return buf, nil
}

// Fill renders into dst, which must be exactly width*height*4 bytes long.
// Every byte of dst is overwritten.
func (g *Generator) Fill(dst []byte, width, height int) error {
	n, err := bufferLen(width, height)
	if err != nil {
		return err
	}
	if len(dst) != n {
		return fmt.Errorf("%w: buffer is %d bytes, need %d for %dx%d",
			ErrInvalidSize, len(dst), n, width, height)
	}
	g.fill(dst, width, height)
	return nil
}

// bufferLen returns width*height*4, guarding against negative sizes and
// overflow.
func bufferLen(width, height int) (int, error) {
	if width < 0 || height < 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width == 0 || height == 0 {
		return 0, nil
	}
	if width > math.MaxInt/4/height {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrInvalidSize, width, height)
	}
	return width * height * 4, nil
}

func (g *Generator) fill(dst []byte, width, height int) {
	if len(dst) == 0 {
		return
	}
	start := time.Now()
	parallel := width*height > g.threshold
	if parallel {
		g.fillParallel(dst, width, height)
	} else {
		fillSequential(g.field, dst, width, height)
	}
	Logger().Debug("flowgrad: generated",
		"width", width,
		"height", height,
		"parallel", parallel,
		"elapsed", time.Since(start))
}

// fillParallel hands disjoint row bands to the worker pool.
func (g *Generator) fillParallel(dst []byte, width, height int) {
	f := g.field
	vp := field.NewViewport(width, height)
	stride := width * 4
	g.workerPool().Rows(height, func(y0, y1 int) {
		fillRows(f, vp, dst[y0*stride:y1*stride], width, y0, y1)
	})
}

// fillRows renders rows [y0, y1) into band, which starts at row y0.
func fillRows(f *field.Field, vp field.Viewport, band []byte, width, y0, y1 int) {
	stride := width * 4
	for y := y0; y < y1; y++ {
		ny := vp.NormalizeY(y)
		row := band[(y-y0)*stride : (y-y0+1)*stride]
		for x := 0; x < width; x++ {
			put(row[x*4:x*4+4], f.Sample(vp.NormalizeX(x), ny))
		}
	}
}

// fillSequential renders top to bottom on the calling goroutine, four
// pixels per step. Each pixel goes through the same Sample call as
// fillRows, so both paths produce identical bytes.
func fillSequential(f *field.Field, dst []byte, width, height int) {
	vp := field.NewViewport(width, height)
	stride := width * 4
	for y := 0; y < height; y++ {
		ny := vp.NormalizeY(y)
		row := dst[y*stride : (y+1)*stride]

		x := 0
		for ; x+4 <= width; x += 4 {
			p := row[x*4 : x*4+16 : x*4+16]
			put(p[0:4], f.Sample(vp.NormalizeX(x), ny))
			put(p[4:8], f.Sample(vp.NormalizeX(x+1), ny))
			put(p[8:12], f.Sample(vp.NormalizeX(x+2), ny))
			put(p[12:16], f.Sample(vp.NormalizeX(x+3), ny))
		}
		for ; x < width; x++ {
			put(row[x*4:x*4+4], f.Sample(vp.NormalizeX(x), ny))
		}
	}
}

func put(px []byte, c field.Color) {
	_ = px[3]
	px[0] = toByte(c[0])
	px[1] = toByte(c[1])
	px[2] = toByte(c[2])
	px[3] = toByte(c[3])
}
