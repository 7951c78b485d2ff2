// Package preview shows a rendered gradient in a true-color terminal.
//
// Each terminal cell carries two vertically stacked pixels: the upper one
// as the foreground of an upper half block and the lower one as the
// background. Terminal cells are roughly twice as tall as wide, so the
// pixels come out close to square.
package preview

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
)

// halfBlock is U+2580 UPPER HALF BLOCK.
const halfBlock = '▀'

// Cell is one terminal cell: Top is drawn with the half block, Bottom
// shows through underneath.
type Cell struct {
	Top, Bottom tcell.Color
}

// Fit returns the largest pixel size with the aspect ratio of srcW×srcH
// that fits into cols×rows cells. Both results are at least 1 unless an
// input is non-positive, in which case both are 0.
func Fit(srcW, srcH, cols, rows int) (w, h int) {
	if srcW <= 0 || srcH <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	maxW, maxH := cols, rows*2
	// Compare srcW/srcH against maxW/maxH without floating point.
	if srcW*maxH >= srcH*maxW {
		return maxW, max(1, srcH*maxW/srcW)
	}
	return max(1, srcW*maxH/srcH), maxH
}

// Scale resamples img to fit a cols×rows terminal.
func Scale(img image.Image, cols, rows int) *image.NRGBA {
	b := img.Bounds()
	w, h := Fit(b.Dx(), b.Dy(), cols, rows)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w > 0 && h > 0 {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}
	return dst
}

// Cells folds img into rows of half-block cells. An odd last pixel row is
// paired with black.
func Cells(img *image.NRGBA) [][]Cell {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([][]Cell, (h+1)/2)
	for cy := range out {
		row := make([]Cell, w)
		y := b.Min.Y + cy*2
		for x := range row {
			row[x].Top = cellColor(img.NRGBAAt(b.Min.X+x, y))
			if y+1 < b.Max.Y {
				row[x].Bottom = cellColor(img.NRGBAAt(b.Min.X+x, y+1))
			} else {
				row[x].Bottom = tcell.ColorBlack
			}
		}
		out[cy] = row
	}
	return out
}

// cellColor composites a straight-alpha pixel over black.
func cellColor(c color.NRGBA) tcell.Color {
	a := int32(c.A)
	return tcell.NewRGBColor(
		int32(c.R)*a/255,
		int32(c.G)*a/255,
		int32(c.B)*a/255,
	)
}

// Draw paints img at the top-left corner of s. It does not call Show.
func Draw(s tcell.Screen, img *image.NRGBA) {
	for y, row := range Cells(img) {
		for x, c := range row {
			style := tcell.StyleDefault.Foreground(c.Top).Background(c.Bottom)
			s.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

// Run initializes s, shows img scaled to the terminal and blocks until a
// key is pressed. The screen is restored before Run returns.
func Run(s tcell.Screen, img image.Image) error {
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	loop(s, img)
	return nil
}

func loop(s tcell.Screen, img image.Image) {
	redraw := func() {
		s.Clear()
		cols, rows := s.Size()
		Draw(s, Scale(img, cols, rows))
		s.Show()
	}
	redraw()

	for {
		switch s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
			redraw()
		case *tcell.EventKey:
			return
		case nil:
			// screen finalized elsewhere
			return
		}
	}
}
