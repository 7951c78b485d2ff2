// Package parallel provides the row-band worker pool used to fill large
// gradient buffers.
//
// An image is split into horizontal bands of whole rows. Each band maps to
// a contiguous byte range of the output buffer, so workers never share a
// cache line except at band edges and never write the same byte.
package parallel

// bandsPerWorker oversubscribes the pool so uneven rows (vortex centers,
// heavy warps) still balance across workers.
const bandsPerWorker = 4

// Band is a half-open row range [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows partitions height rows into at most workers*bandsPerWorker
// contiguous bands that cover every row exactly once, in order.
// It returns nil for a non-positive height.
func SplitRows(height, workers int) []Band {
	if height <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}

	n := min(workers*bandsPerWorker, height)
	bands := make([]Band, 0, n)
	base, extra := height/n, height%n
	y := 0
	for i := range n {
		rows := base
		if i < extra {
			rows++
		}
		bands = append(bands, Band{Y0: y, Y1: y + rows})
		y += rows
	}
	return bands
}
