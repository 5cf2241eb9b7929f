package ipred

import (
	"github.com/deepteams/av1"
	"github.com/deepteams/av1/internal/assert"
)

// ipredFilter is the recursive filter predictor, supported for blocks up to
// 32x32. One of five 7-tap filter sets produces the block in 4x2 tiles,
// row pair by row pair. The first tile of a row pair takes its left
// context from the edge; later tiles take it from pixels already written,
// and after each row pair the top context advances to the bottom row of
// the pair just produced.
func ipredFilter[P av1.Pixel](dst []P, stride int, edge []P, tl int, w, h, filtIdx, maxPx int) {
	filtIdx &= 511
	assert.Assert(filtIdx < 5)
	taps := &filterIntraTaps[filtIdx]

	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x += 4 {
			// p0 is the tile's top-left corner, p1-p4 the four
			// samples above, p5-p6 the two samples to the left.
			var p [7]int
			if y == 0 {
				p[0] = int(edge[tl+x])
				for i := 0; i < 4; i++ {
					p[1+i] = int(edge[tl+1+x+i])
				}
			} else {
				if x == 0 {
					p[0] = int(edge[tl-y])
				} else {
					p[0] = int(dst[(y-1)*stride+x-1])
				}
				for i := 0; i < 4; i++ {
					p[1+i] = int(dst[(y-1)*stride+x+i])
				}
			}
			if x == 0 {
				p[5] = int(edge[tl-1-y])
				p[6] = int(edge[tl-2-y])
			} else {
				p[5] = int(dst[y*stride+x-1])
				p[6] = int(dst[(y+1)*stride+x-1])
			}

			for yy := 0; yy < 2; yy++ {
				for xx := 0; xx < 4; xx++ {
					t := taps[(yy*4+xx)*8:]
					acc := 0
					for k := 0; k < 7; k++ {
						acc += int(t[k]) * p[k]
					}
					dst[(y+yy)*stride+x+xx] = clipPixel[P]((acc+8)>>4, maxPx)
				}
			}
		}
	}
}
