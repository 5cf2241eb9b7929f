package ipred

import (
	"github.com/deepteams/av1"
	"github.com/deepteams/av1/internal/assert"
)

// Edge conditioning for the directional predictors: depending on block
// size, angular distance from the nearest cardinal direction, and whether
// the neighboring blocks were smooth-predicted, the raw edge is either
// smoothed with a 5-tap kernel or upsampled to double resolution before
// sampling.

// filterStrength returns the edge filter strength in 0..3, where 0 means
// no filtering. blkWH is the sum of block width and height, d the angular
// distance from the nearest cardinal direction.
func filterStrength(blkWH, d int, sm bool) int {
	strength := 0

	if !sm {
		switch {
		case blkWH <= 8:
			if d >= 56 {
				strength = 1
			}
		case blkWH <= 12:
			if d >= 40 {
				strength = 1
			}
		case blkWH <= 16:
			if d >= 40 {
				strength = 1
			}
		case blkWH <= 24:
			if d >= 8 {
				strength = 1
			}
			if d >= 16 {
				strength = 2
			}
			if d >= 32 {
				strength = 3
			}
		case blkWH <= 32:
			if d >= 1 {
				strength = 1
			}
			if d >= 4 {
				strength = 2
			}
			if d >= 32 {
				strength = 3
			}
		default:
			if d >= 1 {
				strength = 3
			}
		}
	} else {
		switch {
		case blkWH <= 8:
			if d >= 40 {
				strength = 1
			}
			if d >= 64 {
				strength = 2
			}
		case blkWH <= 16:
			if d >= 20 {
				strength = 1
			}
			if d >= 48 {
				strength = 2
			}
		case blkWH <= 24:
			if d >= 4 {
				strength = 3
			}
		default:
			if d >= 1 {
				strength = 3
			}
		}
	}

	return strength
}

var edgeKernels = [3][5]uint8{
	{0, 4, 8, 4, 0},
	{0, 5, 6, 5, 0},
	{2, 4, 4, 4, 2},
}

// filterEdge writes sz smoothed samples to out. Input sample i lives at
// in[base+i]; reads outside [from, to) are clamped to the nearest in-range
// index.
func filterEdge[P av1.Pixel](out []P, sz int, in []P, base, from, to, strength int) {
	assert.Assert(strength > 0)
	kernel := &edgeKernels[strength-1]
	for i := 0; i < sz; i++ {
		s := 0
		for j := 0; j < 5; j++ {
			s += int(in[base+iclip(i-2+j, from, to-1)]) * int(kernel[j])
		}
		out[i] = P((s + 8) >> 4)
	}
}

// useUpsample reports whether the edge should be doubled in resolution
// before directional sampling.
func useUpsample(blkWH, d int, sm bool) bool {
	if d >= 40 {
		return false
	}
	if sm {
		return blkWH <= 8
	}
	return blkWH <= 16
}

var upsampleKernel = [4]int8{-1, 9, 9, -1}

// upsampleEdge writes 2*hsz-1 samples to out: even positions copy the
// clamped input, odd positions interpolate with a 4-tap kernel. Input
// sample i lives at in[base+i] with reads clamped to [from, to).
func upsampleEdge[P av1.Pixel](out []P, hsz int, in []P, base, from, to, maxPx int) {
	var i int
	for i = 0; i < hsz-1; i++ {
		out[i*2] = in[base+iclip(i, from, to-1)]

		s := 0
		for j := 0; j < 4; j++ {
			s += int(in[base+iclip(i+j-1, from, to-1)]) * int(upsampleKernel[j])
		}
		out[i*2+1] = clipPixel[P]((s+8)>>4, maxPx)
	}
	out[i*2] = in[base+iclip(i, from, to-1)]
}
