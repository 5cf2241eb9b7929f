package ipred

import (
	"github.com/deepteams/av1"
	"github.com/deepteams/av1/internal/assert"
)

// Directional prediction along one of 56 angles. The packed angle word
// carries the angle in bits 0-8 and the smooth-neighbor flag in bit 9; the
// flag only parameterizes edge conditioning. Step sizes come from the Q6
// derivative table; linear interpolation between adjacent edge samples is
// Q5 with rounding constant 16.
//
// Scratch edges live in stack arrays sized for the 64x64 worst case.

// ipredZ1 predicts angles in (0, 90), which sample the top edge only.
func ipredZ1[P av1.Pixel](dst []P, stride int, edge []P, tl int, w, h, angle, maxPx int) {
	sm := angle>>9 != 0
	angle &= 511
	assert.Assert(angle > 0 && angle < 90)
	dx := int(drIntraDerivative[angle])

	var topOut [(64 + 64) * 2]P
	top := edge
	topBase := tl + 1
	var maxBaseX int
	upsampleAbove := 0
	if useUpsample(w+h, 90-angle, sm) {
		upsampleAbove = 1
		upsampleEdge(topOut[:], w+h, edge, tl+1, -1, w+imin(w, h), maxPx)
		top, topBase = topOut[:], 0
		maxBaseX = 2*(w+h) - 2
	} else if strength := filterStrength(w+h, 90-angle, sm); strength != 0 {
		filterEdge(topOut[:], w+h, edge, tl+1, -1, w+imin(w, h), strength)
		top, topBase = topOut[:], 0
		maxBaseX = w + h - 1
	} else {
		maxBaseX = w + imin(w, h) - 1
	}

	fracBits := 6 - upsampleAbove
	baseInc := 1 << upsampleAbove
	for y, xpos := 0, dx; y < h; y, xpos = y+1, xpos+dx {
		base := xpos >> fracBits
		frac := ((xpos << upsampleAbove) & 0x3F) >> 1
		row := dst[y*stride : y*stride+w]

		for x := 0; x < w; x, base = x+1, base+baseInc {
			if base >= maxBaseX {
				fill := top[topBase+maxBaseX]
				for ; x < w; x++ {
					row[x] = fill
				}
				break
			}
			v := int(top[topBase+base])*(32-frac) + int(top[topBase+base+1])*frac
			row[x] = clipPixel[P]((v+16)>>5, maxPx)
		}
	}
}

// ipredZ2 predicts angles in (90, 180), which sample both edges. The two
// sides are conditioned independently into one scratch buffer centered on
// the top-left corner.
func ipredZ2[P av1.Pixel](dst []P, stride int, edge []P, tl int, w, h, angle, maxPx int) {
	sm := angle>>9 != 0
	angle &= 511
	assert.Assert(angle > 90 && angle < 180)
	dy := int(drIntraDerivative[angle-90])
	dx := int(drIntraDerivative[180-angle])

	upLeft, upAbove := 0, 0
	if useUpsample(w+h, 180-angle, sm) {
		upLeft = 1
	}
	if useUpsample(w+h, angle-90, sm) {
		upAbove = 1
	}

	var scratch [64*2 + 64*2 + 1]P
	tlIdx := h * 2

	if upAbove != 0 {
		upsampleEdge(scratch[tlIdx:], w+1, edge, tl, 0, w+1, maxPx)
	} else if strength := filterStrength(w+h, angle-90, sm); strength != 0 {
		filterEdge(scratch[tlIdx+1:], w, edge, tl+1, -1, w, strength)
	} else {
		copy(scratch[tlIdx+1:tlIdx+1+w], edge[tl+1:tl+1+w])
	}

	if upLeft != 0 {
		upsampleEdge(scratch[:], h+1, edge, tl-h, 0, h+1, maxPx)
	} else if strength := filterStrength(w+h, 180-angle, sm); strength != 0 {
		filterEdge(scratch[tlIdx-h:], h, edge, tl-h, 0, h+1, strength)
	} else {
		copy(scratch[tlIdx-h:tlIdx], edge[tl-h:tl])
	}
	scratch[tlIdx] = edge[tl]

	minBaseX := -(1 << upAbove)
	fracBitsY, fracBitsX := 6-upLeft, 6-upAbove
	baseIncX := 1 << upAbove
	leftIdx := tlIdx - (1 << upLeft)
	topIdx := tlIdx + (1 << upAbove)

	for y, xpos := 0, -dx; y < h; y, xpos = y+1, xpos-dx {
		baseX := xpos >> fracBitsX
		fracX := ((xpos * (1 << upAbove)) & 0x3F) >> 1
		row := dst[y*stride : y*stride+w]

		for x, ypos := 0, (y<<6)-dy; x < w; x, baseX, ypos = x+1, baseX+baseIncX, ypos-dy {
			var v int
			if baseX >= minBaseX {
				v = int(scratch[topIdx+baseX])*(32-fracX) +
					int(scratch[topIdx+baseX+1])*fracX
			} else {
				baseY := ypos >> fracBitsY
				assert.Assert(baseY >= -(1 << upLeft))
				fracY := ((ypos * (1 << upLeft)) & 0x3F) >> 1
				v = int(scratch[leftIdx-baseY])*(32-fracY) +
					int(scratch[leftIdx-baseY-1])*fracY
			}
			row[x] = clipPixel[P]((v+16)>>5, maxPx)
		}
	}
}

// ipredZ3 predicts angles in (180, 270), which sample the left edge only.
// Output is written column by column.
func ipredZ3[P av1.Pixel](dst []P, stride int, edge []P, tl int, w, h, angle, maxPx int) {
	sm := angle>>9 != 0
	angle &= 511
	assert.Assert(angle > 180)
	dy := int(drIntraDerivative[270-angle])

	var leftOut [(64 + 64) * 2]P
	left := edge
	leftBase := tl - 1 // left samples run downward from leftBase
	var maxBaseY int
	upsampleLeft := 0
	if useUpsample(w+h, angle-180, sm) {
		upsampleLeft = 1
		upsampleEdge(leftOut[:], w+h, edge, tl-(w+h), imax(w-h, 0), w+h+1, maxPx)
		left, leftBase = leftOut[:], 2*(w+h)-2
		maxBaseY = 2*(w+h) - 2
	} else if strength := filterStrength(w+h, angle-180, sm); strength != 0 {
		filterEdge(leftOut[:], w+h, edge, tl-(w+h), imax(w-h, 0), w+h+1, strength)
		left, leftBase = leftOut[:], w+h-1
		maxBaseY = w + h - 1
	} else {
		maxBaseY = h + imin(w, h) - 1
	}

	fracBits := 6 - upsampleLeft
	baseInc := 1 << upsampleLeft
	for x, ypos := 0, dy; x < w; x, ypos = x+1, ypos+dy {
		base := ypos >> fracBits
		frac := ((ypos << upsampleLeft) & 0x3F) >> 1

		for y := 0; y < h; y, base = y+1, base+baseInc {
			if base >= maxBaseY {
				fill := left[leftBase-maxBaseY]
				for ; y < h; y++ {
					dst[y*stride+x] = fill
				}
				break
			}
			v := int(left[leftBase-base])*(32-frac) +
				int(left[leftBase-base-1])*frac
			dst[y*stride+x] = clipPixel[P]((v+16)>>5, maxPx)
		}
	}
}
