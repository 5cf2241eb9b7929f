package ipred

import (
	"math/bits"

	"github.com/deepteams/av1"
	"github.com/deepteams/av1/internal/assert"
)

// Chroma-from-luma. cflAC reduces the co-located luma block to chroma
// resolution in a scaled Q form, pads out-of-frame columns and rows by
// replication, and subtracts the rounded mean so the plane carries only AC.
// The scale shift makes every output eight times the mean of the luma
// samples it covers (twice a 2x2 sum) across 4:2:0, 4:2:2 and 4:4:4.
func cflAC[P av1.Pixel](ac []int16, luma []P, stride, wPad, hPad, width, height, ssHor, ssVer, log2sz int) {
	assert.Assert(wPad >= 0 && wPad*4 < width)
	assert.Assert(hPad >= 0 && hPad*4 < height)

	shift := 1
	if ssVer == 0 {
		shift++
	}
	if ssHor == 0 {
		shift++
	}

	var x, y int
	acOff, lumaOff := 0, 0
	for y = 0; y < height-4*hPad; y++ {
		for x = 0; x < width-4*wPad; x++ {
			sum := int(luma[lumaOff+(x<<ssHor)])
			if ssHor != 0 {
				sum += int(luma[lumaOff+x*2+1])
			}
			if ssVer != 0 {
				sum += int(luma[lumaOff+(x<<ssHor)+stride])
				if ssHor != 0 {
					sum += int(luma[lumaOff+x*2+1+stride])
				}
			}
			ac[acOff+x] = int16(sum << shift)
		}
		for ; x < width; x++ {
			ac[acOff+x] = ac[acOff+x-1]
		}
		acOff += width
		lumaOff += stride << ssVer
	}
	for ; y < height; y++ {
		copy(ac[acOff:acOff+width], ac[acOff-width:acOff])
		acOff += width
	}

	sum := (1 << log2sz) >> 1
	for i := 0; i < width*height; i++ {
		sum += int(ac[i])
	}
	dc := int16(sum >> log2sz)

	for i := 0; i < width*height; i++ {
		ac[i] -= dc
	}
}

// makeCflAC binds one chroma geometry into a CflACFunc.
func makeCflAC[P av1.Pixel](width, height, ssHor, ssVer int) CflACFunc[P] {
	log2sz := bits.TrailingZeros(uint(width * height))
	return func(ac []int16, luma []P, lumaStride, wPad, hPad int) {
		cflAC(ac, luma, lumaStride, wPad, hPad, width, height, ssHor, ssVer, log2sz)
	}
}

// applySign returns v carrying the sign of s.
func applySign(v, s int) int {
	if s < 0 {
		return -v
	}
	return v
}

// cflPred1 adds the alpha-scaled AC plane to the chroma DC already present
// in dst[0]. The scaled term rounds in sign-and-magnitude form; an
// arithmetic shift would round negative values differently.
func cflPred1[P av1.Pixel](dst []P, stride int, ac []int16, alpha int8, width, height, maxPx int) {
	dc := int(dst[0])
	acOff := 0
	for y := 0; y < height; y++ {
		row := dst[y*stride : y*stride+width]
		for x := range row {
			diff := int(alpha) * int(ac[acOff+x])
			row[x] = clipPixel[P](dc+applySign((iabs(diff)+32)>>6, diff), maxPx)
		}
		acOff += width
	}
}

func cflPredUV[P av1.Pixel](dstU, dstV []P, stride int, ac []int16, alphas [2]int8, width, height, maxPx int) {
	dcU, dcV := int(dstU[0]), int(dstV[0])
	acOff := 0
	for y := 0; y < height; y++ {
		rowU := dstU[y*stride : y*stride+width]
		rowV := dstV[y*stride : y*stride+width]
		for x := 0; x < width; x++ {
			diffU := int(alphas[0]) * int(ac[acOff+x])
			rowU[x] = clipPixel[P](dcU+applySign((iabs(diffU)+32)>>6, diffU), maxPx)
			diffV := int(alphas[1]) * int(ac[acOff+x])
			rowV[x] = clipPixel[P](dcV+applySign((iabs(diffV)+32)>>6, diffV), maxPx)
		}
		acOff += width
	}
}

func makeCflPred1[P av1.Pixel](width int) CflPred1Func[P] {
	return func(dst []P, stride int, ac []int16, alpha int8, h, maxPx int) {
		cflPred1(dst, stride, ac, alpha, width, h, maxPx)
	}
}

func makeCflPred[P av1.Pixel](width int) CflPredFunc[P] {
	return func(dstU, dstV []P, stride int, ac []int16, alphas [2]int8, h, maxPx int) {
		cflPredUV(dstU, dstV, stride, ac, alphas, width, h, maxPx)
	}
}
