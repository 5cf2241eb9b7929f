// Package ipred generates intra-predicted sample blocks for an AV1 decoder.
//
// Convention: neighbor samples are passed as a single slice plus an offset
// (edge, tl) such that edge[tl] is the reconstructed top-left corner,
// edge[tl+1+i] the row above the block (left to right) and edge[tl-1-j] the
// column left of the block (top to bottom). Using an explicit offset keeps
// all slice indices non-negative, which is required by Go's runtime bounds
// checking.
//
// Destinations are row-major with a stride measured in samples. Every
// routine is a pure synchronous function over caller-owned buffers; the
// package allocates nothing after Context construction and holds no mutable
// state outside the dispatch tables, which are populated once and then only
// read.
//
// Routines that clip take the maximum pixel value as a trailing maxPx
// argument: 255 for the uint8 instantiation, 1023 or 4095 for uint16.
package ipred

import (
	"math/bits"

	"github.com/deepteams/av1"
	"github.com/deepteams/av1/internal/assert"
)

// PredFunc produces one intra-predicted w x h block. angle carries the
// packed angle word for the directional modes and the filter set index for
// FilterPred; the other modes ignore it.
type PredFunc[P av1.Pixel] func(dst []P, stride int, edge []P, tl int, w, h, angle, maxPx int)

// CflACFunc extracts the zero-mean chroma-from-luma AC plane from the
// co-located luma samples. The chroma geometry and subsampling are bound
// into the function; wPad and hPad give, in units of 4 samples, how much of
// the right/bottom of the luma plane is out of frame and must be padded by
// replication.
type CflACFunc[P av1.Pixel] func(ac []int16, luma []P, lumaStride, wPad, hPad int)

// CflPred1Func mixes alpha-scaled AC into a single chroma plane whose DC
// prediction is already in place. The block width is bound into the
// function.
type CflPred1Func[P av1.Pixel] func(dst []P, stride int, ac []int16, alpha int8, h, maxPx int)

// CflPredFunc is the paired U/V form of CflPred1Func.
type CflPredFunc[P av1.Pixel] func(dstU, dstV []P, stride int, ac []int16, alphas [2]int8, h, maxPx int)

// PalPredFunc materializes a block from per-pixel palette indices.
type PalPredFunc[P av1.Pixel] func(dst []P, stride int, pal []P, idx []uint8, w, h int)

// Context is the dispatch table binding modes and geometries to their
// sample kernels. New fills it with the reference implementations; callers
// may overwrite individual slots with specialized variants before first
// use, provided the replacements are bit-identical.
type Context[P av1.Pixel] struct {
	IntraPred [av1.NumIntraPredModes]PredFunc[P]

	// CflAC is indexed by [layout-1][txsize]; LayoutI400 has no chroma
	// and therefore no row. Only the transform sizes reachable for the
	// layout are populated.
	CflAC [3][av1.NumTxSizes]CflACFunc[P]

	// CflPred1 and CflPred are indexed by log2(width/4).
	CflPred1 [4]CflPred1Func[P]
	CflPred  [4]CflPredFunc[P]

	PalPred PalPredFunc[P]
}

// New returns a Context populated with the reference kernels. Call it once
// per bit-depth instantiation at decoder startup.
func New[P av1.Pixel]() *Context[P] {
	c := new(Context[P])
	c.initReference()
	return c
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func iclip(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clipPixel[P av1.Pixel](v, maxPx int) P {
	if v < 0 {
		return 0
	}
	if v > maxPx {
		return P(maxPx)
	}
	return P(v)
}

// splatDC fills the block with a single DC value.
func splatDC[P av1.Pixel](dst []P, stride, w, h, dc, maxPx int) {
	assert.Assert(dc >= 0 && dc <= maxPx)
	v := P(dc)
	for y := 0; y < h; y++ {
		row := dst[y*stride : y*stride+w]
		for x := range row {
			row[x] = v
		}
	}
}

func ipredDCTop[P av1.Pixel](dst []P, stride int, edge []P, tl int, w, h, _, maxPx int) {
	dc := w >> 1
	for i := 0; i < w; i++ {
		dc += int(edge[tl+1+i])
	}
	splatDC(dst, stride, w, h, dc>>bits.TrailingZeros(uint(w)), maxPx)
}

func ipredDCLeft[P av1.Pixel](dst []P, stride int, edge []P, tl int, w, h, _, maxPx int) {
	dc := h >> 1
	for i := 0; i < h; i++ {
		dc += int(edge[tl-1-i])
	}
	splatDC(dst, stride, w, h, dc>>bits.TrailingZeros(uint(h)), maxPx)
}

func ipredDC[P av1.Pixel](dst []P, stride int, edge []P, tl int, w, h, _, maxPx int) {
	dc := (w + h) >> 1
	for i := 0; i < w; i++ {
		dc += int(edge[tl+1+i])
	}
	for i := 0; i < h; i++ {
		dc += int(edge[tl-1-i])
	}
	dc >>= bits.TrailingZeros(uint(w + h))

	if w != h {
		// Rectangular sums are 3 or 5 times a power of two; the
		// shift above removed the power of two and the fixed-point
		// multiplier supplies the remaining /3 or /5.
		mul1x2, mul1x4, shift := 0x5556, 0x3334, 16
		if maxPx > 255 {
			mul1x2, mul1x4, shift = 0xAAAB, 0x6667, 17
		}
		if w > h*2 || h > w*2 {
			dc *= mul1x4
		} else {
			dc *= mul1x2
		}
		dc >>= shift
	}

	splatDC(dst, stride, w, h, dc, maxPx)
}

func ipredDC128[P av1.Pixel](dst []P, stride int, _ []P, _ int, w, h, _, maxPx int) {
	splatDC(dst, stride, w, h, (maxPx+1)>>1, maxPx)
}

func ipredV[P av1.Pixel](dst []P, stride int, edge []P, tl int, w, h, _, _ int) {
	for y := 0; y < h; y++ {
		copy(dst[y*stride:y*stride+w], edge[tl+1:tl+1+w])
	}
}

func ipredH[P av1.Pixel](dst []P, stride int, edge []P, tl int, w, h, _, _ int) {
	for y := 0; y < h; y++ {
		row := dst[y*stride : y*stride+w]
		v := edge[tl-1-y]
		for x := range row {
			row[x] = v
		}
	}
}

func ipredPaeth[P av1.Pixel](dst []P, stride int, edge []P, tl int, w, h, _, _ int) {
	topleft := int(edge[tl])
	for y := 0; y < h; y++ {
		left := int(edge[tl-1-y])
		row := dst[y*stride:]
		for x := 0; x < w; x++ {
			top := int(edge[tl+1+x])
			base := left + top - topleft
			ldiff := iabs(left - base)
			tdiff := iabs(top - base)
			tldiff := iabs(topleft - base)

			switch {
			case ldiff <= tdiff && ldiff <= tldiff:
				row[x] = P(left)
			case tdiff <= tldiff:
				row[x] = P(top)
			default:
				row[x] = P(topleft)
			}
		}
	}
}

func ipredSmooth[P av1.Pixel](dst []P, stride int, edge []P, tl int, w, h, _, _ int) {
	weightsHor := smWeights[w:]
	weightsVer := smWeights[h:]
	right := int(edge[tl+w])
	bottom := int(edge[tl-h])

	for y := 0; y < h; y++ {
		left := int(edge[tl-1-y])
		row := dst[y*stride:]
		for x := 0; x < w; x++ {
			pred := int(weightsVer[y])*int(edge[tl+1+x]) +
				(256-int(weightsVer[y]))*bottom +
				int(weightsHor[x])*left +
				(256-int(weightsHor[x]))*right
			row[x] = P((pred + 256) >> 9)
		}
	}
}

func ipredSmoothV[P av1.Pixel](dst []P, stride int, edge []P, tl int, w, h, _, _ int) {
	weightsVer := smWeights[h:]
	bottom := int(edge[tl-h])

	for y := 0; y < h; y++ {
		row := dst[y*stride:]
		for x := 0; x < w; x++ {
			pred := int(weightsVer[y])*int(edge[tl+1+x]) +
				(256-int(weightsVer[y]))*bottom
			row[x] = P((pred + 128) >> 8)
		}
	}
}

func ipredSmoothH[P av1.Pixel](dst []P, stride int, edge []P, tl int, w, h, _, _ int) {
	weightsHor := smWeights[w:]
	right := int(edge[tl+w])

	for y := 0; y < h; y++ {
		left := int(edge[tl-1-y])
		row := dst[y*stride:]
		for x := 0; x < w; x++ {
			pred := int(weightsHor[x])*left +
				(256-int(weightsHor[x]))*right
			row[x] = P((pred + 128) >> 8)
		}
	}
}

// initReference assigns the reference kernels to every dispatch slot.
func (c *Context[P]) initReference() {
	c.IntraPred[av1.DCPred] = ipredDC[P]
	c.IntraPred[av1.DC128Pred] = ipredDC128[P]
	c.IntraPred[av1.TopDCPred] = ipredDCTop[P]
	c.IntraPred[av1.LeftDCPred] = ipredDCLeft[P]
	c.IntraPred[av1.HorPred] = ipredH[P]
	c.IntraPred[av1.VertPred] = ipredV[P]
	c.IntraPred[av1.PaethPred] = ipredPaeth[P]
	c.IntraPred[av1.SmoothPred] = ipredSmooth[P]
	c.IntraPred[av1.SmoothVPred] = ipredSmoothV[P]
	c.IntraPred[av1.SmoothHPred] = ipredSmoothH[P]
	c.IntraPred[av1.Z1Pred] = ipredZ1[P]
	c.IntraPred[av1.Z2Pred] = ipredZ2[P]
	c.IntraPred[av1.Z3Pred] = ipredZ3[P]
	c.IntraPred[av1.FilterPred] = ipredFilter[P]

	// CfL AC extraction is specialized per chroma subsampling and
	// transform size; the luma block covered is the chroma size scaled
	// back up by the subsampling factors.
	i420 := &c.CflAC[av1.LayoutI420-1]
	i420[av1.Tx4x4] = makeCflAC[P](4, 4, 1, 1)
	i420[av1.Tx4x8] = makeCflAC[P](4, 8, 1, 1)
	i420[av1.Tx4x16] = makeCflAC[P](4, 16, 1, 1)
	i420[av1.Tx8x4] = makeCflAC[P](8, 4, 1, 1)
	i420[av1.Tx8x8] = makeCflAC[P](8, 8, 1, 1)
	i420[av1.Tx8x16] = makeCflAC[P](8, 16, 1, 1)
	i420[av1.Tx16x4] = makeCflAC[P](16, 4, 1, 1)
	i420[av1.Tx16x8] = makeCflAC[P](16, 8, 1, 1)
	i420[av1.Tx16x16] = makeCflAC[P](16, 16, 1, 1)

	i422 := &c.CflAC[av1.LayoutI422-1]
	i422[av1.Tx4x4] = makeCflAC[P](4, 4, 1, 0)
	i422[av1.Tx4x8] = makeCflAC[P](4, 8, 1, 0)
	i422[av1.Tx8x4] = makeCflAC[P](8, 4, 1, 0)
	i422[av1.Tx8x8] = makeCflAC[P](8, 8, 1, 0)
	i422[av1.Tx8x16] = makeCflAC[P](8, 16, 1, 0)
	i422[av1.Tx16x8] = makeCflAC[P](16, 8, 1, 0)
	i422[av1.Tx16x16] = makeCflAC[P](16, 16, 1, 0)
	i422[av1.Tx16x32] = makeCflAC[P](16, 32, 1, 0)

	i444 := &c.CflAC[av1.LayoutI444-1]
	i444[av1.Tx4x4] = makeCflAC[P](4, 4, 0, 0)
	i444[av1.Tx4x8] = makeCflAC[P](4, 8, 0, 0)
	i444[av1.Tx4x16] = makeCflAC[P](4, 16, 0, 0)
	i444[av1.Tx8x4] = makeCflAC[P](8, 4, 0, 0)
	i444[av1.Tx8x8] = makeCflAC[P](8, 8, 0, 0)
	i444[av1.Tx8x16] = makeCflAC[P](8, 16, 0, 0)
	i444[av1.Tx8x32] = makeCflAC[P](8, 32, 0, 0)
	i444[av1.Tx16x4] = makeCflAC[P](16, 4, 0, 0)
	i444[av1.Tx16x8] = makeCflAC[P](16, 8, 0, 0)
	i444[av1.Tx16x16] = makeCflAC[P](16, 16, 0, 0)
	i444[av1.Tx16x32] = makeCflAC[P](16, 32, 0, 0)
	i444[av1.Tx32x8] = makeCflAC[P](32, 8, 0, 0)
	i444[av1.Tx32x16] = makeCflAC[P](32, 16, 0, 0)
	i444[av1.Tx32x32] = makeCflAC[P](32, 32, 0, 0)

	for i, w := range [4]int{4, 8, 16, 32} {
		c.CflPred1[i] = makeCflPred1[P](w)
		c.CflPred[i] = makeCflPred[P](w)
	}

	c.PalPred = palPred[P]
}
