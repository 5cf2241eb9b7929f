package ipred

import (
	"math/rand"
	"testing"

	"github.com/deepteams/av1"
)

func benchEdge(n int) ([]uint8, int) {
	rng := rand.New(rand.NewSource(9))
	edge := make([]uint8, 2*n+1)
	for i := range edge {
		edge[i] = uint8(rng.Intn(256))
	}
	return edge, n
}

func benchPred(b *testing.B, mode av1.IntraPredMode, w, h, param int) {
	b.Helper()
	c := New[uint8]()
	edge, tl := benchEdge(2 * (w + h))
	dst := make([]uint8, w*h)
	b.SetBytes(int64(w * h))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.IntraPred[mode](dst, w, edge, tl, w, h, param, 255)
	}
}

func BenchmarkDC32x32(b *testing.B)     { benchPred(b, av1.DCPred, 32, 32, 0) }
func BenchmarkSmooth32x32(b *testing.B) { benchPred(b, av1.SmoothPred, 32, 32, 0) }
func BenchmarkPaeth32x32(b *testing.B)  { benchPred(b, av1.PaethPred, 32, 32, 0) }
func BenchmarkZ1_32x32(b *testing.B)    { benchPred(b, av1.Z1Pred, 32, 32, 45) }
func BenchmarkZ2_32x32(b *testing.B)    { benchPred(b, av1.Z2Pred, 32, 32, 135) }
func BenchmarkZ3_32x32(b *testing.B)    { benchPred(b, av1.Z3Pred, 32, 32, 225) }
func BenchmarkFilter32x32(b *testing.B) { benchPred(b, av1.FilterPred, 32, 32, 0) }

func BenchmarkCflAC420_16x16(b *testing.B) {
	c := New[uint8]()
	fn := c.CflAC[av1.LayoutI420-1][av1.Tx16x16]
	rng := rand.New(rand.NewSource(9))
	luma := make([]uint8, 32*32)
	for i := range luma {
		luma[i] = uint8(rng.Intn(256))
	}
	ac := make([]int16, 16*16)
	b.SetBytes(32 * 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fn(ac, luma, 32, 0, 0)
	}
}

func BenchmarkCflPred16x16(b *testing.B) {
	c := New[uint8]()
	rng := rand.New(rand.NewSource(9))
	ac := make([]int16, 16*16)
	for i := range ac {
		ac[i] = int16(rng.Intn(512) - 256)
	}
	dstU := make([]uint8, 16*16)
	dstV := make([]uint8, 16*16)
	dstU[0], dstV[0] = 128, 128
	b.SetBytes(2 * 16 * 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.CflPred[2](dstU, dstV, 16, ac, [2]int8{31, -31}, 16, 255)
	}
}
