package ipred

import (
	"bytes"
	"flag"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/deepteams/av1"
)

var update = flag.Bool("update", false, "regenerate golden files")

const goldenPath = "testdata/ipred8.bin.zst"

// goldenVectors renders every mode, geometry and parameter combination
// over deterministic pseudorandom input and concatenates the resulting
// blocks. Any change to the kernels or tables shifts the stream.
func goldenVectors() []byte {
	rng := rand.New(rand.NewSource(1))
	c := New[uint8]()
	var out bytes.Buffer

	for mode := av1.IntraPredMode(0); mode < av1.NumIntraPredModes; mode++ {
		for _, g := range predGeometries {
			w, h := g[0], g[1]
			if mode == av1.FilterPred && (w > 32 || h > 32) {
				continue
			}
			n := 2 * (w + h)
			edge := make([]uint8, 2*n+1)
			for i := range edge {
				edge[i] = uint8(rng.Intn(256))
			}
			for _, param := range predParams(mode) {
				dst := make([]uint8, w*h)
				c.IntraPred[mode](dst, w, edge, n, w, h, param, 255)
				out.Write(dst)
			}
		}
	}

	for _, lt := range cflLayouts {
		for tx := av1.TxSize(0); tx < av1.NumTxSizes; tx++ {
			fn := c.CflAC[lt.layout-1][tx]
			if fn == nil {
				continue
			}
			cw, ch := tx.W(), tx.H()
			lw, lh := cw<<lt.ssHor, ch<<lt.ssVer
			luma := make([]uint8, lw*lh)
			for i := range luma {
				luma[i] = uint8(rng.Intn(256))
			}
			ac := make([]int16, cw*ch)
			fn(ac, luma, lw, 0, 0)

			dst := make([]uint8, cw*ch)
			dst[0] = uint8(rng.Intn(256))
			wIdx := 0
			for 4<<wIdx < cw {
				wIdx++
			}
			c.CflPred1[wIdx](dst, cw, ac, int8(rng.Intn(255)-127), ch, 255)
			out.Write(dst)
		}
	}

	pal := make([]uint8, 8)
	for i := range pal {
		pal[i] = uint8(rng.Intn(256))
	}
	idx := make([]uint8, 16*16)
	for i := range idx {
		idx[i] = uint8(rng.Intn(8))
	}
	dst := make([]uint8, 16*16)
	c.PalPred(dst, 16, pal, idx, 16, 16)
	out.Write(dst)

	return out.Bytes()
}

func writeGolden(t *testing.T, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(goldenPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	enc, err := zstd.NewWriter(f,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := enc.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	t.Logf("wrote %s (%d samples)", goldenPath, len(data))
}

// TestGoldenVectors compares the full kernel output stream against the
// checked-in fixture. Run with -update after an intentional change.
func TestGoldenVectors(t *testing.T) {
	got := goldenVectors()
	if *update {
		writeGolden(t, got)
	}

	f, err := os.Open(goldenPath)
	if os.IsNotExist(err) {
		t.Skipf("%s not present; run with -update to generate it", goldenPath)
	}
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dec, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
	if err != nil {
		t.Fatal(err)
	}
	defer dec.Close()
	want, err := io.ReadAll(dec)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != len(want) {
		t.Fatalf("golden stream length %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("golden stream diverges at sample %d: %d != %d", i, got[i], want[i])
		}
	}
}
