package av1

import "testing"

func TestTxSizeDims(t *testing.T) {
	for tx := TxSize(0); tx < NumTxSizes; tx++ {
		w, h := tx.W(), tx.H()
		if w < 4 || w > 64 || w&(w-1) != 0 {
			t.Errorf("tx %d: width %d", tx, w)
		}
		if h < 4 || h > 64 || h&(h-1) != 0 {
			t.Errorf("tx %d: height %d", tx, h)
		}
		// The first five entries are the square sizes.
		if tx < Tx4x8 && w != h {
			t.Errorf("tx %d: %dx%d should be square", tx, w, h)
		}
		if tx >= Tx4x8 && w == h {
			t.Errorf("tx %d: %dx%d should be rectangular", tx, w, h)
		}
	}
}

func TestTxSizeUnique(t *testing.T) {
	seen := map[[2]int]TxSize{}
	for tx := TxSize(0); tx < NumTxSizes; tx++ {
		d := [2]int{tx.W(), tx.H()}
		if prev, ok := seen[d]; ok {
			t.Errorf("tx %d duplicates %d (%dx%d)", tx, prev, d[0], d[1])
		}
		seen[d] = tx
	}
}
