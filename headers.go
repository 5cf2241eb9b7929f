package av1

// Pixel is the sample type a decoder build is instantiated over: uint8 for
// 8-bit streams, uint16 for 10- and 12-bit streams.
type Pixel interface {
	~uint8 | ~uint16
}

// PixelLayout describes the chroma subsampling of a frame.
type PixelLayout int

const (
	LayoutI400 PixelLayout = iota // monochrome, no chroma planes
	LayoutI420                    // chroma subsampled 2x horizontally and vertically
	LayoutI422                    // chroma subsampled 2x horizontally
	LayoutI444                    // full-resolution chroma
)

// TxSize enumerates the transform block sizes, square sizes first, then the
// rectangular ones.
type TxSize int

const (
	Tx4x4 TxSize = iota
	Tx8x8
	Tx16x16
	Tx32x32
	Tx64x64
	Tx4x8
	Tx8x4
	Tx8x16
	Tx16x8
	Tx16x32
	Tx32x16
	Tx32x64
	Tx64x32
	Tx4x16
	Tx16x4
	Tx8x32
	Tx32x8
	Tx16x64
	Tx64x16
	NumTxSizes
)

var txWidths = [NumTxSizes]int{
	4, 8, 16, 32, 64, 4, 8, 8, 16, 16, 32, 32, 64, 4, 16, 8, 32, 16, 64,
}

var txHeights = [NumTxSizes]int{
	4, 8, 16, 32, 64, 8, 4, 16, 8, 32, 16, 64, 32, 16, 4, 32, 8, 64, 16,
}

// W returns the transform block width in samples.
func (t TxSize) W() int { return txWidths[t] }

// H returns the transform block height in samples.
func (t TxSize) H() int { return txHeights[t] }

// IntraPredMode enumerates the intra prediction modes of the sample
// generation core. Z1Pred, Z2Pred and Z3Pred take an angle word as their
// parameter; FilterPred takes a filter set index.
type IntraPredMode int

const (
	DCPred IntraPredMode = iota
	DC128Pred
	TopDCPred
	LeftDCPred
	HorPred
	VertPred
	PaethPred
	SmoothPred
	SmoothVPred
	SmoothHPred
	Z1Pred
	Z2Pred
	Z3Pred
	FilterPred
	NumIntraPredModes
)
