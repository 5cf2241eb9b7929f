// Package av1 provides building blocks for a pure Go AV1 video decoder.
//
// The module currently covers the intra-prediction sample-generation core:
// given a block's geometry, the reconstructed neighbor samples above and to
// the left of the block, and a prediction mode, it produces the predicted
// pixels for that block. This includes the directional predictors with
// fractional-position sampling, the DC/Paeth/smooth family, the recursive
// filter predictor, chroma-from-luma (CfL) support, and palette expansion.
// See the ipred subpackage.
//
// This package holds the shared enumerations the decoder stages speak:
// pixel layouts, transform sizes, and intra prediction modes. The sample
// kernels are generic over the pixel type, so one source tree serves 8-bit
// and 10/12-bit streams:
//
//	c8 := ipred.New[uint8]()   // 8-bit build
//	c16 := ipred.New[uint16]() // 10- and 12-bit builds
//
// The remaining decoder stages (bitstream parse, entropy decoding,
// transforms, loop filtering, frame management) are not implemented here.
package av1
