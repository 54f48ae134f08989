package logprob

import (
	"math"
)

// quantize expects f to be in [MinFloatVal, 0). The products are kept in
// float32 so codes match across platforms. At MinFloatVal the product is
// exactly maxCodeFloat, so the conversion can't overflow.
//
// math.Round rounds half away from zero.
func quantize(f float32) uint16 {
	scaled := float32(float32(f*invMinFloatVal) * maxCodeFloat)
	return uint16(math.Round(float64(scaled)))
}

// dequantize maps a code back onto [MinFloatVal, 0]. Code 0 yields +0.
func dequantize(code uint16) float32 {
	return 0 - float32(float32(code)*Increment)
}
