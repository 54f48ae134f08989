package logprob

import (
	"fmt"
	"strconv"
)

// LogProb is a log probability quantized to a 16-bit code. Code 0 is Unity
// and MaxCode is MinLogProb; each step in between is worth Increment.
type LogProb struct {
	code uint16
}

// LogProbFromFloat32 creates a LogProb from a log probability. Values at or
// above 0 (including +Inf) become Unity, values below MinFloatVal (including
// -Inf) become MinLogProb. NaN also becomes MinLogProb.
//
// In-range values are rounded half away from zero to the nearest code.
func LogProbFromFloat32(f float32) LogProb {
	if f < MinFloatVal {
		return MinLogProb

	} else if f >= 0 {
		return Unity

	} else if f != f { // (f != f) == NaN
		return MinLogProb
	}

	return LogProb{code: quantize(f)}
}

// LogProbFromFloat64 creates a LogProb from a float64 log probability. The
// value is narrowed to float32 first, so the result always matches
// LogProbFromFloat32(float32(f)).
//
// inRange is false if the value had to be clamped, or if it was NaN. It is
// decided on f itself, so a tiny positive f is out of range even though it
// narrows to 0. Zero is in range, positive numbers are not.
func LogProbFromFloat64(f float64) (out LogProb, inRange bool) {
	out = LogProbFromFloat32(float32(f))
	inRange = f == 0 || (f < 0 && f >= float64(MinFloatVal))
	return out, inRange
}

// Raw returns the stored code. Larger codes are smaller probabilities.
func (l LogProb) Raw() uint16 { return l.code }

func (l LogProb) IsUnity() bool { return l.code == 0 }
func (l LogProb) IsMin() bool   { return l.code == MaxCode }

// Float32 recovers an approximation of the log probability l was created
// from. The result is within one Increment of the original value.
func (l LogProb) Float32() float32 {
	return dequantize(l.code)
}

func (l LogProb) Float64() float64 {
	return float64(dequantize(l.code))
}

func (l LogProb) String() string {
	return strconv.FormatFloat(float64(l.Float32()), 'g', -1, 32)
}

func (l LogProb) GoString() string {
	return fmt.Sprintf("logprob.LogProb{code: %d}", l.code)
}

// Cmp compares l and n by the log probability they represent and returns:
//
//	-1 if l <  n
//	 0 if l == n
//	+1 if l >  n
//
// This is the reverse of comparing the codes.
func (l LogProb) Cmp(n LogProb) int {
	if l.code < n.code {
		return 1
	} else if l.code > n.code {
		return -1
	}
	return 0
}

func (l LogProb) Equal(n LogProb) bool {
	return l.code == n.code
}

func (l LogProb) GreaterThan(n LogProb) bool {
	return l.code < n.code
}

func (l LogProb) GreaterOrEqualTo(n LogProb) bool {
	return l.code <= n.code
}

func (l LogProb) LessThan(n LogProb) bool {
	return l.code > n.code
}

func (l LogProb) LessOrEqualTo(n LogProb) bool {
	return l.code >= n.code
}
