/*
Package logprob provides LogProb, a log probability stored in 16 bits.

Log probabilities span the range [-87.33655, 0]. The lower bound is
ln(math.SmallestNormalFloat32), the smallest log a normal float32 can carry
before it underflows. A LogProb takes half the space of a float32 and is
useful when many log probabilities are stored at once (lattices, matrices,
model state) and a precision of about 0.00133 is acceptable.

LogProb is a value type; all operations return new values.

Simple example:

	a := LogProbFromFloat32(-40.0)
	b := LogProbFromFloat32(-40.001)
	fmt.Println(a.Raw(), b.Raw(), a.Float32(), b.Float32())
	// Output: 30015 30016 -40.0001 -40.001434

LogProb can be created from these sources:

	LogProbFromFloat32(f float32) LogProb
	LogProbFromFloat64(f float64) (out LogProb, inRange bool)

The two canonical values Unity (log 0, code 0) and MinLogProb (code 65535)
are also available.

Out-of-range inputs are never an error. Anything at or above 0 becomes
Unity. Anything below MinFloatVal becomes MinLogProb, and so does NaN.

Codes are stored in reverse: a larger code means a smaller probability.
Cmp and the comparison helpers order values by the log probability they
represent, not by their code. Do not compare Raw() values directly unless
you want the opposite order.
*/
package logprob
