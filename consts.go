package logprob

const (
	// MinFloatVal is the smallest log probability that can be represented,
	// approximately ln(math.SmallestNormalFloat32). Anything below it is
	// clamped to MinLogProb.
	MinFloatVal float32 = -87.33655

	// Increment is the log probability represented by a single step of the
	// code, |MinFloatVal| / MaxCode.
	Increment float32 = 0.0013326703

	// MaxCode is the code of MinLogProb.
	MaxCode = 1<<16 - 1

	// 1 / MinFloatVal, so encoding can multiply instead of dividing.
	invMinFloatVal float32 = -0.01144996

	maxCodeFloat = float32(MaxCode)
)

var (
	// Unity is the log of probability 1 (0 in log space).
	Unity = LogProb{code: 0}

	// MinLogProb is the smallest representable log probability, roughly
	// MinFloatVal.
	MinLogProb = LogProb{code: MaxCode}
)
