package logprob

// LargerLogProb returns whichever of a and b represents the larger log
// probability (the smaller code).
func LargerLogProb(a, b LogProb) LogProb {
	if a.code > b.code {
		return b
	}
	return a
}

// SmallerLogProb returns whichever of a and b represents the smaller log
// probability (the larger code).
func SmallerLogProb(a, b LogProb) LogProb {
	if a.code < b.code {
		return b
	}
	return a
}
