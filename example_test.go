package logprob_test

import (
	"fmt"

	logprob "github.com/shabbyrobe/go-logprob"
)

func ExampleLogProbFromFloat32() {
	a := logprob.LogProbFromFloat32(-40.0)
	b := logprob.LogProbFromFloat32(-40.001)
	fmt.Println(a.Raw(), b.Raw(), a.Float32(), b.Float32())
	// Output: 30015 30016 -40.0001 -40.001434
}

func ExampleLogProb_Cmp() {
	a := logprob.LogProbFromFloat32(-1)
	b := logprob.LogProbFromFloat32(-2)
	fmt.Println(a.Raw() < b.Raw(), a.Cmp(b), a.GreaterThan(b))
	fmt.Println(logprob.LogProbFromFloat32(5), logprob.LogProbFromFloat32(-100))
	// Output:
	// true 1 true
	// 0 -87.33655
}
