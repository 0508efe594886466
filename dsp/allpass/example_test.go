package allpass_test

import (
	"fmt"

	"github.com/cwbudde/algo-zplane/dsp/allpass"
	"github.com/cwbudde/algo-zplane/dsp/zplane"
)

func ExampleStages() {
	model := zplane.New()
	stages := allpass.NewStages(model)

	for _, text := range []string{"1 + 1.2j", "abc"} {
		fmt.Printf("%q add enabled: %v\n", text, allpass.CanAdd(text))
	}

	_ = stages.AddText("1 + 1.2j")
	fmt.Println(stages.Labels())
	fmt.Println(len(model.EffectiveZeros()), len(model.EffectivePoles()))
	// Output:
	// "1 + 1.2j" add enabled: true
	// "abc" add enabled: false
	// [1 + 1.2j]
	// 1 1
}
