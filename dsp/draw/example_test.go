package draw_test

import (
	"fmt"

	"github.com/cwbudde/algo-zplane/dsp/draw"
	"github.com/cwbudde/algo-zplane/dsp/zplane"
)

func ExamplePad() {
	m := zplane.New()
	m.AddPole(0.5, false)

	pad := draw.NewPad(m, draw.WithChunkSize(4), draw.WithSettle(1))
	for _, v := range []float64{1, 0, 0, 0, 0} {
		if c, ok := pad.Push(v); ok {
			fmt.Println(c.OriginalX, c.Original, c.FilteredX, c.Filtered)
		}
	}
	// Output:
	// [1 2 3] [0 0 0] [1 2 3] [0.5 0.25 0.125]
	// [2 3 4] [0 0 0] [2 3 4] [0 0 0]
}
