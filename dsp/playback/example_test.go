package playback_test

import (
	"fmt"

	"github.com/cwbudde/algo-zplane/dsp/playback"
)

func ExamplePlayer() {
	p := playback.NewPlayer(playback.WithResolution(3), playback.WithSpeed(800))
	p.Load([]float64{0, 1, 2, 3}, []float64{1, 2, 3, 4}, []float64{1, 1.5, 2, 2.5})
	fmt.Println(p.Interval())

	p.Toggle()
	for range 3 {
		f, _ := p.Tick()
		fmt.Println(f.Cursor, f.Original, f.Filtered)
	}
	// Output:
	// 200ms
	// 0 [1 2 3] [1 1.5 2]
	// 1 [2 3 4] [1.5 2 2.5]
	// 2 [3 4] [2 2.5]
}
