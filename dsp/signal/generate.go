package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic test signals.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sample rate used for time stamps and frequencies.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		if sampleRate > 0 {
			g.sampleRate = sampleRate
		}
	}
}

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator at 1000 Hz with seed 1 unless
// overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{sampleRate: 1000, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleRate returns the generator sample rate.
func (g *Generator) SampleRate() float64 { return g.sampleRate }

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) (Signal, error) {
	if samples <= 0 {
		return Signal{}, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return g.stamp(out), nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) (Signal, error) {
	if samples <= 0 {
		return Signal{}, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return Signal{}, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return g.stamp(out), nil
}

// Mix adds signals sample by sample. The result has the length and time
// stamps of the shortest input.
func Mix(signals ...Signal) Signal {
	if len(signals) == 0 {
		return Signal{}
	}
	n := signals[0].Len()
	for _, s := range signals[1:] {
		n = min(n, s.Len())
	}
	out := Signal{
		Time:      append([]float64(nil), signals[0].Time[:n]...),
		Amplitude: make([]float64, n),
	}
	for _, s := range signals {
		for i := range n {
			out.Amplitude[i] += s.Amplitude[i]
		}
	}
	return out
}

func (g *Generator) stamp(samples []float64) Signal {
	t := make([]float64, len(samples))
	for i := range t {
		t[i] = float64(i) / g.sampleRate
	}
	return Signal{Time: t, Amplitude: samples}
}
