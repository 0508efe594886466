package designer

import (
	"github.com/cwbudde/algo-zplane/dsp/allpass"
	"github.com/cwbudde/algo-zplane/dsp/draw"
	"github.com/cwbudde/algo-zplane/dsp/playback"
	"github.com/cwbudde/algo-zplane/dsp/zpk"
)

// Method selects how the frequency response is evaluated.
type Method int

const (
	// MethodZPK evaluates the zero/pole product directly.
	MethodZPK Method = iota
	// MethodFFT evaluates the expanded coefficients with an FFT.
	MethodFFT
)

func (m Method) String() string {
	if m == MethodFFT {
		return "fft"
	}
	return "zpk"
}

type config struct {
	points   int
	gain     float64
	method   Method
	library  []complex128
	playback []playback.Option
	draw     []draw.Option
}

// Option configures an Engine.
type Option func(*config)

// WithPoints sets the number of frequency bins. Non-positive values are
// ignored.
func WithPoints(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.points = n
		}
	}
}

// WithGain sets the filter gain used for the response and for filtering.
func WithGain(k float64) Option {
	return func(cfg *config) {
		cfg.gain = k
	}
}

// WithMethod selects the response evaluation method.
func WithMethod(m Method) Option {
	return func(cfg *config) {
		cfg.method = m
	}
}

// WithLibrary replaces the default all-pass catalog.
func WithLibrary(coeffs ...complex128) Option {
	return func(cfg *config) {
		cfg.library = append([]complex128(nil), coeffs...)
	}
}

// WithPlayback passes options to the playback driver.
func WithPlayback(opts ...playback.Option) Option {
	return func(cfg *config) {
		cfg.playback = append(cfg.playback, opts...)
	}
}

// WithDraw passes options to the draw pad. The engine gain is applied
// first, so a gain given here wins.
func WithDraw(opts ...draw.Option) Option {
	return func(cfg *config) {
		cfg.draw = append(cfg.draw, opts...)
	}
}

func applyOptions(opts []Option) config {
	cfg := config{
		points:  zpk.DefaultPoints,
		gain:    1,
		library: allpass.DefaultCoefficients,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
