package playback

import "time"

const (
	DefaultSpeed      = 500
	DefaultResolution = 200
	DefaultMaxSpeed   = 1000
	DefaultTickUnit   = time.Millisecond

	MinResolution = 2
	MaxResolution = 1000
)

type config struct {
	speed      int
	resolution int
	maxSpeed   int
	tickUnit   time.Duration
}

// Option configures a Player.
type Option func(*config)

// WithSpeed sets the initial speed. Higher is faster.
func WithSpeed(speed int) Option {
	return func(cfg *config) {
		cfg.speed = speed
	}
}

// WithResolution sets the initial window length in samples.
func WithResolution(n int) Option {
	return func(cfg *config) {
		cfg.resolution = n
	}
}

// WithMaxSpeed sets the speed at which the interval reaches zero.
// Non-positive values are ignored.
func WithMaxSpeed(maxSpeed int) Option {
	return func(cfg *config) {
		if maxSpeed > 0 {
			cfg.maxSpeed = maxSpeed
		}
	}
}

// WithTickUnit sets the duration of one interval step. Non-positive
// values are ignored.
func WithTickUnit(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.tickUnit = d
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := config{
		speed:      DefaultSpeed,
		resolution: DefaultResolution,
		maxSpeed:   DefaultMaxSpeed,
		tickUnit:   DefaultTickUnit,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg.speed = clamp(cfg.speed, 0, cfg.maxSpeed)
	cfg.resolution = clamp(cfg.resolution, MinResolution, MaxResolution)
	return cfg
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
