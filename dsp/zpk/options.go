package zpk

// DefaultPoints is the number of frequency bins used when no
// [WithPoints] option is given.
const DefaultPoints = 512

type config struct {
	gain   float64
	points int
}

// Option configures a zpk computation.
type Option func(*config)

// WithGain sets the overall gain k. Default is 1.
func WithGain(k float64) Option {
	return func(cfg *config) { cfg.gain = k }
}

// WithPoints sets the number of frequency bins. Non-positive values are
// ignored.
func WithPoints(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.points = n
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{gain: 1, points: DefaultPoints}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
