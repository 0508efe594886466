// Package draw filters a hand-drawn sample stream in fixed-size chunks.
//
// A Pad keeps the most recent ChunkSize samples. Once full, every push
// evicts the oldest sample and emits a Chunk: the original tail past the
// settle region, and the whole buffer run through the current filter with
// its first output dropped.
package draw

import (
	"github.com/cwbudde/algo-zplane/dsp/zpk"
)

const (
	DefaultChunkSize = 100
	DefaultSettle    = 10
)

// Source supplies the filter applied to each chunk. *zplane.Model
// satisfies it.
type Source interface {
	EffectiveZeros() []complex128
	EffectivePoles() []complex128
}

// Chunk is one emission. X values are absolute sample indices in the
// stream since the last Reset.
type Chunk struct {
	OriginalX []float64
	Original  []float64
	FilteredX []float64
	Filtered  []float64
}

type config struct {
	chunk  int
	settle int
	gain   float64
}

// Option configures a Pad.
type Option func(*config)

// WithChunkSize sets the buffer length. Values below 2 are ignored.
func WithChunkSize(n int) Option {
	return func(cfg *config) {
		if n >= 2 {
			cfg.chunk = n
		}
	}
}

// WithSettle sets how many leading original samples are withheld from
// each chunk. Negative values are ignored.
func WithSettle(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.settle = n
		}
	}
}

// WithGain sets the filter gain.
func WithGain(k float64) Option {
	return func(cfg *config) {
		cfg.gain = k
	}
}

// Pad is not safe for concurrent use.
type Pad struct {
	src   Source
	cfg   config
	buf   []float64
	total int
}

// NewPad creates an empty pad filtering through src.
func NewPad(src Source, opts ...Option) *Pad {
	cfg := config{chunk: DefaultChunkSize, settle: DefaultSettle, gain: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg.settle = min(cfg.settle, cfg.chunk)

	return &Pad{src: src, cfg: cfg, buf: make([]float64, 0, cfg.chunk)}
}

// ChunkSize returns the configured buffer length.
func (p *Pad) ChunkSize() int { return p.cfg.chunk }

// Len returns the number of buffered samples.
func (p *Pad) Len() int { return len(p.buf) }

// Reset clears the buffer and restarts the index count for a new stroke.
func (p *Pad) Reset() {
	p.buf = p.buf[:0]
	p.total = 0
}

// Push appends a sample, evicting the oldest when full. It returns a
// chunk once the buffer holds ChunkSize samples.
func (p *Pad) Push(sample float64) (Chunk, bool) {
	if len(p.buf) == p.cfg.chunk {
		copy(p.buf, p.buf[1:])
		p.buf = p.buf[:len(p.buf)-1]
	}
	p.buf = append(p.buf, sample)
	p.total++

	if len(p.buf) < p.cfg.chunk {
		return Chunk{}, false
	}
	return p.emit(), true
}

func (p *Pad) emit() Chunk {
	first := p.total - len(p.buf)

	filtered := zpk.Filter(p.buf, p.src.EffectiveZeros(), p.src.EffectivePoles(), zpk.WithGain(p.cfg.gain))

	return Chunk{
		OriginalX: indices(first+p.cfg.settle, len(p.buf)-p.cfg.settle),
		Original:  append([]float64(nil), p.buf[p.cfg.settle:]...),
		FilteredX: indices(first+1, len(filtered)-1),
		Filtered:  filtered[1:],
	}
}

func indices(start, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(start + i)
	}
	return out
}
