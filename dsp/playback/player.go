// Package playback animates a sliding window over an original and a
// filtered signal.
//
// A Player emits one Frame per tick while Running. Each frame covers
// [cursor, cursor+resolution) clamped to the buffers, after which the
// cursor advances by one sample. Past the end of the buffers frames get
// shorter and finally empty; that is not an error.
package playback

import (
	"context"
	"sync"
	"time"
)

// State is the playback state.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Frame is one emitted window. Slices alias the loaded buffers and must
// not be modified.
type Frame struct {
	Cursor   int
	Time     []float64
	Original []float64
	Filtered []float64
}

// Len returns the number of samples in the frame.
func (f Frame) Len() int { return len(f.Original) }

// Player is safe for concurrent use: Run may tick on its own goroutine
// while speed, resolution and state are changed from another.
type Player struct {
	mu       sync.Mutex
	cfg      config
	state    State
	cursor   int
	time     []float64
	original []float64
	filtered []float64
}

// NewPlayer creates a stopped player with empty buffers.
func NewPlayer(opts ...Option) *Player {
	return &Player{cfg: applyOptions(opts...)}
}

// Load replaces the buffers. The cursor is kept.
func (p *Player) Load(time, original, filtered []float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.time = time
	p.original = original
	p.filtered = filtered
}

// Start switches to Running.
func (p *Player) Start() {
	p.mu.Lock()
	p.state = Running
	p.mu.Unlock()
}

// Stop switches to Stopped.
func (p *Player) Stop() {
	p.mu.Lock()
	p.state = Stopped
	p.mu.Unlock()
}

// Toggle flips the state and returns the new one.
func (p *Player) Toggle() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Running {
		p.state = Stopped
	} else {
		p.state = Running
	}
	return p.state
}

// State returns the current state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Speed returns the current speed.
func (p *Player) Speed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.speed
}

// SetSpeed clamps speed to [0, maxSpeed]. The interval changes at once.
func (p *Player) SetSpeed(speed int) {
	p.mu.Lock()
	p.cfg.speed = clamp(speed, 0, p.cfg.maxSpeed)
	p.mu.Unlock()
}

// Resolution returns the current window length.
func (p *Player) Resolution() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.resolution
}

// SetResolution clamps n to [MinResolution, MaxResolution]. It applies
// from the next emitted frame.
func (p *Player) SetResolution(n int) {
	p.mu.Lock()
	p.cfg.resolution = clamp(n, MinResolution, MaxResolution)
	p.mu.Unlock()
}

// Interval is (maxSpeed - speed) tick units.
func (p *Player) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval()
}

func (p *Player) interval() time.Duration {
	return time.Duration(p.cfg.maxSpeed-p.cfg.speed) * p.cfg.tickUnit
}

// Cursor returns the start index of the next frame.
func (p *Player) Cursor() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// Rewind moves the cursor back to the start.
func (p *Player) Rewind() {
	p.mu.Lock()
	p.cursor = 0
	p.mu.Unlock()
}

// Tick emits the current frame and advances the cursor. It returns false
// without side effects when Stopped.
func (p *Player) Tick() (Frame, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Running {
		return Frame{}, false
	}

	f := Frame{
		Cursor:   p.cursor,
		Time:     window(p.time, p.cursor, p.cfg.resolution),
		Original: window(p.original, p.cursor, p.cfg.resolution),
		Filtered: window(p.filtered, p.cursor, p.cfg.resolution),
	}
	p.cursor++
	return f, true
}

// Run ticks until ctx is done, waiting Interval between ticks. The
// interval is re-read before every wait. emit is called without the
// player lock held and may call back into the player.
func (p *Player) Run(ctx context.Context, emit func(Frame)) error {
	timer := time.NewTimer(p.Interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			if f, ok := p.Tick(); ok && emit != nil {
				emit(f)
			}
			timer.Reset(p.Interval())
		}
	}
}

func window(buf []float64, start, n int) []float64 {
	if start >= len(buf) {
		return buf[len(buf):]
	}
	return buf[start:min(start+n, len(buf))]
}
