// Package designer wires the pole/zero model, the transfer-function
// engine, the all-pass library and the signal drivers into the single
// object an interactive front end binds to.
//
// Every model change recomputes the frequency response synchronously and
// forwards it to OnResponse callbacks. Failures in these interactive paths
// never propagate: the previous result is kept and the failure is reported
// through Status and OnStatus.
package designer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/cwbudde/algo-zplane/dsp/allpass"
	"github.com/cwbudde/algo-zplane/dsp/draw"
	"github.com/cwbudde/algo-zplane/dsp/playback"
	"github.com/cwbudde/algo-zplane/dsp/signal"
	"github.com/cwbudde/algo-zplane/dsp/zplane"
	"github.com/cwbudde/algo-zplane/dsp/zpk"
)

var (
	// ErrNoSignal is returned by playback and filtering before a signal
	// has been loaded.
	ErrNoSignal = errors.New("designer: no signal loaded")
	// ErrRecovered wraps a panic caught in an interactive path.
	ErrRecovered = errors.New("designer: recovered from panic")
)

// View is the page the front end should show.
type View int

const (
	ViewEditor View = iota
	ViewApply
)

func (v View) String() string {
	if v == ViewApply {
		return "apply"
	}
	return "editor"
}

// Preview is the phase response of a single all-pass section that has not
// been committed.
type Preview struct {
	Entry    allpass.Entry
	Response zpk.Response
}

// Engine is the designer state. Model edits go through Model(); all other
// interaction goes through Engine methods. Callbacks run on the goroutine
// that caused the change and must not mutate the model.
type Engine struct {
	cfg     config
	model   *zplane.Model
	library *allpass.Library
	stages  *allpass.Stages
	player  *playback.Player
	pad     *draw.Pad

	mu         sync.Mutex
	response   zpk.Response
	view       View
	status     error
	sig        signal.Signal
	loaded     bool
	input      string
	inputValid bool

	onResponse []func(zpk.Response, bool)
	onPreview  []func(Preview)
	onStatus   []func(error)
}

// NewEngine builds an engine with an empty model and computes the
// initial response.
func NewEngine(opts ...Option) *Engine {
	cfg := applyOptions(opts)

	e := &Engine{
		cfg:     cfg,
		model:   zplane.New(),
		library: allpass.NewLibrary(cfg.library...),
		player:  playback.NewPlayer(cfg.playback...),
	}
	e.stages = allpass.NewStages(e.model)
	e.pad = draw.NewPad(e.model, append([]draw.Option{draw.WithGain(cfg.gain)}, cfg.draw...)...)

	e.model.OnChange(e.modelChanged)
	e.modelChanged(true)
	return e
}

// Model returns the pole/zero model the front end edits.
func (e *Engine) Model() *zplane.Model { return e.model }

// Library returns the all-pass catalog.
func (e *Engine) Library() *allpass.Library { return e.library }

// Stages returns the active all-pass list.
func (e *Engine) Stages() *allpass.Stages { return e.stages }

// Player returns the playback driver.
func (e *Engine) Player() *playback.Player { return e.player }

// Method returns the response evaluation method.
func (e *Engine) Method() Method { return e.cfg.method }

// OnResponse registers a callback for recomputed responses. goToEditor
// tells the front end whether to switch to the editor view.
func (e *Engine) OnResponse(fn func(resp zpk.Response, goToEditor bool)) {
	e.mu.Lock()
	e.onResponse = append(e.onResponse, fn)
	e.mu.Unlock()
}

// OnPreview registers a callback for all-pass previews.
func (e *Engine) OnPreview(fn func(Preview)) {
	e.mu.Lock()
	e.onPreview = append(e.onPreview, fn)
	e.mu.Unlock()
}

// OnStatus registers a callback for status changes. A nil error means
// the last interactive operation succeeded.
func (e *Engine) OnStatus(fn func(error)) {
	e.mu.Lock()
	e.onStatus = append(e.onStatus, fn)
	e.mu.Unlock()
}

// Response returns the most recent successfully computed response.
func (e *Engine) Response() zpk.Response {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.response
}

// View returns the current view.
func (e *Engine) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view
}

// Status returns the last interactive failure, or nil.
func (e *Engine) Status() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

func (e *Engine) modelChanged(goToEditor bool) {
	zeros, poles := e.model.EffectiveZeros(), e.model.EffectivePoles()

	var resp zpk.Response
	err := guard(func() error {
		var err error
		resp, err = e.evaluate(zeros, poles)
		return err
	})

	e.mu.Lock()
	if goToEditor {
		e.view = ViewEditor
	}
	if err != nil {
		e.mu.Unlock()
		e.setStatus(fmt.Errorf("response: %w", err))
		return
	}
	e.response = resp
	callbacks := slices.Clone(e.onResponse)
	e.mu.Unlock()

	e.setStatus(nil)
	for _, fn := range callbacks {
		fn(resp, goToEditor)
	}
}

func (e *Engine) evaluate(zeros, poles []complex128) (zpk.Response, error) {
	opts := []zpk.Option{zpk.WithGain(e.cfg.gain), zpk.WithPoints(e.cfg.points)}
	if e.cfg.method == MethodFFT {
		return zpk.NewTransferFunction(zeros, poles, opts...).FrequencyResponse(e.cfg.points)
	}
	return zpk.FrequencyResponse(zeros, poles, opts...), nil
}

func (e *Engine) setStatus(err error) {
	e.mu.Lock()
	if err == nil && e.status == nil {
		e.mu.Unlock()
		return
	}
	e.status = err
	callbacks := slices.Clone(e.onStatus)
	e.mu.Unlock()

	for _, fn := range callbacks {
		fn(err)
	}
}

// guard runs fn and converts a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRecovered, r)
		}
	}()
	return fn()
}

// LoadSignal reads a CSV signal. On success the signal replaces the
// current one, playback stops and rewinds, and the view switches to
// ViewApply. On error nothing changes.
func (e *Engine) LoadSignal(r io.Reader) error {
	sig, err := signal.ReadCSV(r)
	if err != nil {
		return err
	}
	e.setSignal(sig)
	return nil
}

// LoadFile is LoadSignal for a path.
func (e *Engine) LoadFile(path string) error {
	sig, err := signal.LoadFile(path)
	if err != nil {
		return err
	}
	e.setSignal(sig)
	return nil
}

func (e *Engine) setSignal(sig signal.Signal) {
	e.player.Stop()
	e.player.Rewind()

	e.mu.Lock()
	e.sig = sig
	e.loaded = true
	e.view = ViewApply
	e.mu.Unlock()
}

// Signal returns the loaded signal.
func (e *Engine) Signal() (signal.Signal, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sig, e.loaded
}

// ControlsEnabled reports whether playback controls may be used.
func (e *Engine) ControlsEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loaded
}

// Apply filters the loaded signal with the current effective zeros and
// poles.
func (e *Engine) Apply() ([]float64, error) {
	sig, ok := e.Signal()
	if !ok {
		return nil, ErrNoSignal
	}

	zeros, poles := e.model.EffectiveZeros(), e.model.EffectivePoles()

	var out []float64
	err := guard(func() error {
		out = zpk.Filter(sig.Amplitude, zeros, poles, zpk.WithGain(e.cfg.gain))
		return nil
	})
	if err != nil {
		e.setStatus(fmt.Errorf("filter: %w", err))
		return nil, err
	}
	e.setStatus(nil)
	return out, nil
}

// Roots expands the current design into its numerator and denominator
// polynomials and solves them again. The result shows where the realised
// filter's zeros and poles actually sit after rounding.
func (e *Engine) Roots() (zeros, poles []complex128, err error) {
	tf := zpk.NewTransferFunction(e.model.EffectiveZeros(), e.model.EffectivePoles(), zpk.WithGain(e.cfg.gain))
	err = guard(func() error {
		var err error
		if zeros, err = tf.Zeros(); err != nil {
			return err
		}
		poles, err = tf.Poles()
		return err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("roots: %w", err)
	}
	return zeros, poles, nil
}

// TogglePlayback starts or stops playback. Starting filters the loaded
// signal with the current design and hands both to the player.
func (e *Engine) TogglePlayback() (playback.State, error) {
	if e.player.State() == playback.Running {
		e.player.Stop()
		return playback.Stopped, nil
	}

	filtered, err := e.Apply()
	if err != nil {
		return playback.Stopped, err
	}
	sig, _ := e.Signal()
	e.player.Load(sig.Time, sig.Amplitude, filtered)
	e.player.Start()
	return playback.Running, nil
}

// SetSpeed forwards to the player.
func (e *Engine) SetSpeed(speed int) { e.player.SetSpeed(speed) }

// SetResolution forwards to the player.
func (e *Engine) SetResolution(n int) { e.player.SetResolution(n) }

// Tick advances playback by one frame.
func (e *Engine) Tick() (playback.Frame, bool) { return e.player.Tick() }

// Run drives playback until ctx is done.
func (e *Engine) Run(ctx context.Context, emit func(playback.Frame)) error {
	return e.player.Run(ctx, emit)
}

// DrawSample feeds one hand-drawn sample to the draw pad.
func (e *Engine) DrawSample(v float64) (draw.Chunk, bool) { return e.pad.Push(v) }

// ResetDraw starts a new stroke.
func (e *Engine) ResetDraw() { e.pad.Reset() }
