package designer

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-zplane/dsp/allpass"
	"github.com/cwbudde/algo-zplane/dsp/zpk"
)

// SetAllPassInput records the text of the coefficient input field. It
// returns whether the add action is enabled and previews the section when
// the text parses. Malformed text is not reported.
func (e *Engine) SetAllPassInput(text string) bool {
	a, err := allpass.ParseCoefficient(text)

	e.mu.Lock()
	e.input = text
	e.inputValid = err == nil
	e.mu.Unlock()

	if err != nil {
		return false
	}
	e.preview(allpass.Entry{A: a})
	return true
}

// AllPassInput returns the recorded input text and whether it is valid.
func (e *Engine) AllPassInput() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.input, e.inputValid
}

// SubmitAllPassInput adds the recorded input as a new stage and clears
// the input.
func (e *Engine) SubmitAllPassInput() error {
	text, _ := e.AllPassInput()
	if err := e.stages.AddText(text); err != nil {
		return err
	}

	e.mu.Lock()
	e.input = ""
	e.inputValid = false
	e.mu.Unlock()
	return nil
}

// AddLibraryEntry commits the i-th catalog entry.
func (e *Engine) AddLibraryEntry(i int) error {
	entry, err := e.library.Entry(i)
	if err != nil {
		return err
	}
	return entry.Commit(e.stages)
}

// RemoveAllPass removes the i-th active stage.
func (e *Engine) RemoveAllPass(i int) error {
	return e.stages.Remove(i)
}

// SelectAllPass previews the i-th active stage.
func (e *Engine) SelectAllPass(i int) error {
	entry, err := e.stages.Entry(i)
	if err != nil {
		return err
	}
	e.preview(entry)
	return nil
}

// PreviewLibraryEntry previews the i-th catalog entry.
func (e *Engine) PreviewLibraryEntry(i int) error {
	entry, err := e.library.Entry(i)
	if err != nil {
		return err
	}
	e.preview(entry)
	return nil
}

func (e *Engine) preview(entry allpass.Entry) {
	var resp zpk.Response
	err := guard(func() error {
		resp = entry.PreviewPhaseResponse(zpk.WithPoints(e.cfg.points))
		return nil
	})
	if err != nil {
		e.setStatus(fmt.Errorf("preview %s: %w", entry.Label(), err))
		return
	}

	e.mu.Lock()
	callbacks := slices.Clone(e.onPreview)
	e.mu.Unlock()

	p := Preview{Entry: entry, Response: resp}
	for _, fn := range callbacks {
		fn(p)
	}
}
