// Package config provides configuration helpers and TOML parsing.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/cwbudde/algo-zplane/dsp/allpass"
	"github.com/cwbudde/algo-zplane/dsp/draw"
	"github.com/cwbudde/algo-zplane/dsp/playback"
	"github.com/cwbudde/algo-zplane/dsp/zpk"
)

// FileConfig represents the TOML configuration file. Unset keys are nil.
type FileConfig struct {
	Response ResponseConfig `toml:"response"`
	Playback PlaybackConfig `toml:"playback"`
	Draw     DrawConfig     `toml:"draw"`
	AllPass  AllPassConfig  `toml:"allpass"`
}

// ResponseConfig maps frequency-response settings.
type ResponseConfig struct {
	Points *int     `toml:"points"`
	Gain   *float64 `toml:"gain"`
}

// PlaybackConfig maps playback driver settings.
type PlaybackConfig struct {
	Speed      *int `toml:"speed"`
	Resolution *int `toml:"resolution"`
	MaxSpeed   *int `toml:"max-speed"`
}

// DrawConfig maps draw pad settings.
type DrawConfig struct {
	Chunk  *int `toml:"chunk"`
	Settle *int `toml:"settle"`
}

// AllPassConfig maps the all-pass catalog. Entries are complex literals
// such as "1+1.2j".
type AllPassConfig struct {
	Library []string `toml:"library"`
}

// Settings are resolved values with defaults applied.
type Settings struct {
	Points     int
	Gain       float64
	Speed      int
	Resolution int
	MaxSpeed   int
	Chunk      int
	Settle     int
	Library    []complex128
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Points:     zpk.DefaultPoints,
		Gain:       1,
		Speed:      playback.DefaultSpeed,
		Resolution: playback.DefaultResolution,
		MaxSpeed:   playback.DefaultMaxSpeed,
		Chunk:      draw.DefaultChunkSize,
		Settle:     draw.DefaultSettle,
		Library:    append([]complex128(nil), allpass.DefaultCoefficients...),
	}
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, errors.New("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Resolve overlays the file values on Defaults. Library literals must
// parse as valid all-pass coefficients.
func (c FileConfig) Resolve() (Settings, error) {
	s := Defaults()
	setInt(&s.Points, c.Response.Points)
	if c.Response.Gain != nil {
		s.Gain = *c.Response.Gain
	}
	setInt(&s.Speed, c.Playback.Speed)
	setInt(&s.Resolution, c.Playback.Resolution)
	setInt(&s.MaxSpeed, c.Playback.MaxSpeed)
	setInt(&s.Chunk, c.Draw.Chunk)
	setInt(&s.Settle, c.Draw.Settle)

	if c.AllPass.Library != nil {
		s.Library = make([]complex128, 0, len(c.AllPass.Library))
		for _, text := range c.AllPass.Library {
			a, err := allpass.ParseCoefficient(text)
			if err != nil {
				return Settings{}, fmt.Errorf("allpass library: %w", err)
			}
			s.Library = append(s.Library, a)
		}
	}

	if s.Points <= 0 {
		return Settings{}, fmt.Errorf("response points must be > 0: %d", s.Points)
	}
	return s, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
