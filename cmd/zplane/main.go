// Command zplane is a headless front end to the pole/zero filter
// designer.
//
// The design is given with repeatable flags and shared by every
// subcommand:
//
//	zplane response --zero-conj 0.7+0.7j --pole 0.9
//	zplane response --roots --zero-conj 0.7+0.7j
//	zplane generate --sine 50 --noise 0.1 --out signal.csv
//	zplane filter --in signal.csv --out filtered.csv --pole-conj 0.5+0.5j
//	zplane allpass preview "1 + 1.2j"
//	zplane play --in signal.csv --ticks 20 --resolution 50
//	seq 1 200 | zplane draw --zero 1
//
// Settings are read from $XDG_CONFIG_HOME/algo-zplane/config.toml.
// Flags given on the command line override the file.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-zplane/dsp/allpass"
	"github.com/cwbudde/algo-zplane/dsp/draw"
	"github.com/cwbudde/algo-zplane/dsp/playback"
	"github.com/cwbudde/algo-zplane/internal/config"
	"github.com/cwbudde/algo-zplane/internal/designer"
)

// app holds flag values for one command tree.
type app struct {
	zeros     []string
	zeroConjs []string
	poles     []string
	poleConjs []string
	allPass   []string
	gain      float64

	configPath string
	fileCfg    config.FileConfig
	settings   config.Settings
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("zplane: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	defaults := config.Defaults()

	rootCmd := &cobra.Command{
		Use:               "zplane",
		Short:             "Pole/zero IIR filter designer",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringArrayVar(&a.zeros, "zero", nil, "zero without conjugate, e.g. -0.5 or 0.3+0.2j (repeatable)")
	pf.StringArrayVar(&a.zeroConjs, "zero-conj", nil, "zero with its conjugate (repeatable)")
	pf.StringArrayVar(&a.poles, "pole", nil, "pole without conjugate (repeatable)")
	pf.StringArrayVar(&a.poleConjs, "pole-conj", nil, "pole with its conjugate (repeatable)")
	pf.StringArrayVar(&a.allPass, "allpass", nil, "all-pass coefficient a, adds zero a and pole 1/conj(a) (repeatable)")
	pf.Float64Var(&a.gain, "gain", defaults.Gain, "filter gain k")
	pf.StringVar(&a.configPath, "config", config.DefaultConfigPath(), "path to TOML config")

	rootCmd.AddCommand(newResponseCmd(a))
	rootCmd.AddCommand(newFilterCmd(a))
	rootCmd.AddCommand(newAllPassCmd(a))
	rootCmd.AddCommand(newPlayCmd(a))
	rootCmd.AddCommand(newDrawCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newGenerateCmd())

	return rootCmd
}

func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	settings, err := fileCfg.Resolve()
	if err != nil {
		return fmt.Errorf("invalid config %s: %w", a.configPath, err)
	}
	applyFloatConfig(cmd, "gain", &a.gain, fileCfg.Response.Gain)
	settings.Gain = a.gain

	a.fileCfg = fileCfg
	a.settings = settings
	return nil
}

// newEngine builds an engine from the resolved settings and applies the
// design flags to it.
func (a *app) newEngine(method designer.Method) (*designer.Engine, error) {
	s := a.settings
	e := designer.NewEngine(
		designer.WithPoints(s.Points),
		designer.WithGain(s.Gain),
		designer.WithMethod(method),
		designer.WithLibrary(s.Library...),
		designer.WithPlayback(
			playback.WithMaxSpeed(s.MaxSpeed),
			playback.WithSpeed(s.Speed),
			playback.WithResolution(s.Resolution),
		),
		designer.WithDraw(
			draw.WithChunkSize(s.Chunk),
			draw.WithSettle(s.Settle),
		),
	)

	m := e.Model()
	groups := []struct {
		flag  string
		texts []string
		add   func(complex128)
	}{
		{"zero", a.zeros, func(v complex128) { m.AddZero(v, false) }},
		{"zero-conj", a.zeroConjs, func(v complex128) { m.AddZero(v, true) }},
		{"pole", a.poles, func(v complex128) { m.AddPole(v, false) }},
		{"pole-conj", a.poleConjs, func(v complex128) { m.AddPole(v, true) }},
	}
	for _, g := range groups {
		for _, text := range g.texts {
			v, err := allpass.ParseComplex(text)
			if err != nil {
				return nil, fmt.Errorf("--%s: %w", g.flag, err)
			}
			g.add(v)
		}
	}

	for _, text := range a.allPass {
		if err := e.Stages().AddText(text); err != nil {
			return nil, fmt.Errorf("--allpass: %w", err)
		}
	}
	return e, nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
