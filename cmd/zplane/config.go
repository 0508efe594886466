package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-zplane/dsp/allpass"
	"github.com/cwbudde/algo-zplane/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved settings or create the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !write {
				if err := printSettings(out, a.configPath, a.settings); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				return nil
			}

			if err := os.MkdirAll(filepath.Dir(a.configPath), 0o755); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}
			if _, err := os.Stat(a.configPath); err == nil {
				return fmt.Errorf("config already exists: %s", a.configPath)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("failed to stat config: %w", err)
			}
			if err := os.WriteFile(a.configPath, []byte(defaultConfigTemplate()), 0o644); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			if _, err := fmt.Fprintln(out, a.configPath); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "write a commented default config file")
	return cmd
}

func printSettings(w io.Writer, path string, s config.Settings) error {
	lines := []string{
		fmt.Sprintf("config: %s", path),
		fmt.Sprintf("response: points=%d gain=%g", s.Points, s.Gain),
		fmt.Sprintf("playback: speed=%d resolution=%d max-speed=%d", s.Speed, s.Resolution, s.MaxSpeed),
		fmt.Sprintf("draw: chunk=%d settle=%d", s.Chunk, s.Settle),
	}
	for _, c := range s.Library {
		lines = append(lines, "allpass: "+allpass.Format(c))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func defaultConfigTemplate() string {
	d := config.Defaults()
	library := ""
	for i, c := range d.Library {
		if i > 0 {
			library += ", "
		}
		library += fmt.Sprintf("%q", allpass.Format(c))
	}

	return fmt.Sprintf(`# algo-zplane configuration
# Uncomment a value to enable it. CLI flags override config values.

[response]
# points = %d       # Frequency bins in [0, pi)
# gain = %g           # Filter gain k

[playback]
# speed = %d        # 0 (slowest) to max-speed
# resolution = %d   # Frame length in samples (2-1000)
# max-speed = %d   # Interval is (max-speed - speed) ms

[draw]
# chunk = %d        # Samples per draw-pad chunk
# settle = %d        # Leading original samples withheld per chunk

[allpass]
# library = [%s]
`,
		d.Points, d.Gain, d.Speed, d.Resolution, d.MaxSpeed, d.Chunk, d.Settle, library,
	)
}
