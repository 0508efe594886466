package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-zplane/dsp/playback"
	"github.com/cwbudde/algo-zplane/dsp/signal"
	"github.com/cwbudde/algo-zplane/internal/designer"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		in         string
		ticks      int
		speed      int
		resolution int
		realtime   bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run the playback driver over a filtered signal",
		Long: "Loads a CSV signal, filters it with the design and prints one summary " +
			"line per playback frame. With --realtime frames are paced by --speed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyIntConfig(cmd, "speed", &speed, a.fileCfg.Playback.Speed)
			applyIntConfig(cmd, "resolution", &resolution, a.fileCfg.Playback.Resolution)
			if ticks <= 0 {
				return fmt.Errorf("--ticks must be > 0")
			}
			a.settings.Speed = speed
			a.settings.Resolution = resolution

			e, err := a.newEngine(designer.MethodZPK)
			if err != nil {
				return err
			}
			if err := e.LoadFile(in); err != nil {
				return err
			}
			if _, err := e.TogglePlayback(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !realtime {
				for range ticks {
					f, _ := e.Tick()
					if err := printFrame(out, f); err != nil {
						return err
					}
				}
				return nil
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			var (
				n       int
				emitErr error
			)
			err = e.Run(ctx, func(f playback.Frame) {
				if n >= ticks {
					return
				}
				if err := printFrame(out, f); err != nil {
					emitErr = err
				}
				n++
				if n == ticks || emitErr != nil {
					cancel()
				}
			})
			if emitErr != nil {
				return emitErr
			}
			if n == ticks {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input CSV file")
	cmd.Flags().IntVar(&ticks, "ticks", 10, "number of frames to emit")
	cmd.Flags().IntVar(&speed, "speed", playback.DefaultSpeed, "playback speed (0-1000)")
	cmd.Flags().IntVar(&resolution, "resolution", playback.DefaultResolution, "frame length in samples (2-1000)")
	cmd.Flags().BoolVar(&realtime, "realtime", false, "pace frames with the playback interval")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func printFrame(w io.Writer, f playback.Frame) error {
	orig, filt := signal.Measure(f.Original), signal.Measure(f.Filtered)
	_, err := fmt.Fprintf(w, "frame %d: n=%d rms=%.6f/%.6f peak=%.6f/%.6f\n",
		f.Cursor, f.Len(), orig.RMS, filt.RMS, orig.Peak, filt.Peak)
	return err
}
