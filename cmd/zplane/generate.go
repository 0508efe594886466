package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-zplane/dsp/signal"
)

func newGenerateCmd() *cobra.Command {
	var (
		sines     []float64
		amplitude float64
		noise     float64
		samples   int
		rate      float64
		seed      int64
		out       string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic CSV signal for filter and play",
		Long: "Sums sine waves and optional white noise into a time,amplitude CSV. " +
			"The output can be passed to filter --in or play --in.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if samples < signal.MinLength {
				return fmt.Errorf("--samples must be >= %d: %w", signal.MinLength, signal.ErrTooShort)
			}
			if rate <= 0 {
				return fmt.Errorf("--rate must be > 0")
			}
			if len(sines) == 0 && noise == 0 {
				return fmt.Errorf("need at least one --sine or a non-zero --noise")
			}

			gen := signal.NewGenerator(signal.WithSampleRate(rate), signal.WithSeed(seed))
			parts := make([]signal.Signal, 0, len(sines)+1)
			for _, f := range sines {
				s, err := gen.Sine(f, amplitude, samples)
				if err != nil {
					return err
				}
				parts = append(parts, s)
			}
			if noise != 0 {
				s, err := gen.WhiteNoise(noise, samples)
				if err != nil {
					return err
				}
				parts = append(parts, s)
			}
			sig := signal.Mix(parts...)

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer f.Close()
				w = f
			}
			return signal.WriteCSV(w, []string{"time", "amplitude"}, sig.Time, sig.Amplitude)
		},
	}
	cmd.Flags().Float64SliceVar(&sines, "sine", nil, "sine frequency in Hz (repeatable)")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 1, "amplitude of each sine")
	cmd.Flags().Float64Var(&noise, "noise", 0, "white noise amplitude, 0 for none")
	cmd.Flags().IntVar(&samples, "samples", signal.MinLength, "number of samples")
	cmd.Flags().Float64Var(&rate, "rate", 1000, "sample rate in Hz")
	cmd.Flags().Int64Var(&seed, "seed", 1, "noise seed")
	cmd.Flags().StringVar(&out, "out", "-", "output CSV file, - for stdout")
	return cmd
}
