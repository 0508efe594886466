package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-zplane/dsp/signal"
	"github.com/cwbudde/algo-zplane/internal/designer"
)

func newFilterCmd(a *app) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter a CSV signal with the design",
		Long: fmt.Sprintf("Reads a CSV with time in column 0 and amplitude in column 1 "+
			"(at least %d rows) and writes time,original,filtered.", signal.MinLength),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.newEngine(designer.MethodZPK)
			if err != nil {
				return err
			}
			if err := e.LoadFile(in); err != nil {
				return err
			}
			filtered, err := e.Apply()
			if err != nil {
				return err
			}
			sig, _ := e.Signal()

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer f.Close()
				w = f
			}
			return signal.WriteCSV(w, []string{"time", "original", "filtered"}, sig.Time, sig.Amplitude, filtered)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input CSV file")
	cmd.Flags().StringVar(&out, "out", "-", "output CSV file, - for stdout")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
