package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-zplane/dsp/allpass"
	"github.com/cwbudde/algo-zplane/internal/designer"
)

func newAllPassCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allpass",
		Short: "List the all-pass catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.newEngine(designer.MethodZPK)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintf(tw, "#\ta\tZero\tPole\n"); err != nil {
				return fmt.Errorf("failed to write output header: %w", err)
			}
			for i, entry := range e.Library().Entries() {
				if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
					i, entry.Label(), allpass.Format(entry.Zero()), allpass.Format(entry.Pole())); err != nil {
					return fmt.Errorf("failed to write output row: %w", err)
				}
			}
			if labels := e.Stages().Labels(); len(labels) > 0 {
				if _, err := fmt.Fprintf(tw, "\nActive\t%v\n", labels); err != nil {
					return fmt.Errorf("failed to write output row: %w", err)
				}
			}
			return tw.Flush()
		},
	}
	cmd.AddCommand(newAllPassPreviewCmd(a))
	return cmd
}

func newAllPassPreviewCmd(a *app) *cobra.Command {
	var points int
	cmd := &cobra.Command{
		Use:   "preview <a>",
		Short: "Print the phase response of one all-pass section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyIntConfig(cmd, "points", &points, a.fileCfg.Response.Points)
			if points <= 0 {
				return fmt.Errorf("--points must be > 0")
			}
			a.settings.Points = points

			e, err := a.newEngine(designer.MethodZPK)
			if err != nil {
				return err
			}

			var preview *designer.Preview
			e.OnPreview(func(p designer.Preview) { preview = &p })
			if !e.SetAllPassInput(args[0]) {
				_, err := allpass.ParseCoefficient(args[0])
				return err
			}
			if preview == nil {
				return e.Status()
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "a = %s, zero = %s, pole = %s\n",
				preview.Entry.Label(), allpass.Format(preview.Entry.Zero()), allpass.Format(preview.Entry.Pole())); err != nil {
				return fmt.Errorf("failed to write output header: %w", err)
			}
			return printResponse(out, preview.Response)
		},
	}
	cmd.Flags().IntVar(&points, "points", 16, "number of frequency bins")
	return cmd
}
