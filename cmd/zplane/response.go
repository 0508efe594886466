package main

import (
	"fmt"
	"io"
	"math/cmplx"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-zplane/dsp/zpk"
	"github.com/cwbudde/algo-zplane/internal/designer"
	"github.com/cwbudde/algo-zplane/internal/polyroot"
)

func newResponseCmd(a *app) *cobra.Command {
	var (
		points int
		method string
		roots  bool
	)
	cmd := &cobra.Command{
		Use:   "response",
		Short: "Print the frequency response of the design",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyIntConfig(cmd, "points", &points, a.fileCfg.Response.Points)
			if points <= 0 {
				return fmt.Errorf("--points must be > 0")
			}
			a.settings.Points = points

			m, err := parseMethod(method)
			if err != nil {
				return err
			}
			e, err := a.newEngine(m)
			if err != nil {
				return err
			}
			if roots {
				zeros, poles, err := e.Roots()
				if err != nil {
					return err
				}
				return printRoots(cmd.OutOrStdout(), zeros, poles)
			}
			if err := e.Status(); err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), e.Response())
		},
	}
	cmd.Flags().IntVar(&points, "points", zpk.DefaultPoints, "number of frequency bins in [0, pi)")
	cmd.Flags().StringVar(&method, "method", designer.MethodZPK.String(), "evaluation method: zpk or fft")
	cmd.Flags().BoolVar(&roots, "roots", false, "print the roots recovered from the expanded polynomials instead")
	return cmd
}

func parseMethod(s string) (designer.Method, error) {
	switch s {
	case designer.MethodZPK.String():
		return designer.MethodZPK, nil
	case designer.MethodFFT.String():
		return designer.MethodFFT, nil
	}
	return 0, fmt.Errorf("--method must be zpk or fft, got %q", s)
}

func printResponse(w io.Writer, resp zpk.Response) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Bin\tw [rad]\tMagnitude [dB]\tPhase [rad]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "---\t-------\t--------------\t-----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for i := range resp.Len() {
		if _, err := fmt.Fprintf(tw, "%d\t%.6f\t%.4f\t%.6f\n",
			i,
			resp.Frequencies[i],
			resp.MagnitudeDB[i],
			resp.Phase[i],
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}

// printRoots lists recovered roots. A root is paired when its conjugate is
// also in the set; real roots pair with themselves.
func printRoots(w io.Writer, zeros, poles []complex128) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kind\tRe\tIm\t|r|\tPaired\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t--\t--\t---\t------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for _, set := range []struct {
		kind  string
		roots []complex128
	}{{"zero", zeros}, {"pole", poles}} {
		for _, r := range set.roots {
			if _, err := fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.6f\t%t\n",
				set.kind, real(r), imag(r), cmplx.Abs(r), hasConjugate(r, set.roots),
			); err != nil {
				return fmt.Errorf("failed to write output row: %w", err)
			}
		}
	}
	return tw.Flush()
}

func hasConjugate(r complex128, set []complex128) bool {
	for _, other := range set {
		if polyroot.IsConjugate(r, other, polyroot.ConjugateTol) {
			return true
		}
	}
	return false
}
