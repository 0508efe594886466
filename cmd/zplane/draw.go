package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-zplane/dsp/draw"
	"github.com/cwbudde/algo-zplane/dsp/signal"
	"github.com/cwbudde/algo-zplane/internal/designer"
)

func newDrawCmd(a *app) *cobra.Command {
	var chunk, settle int
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Filter a sample stream from stdin in draw-pad chunks",
		Long: "Reads samples separated by whitespace or commas from stdin and feeds them " +
			"to the draw pad, printing one line per emitted chunk. A blank line starts a new stroke.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyIntConfig(cmd, "chunk", &chunk, a.fileCfg.Draw.Chunk)
			applyIntConfig(cmd, "settle", &settle, a.fileCfg.Draw.Settle)
			if settle < 0 || chunk < 2 || settle >= chunk {
				return fmt.Errorf("need 0 <= --settle < --chunk and --chunk >= 2")
			}
			a.settings.Chunk = chunk
			a.settings.Settle = settle

			e, err := a.newEngine(designer.MethodZPK)
			if err != nil {
				return err
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for line := 1; sc.Scan(); line++ {
				fields := strings.FieldsFunc(sc.Text(), func(r rune) bool {
					return r == ',' || r == ' ' || r == '\t'
				})
				if len(fields) == 0 {
					e.ResetDraw()
					continue
				}
				for _, field := range fields {
					v, err := strconv.ParseFloat(field, 64)
					if err != nil {
						return fmt.Errorf("line %d: %w", line, err)
					}
					if c, ok := e.DrawSample(v); ok {
						if err := printChunk(cmd, c); err != nil {
							return err
						}
					}
				}
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&chunk, "chunk", draw.DefaultChunkSize, "samples per chunk")
	cmd.Flags().IntVar(&settle, "settle", draw.DefaultSettle, "leading original samples withheld per chunk")
	return cmd
}

func printChunk(cmd *cobra.Command, c draw.Chunk) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "chunk x=%g..%g original=%d filtered=%d last=%.6f peak=%.6f\n",
		c.FilteredX[0], c.FilteredX[len(c.FilteredX)-1],
		len(c.Original), len(c.Filtered),
		c.Filtered[len(c.Filtered)-1], signal.Measure(c.Filtered).Peak,
	)
	return err
}
