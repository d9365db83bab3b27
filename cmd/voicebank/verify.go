package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/example/voicebank/internal/report"
	"github.com/example/voicebank/internal/vocab"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every expected clip exists and report the total footprint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			rep := report.VerifyFiles(cfg.Paths.AudioDir, vocab.Entries())
			printFileReport(cmd.OutOrStdout(), rep)

			if !rep.Complete() {
				return fmt.Errorf("%d of %d clips missing", len(rep.Missing()), len(rep.Files))
			}
			return nil
		},
	}

	return cmd
}

// printFileReport lists every expected clip with its status, one line per
// file, so a missing clip is diagnosable from the output alone.
func printFileReport(w io.Writer, rep report.FileReport) {
	fmt.Fprintln(w, "\nVerifying generated files...")
	for _, f := range rep.Files {
		if f.Found {
			fmt.Fprintf(w, "  %s %-12s - %s\n", passMark, f.Name, humanize.Comma(f.Bytes))
		} else {
			fmt.Fprintf(w, "  %s %-12s - MISSING!\n", failMark, f.Name)
		}
	}

	fmt.Fprintf(w, "\nTotal files: %d/%d\n", rep.FoundCount(), len(rep.Files))
	fmt.Fprintf(w, "Total size: %s\n", humanize.IBytes(uint64(rep.TotalBytes)))
}
