package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/example/voicebank/internal/pack"
	"github.com/example/voicebank/internal/report"
	"github.com/example/voicebank/internal/vocab"
	"github.com/spf13/cobra"
)

func newPackCmd() *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack the generated WAV clips into an embeddable C header",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if info, statErr := os.Stat(cfg.Paths.AudioDir); statErr != nil || !info.IsDir() {
				return fmt.Errorf("audio directory %q not found; run `voicebank generate` first", cfg.Paths.AudioDir)
			}

			entries := vocab.Entries()
			assets, missing, err := pack.Collect(cfg.Paths.AudioDir, entries)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Checking files in %s/...\n", cfg.Paths.AudioDir)
			for _, asset := range assets {
				fmt.Fprintf(out, "  %s %-12s - %s (audio data)\n", passMark, asset.Name, humanize.Comma(int64(len(asset.Data))))
			}
			for _, name := range missing {
				fmt.Fprintf(out, "  %s %-12s - MISSING!\n", failMark, name)
			}
			if len(missing) > 0 {
				fmt.Fprintf(out, "\nWARNING: %d files missing, proceeding with available files only\n", len(missing))
			}
			if len(assets) == 0 {
				return fmt.Errorf("no packable clips found in %q", cfg.Paths.AudioDir)
			}

			total := pack.TotalBytes(assets)
			fmt.Fprintf(out, "\nFiles found: %d/%d\n", len(assets), len(entries))
			fmt.Fprintf(out, "Total audio data: %s\n", humanize.IBytes(uint64(total)))

			if warning, exceeded := report.BudgetCheck(total, cfg.Budget.CapacityBytes, cfg.Budget.WarnFraction); exceeded {
				fmt.Fprintf(out, "\nWARNING: %s\n", warning)
			}

			if !assumeYes {
				prompt := fmt.Sprintf("\nConvert %d files to %s? (y/n): ", len(assets), cfg.Paths.OutputFile)
				if !confirm(cmd.InOrStdin(), out, prompt) {
					fmt.Fprintln(out, "Cancelled.")
					return nil
				}
			}

			if err := writeHeaderFile(cfg.Paths.OutputFile, assets); err != nil {
				return err
			}

			info, err := os.Stat(cfg.Paths.OutputFile)
			if err != nil {
				return fmt.Errorf("stat %s: %w", cfg.Paths.OutputFile, err)
			}
			fmt.Fprintf(out, "\n%s created %s (%s)\n", passMark, cfg.Paths.OutputFile, humanize.IBytes(uint64(info.Size())))

			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Write the header without asking for confirmation")

	return cmd
}

// confirm prints prompt and reads one answer line; only "y"/"yes" accept.
func confirm(r io.Reader, w io.Writer, prompt string) bool {
	fmt.Fprint(w, prompt)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// writeHeaderFile renders the header to a temporary file and renames it into
// place, so an interrupted pack never leaves a truncated header behind.
func writeHeaderFile(path string, assets []pack.Asset) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp header: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := pack.WriteHeader(tmp, assets); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp header: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("finalize %s: %w", path, err)
	}
	return nil
}
