package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/example/voicebank/internal/report"
	"github.com/example/voicebank/internal/synth"
	"github.com/example/voicebank/internal/vocab"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var keepTemp bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize all vocabulary clips as 8kHz mono 8-bit WAV files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			ttsExe := cfg.TTS.CLIPath
			if ttsExe == "" {
				ttsExe = "gtts-cli"
			}
			ffmpegExe := cfg.FFmpeg.Path
			if ffmpegExe == "" {
				ffmpegExe = "ffmpeg"
			}

			// Missing tools abort before any work.
			if err := checkTools(ttsExe, ffmpegExe, out); err != nil {
				return err
			}

			if err := os.MkdirAll(cfg.Paths.AudioDir, 0o755); err != nil {
				return fmt.Errorf("create audio directory: %w", err)
			}
			if err := os.MkdirAll(cfg.Paths.TempDir, 0o755); err != nil {
				return fmt.Errorf("create temp directory: %w", err)
			}
			fmt.Fprintf(out, "%s directories ready: %s/ %s/\n", passMark, cfg.Paths.AudioDir, cfg.Paths.TempDir)

			opts := synth.Options{
				CLI: synth.CLIOptions{
					ExecutablePath: cfg.TTS.CLIPath,
					Language:       cfg.TTS.Language,
					Slow:           cfg.TTS.Slow,
					Stderr:         cmd.ErrOrStderr(),
				},
				Convert: synth.ConvertOptions{
					FFmpegPath: cfg.FFmpeg.Path,
					SampleRate: cfg.Audio.SampleRate,
					Channels:   cfg.Audio.Channels,
					Stderr:     nil, // ffmpeg is chatty; diagnostics go through slog
				},
				AudioDir: cfg.Paths.AudioDir,
				TempDir:  cfg.Paths.TempDir,
				KeepTemp: keepTemp,
			}

			entries := vocab.Entries()
			results := make([]synth.Result, 0, len(entries))
			lastSection := ""

			for _, entry := range entries {
				if section := sectionFor(entry); section != lastSection {
					fmt.Fprintf(out, "\nGenerating %s...\n", section)
					lastSection = section
				}

				res := synth.GenerateEntry(cmd.Context(), opts, entry)
				results = append(results, res)

				if res.OK() {
					fmt.Fprintf(out, "  %s %s - %q\n", passMark, vocab.FileName(entry), entry.Text)
				} else {
					fmt.Fprintf(out, "  %s %s failed\n", failMark, vocab.FileName(entry))
					slog.Error("clip generation failed", "file", vocab.FileName(entry), "error", res.Err)
				}
			}

			if !keepTemp {
				if err := os.RemoveAll(cfg.Paths.TempDir); err != nil {
					slog.Debug("temp cleanup failed", "dir", cfg.Paths.TempDir, "error", err)
				} else {
					fmt.Fprintf(out, "\n%s cleaned up temporary files\n", passMark)
				}
			}

			summary := report.Fold(results)
			rep := report.VerifyFiles(cfg.Paths.AudioDir, entries)
			printFileReport(out, rep)

			fmt.Fprintf(out, "\nGenerated %d/%d files, %s total\n",
				summary.Succeeded, summary.Requested, humanize.IBytes(uint64(rep.TotalBytes)))

			if !rep.Complete() {
				return fmt.Errorf("%d of %d clips missing after generation", len(rep.Missing()), len(entries))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepTemp, "keep-temp", false, "Keep intermediate MP3 files for inspection")

	return cmd
}

// sectionFor groups entries into the progress sections shown during generation.
func sectionFor(e vocab.Entry) string {
	switch {
	case e.IsConnector():
		return "connector word"
	case e.Key < 10:
		return "numbers 1-9"
	case e.Key < 20:
		return "numbers 10-19"
	case e.Key < 100:
		return "tens (20-90)"
	default:
		return "hundreds (100-900)"
	}
}
