package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/example/voicebank/internal/doctor"
	"github.com/spf13/cobra"
)

const (
	passMark = doctor.PassMark
	failMark = doctor.FailMark
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the external tools and directories are in place",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			dcfg := doctor.Config{
				TTSVersion: func() (string, error) {
					return probeToolVersion(ttsExe, "--version")
				},
				FFmpegVersion: func() (string, error) {
					return probeToolVersion(ffmpegExe, "-version")
				},
				AudioDir: cfg.Paths.AudioDir,
			}

			result := doctor.Run(dcfg, cmd.OutOrStdout())

			if result.Failed() {
				for _, f := range result.Failures() {
					fmt.Fprintf(cmd.ErrOrStderr(), "FAIL: %s\n", f)
				}

				return errors.New("doctor checks failed")
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "doctor checks passed")

			return nil
		},
	}

	return cmd
}

// probeToolVersion runs `exe versionFlag` and returns the first output line.
func probeToolVersion(exe, versionFlag string) (string, error) {
	out, err := exec.CommandContext(context.Background(), exe, versionFlag).Output()
	if err != nil {
		return "", fmt.Errorf("%s %s failed: %w", exe, versionFlag, err)
	}

	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return strings.TrimSpace(line), nil
}

// checkTools verifies both external tools respond to a version probe,
// printing a check line per tool. Any miss is fatal for the caller.
func checkTools(ttsExe, ffmpegExe string, w io.Writer) error {
	dcfg := doctor.Config{
		TTSVersion: func() (string, error) {
			return probeToolVersion(ttsExe, "--version")
		},
		FFmpegVersion: func() (string, error) {
			return probeToolVersion(ffmpegExe, "-version")
		},
		SkipAudioDir: true,
	}

	result := doctor.Run(dcfg, w)
	if result.Failed() {
		return fmt.Errorf("missing prerequisites: %s", strings.Join(result.Failures(), "; "))
	}
	return nil
}
