// Package testutil provides shared skip helpers for integration tests.
//
// Each helper calls t.Skip with a clear human-readable reason when the named
// prerequisite is absent, so integration tests remain runnable in partial
// environments without failing noisily.
package testutil

import (
	"os"
	"os/exec"
	"testing"
)

// RequireTTSCLI skips the test if the TTS binary is not found in PATH or the
// path given by the VOICEBANK_TTS_CLI_PATH environment variable.
func RequireTTSCLI(tb testing.TB) string {
	tb.Helper()

	exe := os.Getenv("VOICEBANK_TTS_CLI_PATH")
	if exe == "" {
		exe = "gtts-cli"
	}

	if _, err := exec.LookPath(exe); err != nil {
		tb.Skipf("TTS binary not available (%q not in PATH); set VOICEBANK_TTS_CLI_PATH to override", exe)
	}
	return exe
}

// RequireFFmpeg skips the test if ffmpeg is not found in PATH or the path
// given by the VOICEBANK_FFMPEG_PATH environment variable.
func RequireFFmpeg(tb testing.TB) string {
	tb.Helper()

	exe := os.Getenv("VOICEBANK_FFMPEG_PATH")
	if exe == "" {
		exe = "ffmpeg"
	}

	if _, err := exec.LookPath(exe); err != nil {
		tb.Skipf("ffmpeg not available (%q not in PATH); set VOICEBANK_FFMPEG_PATH to override", exe)
	}
	return exe
}
