package doctor_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/voicebank/internal/doctor"
)

var errBinaryNotFound = errors.New("executable file not found in $PATH")

func hasFailureContaining(failures []string, substr string) bool {
	for _, f := range failures {
		if strings.Contains(f, substr) {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// all-pass scenario
// ---------------------------------------------------------------------------

func TestRun_AllChecksPass(t *testing.T) {
	cfg := doctor.Config{
		TTSVersion:    func() (string, error) { return "gtts-cli 2.5.1", nil },
		FFmpegVersion: func() (string, error) { return "ffmpeg version 6.1", nil },
		AudioDir:      t.TempDir(),
	}

	var out strings.Builder
	result := doctor.Run(cfg, &out)

	if result.Failed() {
		t.Errorf("expected all checks to pass; failures: %v", result.Failures())
	}

	if !strings.Contains(out.String(), "tts cli") {
		t.Error("output should mention the tts cli check")
	}
	if !strings.Contains(out.String(), "ffmpeg") {
		t.Error("output should mention the ffmpeg check")
	}
}

// ---------------------------------------------------------------------------
// TTS CLI missing
// ---------------------------------------------------------------------------

func TestRun_TTSMissingFails(t *testing.T) {
	cfg := doctor.Config{
		TTSVersion:    func() (string, error) { return "", errBinaryNotFound },
		FFmpegVersion: func() (string, error) { return "ffmpeg version 6.1", nil },
		SkipAudioDir:  true,
	}

	var out strings.Builder
	result := doctor.Run(cfg, &out)

	if !result.Failed() {
		t.Fatal("expected failure when the TTS CLI is not found")
	}

	if !hasFailureContaining(result.Failures(), "tts cli") {
		t.Errorf("expected failure mentioning the tts cli, got: %v", result.Failures())
	}
}

// ---------------------------------------------------------------------------
// ffmpeg missing
// ---------------------------------------------------------------------------

func TestRun_FFmpegMissingFails(t *testing.T) {
	cfg := doctor.Config{
		TTSVersion:    func() (string, error) { return "gtts-cli 2.5.1", nil },
		FFmpegVersion: func() (string, error) { return "", errBinaryNotFound },
		SkipAudioDir:  true,
	}

	var out strings.Builder
	result := doctor.Run(cfg, &out)

	if !result.Failed() {
		t.Fatal("expected failure when ffmpeg is not found")
	}

	if !hasFailureContaining(result.Failures(), "ffmpeg") {
		t.Errorf("expected failure mentioning ffmpeg, got: %v", result.Failures())
	}
}

// ---------------------------------------------------------------------------
// audio directory checks
// ---------------------------------------------------------------------------

func TestRun_MissingAudioDirFails(t *testing.T) {
	cfg := doctor.Config{
		AudioDir: filepath.Join(t.TempDir(), "does-not-exist"),
	}

	var out strings.Builder
	result := doctor.Run(cfg, &out)

	if !result.Failed() {
		t.Fatal("expected failure for a missing audio directory")
	}
	if !strings.Contains(out.String(), doctor.FailMark) {
		t.Error("output should carry the fail mark")
	}
}

func TestRun_AudioDirIsFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audio_files")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg := doctor.Config{AudioDir: path}

	var out strings.Builder
	result := doctor.Run(cfg, &out)

	if !result.Failed() {
		t.Fatal("expected failure when the audio directory is a regular file")
	}
	if !hasFailureContaining(result.Failures(), "not a directory") {
		t.Errorf("expected 'not a directory' failure, got: %v", result.Failures())
	}
}

func TestRun_SkipAudioDir(t *testing.T) {
	cfg := doctor.Config{
		AudioDir:     filepath.Join(t.TempDir(), "does-not-exist"),
		SkipAudioDir: true,
	}

	var out strings.Builder
	result := doctor.Run(cfg, &out)

	if result.Failed() {
		t.Errorf("skipped check should not fail; failures: %v", result.Failures())
	}
	if !strings.Contains(out.String(), "skipped") {
		t.Error("output should mention the skip")
	}
}

// ---------------------------------------------------------------------------
// Result accumulation
// ---------------------------------------------------------------------------

func TestResult_AddFailure(t *testing.T) {
	var res doctor.Result

	if res.Failed() {
		t.Fatal("fresh result should not report failure")
	}

	res.AddFailure("external: header write failed")

	if !res.Failed() {
		t.Fatal("result should fail after AddFailure")
	}
	if got := res.Failures(); len(got) != 1 || got[0] != "external: header write failed" {
		t.Errorf("Failures() = %v", got)
	}
}
