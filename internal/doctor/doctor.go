// Package doctor provides environment preflight checks for voicebank.
package doctor

import (
	"fmt"
	"io"
	"os"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// VersionFunc returns a version string or an error if the component is unavailable.
type VersionFunc func() (string, error)

// Config holds injectable dependencies for each doctor check.
type Config struct {
	// TTSVersion returns the output of the TTS CLI's --version.
	TTSVersion VersionFunc
	// FFmpegVersion returns the ffmpeg version line.
	FFmpegVersion VersionFunc
	// AudioDir, when non-empty, is verified to exist and be a directory.
	AudioDir string
	// SkipAudioDir skips the audio directory check (generation creates it).
	SkipAudioDir bool
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

// AddFailure appends an external failure message to the result.
func (r *Result) AddFailure(msg string) { r.failures = append(r.failures, msg) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- TTS CLI ----------------------------------------------------------
	if cfg.TTSVersion != nil {
		ver, err := cfg.TTSVersion()
		if err != nil {
			res.fail(fmt.Sprintf("tts cli: %v", err))
			fmt.Fprintf(w, "%s tts cli: not found (%v)\n", FailMark, err)
		} else {
			fmt.Fprintf(w, "%s tts cli: %s\n", PassMark, ver)
		}
	}

	// ---- ffmpeg -----------------------------------------------------------
	if cfg.FFmpegVersion != nil {
		ver, err := cfg.FFmpegVersion()
		if err != nil {
			res.fail(fmt.Sprintf("ffmpeg: %v", err))
			fmt.Fprintf(w, "%s ffmpeg: not found (%v)\n", FailMark, err)
		} else {
			fmt.Fprintf(w, "%s ffmpeg: %s\n", PassMark, ver)
		}
	}

	// ---- audio directory --------------------------------------------------
	switch {
	case cfg.SkipAudioDir && cfg.AudioDir != "":
		fmt.Fprintf(w, "%s audio directory: skipped\n", PassMark)
	case !cfg.SkipAudioDir && cfg.AudioDir != "":
		info, err := os.Stat(cfg.AudioDir)
		switch {
		case err != nil:
			res.fail(fmt.Sprintf("audio directory %q: %v", cfg.AudioDir, err))
			fmt.Fprintf(w, "%s audio directory %s: not found\n", FailMark, cfg.AudioDir)
		case !info.IsDir():
			res.fail(fmt.Sprintf("audio directory %q: not a directory", cfg.AudioDir))
			fmt.Fprintf(w, "%s audio directory %s: not a directory\n", FailMark, cfg.AudioDir)
		default:
			fmt.Fprintf(w, "%s audio directory: %s\n", PassMark, cfg.AudioDir)
		}
	}

	return res
}
