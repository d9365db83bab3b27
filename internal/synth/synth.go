// Package synth drives the external speech synthesis and format conversion
// tools that produce the embedded playback clips.
package synth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/example/voicebank/internal/audio"
	"github.com/example/voicebank/internal/vocab"
)

// ErrMissingTool wraps failures caused by an absent external executable.
var ErrMissingTool = errors.New("external tool not found")

// CLIOptions configures the external TTS invocation.
type CLIOptions struct {
	// ExecutablePath is the TTS binary; empty means "gtts-cli" on PATH.
	ExecutablePath string
	// Language is passed as the synthesis language code.
	Language string
	// Slow requests slower speech.
	Slow bool
	// ExtraArgs are appended verbatim after the built-in arguments.
	ExtraArgs []string
	// Stderr receives the tool's diagnostic output when non-nil.
	Stderr io.Writer
}

// ConvertOptions configures the ffmpeg conversion step.
type ConvertOptions struct {
	// FFmpegPath is the ffmpeg binary; empty means "ffmpeg" on PATH.
	FFmpegPath string
	// SampleRate, Channels select the target PCM layout. The codec is
	// always 8-bit unsigned PCM.
	SampleRate int
	Channels   int
	// Stderr receives ffmpeg output when non-nil.
	Stderr io.Writer
}

// SynthesizeMP3 runs the TTS CLI to produce an MP3 for the given text at
// outPath.
func SynthesizeMP3(ctx context.Context, opts CLIOptions, text, outPath string) error {
	exe := opts.ExecutablePath
	if exe == "" {
		exe = "gtts-cli"
	}

	args := []string{"--lang", opts.Language, "--output", outPath}
	if opts.Slow {
		args = append(args, "--slow")
	}
	args = append(args, opts.ExtraArgs...)
	args = append(args, text)

	cmd := exec.CommandContext(ctx, exe, args...)
	if opts.Stderr != nil {
		cmd.Stderr = opts.Stderr
	}

	if err := cmd.Run(); err != nil {
		return mapToolError(exe, err)
	}
	return nil
}

// ConvertToWAV runs ffmpeg to convert mp3Path into an 8-bit unsigned PCM WAV
// at wavPath. The output is written to a temporary name and renamed into
// place so an interrupted run never leaves a partial WAV behind.
func ConvertToWAV(ctx context.Context, opts ConvertOptions, mp3Path, wavPath string) error {
	exe := opts.FFmpegPath
	if exe == "" {
		exe = "ffmpeg"
	}

	tmp := wavPath + ".part"
	args := []string{
		"-y",
		"-i", mp3Path,
		"-ar", strconv.Itoa(opts.SampleRate),
		"-ac", strconv.Itoa(opts.Channels),
		"-acodec", "pcm_u8",
		"-af", "loudnorm",
		// bitexact keeps the header at the canonical 44 bytes; otherwise
		// ffmpeg inserts a LIST chunk with encoder metadata.
		"-bitexact",
		"-map_metadata", "-1",
		"-f", "wav",
		tmp,
	}

	cmd := exec.CommandContext(ctx, exe, args...)
	if opts.Stderr != nil {
		cmd.Stderr = opts.Stderr
	}

	if err := cmd.Run(); err != nil {
		RemoveQuiet(tmp)
		return mapToolError(exe, err)
	}

	if err := os.Rename(tmp, wavPath); err != nil {
		RemoveQuiet(tmp)
		return fmt.Errorf("finalize %s: %w", wavPath, err)
	}
	return nil
}

// Result records the outcome of generating one vocabulary entry.
type Result struct {
	Entry  vocab.Entry
	Output string
	Bytes  int64
	Err    error
}

// OK reports whether the entry was generated successfully.
func (r Result) OK() bool { return r.Err == nil }

// Options bundles the per-run configuration for GenerateEntry.
type Options struct {
	CLI     CLIOptions
	Convert ConvertOptions
	// AudioDir receives the final WAV files; TempDir the intermediate MP3s.
	AudioDir string
	TempDir  string
	// KeepTemp leaves intermediate MP3s in place for inspection.
	KeepTemp bool
}

// GenerateEntry runs the full per-entry pipeline: synthesize an MP3, probe
// that it decodes, convert it to WAV, verify the converted clip's format,
// and clean up the intermediate file.
// Failures are returned in the Result, not propagated, so a bad entry never
// aborts the batch.
func GenerateEntry(ctx context.Context, opts Options, entry vocab.Entry) Result {
	res := Result{Entry: entry}

	mp3Path := filepath.Join(opts.TempDir, vocab.Stem(entry)+"_temp.mp3")
	wavPath := filepath.Join(opts.AudioDir, vocab.FileName(entry))
	res.Output = wavPath

	if err := SynthesizeMP3(ctx, opts.CLI, entry.Text, mp3Path); err != nil {
		res.Err = fmt.Errorf("synthesize %q: %w", entry.Text, err)
		return res
	}
	if !opts.KeepTemp {
		defer RemoveQuiet(mp3Path)
	}

	if err := probeMP3File(mp3Path); err != nil {
		res.Err = fmt.Errorf("probe %s: %w", mp3Path, err)
		return res
	}

	if err := ConvertToWAV(ctx, opts.Convert, mp3Path, wavPath); err != nil {
		res.Err = fmt.Errorf("convert %s: %w", mp3Path, err)
		return res
	}

	size, err := verifyClip(wavPath)
	if err != nil {
		res.Err = fmt.Errorf("verify %s: %w", wavPath, err)
		return res
	}
	res.Bytes = size

	return res
}

// verifyClip decodes the converted WAV to confirm ffmpeg produced the target
// format, and returns its size in bytes. A mismatch fails the entry, not the
// batch.
func verifyClip(path string) (int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if _, err := audio.DecodeWAV(data); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}

// RemoveQuiet deletes a file best-effort: failures are logged at debug level
// and never propagated.
func RemoveQuiet(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Debug("cleanup failed", "path", path, "error", err)
	}
}

func probeMP3File(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = ProbeMP3(f)
	return err
}

// mapToolError attaches ErrMissingTool when the executable itself was absent,
// so callers can distinguish a missing dependency from a failed run.
func mapToolError(exe string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %s: %v", ErrMissingTool, exe, err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%s exited with %d", exe, exitErr.ExitCode())
	}

	return err
}
