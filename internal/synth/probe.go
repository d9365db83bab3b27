package synth

import (
	"errors"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"
)

// ProbeMP3 decodes an MP3 stream end to end and returns the number of PCM
// sample frames it contains. It catches silent TTS failures (empty or
// corrupt output files) before the conversion step runs.
func ProbeMP3(r io.Reader) (int, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return 0, fmt.Errorf("decode MP3: %w", err)
	}

	// The decoder emits 16-bit stereo frames (4 bytes per frame).
	n, err := io.Copy(io.Discard, dec)
	if err != nil {
		return 0, fmt.Errorf("read MP3 samples: %w", err)
	}

	frames := int(n / 4)
	if frames == 0 {
		return 0, errors.New("MP3 contains no audio frames")
	}
	return frames, nil
}
