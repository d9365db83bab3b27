package testutil

import (
	"testing"

	"github.com/example/voicebank/internal/audio"
)

// AssertValidWAV decodes data with the project decoder and fails the test
// unless it is a clip in the embedded format (8000 Hz, mono, 8-bit PCM) with
// a non-zero sample count.
func AssertValidWAV(tb testing.TB, data []byte) {
	tb.Helper()

	samples, err := audio.DecodeWAV(data)
	if err != nil {
		tb.Fatalf("WAV: %v", err)
	}
	if len(samples) == 0 {
		tb.Fatal("WAV: zero samples decoded")
	}
}
