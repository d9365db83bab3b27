package audio

import (
	"errors"
	"fmt"
)

// HeaderSize is the size of the canonical WAV header written by the
// generation pipeline: RIFF chunk descriptor, single "fmt " chunk, "data"
// chunk header. Everything past this offset is raw sample bytes.
const HeaderSize = 44

// ErrTruncated is returned when a file is shorter than the fixed header,
// meaning it cannot contain a valid payload.
var ErrTruncated = errors.New("file shorter than WAV header")

// ExtractPayload returns the raw sample bytes of a WAV file, i.e. everything
// after the fixed 44-byte header. A file of exactly HeaderSize bytes yields
// an empty payload. A shorter file is malformed and returns ErrTruncated.
//
// The returned slice always satisfies len(payload) == len(data) - HeaderSize.
func ExtractPayload(data []byte) ([]byte, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(data))
	}
	return data[HeaderSize:], nil
}

// PayloadSize returns the sample byte count for a WAV file of the given
// total size, with the same truncation contract as ExtractPayload.
func PayloadSize(fileSize int64) (int64, error) {
	if fileSize < HeaderSize {
		return 0, fmt.Errorf("%w: %d bytes", ErrTruncated, fileSize)
	}
	return fileSize - HeaderSize, nil
}
