// Package pack turns a directory of fixed-format WAV clips into a C header
// with one byte array per clip and an ordered name-keyed lookup table, for
// embedding in firmware.
package pack

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/voicebank/internal/audio"
	"github.com/example/voicebank/internal/vocab"
)

// Asset is one clip ready for embedding: its public file name, the C
// identifier it will be emitted under, and the header-stripped sample bytes.
type Asset struct {
	Name       string
	Identifier string
	Data       []byte
}

// Collect reads the expected clips from dir in canonical vocabulary order.
// Absent files are excluded from the result and returned in missing, one
// name per absent clip. A file shorter than the WAV header is a malformed
// input and fails the whole collection.
func Collect(dir string, entries []vocab.Entry) (assets []Asset, missing []string, err error) {
	for _, entry := range entries {
		name := vocab.FileName(entry)
		path := filepath.Join(dir, name)

		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			if os.IsNotExist(readErr) {
				missing = append(missing, name)
				continue
			}
			return nil, nil, fmt.Errorf("read %s: %w", path, readErr)
		}

		payload, payloadErr := audio.ExtractPayload(raw)
		if payloadErr != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, payloadErr)
		}

		assets = append(assets, Asset{
			Name:       name,
			Identifier: vocab.Identifier(entry),
			Data:       payload,
		})
	}

	return assets, missing, nil
}

// TotalBytes sums the payload sizes of all assets.
func TotalBytes(assets []Asset) int64 {
	var total int64
	for _, a := range assets {
		total += int64(len(a.Data))
	}
	return total
}
