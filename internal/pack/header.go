package pack

import (
	"bufio"
	"fmt"
	"io"
)

// bytesPerRow is the number of hex bytes emitted per array row.
const bytesPerRow = 16

// WriteHeader emits the embedding header for assets to w: per asset a byte
// array and a length constant, then the lookup-table struct, the index array
// in asset order, and the entry count. The output carries no timestamps or
// environment detail, so identical inputs produce byte-identical headers.
func WriteHeader(w io.Writer, assets []Asset) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "// Auto-generated audio data from WAV files")
	fmt.Fprintln(bw, "// DO NOT EDIT MANUALLY")
	fmt.Fprintf(bw, "// Generated from %d WAV files\n", len(assets))
	fmt.Fprintf(bw, "// Total audio data: %d bytes\n\n", TotalBytes(assets))
	fmt.Fprintln(bw, "#ifndef AUDIO_DATA_H")
	fmt.Fprintf(bw, "#define AUDIO_DATA_H\n\n")
	fmt.Fprintf(bw, "#include <Arduino.h>\n\n")

	for _, asset := range assets {
		writeAsset(bw, asset)
	}

	writeLookupTable(bw, assets)

	fmt.Fprintln(bw, "#endif // AUDIO_DATA_H")

	return bw.Flush()
}

func writeAsset(w io.Writer, asset Asset) {
	fmt.Fprintf(w, "// %s - %d bytes\n", asset.Name, len(asset.Data))
	fmt.Fprintf(w, "const uint8_t %s[] PROGMEM = {\n", asset.Identifier)

	for i := 0; i < len(asset.Data); i += bytesPerRow {
		end := i + bytesPerRow
		if end > len(asset.Data) {
			end = len(asset.Data)
		}

		fmt.Fprint(w, "  ")
		for j, b := range asset.Data[i:end] {
			if j > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "0x%02X", b)
		}
		if end < len(asset.Data) {
			fmt.Fprint(w, ",")
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "};")
	fmt.Fprintf(w, "const uint32_t %s_len = %d;\n\n", asset.Identifier, len(asset.Data))
}

func writeLookupTable(w io.Writer, assets []Asset) {
	fmt.Fprintln(w, "// Lookup table for audio files")
	fmt.Fprintln(w, "struct AudioClip {")
	fmt.Fprintln(w, "  const char* name;")
	fmt.Fprintln(w, "  const uint8_t* data;")
	fmt.Fprintln(w, "  uint32_t length;")
	fmt.Fprintf(w, "};\n\n")

	fmt.Fprintln(w, "const AudioClip audioClips[] = {")
	for _, asset := range assets {
		fmt.Fprintf(w, "  {\"%s\", %s, %s_len},\n", asset.Name, asset.Identifier, asset.Identifier)
	}
	fmt.Fprintf(w, "};\n\n")
	fmt.Fprintf(w, "const int audioClipCount = %d;\n\n", len(assets))
}
