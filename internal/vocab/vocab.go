// Package vocab defines the fixed spoken-number vocabulary and the naming
// scheme for its audio assets.
package vocab

import "fmt"

// KeyAnd is the sentinel key for the connector word "and", which has no
// numeric value of its own.
const KeyAnd = 0

// Entry is one spoken unit requiring its own audio clip.
type Entry struct {
	Key  int
	Text string
}

// IsConnector reports whether the entry is the symbolic connector word
// rather than a number.
func (e Entry) IsConnector() bool { return e.Key == KeyAnd }

var entries = buildEntries()

func buildEntries() []Entry {
	ones := []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
	teens := []string{
		"ten", "eleven", "twelve", "thirteen", "fourteen",
		"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
	}
	tens := []string{"twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}

	out := make([]Entry, 0, 37)
	for i, text := range ones {
		out = append(out, Entry{Key: i + 1, Text: text})
	}
	for i, text := range teens {
		out = append(out, Entry{Key: i + 10, Text: text})
	}
	for i, text := range tens {
		out = append(out, Entry{Key: (i + 2) * 10, Text: text})
	}
	for i, text := range ones {
		out = append(out, Entry{Key: (i + 1) * 100, Text: text + " hundred"})
	}
	out = append(out, Entry{Key: KeyAnd, Text: "and"})

	return out
}

// Entries returns all vocabulary entries in canonical order: 1-9, 10-19,
// 20-90 by tens, 100-900 by hundreds, then the connector word. The returned
// slice is a copy; callers may not rely on mutating it.
func Entries() []Entry {
	return append([]Entry(nil), entries...)
}

// Count is the total number of vocabulary entries.
func Count() int { return len(entries) }

// connectorNames maps symbolic (non-numeric) keys to their stem. Numeric
// keys use the decimal form directly. Kept as an explicit table so renames
// that dodge keyword collisions in the embedding target stay visible in one
// place.
var connectorNames = map[int]string{
	KeyAnd: "and",
}

// Stem returns the bare asset name for an entry, without extension or
// prefix: "7" for the number seven, "and" for the connector.
func Stem(e Entry) string {
	if name, ok := connectorNames[e.Key]; ok {
		return name
	}
	return fmt.Sprintf("%d", e.Key)
}

// FileName returns the public WAV file name for an entry, e.g. "100.wav".
func FileName(e Entry) string {
	return Stem(e) + ".wav"
}

// Identifier returns the embedding identifier for an entry: "audio_7",
// "audio_and". The prefix keeps symbolic names clear of C keywords.
func Identifier(e Entry) string {
	return "audio_" + Stem(e)
}

// Lookup returns the entry whose file name matches name, if any.
func Lookup(name string) (Entry, bool) {
	for _, e := range entries {
		if FileName(e) == name {
			return e, true
		}
	}
	return Entry{}, false
}
