package pack

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/example/voicebank/internal/audio"
	"github.com/example/voicebank/internal/vocab"
)

// writeClip writes a fake WAV file: 44 zero bytes of header plus payload.
// Collect only slices at the header offset, so the header content is
// irrelevant here.
func writeClip(t *testing.T, dir, name string, payload []byte) {
	t.Helper()

	raw := append(make([]byte, audio.HeaderSize), payload...)
	if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
		t.Fatalf("write clip %s: %v", name, err)
	}
}

func writeAllClips(t *testing.T, dir string, payloadLen int) {
	t.Helper()

	for _, e := range vocab.Entries() {
		payload := make([]byte, payloadLen)
		for i := range payload {
			payload[i] = byte(e.Key + i)
		}
		writeClip(t, dir, vocab.FileName(e), payload)
	}
}

func TestCollect_AllPresent(t *testing.T) {
	dir := t.TempDir()
	writeAllClips(t, dir, 64)

	assets, missing, err := Collect(dir, vocab.Entries())
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("missing = %v; want none", missing)
	}
	if len(assets) != vocab.Count() {
		t.Fatalf("got %d assets; want %d", len(assets), vocab.Count())
	}

	// Canonical order, not filesystem order.
	wantFirst, wantLast := "1.wav", "and.wav"
	if assets[0].Name != wantFirst {
		t.Errorf("first asset = %q; want %q", assets[0].Name, wantFirst)
	}
	if assets[len(assets)-1].Name != wantLast {
		t.Errorf("last asset = %q; want %q", assets[len(assets)-1].Name, wantLast)
	}
}

func TestCollect_PayloadMatchesFileBytes(t *testing.T) {
	dir := t.TempDir()

	payload := make([]byte, 1000)
	for i := range payload {
		payload[i] = byte(i * 7)
	}
	writeClip(t, dir, "100.wav", payload)

	entry, _ := vocab.Lookup("100.wav")
	assets, _, err := Collect(dir, []vocab.Entry{entry})
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(assets) != 1 {
		t.Fatalf("got %d assets; want 1", len(assets))
	}

	got := assets[0]
	if got.Identifier != "audio_100" {
		t.Errorf("identifier = %q; want audio_100", got.Identifier)
	}
	if len(got.Data) != 1000 {
		t.Errorf("payload length = %d; want 1000", len(got.Data))
	}
	if !bytes.Equal(got.Data, payload) {
		t.Error("payload bytes do not match file content after the header")
	}
}

func TestCollect_MissingFilesExcludedAndReported(t *testing.T) {
	dir := t.TempDir()
	writeAllClips(t, dir, 16)

	dropped := []string{"3.wav", "50.wav", "and.wav"}
	for _, name := range dropped {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			t.Fatalf("remove %s: %v", name, err)
		}
	}

	assets, missing, err := Collect(dir, vocab.Entries())
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}

	if len(assets) != vocab.Count()-len(dropped) {
		t.Errorf("got %d assets; want %d", len(assets), vocab.Count()-len(dropped))
	}
	if len(missing) != len(dropped) {
		t.Fatalf("missing = %v; want %d names", missing, len(dropped))
	}
	for i, name := range dropped {
		if missing[i] != name {
			t.Errorf("missing[%d] = %q; want %q", i, missing[i], name)
		}
	}

	for _, a := range assets {
		for _, name := range dropped {
			if a.Name == name {
				t.Errorf("dropped clip %q still present in assets", name)
			}
		}
	}
}

func TestCollect_HeaderOnlyFileYieldsEmptyAsset(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "9.wav", nil)

	entry, _ := vocab.Lookup("9.wav")
	assets, _, err := Collect(dir, []vocab.Entry{entry})
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(assets) != 1 || len(assets[0].Data) != 0 {
		t.Fatalf("expected one empty asset, got %+v", assets)
	}
}

func TestCollect_ShortFileFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "5.wav"), make([]byte, 20), 0o644); err != nil {
		t.Fatalf("write short file: %v", err)
	}

	entry, _ := vocab.Lookup("5.wav")
	_, _, err := Collect(dir, []vocab.Entry{entry})
	if !errors.Is(err, audio.ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestWriteHeader_Structure(t *testing.T) {
	assets := []Asset{
		{Name: "7.wav", Identifier: "audio_7", Data: []byte{0x80, 0x81, 0x82}},
		{Name: "and.wav", Identifier: "audio_and", Data: make([]byte, 20)},
	}

	var buf bytes.Buffer
	if err := WriteHeader(&buf, assets); err != nil {
		t.Fatalf("WriteHeader returned error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"#ifndef AUDIO_DATA_H",
		"#define AUDIO_DATA_H",
		"// 7.wav - 3 bytes",
		"const uint8_t audio_7[] PROGMEM = {",
		"0x80, 0x81, 0x82",
		"const uint32_t audio_7_len = 3;",
		"const uint32_t audio_and_len = 20;",
		"struct AudioClip {",
		"{\"7.wav\", audio_7, audio_7_len},",
		"{\"and.wav\", audio_and, audio_and_len},",
		"const int audioClipCount = 2;",
		"#endif // AUDIO_DATA_H",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("header output missing %q", want)
		}
	}

	// Index entries appear in asset order.
	if strings.Index(out, "{\"7.wav\"") > strings.Index(out, "{\"and.wav\"") {
		t.Error("lookup table entries are out of order")
	}
}

func TestWriteHeader_DeclaredLengthsMatchPayloads(t *testing.T) {
	dir := t.TempDir()
	writeAllClips(t, dir, 100)

	assets, _, err := Collect(dir, vocab.Entries())
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteHeader(&buf, assets); err != nil {
		t.Fatalf("WriteHeader returned error: %v", err)
	}
	out := buf.String()

	lenRe := regexp.MustCompile(`const uint32_t (audio_\w+)_len = (\d+);`)
	matches := lenRe.FindAllStringSubmatch(out, -1)
	if len(matches) != len(assets) {
		t.Fatalf("found %d length constants; want %d", len(matches), len(assets))
	}
	for i, m := range matches {
		if m[1] != assets[i].Identifier {
			t.Errorf("length constant %d is for %q; want %q", i, m[1], assets[i].Identifier)
		}
		if want := fmt.Sprintf("%d", len(assets[i].Data)); m[2] != want {
			t.Errorf("%s_len = %s; want %s", m[1], m[2], want)
		}
	}

	if want := fmt.Sprintf("const int audioClipCount = %d;", len(assets)); !strings.Contains(out, want) {
		t.Errorf("header output missing %q", want)
	}
}

func TestWriteHeader_RowWrapping(t *testing.T) {
	asset := Asset{Name: "1.wav", Identifier: "audio_1", Data: make([]byte, 40)}

	var buf bytes.Buffer
	if err := WriteHeader(&buf, []Asset{asset}); err != nil {
		t.Fatalf("WriteHeader returned error: %v", err)
	}

	var rows []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "  0x") {
			rows = append(rows, line)
		}
	}
	if len(rows) != 3 {
		t.Fatalf("got %d byte rows for 40 bytes; want 3", len(rows))
	}
	if got := strings.Count(rows[0], "0x"); got != 16 {
		t.Errorf("first row has %d bytes; want 16", got)
	}
	if got := strings.Count(rows[2], "0x"); got != 8 {
		t.Errorf("last row has %d bytes; want 8", got)
	}
	// Rows before the last end with a trailing comma; the last does not.
	if !strings.HasSuffix(rows[0], ",") {
		t.Error("non-final row should end with a comma")
	}
	if strings.HasSuffix(rows[2], ",") {
		t.Error("final row should not end with a comma")
	}
}

func TestWriteHeader_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeAllClips(t, dir, 50)

	render := func() []byte {
		assets, _, err := Collect(dir, vocab.Entries())
		if err != nil {
			t.Fatalf("Collect returned error: %v", err)
		}
		var buf bytes.Buffer
		if err := WriteHeader(&buf, assets); err != nil {
			t.Fatalf("WriteHeader returned error: %v", err)
		}
		return buf.Bytes()
	}

	first := render()
	second := render()
	if !bytes.Equal(first, second) {
		t.Error("re-running pack over an unchanged directory is not byte-identical")
	}
}

func TestTotalBytes(t *testing.T) {
	assets := []Asset{
		{Data: make([]byte, 10)},
		{Data: make([]byte, 0)},
		{Data: make([]byte, 990)},
	}
	if got := TotalBytes(assets); got != 1000 {
		t.Errorf("TotalBytes = %d; want 1000", got)
	}
}
