// Package report aggregates per-item pipeline results and checks the
// generated asset set against the embedding capacity budget.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/example/voicebank/internal/synth"
	"github.com/example/voicebank/internal/vocab"
)

// Summary is the folded outcome of a generation run.
type Summary struct {
	Requested  int
	Succeeded  int
	Failed     int
	TotalBytes int64
}

// Fold reduces per-item results into a Summary. Results carry their own
// errors, so no shared counters are mutated during the run.
func Fold(results []synth.Result) Summary {
	s := Summary{Requested: len(results)}
	for _, r := range results {
		if r.OK() {
			s.Succeeded++
			s.TotalBytes += r.Bytes
		} else {
			s.Failed++
		}
	}
	return s
}

// FileStatus describes one expected clip on disk.
type FileStatus struct {
	Name  string
	Bytes int64
	Found bool
}

// FileReport is the result of verifying the expected clip set.
type FileReport struct {
	Files      []FileStatus
	TotalBytes int64
}

// Missing returns the names of all absent clips, one per file so each can be
// reported individually.
func (r FileReport) Missing() []string {
	var out []string
	for _, f := range r.Files {
		if !f.Found {
			out = append(out, f.Name)
		}
	}
	return out
}

// FoundCount returns the number of clips present on disk.
func (r FileReport) FoundCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Found {
			n++
		}
	}
	return n
}

// Complete reports whether every expected clip exists.
func (r FileReport) Complete() bool { return len(r.Missing()) == 0 }

// VerifyFiles checks every expected clip name in canonical order and records
// existence and size for each.
func VerifyFiles(dir string, entries []vocab.Entry) FileReport {
	var rep FileReport
	for _, entry := range entries {
		name := vocab.FileName(entry)
		status := FileStatus{Name: name}

		if info, err := os.Stat(filepath.Join(dir, name)); err == nil {
			status.Found = true
			status.Bytes = info.Size()
			rep.TotalBytes += info.Size()
		}

		rep.Files = append(rep.Files, status)
	}
	return rep
}

// BudgetCheck compares the packed payload size against a fraction of the
// capacity budget. It is advisory only: the returned warning is a formatted
// message with suggested mitigations, and exceeded is false when the total
// fits. Non-positive capacity or fraction disables the check.
func BudgetCheck(total, capacity int64, fraction float64) (warning string, exceeded bool) {
	if capacity <= 0 || fraction <= 0 {
		return "", false
	}

	threshold := int64(float64(capacity) * fraction)
	if total <= threshold {
		return "", false
	}

	warning = fmt.Sprintf(
		"audio data is large (%s of %s budget, threshold %s); it may not fit alongside program code. "+
			"Consider shorter clips, a lower sample rate, or external storage instead of embedding.",
		humanize.IBytes(uint64(total)),
		humanize.IBytes(uint64(capacity)),
		humanize.IBytes(uint64(threshold)),
	)
	return warning, true
}
