// Package consoleprogress provides a terminal progress display.
package consoleprogress

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/user/vidsquare/pkg/ports"
)

// Reporter implements ports.ProgressReporter on a terminal.
// When the output is not a terminal the reporter stays silent, so
// redirected runs produce clean logs.
type Reporter struct {
	out     io.Writer
	enabled bool

	totalFiles int
	fileIndex  int

	name        string
	totalFrames int
	done        int
}

// New creates a Reporter writing to stderr.
// The display is disabled when stderr is not a terminal.
func New() *Reporter {
	return &Reporter{
		out:     os.Stderr,
		enabled: isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
	}
}

// NewWithWriter creates an always-enabled Reporter for testing.
func NewWithWriter(out io.Writer) *Reporter {
	return &Reporter{out: out, enabled: true}
}

// StartBatch begins progress for a batch of totalFiles files.
func (r *Reporter) StartBatch(totalFiles int) {
	r.totalFiles = totalFiles
	r.fileIndex = 0
}

// StartFile begins per-frame progress for one file.
func (r *Reporter) StartFile(name string, totalFrames int) {
	r.fileIndex++
	r.name = name
	r.totalFrames = totalFrames
	r.done = 0
	r.render()
}

// Advance reports n additional frames written for the current file.
func (r *Reporter) Advance(n int) {
	r.done += n
	r.render()
}

// FinishFile completes the current file's progress display.
func (r *Reporter) FinishFile() {
	if !r.enabled {
		return
	}
	r.clear()
}

// FinishBatch completes the batch progress display.
func (r *Reporter) FinishBatch() {
	if !r.enabled {
		return
	}
	r.clear()
}

func (r *Reporter) render() {
	if !r.enabled {
		return
	}
	if r.totalFrames > 0 {
		pct := r.done * 100 / r.totalFrames
		if pct > 100 {
			pct = 100
		}
		fmt.Fprintf(r.out, "\r[%d/%d] %s  %3d%% (%d/%d frames)",
			r.fileIndex, r.totalFiles, r.name, pct, r.done, r.totalFrames)
	} else {
		fmt.Fprintf(r.out, "\r[%d/%d] %s  %d frames",
			r.fileIndex, r.totalFiles, r.name, r.done)
	}
}

func (r *Reporter) clear() {
	fmt.Fprintf(r.out, "\r\033[K")
}

// Ensure Reporter implements ports.ProgressReporter
var _ ports.ProgressReporter = (*Reporter)(nil)

// Noop is a progress reporter that displays nothing.
type Noop struct{}

// NewNoop creates a no-op progress reporter.
func NewNoop() *Noop {
	return &Noop{}
}

// StartBatch does nothing.
func (n *Noop) StartBatch(totalFiles int) {}

// StartFile does nothing.
func (n *Noop) StartFile(name string, totalFrames int) {}

// Advance does nothing.
func (n *Noop) Advance(frames int) {}

// FinishFile does nothing.
func (n *Noop) FinishFile() {}

// FinishBatch does nothing.
func (n *Noop) FinishBatch() {}

// Ensure Noop implements ports.ProgressReporter
var _ ports.ProgressReporter = (*Noop)(nil)
