// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/vidsquare/pkg/ports"
)

// Sink discards all debug output.
type Sink struct{}

// New creates a new null sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveSourceJSON does nothing.
func (s *Sink) SaveSourceJSON(name string, data []byte) error {
	return nil
}

// SaveRetainedFrame does nothing.
func (s *Sink) SaveRetainedFrame(name string, index int, img image.Image) error {
	return nil
}

// SaveContactSheet does nothing.
func (s *Sink) SaveContactSheet(name string, img image.Image) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
