package mocks

import (
	"image"

	"github.com/user/vidsquare/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	// EnabledValue is returned by Enabled.
	EnabledValue bool

	SourceJSON     map[string][]byte
	RetainedFrames []RetainedFrame
	Sheets         map[string]image.Image
}

// RetainedFrame records a call to SaveRetainedFrame.
type RetainedFrame struct {
	Name  string
	Index int
}

// NewDebugSink creates an enabled mock DebugSink.
func NewDebugSink() *DebugSink {
	return &DebugSink{
		EnabledValue: true,
		SourceJSON:   make(map[string][]byte),
		Sheets:       make(map[string]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.EnabledValue
}

func (m *DebugSink) SaveSourceJSON(name string, data []byte) error {
	m.SourceJSON[name] = data
	return nil
}

func (m *DebugSink) SaveRetainedFrame(name string, index int, img image.Image) error {
	m.RetainedFrames = append(m.RetainedFrames, RetainedFrame{Name: name, Index: index})
	return nil
}

func (m *DebugSink) SaveContactSheet(name string, img image.Image) error {
	m.Sheets[name] = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)

// SheetRenderer is a mock implementation of ports.SheetRenderer.
type SheetRenderer struct {
	RenderCalls []RenderCall
}

// RenderCall records a call to Render.
type RenderCall struct {
	Title  string
	Thumbs int
}

func (m *SheetRenderer) Render(title string, thumbs []ports.Thumbnail, columns int) (image.Image, error) {
	m.RenderCalls = append(m.RenderCalls, RenderCall{Title: title, Thumbs: len(thumbs)})
	return image.NewRGBA(image.Rect(0, 0, 64, 64)), nil
}

var _ ports.SheetRenderer = (*SheetRenderer)(nil)
