package mocks

import (
	"context"
	"image"
	"io"

	"github.com/user/vidsquare/pkg/ports"
)

// Prober is a mock implementation of ports.VideoProber.
type Prober struct {
	ProbeFunc func(ctx context.Context, path string) (ports.VideoMeta, error)

	ProbeCalls []string
}

func (m *Prober) Probe(ctx context.Context, path string) (ports.VideoMeta, error) {
	m.ProbeCalls = append(m.ProbeCalls, path)
	if m.ProbeFunc != nil {
		return m.ProbeFunc(ctx, path)
	}
	return ports.VideoMeta{}, nil
}

var _ ports.VideoProber = (*Prober)(nil)

// FrameSource is a mock implementation of ports.FrameSource.
// It serves a scripted metadata value and a fixed number of frames.
type FrameSource struct {
	// MetaValue is returned by Meta after a successful Open.
	MetaValue ports.VideoMeta

	// Frames is the number of frames to serve before io.EOF.
	Frames int

	OpenFunc func(ctx context.Context, path string) error
	ReadFunc func(index int) (image.Image, error)

	OpenCalls   []string
	ReadCount   int
	CloseCalled bool
	opened      bool
}

func (m *FrameSource) Open(ctx context.Context, path string) error {
	m.OpenCalls = append(m.OpenCalls, path)
	if m.OpenFunc != nil {
		if err := m.OpenFunc(ctx, path); err != nil {
			return err
		}
	}
	m.opened = true
	m.ReadCount = 0
	m.CloseCalled = false
	return nil
}

func (m *FrameSource) Meta() ports.VideoMeta {
	return m.MetaValue
}

func (m *FrameSource) ReadFrame() (image.Image, error) {
	if m.ReadCount >= m.Frames {
		return nil, io.EOF
	}
	index := m.ReadCount
	m.ReadCount++
	if m.ReadFunc != nil {
		return m.ReadFunc(index)
	}
	w, h := m.MetaValue.Width, m.MetaValue.Height
	if w <= 0 {
		w = 16
	}
	if h <= 0 {
		h = 16
	}
	return image.NewRGBA(image.Rect(0, 0, w, h)), nil
}

func (m *FrameSource) Close() error {
	m.CloseCalled = true
	m.opened = false
	return nil
}

var _ ports.FrameSource = (*FrameSource)(nil)

// FrameSink is a mock implementation of ports.FrameSink.
type FrameSink struct {
	BeginFunc func(path string, width, height int, fps float64) error
	WriteFunc func(img image.Image) error
	EndFunc   func() error

	BeginCalls []BeginCall
	Written    []image.Image
	EndCalled  bool
}

// BeginCall records a call to Begin.
type BeginCall struct {
	Path   string
	Width  int
	Height int
	FPS    float64
}

func (m *FrameSink) Begin(path string, width, height int, fps float64) error {
	m.BeginCalls = append(m.BeginCalls, BeginCall{Path: path, Width: width, Height: height, FPS: fps})
	if m.BeginFunc != nil {
		return m.BeginFunc(path, width, height, fps)
	}
	m.Written = nil
	m.EndCalled = false
	return nil
}

func (m *FrameSink) WriteFrame(img image.Image) error {
	if m.WriteFunc != nil {
		if err := m.WriteFunc(img); err != nil {
			return err
		}
	}
	m.Written = append(m.Written, img)
	return nil
}

func (m *FrameSink) End() error {
	m.EndCalled = true
	if m.EndFunc != nil {
		return m.EndFunc()
	}
	return nil
}

var _ ports.FrameSink = (*FrameSink)(nil)

// FrameScaler is a mock implementation of ports.FrameScaler.
// It returns a blank image of the requested size.
type FrameScaler struct {
	ScaleCalls []ScaleCall
}

// ScaleCall records a call to Scale.
type ScaleCall struct {
	Width  int
	Height int
}

func (m *FrameScaler) Scale(img image.Image, width, height int) image.Image {
	m.ScaleCalls = append(m.ScaleCalls, ScaleCall{Width: width, Height: height})
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ ports.FrameScaler = (*FrameScaler)(nil)
