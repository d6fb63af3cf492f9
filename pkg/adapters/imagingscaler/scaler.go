// Package imagingscaler provides frame resizing using the imaging library.
package imagingscaler

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/user/vidsquare/pkg/ports"
)

// Scaler implements ports.FrameScaler with area-averaging interpolation.
// The Box filter averages source pixel blocks into each destination
// pixel, which anti-aliases when reducing pixel count.
type Scaler struct{}

// New creates a new Scaler.
func New() *Scaler {
	return &Scaler{}
}

// Scale resizes img to width x height without preserving aspect ratio.
func (s *Scaler) Scale(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Box)
}

// Ensure Scaler implements ports.FrameScaler
var _ ports.FrameScaler = (*Scaler)(nil)
