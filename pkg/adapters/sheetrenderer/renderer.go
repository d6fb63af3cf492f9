// Package sheetrenderer renders contact sheets of retained frames using
// the gg library.
package sheetrenderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/vidsquare/pkg/ports"
)

const (
	thumbSize     = 160
	margin        = 16
	gap           = 8
	captionHeight = 16
	titleHeight   = 24
)

// Theme colors for the sheet.
var (
	backgroundColor = color.RGBA{R: 26, G: 26, B: 46, A: 255}
	captionColor    = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	titleColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Renderer implements ports.SheetRenderer.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render lays out the thumbnails in a grid with caption text.
func (r *Renderer) Render(title string, thumbs []ports.Thumbnail, columns int) (image.Image, error) {
	if len(thumbs) == 0 {
		return nil, fmt.Errorf("sheetrenderer: no thumbnails to render")
	}
	if columns < 1 {
		columns = 1
	}

	rows := (len(thumbs) + columns - 1) / columns
	cellH := thumbSize + captionHeight + gap
	width := margin*2 + columns*thumbSize + (columns-1)*gap
	height := margin*2 + titleHeight + rows*cellH

	dc := gg.NewContext(width, height)
	dc.SetColor(backgroundColor)
	dc.Clear()

	dc.SetColor(titleColor)
	dc.DrawString(title, float64(margin), float64(margin+12))

	for i, thumb := range thumbs {
		col := i % columns
		row := i / columns
		x := margin + col*(thumbSize+gap)
		y := margin + titleHeight + row*cellH

		dc.DrawImage(resizeThumb(thumb.Image), x, y)

		caption := fmt.Sprintf("#%d  %.1fs", thumb.Index, float64(thumb.TimestampMs)/1000)
		dc.SetColor(captionColor)
		dc.DrawString(caption, float64(x), float64(y+thumbSize+12))
	}

	return dc.Image(), nil
}

// resizeThumb scales a frame down to the thumbnail cell.
func resizeThumb(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == thumbSize && bounds.Dy() == thumbSize {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, thumbSize, thumbSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// Ensure Renderer implements ports.SheetRenderer
var _ ports.SheetRenderer = (*Renderer)(nil)
