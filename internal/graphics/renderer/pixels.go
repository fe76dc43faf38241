package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"sketchgl/internal/graphics"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// ErrReadbackUnavailable is returned, with no data, when pixels are read
// from a context created without preserveDrawingBuffer.
var ErrReadbackUnavailable = errors.New("pixel read-back requires preserveDrawingBuffer")

func (r *RendererGL) readbackAllowed() error {
	if r.ctx == nil {
		return ErrNoContext
	}
	if !r.ctx.Attributes.PreserveDrawingBuffer {
		graphics.Logger().Warn("loadPixels only works when preserveDrawingBuffer is true")
		return ErrReadbackUnavailable
	}
	return nil
}

// LoadPixels reads a region of the drawing buffer into Pixels. x and y
// are canvas units from the bottom-left corner; a width or height of 0
// selects the canvas width or height. The region is scaled by the pixel
// density.
func (r *RendererGL) LoadPixels(x, y, width, height int) error {
	if err := r.readbackAllowed(); err != nil {
		return err
	}
	if width == 0 {
		width = r.width
	}
	if height == 0 {
		height = r.height
	}
	pd := r.PixelDensity()
	r.pixels = r.driver().ReadPixels(x*pd, y*pd, width*pd, height*pd)
	return nil
}

// Pixels returns the buffer filled by the last LoadPixels, bottom row first
func (r *RendererGL) Pixels() []byte { return r.pixels }

// Get returns a region of the canvas in canvas units with the origin at
// the top-left. An empty rect selects the whole canvas. Areas outside the
// drawing buffer read as transparent black.
func (r *RendererGL) Get(rect image.Rectangle) (*image.RGBA, error) {
	if err := r.readbackAllowed(); err != nil {
		return nil, err
	}
	if rect.Empty() {
		rect = image.Rect(0, 0, r.width, r.height)
	}
	pd := r.PixelDensity()
	w, h := rect.Dx()*pd, rect.Dy()*pd
	// the buffer origin is bottom-left
	glY := (r.height - rect.Max.Y) * pd
	raw := r.driver().ReadPixels(rect.Min.X*pd, glY, w, h)

	full := image.NewRGBA(image.Rect(0, 0, w, h))
	stride := w * 4
	for row := 0; row < h; row++ {
		src := raw[(h-1-row)*stride : (h-row)*stride]
		copy(full.Pix[row*full.Stride:], src)
	}
	if pd == 1 {
		return full, nil
	}

	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.ApproxBiLinear.Scale(out, out.Bounds(), full, full.Bounds(), draw.Src, nil)
	return out, nil
}

// GetPixel returns the RGBA levels of one canvas pixel. Pixels outside
// the canvas are opaque black.
func (r *RendererGL) GetPixel(x, y int) ([4]uint8, error) {
	if err := r.readbackAllowed(); err != nil {
		return [4]uint8{}, err
	}
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return [4]uint8{0, 0, 0, 255}, nil
	}
	img, err := r.Get(image.Rect(x, y, x+1, y+1))
	if err != nil {
		return [4]uint8{}, err
	}
	return [4]uint8{img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3]}, nil
}

// PixelDensity is the number of drawing buffer pixels per canvas unit
func (r *RendererGL) PixelDensity() int {
	if r.ctx == nil {
		return 1
	}
	bw, _ := r.driver().DrawingBufferSize()
	if pd := bw / r.width; pd > 1 {
		return pd
	}
	return 1
}

// SaveFrame encodes the whole canvas as png, bmp or tiff
func (r *RendererGL) SaveFrame(w io.Writer, format string) error {
	img, err := r.Get(image.Rectangle{})
	if err != nil {
		return err
	}
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unsupported frame format %q", format)
}
