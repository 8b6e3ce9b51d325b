// Package texture provides CPU-side images for mvn: decoding from the
// common game formats, pixel access in mvn colors, scaling, and a
// name-keyed store.
//
// A Texture holds straight (non-premultiplied) RGBA8 pixels in row-major
// order. Textures are plain memory; nothing here touches a window or GPU.
package texture

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/larsonjj/mvn"
)

// Texture is a CPU-side RGBA8 image with straight alpha.
type Texture struct {
	width  int
	height int
	// pix holds 4 bytes per pixel (R, G, B, A), rows top to bottom.
	pix []byte
}

// New returns a transparent texture of the given size.
func New(w, h int) (*Texture, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	return &Texture{
		width:  w,
		height: h,
		pix:    make([]byte, w*h*4),
	}, nil
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	if t == nil {
		return 0
	}
	return t.width
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Pix returns the backing pixel buffer. The slice is live; writes to it
// change the texture.
func (t *Texture) Pix() []byte {
	if t == nil {
		return nil
	}
	return t.pix
}

// At returns the color at (x, y), or the zero color out of range.
func (t *Texture) At(x, y int) mvn.Color {
	if t == nil || x < 0 || y < 0 || x >= t.width || y >= t.height {
		return mvn.Color{}
	}
	i := (y*t.width + x) * 4
	return mvn.Color{R: t.pix[i], G: t.pix[i+1], B: t.pix[i+2], A: t.pix[i+3]}
}

// Set writes the color at (x, y) and reports whether the coordinates
// were in range.
func (t *Texture) Set(x, y int, c mvn.Color) bool {
	if t == nil || x < 0 || y < 0 || x >= t.width || y >= t.height {
		return false
	}
	i := (y*t.width + x) * 4
	t.pix[i] = c.R
	t.pix[i+1] = c.G
	t.pix[i+2] = c.B
	t.pix[i+3] = c.A
	return true
}

// FromImage converts any image.Image into a Texture. NRGBA sources copy
// directly; everything else converts pixel by pixel through the color
// model, which un-premultiplies alpha where needed.
func FromImage(img image.Image) *Texture {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	t := &Texture{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}

	if nrgba, ok := img.(*image.NRGBA); ok {
		if nrgba.Stride == width*4 {
			copy(t.pix, nrgba.Pix)
			return t
		}
		for y := range height {
			src := y * nrgba.Stride
			copy(t.pix[y*width*4:(y+1)*width*4], nrgba.Pix[src:src+width*4])
		}
		return t
	}

	for y := range height {
		for x := range width {
			n := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (y*width + x) * 4
			t.pix[i] = n.R
			t.pix[i+1] = n.G
			t.pix[i+2] = n.B
			t.pix[i+3] = n.A
		}
	}
	return t
}

// Image returns a copy of the texture as a standard library NRGBA image.
func (t *Texture) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.Width(), t.Height()))
	copy(img.Pix, t.Pix())
	return img
}

// Scaled returns a copy resized to w by h using bilinear interpolation.
func (t *Texture) Scaled(w, h int) (*Texture, error) {
	if t == nil || w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}

	src := t.Image()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	// A fresh NRGBA has no row padding, so the buffer adopts directly.
	return &Texture{width: w, height: h, pix: dst.Pix}, nil
}
