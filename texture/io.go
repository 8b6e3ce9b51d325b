package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"

	"github.com/larsonjj/mvn/fileutil"
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("texture: empty data")

	// ErrInvalidSize is returned for non-positive dimensions.
	ErrInvalidSize = errors.New("texture: invalid dimensions")
)

// Decode decodes image data, sniffing the format from the content.
// PNG, JPEG, GIF, and BMP are supported.
func Decode(data []byte) (*Texture, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	return FromImage(img), nil
}

// DecodePNG decodes PNG data.
func DecodePNG(data []byte) (*Texture, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("texture: decode PNG: %w", err)
	}
	return FromImage(img), nil
}

// DecodeJPEG decodes JPEG data.
func DecodeJPEG(data []byte) (*Texture, error) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("texture: decode JPEG: %w", err)
	}
	return FromImage(img), nil
}

// DecodeGIF decodes the first frame of GIF data.
func DecodeGIF(data []byte) (*Texture, error) {
	img, err := gif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("texture: decode GIF: %w", err)
	}
	return FromImage(img), nil
}

// DecodeBMP decodes BMP data.
func DecodeBMP(data []byte) (*Texture, error) {
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("texture: decode BMP: %w", err)
	}
	return FromImage(img), nil
}

// Load reads and decodes the image file at path. Known extensions pick
// their decoder directly; anything else is sniffed from the content.
func Load(path string) (*Texture, error) {
	// #nosec G304 -- Image file path is provided by the user
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("texture: failed to read image file: %w", err)
	}

	switch {
	case fileutil.HasExtension(path, ".png"):
		return DecodePNG(data)
	case fileutil.HasExtension(path, ".jpg"), fileutil.HasExtension(path, ".jpeg"):
		return DecodeJPEG(data)
	case fileutil.HasExtension(path, ".gif"):
		return DecodeGIF(data)
	case fileutil.HasExtension(path, ".bmp"):
		return DecodeBMP(data)
	default:
		return Decode(data)
	}
}

// EncodePNG encodes the texture as PNG bytes.
func (t *Texture) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, t.Image()); err != nil {
		return nil, fmt.Errorf("texture: encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// SavePNG writes the texture to a PNG file.
func (t *Texture) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("texture: create file: %w", err)
	}

	if err := png.Encode(f, t.Image()); err != nil {
		_ = f.Close()
		return fmt.Errorf("texture: encode PNG: %w", err)
	}

	return f.Close()
}
