package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrTooManyPixels is returned before decoding when the header declares
// more than MaxPixels.
var ErrTooManyPixels = errors.New("image dimensions too large")

// WebPEncoder re-encodes uploads as lossy WebP no wider than MaxWidth.
type WebPEncoder struct {
	MaxWidth  int
	MaxPixels int
	Quality   float32
}

func NewWebPEncoder() *WebPEncoder {
	return &WebPEncoder{MaxWidth: 800, MaxPixels: 24_000_000, Quality: 80}
}

func (e *WebPEncoder) Encode(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image header: %w", err)
	}
	if e.MaxPixels > 0 && cfg.Width*cfg.Height > e.MaxPixels {
		return nil, fmt.Errorf("%dx%d: %w", cfg.Width, cfg.Height, ErrTooManyPixels)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	img := Fit(src, e.MaxWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: e.Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *WebPEncoder) ContentType() string { return "image/webp" }

func (e *WebPEncoder) Extension() string { return ".webp" }

// Fit scales src down to maxWidth keeping its aspect ratio.
// Images already narrow enough are returned unchanged.
func Fit(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return src
	}

	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
