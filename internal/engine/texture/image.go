// Package texture decodes images into RGBA pixel buffers ready for GPU upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Image is an RGBA pixel buffer stored bottom row first, matching GL texture origin.
type Image struct {
	Name   string
	Width  int
	Height int
	Pix    []byte
}

// Decode decodes PNG, JPEG, WebP or BMP data into an Image.
func Decode(name string, data []byte) (*Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decoding %s: empty %s image", name, format)
	}
	return FromImage(name, img), nil
}

// FromImage converts any image to a flipped RGBA Image.
func FromImage(name string, img image.Image) *Image {
	rgba := ImageToRGBA(img)
	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()
	return &Image{
		Name:   name,
		Width:  w,
		Height: h,
		Pix:    FlipVertical(rgba.Pix, w*4, h),
	}
}

// ImageToRGBA converts any image to *image.RGBA with origin at (0, 0).
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical returns a copy of pix with its rows in reverse order.
func FlipVertical(pix []byte, stride, rows int) []byte {
	out := make([]byte, len(pix))
	for y := 0; y < rows; y++ {
		copy(out[(rows-1-y)*stride:(rows-y)*stride], pix[y*stride:(y+1)*stride])
	}
	return out
}
