// Package text builds extruded 3D text meshes from OpenType fonts.
package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font is a parsed OpenType/TrueType font.
type Font struct {
	Name string
	otf  *opentype.Font
}

var (
	defaultOnce sync.Once
	defaultFont *Font
	defaultErr  error
)

// DefaultFont returns the embedded Go Regular face.
func DefaultFont() (*Font, error) {
	defaultOnce.Do(func() {
		defaultFont, defaultErr = ParseFont("goregular", goregular.TTF)
	})
	return defaultFont, defaultErr
}

// ParseFont parses TTF or OTF bytes.
func ParseFont(name string, data []byte) (*Font, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", name, err)
	}
	return &Font{Name: name, otf: otf}, nil
}

// face opens a face where one em is pxPerEm pixels.
func (f *Font) face(pxPerEm int) (font.Face, error) {
	return opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size:    float64(pxPerEm),
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
