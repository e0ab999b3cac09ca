package text

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/globe-scene/pkg/geometry"
)

// ErrEmptyText is returned when the content has nothing to draw.
var ErrEmptyText = errors.New("text: empty content")

// DefaultResolution is the raster density in pixels per em.
const DefaultResolution = 32

// coverage is the alpha at which a raster cell counts as solid.
const coverage = 128

// Options controls mesh generation.
type Options struct {
	Size       float32 // world height of one em
	Depth      float32 // extrusion along +z
	Resolution int     // pixels per em; 0 uses DefaultResolution
}

// Build rasterizes content and extrudes every covered cell into a box.
// The result is centred on X and Y and spans z in [0, Depth]. Lines are
// separated by '\n' and left aligned.
func Build(f *Font, content string, opts Options) (*geometry.Geometry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyText
	}
	if opts.Size <= 0 {
		opts.Size = 1
	}
	if opts.Resolution <= 0 {
		opts.Resolution = DefaultResolution
	}

	mask, err := rasterize(f, content, opts.Resolution)
	if err != nil {
		return nil, err
	}

	cell := opts.Size / float32(opts.Resolution)
	g := extrude(mask, cell, opts.Depth)
	if g.VertexCount() == 0 {
		return nil, ErrEmptyText
	}

	c := g.Bounds().Center()
	g.Translate(-c.X, -c.Y, 0)
	return g, nil
}

// rasterize draws content into an alpha mask, one line per '\n'.
func rasterize(f *Font, content string, pxPerEm int) (*image.Alpha, error) {
	face, err := f.face(pxPerEm)
	if err != nil {
		return nil, fmt.Errorf("open face %s: %w", f.Name, err)
	}
	defer face.Close()

	m := face.Metrics()
	lineHeight := m.Height.Ceil()
	ascent := m.Ascent.Ceil()

	lines := strings.Split(content, "\n")
	d := &font.Drawer{Face: face, Src: image.Opaque}

	width := 0
	for _, line := range lines {
		if w := d.MeasureString(line).Ceil(); w > width {
			width = w
		}
	}

	const pad = 1
	height := lineHeight*(len(lines)-1) + ascent + m.Descent.Ceil()
	mask := image.NewAlpha(image.Rect(0, 0, width+2*pad, height+2*pad))

	d.Dst = mask
	for i, line := range lines {
		d.Dot = fixed.P(pad, pad+ascent+i*lineHeight)
		d.DrawString(line)
	}
	return mask, nil
}

// extrude emits caps for every solid cell and side walls on edges that
// border an empty cell. Image rows run downward; world Y runs upward.
func extrude(mask *image.Alpha, cell, depth float32) *geometry.Geometry {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	solid := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return mask.AlphaAt(b.Min.X+x, b.Min.Y+y).A >= coverage
	}

	mb := &meshBuilder{g: &geometry.Geometry{}, uvW: float32(w) * cell, uvH: float32(h) * cell}
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			if !solid(px, py) {
				continue
			}
			x0 := float32(px) * cell
			x1 := x0 + cell
			y0 := float32(h-1-py) * cell
			y1 := y0 + cell

			mb.quad([3]float32{0, 0, 1},
				[3]float32{x0, y0, depth}, [3]float32{x1, y0, depth},
				[3]float32{x1, y1, depth}, [3]float32{x0, y1, depth})
			if depth <= 0 {
				continue
			}
			mb.quad([3]float32{0, 0, -1},
				[3]float32{x0, y0, 0}, [3]float32{x0, y1, 0},
				[3]float32{x1, y1, 0}, [3]float32{x1, y0, 0})

			if !solid(px+1, py) {
				mb.quad([3]float32{1, 0, 0},
					[3]float32{x1, y0, 0}, [3]float32{x1, y1, 0},
					[3]float32{x1, y1, depth}, [3]float32{x1, y0, depth})
			}
			if !solid(px-1, py) {
				mb.quad([3]float32{-1, 0, 0},
					[3]float32{x0, y0, 0}, [3]float32{x0, y0, depth},
					[3]float32{x0, y1, depth}, [3]float32{x0, y1, 0})
			}
			if !solid(px, py-1) {
				mb.quad([3]float32{0, 1, 0},
					[3]float32{x0, y1, 0}, [3]float32{x0, y1, depth},
					[3]float32{x1, y1, depth}, [3]float32{x1, y1, 0})
			}
			if !solid(px, py+1) {
				mb.quad([3]float32{0, -1, 0},
					[3]float32{x0, y0, 0}, [3]float32{x1, y0, 0},
					[3]float32{x1, y0, depth}, [3]float32{x0, y0, depth})
			}
		}
	}
	return mb.g
}

type meshBuilder struct {
	g        *geometry.Geometry
	uvW, uvH float32
}

// quad appends four corners wound counter-clockwise around n.
func (mb *meshBuilder) quad(n [3]float32, corners ...[3]float32) {
	base := uint32(len(mb.g.Positions))
	for _, p := range corners {
		mb.g.Positions = append(mb.g.Positions, p)
		mb.g.Normals = append(mb.g.Normals, n)
		mb.g.UVs = append(mb.g.UVs, [2]float32{p[0] / mb.uvW, p[1] / mb.uvH})
	}
	mb.g.Indices = append(mb.g.Indices, base, base+1, base+2, base, base+2, base+3)
}
