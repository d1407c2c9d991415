// Package render draws a painted grid and a search result as PNG frames
// with github.com/fogleman/gg.
//
// Frames replay a search: frame i (i < len(Explored)) shows the first i+1
// explored cells with the newest highlighted, and the final frame adds the
// path. Role cells are drawn last so start, end and walls stay visible.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/search"
)

// ErrFrameRange indicates a frame index outside [0, Frames()).
var ErrFrameRange = errors.New("render: frame out of range")

// ErrNilGrid indicates NewRenderer was given a nil grid.
var ErrNilGrid = errors.New("render: grid is nil")

// Palette colors.
const (
	ColorBackground = "#BDBDBD"
	ColorGridLine   = "#919191"
	ColorExplored   = "#468EA6"
	ColorPath       = "#1C1C1C"
	ColorStart      = "#5EA646"
	ColorEnd        = "#A65E46"
	ColorWall       = "#696969"
)

// ColorNewest marks the most recently explored cell.
var ColorNewest = color.RGBA{0, 0, 255, 255}

// Options tunes rendering.
type Options struct {
	CellSize int
}

// Option customizes a Renderer.
type Option func(*Options)

// WithCellSize sets the side of one cell in pixels. Panics if n <= 0.
func WithCellSize(n int) Option {
	if n <= 0 {
		panic("render: WithCellSize requires a positive size")
	}
	return func(o *Options) { o.CellSize = n }
}

// Renderer draws frames for one grid and result.
type Renderer struct {
	grid   *gridgraph.RoleGrid
	result search.Result
	cell   int
}

// NewRenderer returns a Renderer with cell size gridgraph.DefaultCellSize
// unless overridden.
func NewRenderer(grid *gridgraph.RoleGrid, result search.Result, opts ...Option) (*Renderer, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	cfg := Options{CellSize: gridgraph.DefaultCellSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Renderer{grid: grid, result: result, cell: cfg.CellSize}, nil
}

// Frames returns the number of frames: one per explored cell plus the final one.
func (r *Renderer) Frames() int { return len(r.result.Explored) + 1 }

// Bounds returns the image size in pixels.
func (r *Renderer) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.grid.Width()*r.cell, r.grid.Height()*r.cell)
}

// Frame draws frame i.
func (r *Renderer) Frame(i int) (image.Image, error) {
	dc, err := r.draw(i)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// Final draws the last frame.
func (r *Renderer) Final() image.Image {
	dc, _ := r.draw(r.Frames() - 1)

	return dc.Image()
}

// WritePNG encodes frame i as PNG to w.
func (r *Renderer) WritePNG(w io.Writer, i int) error {
	dc, err := r.draw(i)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

// SavePNG writes frame i to the PNG file at path.
func (r *Renderer) SavePNG(path string, i int) error {
	dc, err := r.draw(i)
	if err != nil {
		return err
	}

	return dc.SavePNG(path)
}

func (r *Renderer) draw(i int) (*gg.Context, error) {
	if i < 0 || i >= r.Frames() {
		return nil, fmt.Errorf("%w: %d of %d", ErrFrameRange, i, r.Frames())
	}
	b := r.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())

	// 1) Background and grid lines.
	dc.SetHexColor(ColorBackground)
	dc.Clear()
	dc.SetHexColor(ColorGridLine)
	dc.SetLineWidth(1)
	for y := 0; y <= r.grid.Height(); y++ {
		dc.DrawLine(0, float64(y*r.cell), float64(b.Dx()), float64(y*r.cell))
	}
	for x := 0; x <= r.grid.Width(); x++ {
		dc.DrawLine(float64(x*r.cell), 0, float64(x*r.cell), float64(b.Dy()))
	}
	dc.Stroke()

	// 2) Explored cells up to i; the newest is highlighted unless it is the
	//    last explored cell.
	explored := r.result.Explored
	last := len(explored) - 1
	for k := 0; k <= i && k <= last; k++ {
		if k == i && k != last {
			dc.SetColor(ColorNewest)
		} else {
			dc.SetHexColor(ColorExplored)
		}
		r.fillCell(dc, explored[k].Coord())
	}

	// 3) The path, once every explored cell is shown.
	if i == r.Frames()-1 {
		dc.SetHexColor(ColorPath)
		for _, n := range r.result.Path {
			r.fillCell(dc, n.Coord())
		}
	}

	// 4) Role cells on top.
	for y := 0; y < r.grid.Height(); y++ {
		for x := 0; x < r.grid.Width(); x++ {
			hex, ok := roleColor(r.grid.At(x, y))
			if !ok {
				continue
			}
			dc.SetHexColor(hex)
			r.fillCell(dc, core.Coord{X: x, Y: y})
		}
	}

	return dc, nil
}

func (r *Renderer) fillCell(dc *gg.Context, c core.Coord) {
	if !r.grid.InBounds(c.X, c.Y) {
		return
	}
	dc.DrawRectangle(float64(c.X*r.cell), float64(c.Y*r.cell), float64(r.cell), float64(r.cell))
	dc.Fill()
}

func roleColor(role core.Role) (string, bool) {
	switch role {
	case core.Start:
		return ColorStart, true
	case core.End:
		return ColorEnd, true
	case core.Wall:
		return ColorWall, true
	default:
		return "", false
	}
}
