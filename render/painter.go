//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"golife/model"
)

// GridPainter updates a single RGBA image from a grid snapshot. It is a
// read-only consumer: the grid is never modified.
type GridPainter struct {
	size int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a size x size board
func NewGridPainter(size int) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size*size)}
	gp.img = ebiten.NewImage(size, size)
	return gp
}

// Blit uploads the grid's cells into the painter image and draws it scaled
func (gp *GridPainter) Blit(dst *ebiten.Image, g *model.Grid, on, off color.Color, scale int) {
	if g.Size() != gp.size {
		return
	}
	gp.fillRGBA(g, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// fillRGBA converts cell states into RGBA pixels in the painter's buffer
func (gp *GridPainter) fillRGBA(g *model.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for y := range gp.size {
		for x := range gp.size {
			base := (y*gp.size + x) * 4
			if g.Get(x, y) {
				gp.buf[base+0] = uint8(rOn >> 8)
				gp.buf[base+1] = uint8(gOn >> 8)
				gp.buf[base+2] = uint8(bOn >> 8)
				gp.buf[base+3] = uint8(aOn >> 8)
				continue
			}
			gp.buf[base+0] = uint8(rOff >> 8)
			gp.buf[base+1] = uint8(gOff >> 8)
			gp.buf[base+2] = uint8(bOff >> 8)
			gp.buf[base+3] = uint8(aOff >> 8)
		}
	}
}
