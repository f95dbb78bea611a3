package canvas

import (
	"encoding/binary"
	"fmt"
	"image"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Canvas is a row-major buffer of packed colors. It supports two addressing
// conventions: raster (origin top-left, y down) and centered (origin in the
// middle, y up).
type Canvas struct {
	pixels []core.Color
	width  int
	height int
}

// New creates a canvas with every pixel set to zero
func New(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("canvas: invalid size %dx%d", width, height))
	}
	return &Canvas{
		pixels: make([]core.Color, width*height),
		width:  width,
		height: height,
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Pixels returns the underlying buffer. Writes through it are visible to the canvas.
func (c *Canvas) Pixels() []core.Color {
	return c.pixels
}

// Put writes a pixel in raster coordinates. Out-of-range coordinates panic.
func (c *Canvas) Put(x, y int, color core.Color) {
	if x < 0 || x >= c.width {
		panic(fmt.Sprintf("canvas: x=%d out of range [0,%d)", x, c.width))
	}
	if y < 0 || y >= c.height {
		panic(fmt.Sprintf("canvas: y=%d out of range [0,%d)", y, c.height))
	}
	c.pixels[y*c.width+x] = color
}

// CenteredBounds returns the half-open centered ranges [xMin, xMax) and
// [yMin, yMax) that address every pixel exactly once. For even sizes these
// are [-width/2, width/2) and [-height/2, height/2); an odd size puts the
// extra column on the right and the extra row at the bottom.
func (c *Canvas) CenteredBounds() (xMin, xMax, yMin, yMax int) {
	halfW, halfH := c.width/2, c.height/2
	return -halfW, c.width - halfW, halfH - c.height, halfH
}

// PutCentered writes a pixel in centered coordinates with y pointing up.
// Coordinates outside CenteredBounds panic.
func (c *Canvas) PutCentered(x, y int, color core.Color) {
	xMin, xMax, yMin, yMax := c.CenteredBounds()
	if x < xMin || x >= xMax {
		panic(fmt.Sprintf("canvas: centered x=%d out of range [%d,%d)", x, xMin, xMax))
	}
	if y < yMin || y >= yMax {
		panic(fmt.Sprintf("canvas: centered y=%d out of range [%d,%d)", y, yMin, yMax))
	}
	c.Put(c.width/2+x, c.height/2-y-1, color)
}

// At reads a pixel in raster coordinates
func (c *Canvas) At(x, y int) core.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		panic(fmt.Sprintf("canvas: (%d,%d) out of range %dx%d", x, y, c.width, c.height))
	}
	return c.pixels[y*c.width+x]
}

// Fill sets every pixel to color
func (c *Canvas) Fill(color core.Color) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}

// Bytes returns the pixels as contiguous RGBA8 bytes in raster row-major
// order, the layout texture uploads expect.
func (c *Canvas) Bytes() []byte {
	buf := make([]byte, 4*len(c.pixels))
	for i, p := range c.pixels {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(p))
	}
	return buf
}

// Image returns a copy of the canvas as an *image.RGBA
func (c *Canvas) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    c.Bytes(),
		Stride: 4 * c.width,
		Rect:   image.Rect(0, 0, c.width, c.height),
	}
}
