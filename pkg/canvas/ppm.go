package canvas

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ErrInvalidPPM is returned when decoding input that is not a binary 8-bit PPM
var ErrInvalidPPM = errors.New("invalid P6 image")

// MaxPPMDimension bounds the width and height DecodePPM accepts
const MaxPPMDimension = 1 << 15

// EncodePPM writes the canvas as a binary P6 image. Alpha is dropped.
func (c *Canvas) EncodePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", c.width, c.height); err != nil {
		return err
	}

	row := make([]byte, 3*c.width)
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			row[3*x+0] = p.R()
			row[3*x+1] = p.G()
			row[3*x+2] = p.B()
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ExportPPM writes the canvas to path. Failures are logged and returned;
// they never abort the process.
func (c *Canvas) ExportPPM(path string, logger core.Logger) error {
	return c.export(path, logger, c.EncodePPM)
}

// ExportPNG writes the canvas to path as a PNG, alpha included
func (c *Canvas) ExportPNG(path string, logger core.Logger) error {
	return c.export(path, logger, func(w io.Writer) error {
		return png.Encode(w, c.Image())
	})
}

func (c *Canvas) export(path string, logger core.Logger, encode func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		err = fmt.Errorf("could not open %s: %w", path, err)
		logger.Printf("ERROR: %v\n", err)
		return err
	}

	err = encode(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		err = fmt.Errorf("could not write %s: %w", path, err)
		logger.Printf("ERROR: %v\n", err)
		return err
	}
	return nil
}

// DecodePPM reads a binary P6 image with a maxval of 255 into a new canvas.
// Every decoded pixel is opaque.
func DecodePPM(r io.Reader) (*Canvas, error) {
	br := bufio.NewReader(r)

	var header [4]int
	magic, err := readToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "P6" {
		return nil, fmt.Errorf("%w: magic %q", ErrInvalidPPM, magic)
	}
	for i := 1; i < len(header); i++ {
		tok, err := readToken(br)
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Sscanf(tok, "%d", &header[i]); err != nil {
			return nil, fmt.Errorf("%w: header field %q", ErrInvalidPPM, tok)
		}
	}

	width, height, maxval := header[1], header[2], header[3]
	if width <= 0 || height <= 0 || width > MaxPPMDimension || height > MaxPPMDimension {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidPPM, width, height)
	}
	if maxval != 255 {
		return nil, fmt.Errorf("%w: maxval %d", ErrInvalidPPM, maxval)
	}

	// Read row by row; a truncated body fails before the canvas is allocated
	rows := make([][]core.Color, 0, min(height, 64))
	rgb := make([]byte, 3*width)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, rgb); err != nil {
			return nil, fmt.Errorf("%w: pixel data: %v", ErrInvalidPPM, err)
		}
		row := make([]core.Color, width)
		for x := range row {
			row[x] = core.RGB(rgb[3*x], rgb[3*x+1], rgb[3*x+2])
		}
		rows = append(rows, row)
	}

	c := New(width, height)
	for y, row := range rows {
		copy(c.pixels[y*width:], row)
	}
	return c, nil
}

// readToken returns the next whitespace-delimited header token, skipping
// comments. It consumes exactly one whitespace byte after the token.
func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", fmt.Errorf("%w: truncated header", ErrInvalidPPM)
		}
		switch {
		case b == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("%w: truncated comment", ErrInvalidPPM)
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}
