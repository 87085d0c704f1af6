package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"qrtag/internal/engine/qr"
	"qrtag/internal/platform/config"
)

// Composer turns a QR module matrix plus its source code into a single label
// image: the QR raster centered on top, the code text centered beneath it.
type Composer struct {
	Face    font.Face
	BoxSize int
	Border  int
	Padding int
	TextGap int
	Format  string
	Fg, Bg  color.RGBA
}

func NewComposer(rc config.RenderConfig, qc config.QRConfig, format string, face font.Face) (*Composer, error) {
	fg, err := ParseColor(rc.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := ParseColor(rc.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	return &Composer{
		Face:    face,
		BoxSize: qc.BoxSize,
		Border:  qc.Border,
		Padding: rc.Padding,
		TextGap: rc.TextGap,
		Format:  format,
		Fg:      fg,
		Bg:      bg,
	}, nil
}

// Render encodes code as a QR symbol, composes the label image, and writes it
// to path in the configured format.
func (c *Composer) Render(code, path string) error {
	matrix, err := qr.Encode(code)
	if err != nil {
		return err
	}
	return c.writeImage(c.Compose(matrix, code), path)
}

// Compose lays out the canvas:
//
//	width  = max(qr width, text width) + 2*padding
//	height = qr height + gap + text height + 2*padding
func (c *Composer) Compose(matrix [][]bool, caption string) *image.RGBA {
	qrSize := (len(matrix) + 2*c.Border) * c.BoxSize

	measure := &font.Drawer{Face: c.Face}
	textW := measure.MeasureString(caption).Ceil()
	metrics := c.Face.Metrics()
	textH := (metrics.Ascent + metrics.Descent).Ceil()

	width := qrSize
	if textW > width {
		width = textW
	}
	width += 2 * c.Padding
	height := qrSize + c.TextGap + textH + 2*c.Padding

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c.Bg}, image.Point{}, draw.Src)

	qrX := (width - qrSize) / 2
	qrY := c.Padding
	c.drawModules(img, matrix, qrX, qrY)

	textX := (width - textW) / 2
	baseline := qrY + qrSize + c.TextGap + metrics.Ascent.Ceil()
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c.Fg),
		Face: c.Face,
		Dot:  fixed.P(textX, baseline),
	}
	drawer.DrawString(caption)

	return img
}

func (c *Composer) drawModules(img *image.RGBA, matrix [][]bool, x0, y0 int) {
	quiet := c.Border * c.BoxSize
	fg := &image.Uniform{C: c.Fg}
	for y, row := range matrix {
		for x, dark := range row {
			if !dark {
				continue
			}
			px := x0 + quiet + x*c.BoxSize
			py := y0 + quiet + y*c.BoxSize
			draw.Draw(img, image.Rect(px, py, px+c.BoxSize, py+c.BoxSize), fg, image.Point{}, draw.Src)
		}
	}
}

func (c *Composer) writeImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(c.Format) {
	case "", "png":
		err = png.Encode(f, img)
	case "jpg", "jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	default:
		err = fmt.Errorf("unsupported image format %q", c.Format)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
