package render

import (
	"errors"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Probed when no font path is configured.
var systemFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/Library/Fonts/Arial.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

// LoadFace resolves the caption font: the configured path first, then known
// system locations, then the embedded Go Regular face, and finally the
// fixed-size basicfont. An error here means no text can be rendered at all,
// which callers treat as fatal.
func LoadFace(path string, size float64) (font.Face, error) {
	candidates := systemFontPaths
	if path != "" {
		candidates = append([]string{path}, candidates...)
	}

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if face, err := newFace(data, size); err == nil {
			return face, nil
		}
	}

	if face, err := newFace(goregular.TTF, size); err == nil {
		return face, nil
	}

	if basicfont.Face7x13 != nil {
		return basicfont.Face7x13, nil
	}
	return nil, errors.New("no usable font available")
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
