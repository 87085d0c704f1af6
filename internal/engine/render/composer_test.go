package render

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"qrtag/internal/engine/qr"
)

func testComposer() *Composer {
	return &Composer{
		Face:    basicfont.Face7x13,
		BoxSize: 4,
		Border:  2,
		Padding: 8,
		TextGap: 5,
		Format:  "png",
		Fg:      color.RGBA{0, 0, 0, 255},
		Bg:      color.RGBA{255, 255, 255, 255},
	}
}

func TestComposeDimensions(t *testing.T) {
	comp := testComposer()

	matrix, err := qr.Encode("AB12C")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	img := comp.Compose(matrix, "AB12C")

	qrSize := (len(matrix) + 2*comp.Border) * comp.BoxSize
	measure := &font.Drawer{Face: comp.Face}
	textW := measure.MeasureString("AB12C").Ceil()
	metrics := comp.Face.Metrics()
	textH := (metrics.Ascent + metrics.Descent).Ceil()

	wantW := qrSize
	if textW > wantW {
		wantW = textW
	}
	wantW += 2 * comp.Padding
	wantH := qrSize + comp.TextGap + textH + 2*comp.Padding

	bounds := img.Bounds()
	if bounds.Dx() != wantW {
		t.Errorf("Expected width %d, got %d", wantW, bounds.Dx())
	}
	if bounds.Dy() != wantH {
		t.Errorf("Expected height %d, got %d", wantH, bounds.Dy())
	}
}

func TestComposeIdempotent(t *testing.T) {
	comp := testComposer()

	matrix, err := qr.Encode("ZZ999")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	first := comp.Compose(matrix, "ZZ999").Bounds()
	second := comp.Compose(matrix, "ZZ999").Bounds()
	if first != second {
		t.Errorf("Dimensions differ between runs: %v vs %v", first, second)
	}
}

func TestRenderWritesFile(t *testing.T) {
	comp := testComposer()
	path := filepath.Join(t.TempDir(), "AB12C.png")

	if err := comp.Render("AB12C", path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Output file missing: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Error("Decoded image is empty")
	}
}

func TestRenderUnwritablePath(t *testing.T) {
	comp := testComposer()

	err := comp.Render("AB12C", filepath.Join(t.TempDir(), "missing", "AB12C.png"))
	if err == nil {
		t.Fatal("Expected error for unwritable path, got nil")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{name: "Named White", input: "white", want: color.RGBA{255, 255, 255, 255}},
		{name: "Named Black", input: "black", want: color.RGBA{0, 0, 0, 255}},
		{name: "Hex", input: "#ff8800", want: color.RGBA{255, 136, 0, 255}},
		{name: "Unknown Name", input: "chartreuse", wantErr: true},
		{name: "Bad Hex", input: "#ffff", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadFace(t *testing.T) {
	face, err := LoadFace("", 25)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if face == nil {
		t.Fatal("Expected a font face, got nil")
	}

	metrics := face.Metrics()
	if metrics.Ascent <= 0 {
		t.Errorf("Expected positive ascent, got %v", metrics.Ascent)
	}
}
