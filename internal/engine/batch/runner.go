package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"qrtag/internal/engine/codes"
)

// Renderer produces the label image for a single code at the given path.
type Renderer interface {
	Render(code, path string) error
}

type Summary struct {
	Requested int
	Generated int
	Written   int
}

type Runner struct {
	Generator *codes.Generator
	Renderer  Renderer
	OutputDir string
	Format    string
}

// Run generates up to count unique codes and writes one label image per code
// into the output directory. A failure on a single code is logged and skipped;
// only an unusable output directory aborts the run.
func (r *Runner) Run(count int) (*Summary, error) {
	if err := os.MkdirAll(r.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", r.OutputDir, err)
	}

	generated, err := r.Generator.Batch(count)
	if errors.Is(err, codes.ErrSpaceExhausted) {
		log.Warn().
			Int("generated", len(generated)).
			Int("requested", count).
			Msg("unique code generation stalled, stopping early")
	} else if err != nil {
		return nil, err
	}

	summary := &Summary{Requested: count, Generated: len(generated)}
	for _, code := range generated {
		path := filepath.Join(r.OutputDir, safeFilename(code)+"."+r.extension())
		if err := r.renderOne(code, path); err != nil {
			log.Warn().Err(err).Str("code", code).Msg("skipping code")
			continue
		}
		summary.Written++
		log.Info().Str("code", code).Str("path", path).Msg("wrote image")
	}

	return summary, nil
}

// renderOne wraps a single render so a panicking backend only costs one item.
func (r *Runner) renderOne(code, path string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("recovered from panic rendering %s: %v", code, rec)
		}
	}()
	return r.Renderer.Render(code, path)
}

func (r *Runner) extension() string {
	switch strings.ToLower(r.Format) {
	case "jpg", "jpeg":
		return "jpg"
	default:
		return "png"
	}
}

// safeFilename replaces anything outside [A-Za-z0-9] with an underscore.
// Codes are alphanumeric already, so this only matters for custom alphabets.
func safeFilename(code string) string {
	b := []byte(code)
	for i, c := range b {
		alnum := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
		if !alnum {
			b[i] = '_'
		}
	}
	return string(b)
}
