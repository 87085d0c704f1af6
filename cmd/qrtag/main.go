package main

import (
	stdlog "log"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"qrtag/internal/engine/batch"
	"qrtag/internal/engine/codes"
	"qrtag/internal/engine/render"
	"qrtag/internal/pkg/logger"
	"qrtag/internal/platform/config"
)

const configPath = "configs/config.yaml"

func main() {
	cfg, err := config.Load(configPath)
	if err != nil {
		stdlog.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Logging)

	// Text rendering is required for every output, so resolve the font
	// before generating anything.
	face, err := render.LoadFace(cfg.Render.FontPath, cfg.Render.FontSize)
	if err != nil {
		log.Fatal().Err(err).Msg("no usable caption font")
	}

	composer, err := render.NewComposer(cfg.Render, cfg.QR, cfg.Batch.Format, face)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid render configuration")
	}

	runner := &batch.Runner{
		Generator: codes.NewGenerator(cfg.Batch.CodeLength),
		Renderer:  composer,
		OutputDir: cfg.Batch.OutputDir,
		Format:    cfg.Batch.Format,
	}

	runID := uuid.New().String()
	log.Info().
		Str("run_id", runID).
		Int("count", cfg.Batch.Count).
		Str("output_dir", cfg.Batch.OutputDir).
		Msg("generating QR labels")

	summary, err := runner.Run(cfg.Batch.Count)
	if err != nil {
		log.Fatal().Err(err).Msg("batch failed")
	}

	log.Info().
		Str("run_id", runID).
		Int("written", summary.Written).
		Int("requested", summary.Requested).
		Msg("finished")
}
