package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
	"github.com/folio-lab/portfolio-backend/internal/logging"
	"github.com/folio-lab/portfolio-backend/internal/theme/domain"
)

// PaletteSource is the external palette generator call.
type PaletteSource interface {
	GeneratePalette(ctx context.Context) (*domain.Palette, error)
}

// Generator produces validated, normalized palettes from a PaletteSource.
type Generator struct {
	source PaletteSource
}

func NewGenerator(source PaletteSource) *Generator {
	return &Generator{source: source}
}

// Generate makes exactly one upstream call. Any returned palette has all 19
// roles in both modes, each in canonical triplet form.
func (g *Generator) Generate(ctx context.Context) (*domain.Palette, error) {
	logger := logging.FromContext(ctx)

	palette, err := g.source.GeneratePalette(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Palette generator call failed")
		if errors.Is(err, apperr.ErrGeneration) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", apperr.ErrGeneration, err)
	}
	if palette == nil {
		return nil, fmt.Errorf("%w: generator returned no palette", apperr.ErrSchemaValidation)
	}
	if err := palette.Normalize(); err != nil {
		logger.Warn().Err(err).Msg("Generated palette rejected")
		return nil, err
	}

	for _, c := range domain.ContrastReport(palette) {
		if !c.Passes() {
			logger.Warn().
				Str("mode", string(c.Mode)).
				Str("surface", c.Pair.Surface).
				Str("text", c.Pair.Text).
				Float64("ratio", c.Ratio).
				Msg("Generated palette has low contrast")
		}
	}
	return palette, nil
}
