package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
	"github.com/folio-lab/portfolio-backend/internal/logging"
	"github.com/folio-lab/portfolio-backend/internal/theme/domain"
	"github.com/folio-lab/portfolio-backend/internal/theme/repository"
)

// Storage keys for the persisted presentation state.
const (
	KeyMode    = "theme-mode"
	KeyPalette = "theme-palette"
)

// State is a snapshot of the applied theme.
type State struct {
	Mode      domain.Mode       `json:"mode"`
	Palette   *domain.Palette   `json:"palette"` // nil when the built-in theme is active
	Variables domain.StyleSheet `json:"variables"`
}

// Applicator owns the theme mode, the custom palette and the applied style
// sheet for one visitor. It is not safe for concurrent use.
type Applicator struct {
	storage repository.Storage
	mode    domain.Mode
	palette *domain.Palette
	sheet   domain.StyleSheet
}

// NewApplicator starts in light mode with the built-in theme applied.
func NewApplicator(storage repository.Storage) *Applicator {
	a := &Applicator{storage: storage, mode: domain.ModeLight}
	a.apply()
	return a
}

// Restore loads the persisted mode and palette. Missing or unreadable
// entries leave the defaults in place.
func (a *Applicator) Restore(ctx context.Context) {
	logger := logging.FromContext(ctx)

	if raw, err := a.storage.Get(ctx, KeyMode); err == nil {
		if mode, err := domain.ParseMode(raw); err == nil {
			a.mode = mode
		} else {
			logger.Warn().Err(err).Msg("Ignoring persisted theme mode")
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		logger.Warn().Err(err).Msg("Theme mode read failed")
	}

	if raw, err := a.storage.Get(ctx, KeyPalette); err == nil {
		var p domain.Palette
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			logger.Warn().Err(err).Msg("Ignoring persisted theme palette")
		} else if err := p.Normalize(); err != nil {
			logger.Warn().Err(err).Msg("Ignoring persisted theme palette")
		} else {
			a.palette = &p
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		logger.Warn().Err(err).Msg("Theme palette read failed")
	}

	a.apply()
}

// SetMode switches between light and dark and re-applies the theme.
func (a *Applicator) SetMode(ctx context.Context, mode domain.Mode) error {
	if mode != domain.ModeLight && mode != domain.ModeDark {
		return apperr.Validationf("unknown theme mode %q", mode)
	}
	a.mode = mode
	a.apply()
	a.persist(ctx)
	return nil
}

// SetPalette validates and installs a custom palette. On error the previous
// palette stays in effect.
func (a *Applicator) SetPalette(ctx context.Context, palette *domain.Palette) error {
	if palette == nil {
		return apperr.Validationf("palette is required")
	}
	p := palette.Clone()
	if err := p.Normalize(); err != nil {
		return err
	}
	a.palette = p
	a.apply()
	a.persist(ctx)
	return nil
}

// ResetPalette drops the custom palette and returns to the built-in theme.
func (a *Applicator) ResetPalette(ctx context.Context) {
	a.palette = nil
	a.apply()
	a.persist(ctx)
	if err := a.storage.Delete(ctx, KeyPalette); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("Theme palette delete failed")
	}
}

// State returns a copy of the current theme.
func (a *Applicator) State() State {
	return State{Mode: a.mode, Palette: a.palette.Clone(), Variables: a.sheet}
}

func (a *Applicator) apply() {
	a.sheet = domain.ApplyTheme(a.mode, a.palette)
}

// persist writes mode and palette, best effort.
func (a *Applicator) persist(ctx context.Context) {
	logger := logging.FromContext(ctx)

	if err := a.storage.Set(ctx, KeyMode, string(a.mode)); err != nil {
		logger.Warn().Err(err).Msg("Theme mode write failed")
	}
	if a.palette == nil {
		return
	}
	raw, err := json.Marshal(a.palette)
	if err != nil {
		logger.Warn().Err(err).Msg("Theme palette encode failed")
		return
	}
	if err := a.storage.Set(ctx, KeyPalette, string(raw)); err != nil {
		logger.Warn().Err(err).Msg("Theme palette write failed")
	}
}
