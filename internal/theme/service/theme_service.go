package service

import (
	"context"

	"github.com/folio-lab/portfolio-backend/internal/session"
	"github.com/folio-lab/portfolio-backend/internal/theme/repository"
)

// ThemeService loads per-session applicators and runs palette generation.
type ThemeService struct {
	generator *Generator
	storage   repository.Storage
	guard     session.Guard
}

func NewThemeService(generator *Generator, storage repository.Storage, guard session.Guard) *ThemeService {
	return &ThemeService{generator: generator, storage: storage, guard: guard}
}

// Load returns the session's applicator with persisted state restored.
func (s *ThemeService) Load(ctx context.Context, sessionID string) *Applicator {
	a := NewApplicator(repository.SessionStorage(s.storage, sessionID))
	a.Restore(ctx)
	return a
}

// Generate requests a new palette and installs it. The returned applicator
// is never nil; on error it still holds the previous theme. State is reloaded
// after the model call so changes made meanwhile, such as the mode, are kept.
func (s *ThemeService) Generate(ctx context.Context, sessionID string) (*Applicator, error) {
	release, err := session.Admit(ctx, s.guard, sessionID, session.ActionGeneratePalette)
	if err != nil {
		return s.Load(ctx, sessionID), err
	}
	defer release()

	palette, err := s.generator.Generate(ctx)
	a := s.Load(ctx, sessionID)
	if err != nil {
		return a, err
	}
	if err := a.SetPalette(ctx, palette); err != nil {
		return a, err
	}
	return a, nil
}
