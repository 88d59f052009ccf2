package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
	"github.com/folio-lab/portfolio-backend/internal/content/domain"
	"github.com/folio-lab/portfolio-backend/internal/logging"
)

// ContentTranslator is the external model call: full tree in, translated tree out.
// Implementations must echo opaque fields and keep the project list aligned.
type ContentTranslator interface {
	TranslateContent(ctx context.Context, content *domain.WebsiteContent, targetLanguage string) (*domain.WebsiteContent, error)
}

// Translator replaces the translatable leaves of a content tree and passes
// every other field through from the source.
type Translator struct {
	upstream ContentTranslator
}

func NewTranslator(upstream ContentTranslator) *Translator {
	return &Translator{upstream: upstream}
}

// IsEnglish reports whether lang names the site's source language.
func IsEnglish(lang string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(lang)), "en")
}

// Translate returns content rendered into targetLanguage. The input is never
// modified; on any error the caller keeps the content it already has.
func (t *Translator) Translate(ctx context.Context, content *domain.WebsiteContent, targetLanguage string) (*domain.WebsiteContent, error) {
	if content == nil {
		return nil, apperr.Validationf("content is required")
	}
	lang := strings.TrimSpace(targetLanguage)
	if lang == "" {
		return nil, apperr.Validationf("target language is required")
	}
	if IsEnglish(lang) {
		return content, nil
	}

	logger := logging.FromContext(ctx)
	logger.Info().Str("target_language", lang).Int("projects", len(content.Projects)).Msg("Translating website content")

	translated, err := t.upstream.TranslateContent(ctx, content.Clone(), lang)
	if err != nil {
		logger.Warn().Err(err).Str("target_language", lang).Msg("Translator call failed")
		return nil, fmt.Errorf("%w: %w", apperr.ErrTranslation, err)
	}
	if translated == nil {
		return nil, fmt.Errorf("%w: translator returned no content", apperr.ErrTranslation)
	}

	merged, err := Reconcile(content, translated)
	if err != nil {
		logger.Warn().Err(err).Str("target_language", lang).Msg("Discarding translation")
		return nil, err
	}
	return merged, nil
}
