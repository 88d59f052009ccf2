package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/folio-lab/portfolio-backend/config"
	"github.com/folio-lab/portfolio-backend/internal/apperr"
	assistantservice "github.com/folio-lab/portfolio-backend/internal/assistant/service"
	contactnotifier "github.com/folio-lab/portfolio-backend/internal/contact/notifier"
	contactrepo "github.com/folio-lab/portfolio-backend/internal/contact/repository"
	contactservice "github.com/folio-lab/portfolio-backend/internal/contact/service"
	"github.com/folio-lab/portfolio-backend/internal/content/seed"
	contentservice "github.com/folio-lab/portfolio-backend/internal/content/service"
	"github.com/folio-lab/portfolio-backend/internal/llm"
	"github.com/folio-lab/portfolio-backend/internal/session"
	themerepo "github.com/folio-lab/portfolio-backend/internal/theme/repository"
	themeservice "github.com/folio-lab/portfolio-backend/internal/theme/service"
	translationservice "github.com/folio-lab/portfolio-backend/internal/translation/service"
)

// Model is every prompt flow the services depend on.
type Model interface {
	translationservice.ContentTranslator
	themeservice.PaletteSource
	assistantservice.Model
}

type Services struct {
	Content    *contentservice.ContentService
	Translator *translationservice.Translator
	Themes     *themeservice.ThemeService
	Assistant  *assistantservice.AssistantService
	Contact    *contactservice.ContactService
	Guard      session.Guard
}

// OpenModel returns the Gemini client, or llm.Unavailable when no API key is set.
func OpenModel(ctx context.Context, cfg config.LLMConfig) (Model, error) {
	client, err := llm.New(ctx, cfg)
	if errors.Is(err, apperr.ErrUnavailable) {
		log.Warn().Msg("GEMINI_API_KEY not set; model flows are disabled")
		return llm.Unavailable{}, nil
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

// BuildServices wires the domain services. rdb and fs may be nil; theme
// state and in-flight slots then live in process memory and the contact
// form is disabled.
func BuildServices(ctx context.Context, cfg *config.Config, model Model, rdb *redis.Client, fs *firestore.Client) (*Services, error) {
	content, err := seed.LoadFile(cfg.Content.Path, time.Now())
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	contentSvc := contentservice.NewContentService(content)

	var (
		guard session.Guard
		store themerepo.Storage
	)
	if rdb != nil {
		guard = session.NewRedisGuard(rdb)
		store = themerepo.NewRedisStore(rdb, cfg.Redis.SessionTTL)
	} else {
		log.Warn().Msg("REDIS_URL not set; theme state is kept in memory")
		guard = session.NewMemoryGuard()
		store = themerepo.NewMemoryStore()
	}

	var sink contactservice.Sink
	if fs != nil {
		sink = contactrepo.NewFirestoreSink(fs)
	}
	var notifier contactservice.Notifier
	if cfg.Email.EmailEnabled() {
		n, err := contactnotifier.NewSESNotifier(ctx, cfg.Email)
		if err != nil {
			return nil, fmt.Errorf("contact notifier: %w", err)
		}
		notifier = n
	}

	return &Services{
		Content:    contentSvc,
		Translator: translationservice.NewTranslator(model),
		Themes:     themeservice.NewThemeService(themeservice.NewGenerator(model), store, guard),
		Assistant:  assistantservice.NewAssistantService(model, contentSvc),
		Contact:    contactservice.NewContactService(sink, notifier, cfg.Firebase.AuthorID),
		Guard:      guard,
	}, nil
}
