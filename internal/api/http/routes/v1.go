package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/folio-lab/portfolio-backend/internal/api/http/middleware"
	assistanthttp "github.com/folio-lab/portfolio-backend/internal/assistant/http"
	assistantservice "github.com/folio-lab/portfolio-backend/internal/assistant/service"
	contacthttp "github.com/folio-lab/portfolio-backend/internal/contact/http"
	contactservice "github.com/folio-lab/portfolio-backend/internal/contact/service"
	contenthttp "github.com/folio-lab/portfolio-backend/internal/content/http"
	contentservice "github.com/folio-lab/portfolio-backend/internal/content/service"
	"github.com/folio-lab/portfolio-backend/internal/session"
	themehttp "github.com/folio-lab/portfolio-backend/internal/theme/http"
	themeservice "github.com/folio-lab/portfolio-backend/internal/theme/service"
	translationhttp "github.com/folio-lab/portfolio-backend/internal/translation/http"
	translationservice "github.com/folio-lab/portfolio-backend/internal/translation/service"
)

type V1Deps struct {
	Content    *contentservice.ContentService
	Translator *translationservice.Translator
	Themes     *themeservice.ThemeService
	Assistant  *assistantservice.AssistantService
	Contact    *contactservice.ContactService
	Guard      session.Guard
	// ModelLimiter throttles every route that calls the model or sends mail.
	ModelLimiter *middleware.IPRateLimiter
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")
	api.Use(session.Middleware())

	var modelLimit []gin.HandlerFunc
	if dep.ModelLimiter != nil {
		modelLimit = append(modelLimit, dep.ModelLimiter.Middleware())
	}

	contentGroup := api.Group("/content")
	contenthttp.NewHandler(dep.Content).Register(contentGroup)
	translationhttp.NewHandler(dep.Translator, dep.Content, dep.Guard).Register(contentGroup, modelLimit...)

	themehttp.NewHandler(dep.Themes).Register(api.Group("/theme"), modelLimit...)

	assistanthttp.NewHandler(dep.Assistant).Register(api.Group("/assistant", modelLimit...))
	contacthttp.NewHandler(dep.Contact).Register(api.Group("/contact", modelLimit...))
}
