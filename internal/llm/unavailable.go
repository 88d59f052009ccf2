package llm

import (
	"context"
	"fmt"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
	assistantdomain "github.com/folio-lab/portfolio-backend/internal/assistant/domain"
	contentdomain "github.com/folio-lab/portfolio-backend/internal/content/domain"
	themedomain "github.com/folio-lab/portfolio-backend/internal/theme/domain"
)

// Unavailable stands in for Client when no API key is configured. Every
// flow fails with apperr.ErrUnavailable.
type Unavailable struct{}

var errNoModel = fmt.Errorf("%w: language model is not configured", apperr.ErrUnavailable)

func (Unavailable) TranslateContent(context.Context, *contentdomain.WebsiteContent, string) (*contentdomain.WebsiteContent, error) {
	return nil, errNoModel
}

func (Unavailable) GeneratePalette(context.Context) (*themedomain.Palette, error) {
	return nil, errNoModel
}

func (Unavailable) DescribeProject(context.Context, string, string) (string, error) {
	return "", errNoModel
}

func (Unavailable) TranslateBio(context.Context, string, string) (string, error) {
	return "", errNoModel
}

func (Unavailable) Chat(context.Context, contentdomain.Author, []contentdomain.Project, []assistantdomain.Message, string) (string, error) {
	return "", errNoModel
}
