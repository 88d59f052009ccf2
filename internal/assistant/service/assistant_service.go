package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
	"github.com/folio-lab/portfolio-backend/internal/assistant/domain"
	contentdomain "github.com/folio-lab/portfolio-backend/internal/content/domain"
	translation "github.com/folio-lab/portfolio-backend/internal/translation/service"
)

// Model is the external model surface used by the assistant flows.
type Model interface {
	DescribeProject(ctx context.Context, projectName, originalDescription string) (string, error)
	TranslateBio(ctx context.Context, existingBio, targetLanguage string) (string, error)
	Chat(ctx context.Context, author contentdomain.Author, projects []contentdomain.Project, history []domain.Message, message string) (string, error)
}

// PortfolioSource supplies the canonical author and projects for chat context.
type PortfolioSource interface {
	Author() contentdomain.Author
	Projects() []contentdomain.Project
}

type AssistantService struct {
	model     Model
	portfolio PortfolioSource
}

func NewAssistantService(model Model, portfolio PortfolioSource) *AssistantService {
	return &AssistantService{model: model, portfolio: portfolio}
}

// DescribeProject returns an alternative description for a project.
func (s *AssistantService) DescribeProject(ctx context.Context, projectName, originalDescription string) (string, error) {
	projectName = strings.TrimSpace(projectName)
	originalDescription = strings.TrimSpace(originalDescription)
	if projectName == "" || originalDescription == "" {
		return "", apperr.Validationf("project name and description are required")
	}
	out, err := s.model.DescribeProject(ctx, projectName, originalDescription)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperr.ErrGeneration, err)
	}
	return out, nil
}

// TranslateBio returns the bio in targetLanguage. English and empty targets
// return the bio unchanged without a model call.
func (s *AssistantService) TranslateBio(ctx context.Context, existingBio, targetLanguage string) (string, error) {
	if strings.TrimSpace(existingBio) == "" {
		return "", apperr.Validationf("bio is required")
	}
	lang := strings.TrimSpace(targetLanguage)
	if lang == "" || translation.IsEnglish(lang) {
		return existingBio, nil
	}
	out, err := s.model.TranslateBio(ctx, existingBio, lang)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperr.ErrTranslation, err)
	}
	return out, nil
}

// Chat answers one visitor message. The caller owns the conversation history.
func (s *AssistantService) Chat(ctx context.Context, history []domain.Message, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", apperr.Validationf("message is required")
	}
	history, err := domain.ValidateHistory(history)
	if err != nil {
		return "", err
	}
	out, err := s.model.Chat(ctx, s.portfolio.Author(), s.portfolio.Projects(), history, message)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperr.ErrGeneration, err)
	}
	return out, nil
}
