package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
	"github.com/folio-lab/portfolio-backend/internal/assistant/domain"
	contentdomain "github.com/folio-lab/portfolio-backend/internal/content/domain"
)

type fakeModel struct {
	calls   int
	err     error
	history []domain.Message
	author  contentdomain.Author
}

func (f *fakeModel) DescribeProject(_ context.Context, name, desc string) (string, error) {
	f.calls++
	return "new " + desc, f.err
}

func (f *fakeModel) TranslateBio(_ context.Context, bio, lang string) (string, error) {
	f.calls++
	return lang + ":" + bio, f.err
}

func (f *fakeModel) Chat(_ context.Context, author contentdomain.Author, _ []contentdomain.Project, history []domain.Message, message string) (string, error) {
	f.calls++
	f.author, f.history = author, history
	return "re: " + message, f.err
}

type fakePortfolio struct{}

func (fakePortfolio) Author() contentdomain.Author { return contentdomain.Author{Name: "Alex Doe"} }
func (fakePortfolio) Projects() []contentdomain.Project {
	return []contentdomain.Project{{ID: "p1"}}
}

func TestTranslateBio_EnglishShortCircuit(t *testing.T) {
	m := &fakeModel{}
	svc := NewAssistantService(m, fakePortfolio{})

	for _, lang := range []string{"", "  ", "en", "English", "en-GB"} {
		got, err := svc.TranslateBio(context.Background(), "Hello there", lang)
		require.NoError(t, err)
		assert.Equal(t, "Hello there", got)
	}
	assert.Zero(t, m.calls)

	got, err := svc.TranslateBio(context.Background(), "Hello there", "French")
	require.NoError(t, err)
	assert.Equal(t, "French:Hello there", got)
	assert.Equal(t, 1, m.calls)
}

func TestTranslateBio_Errors(t *testing.T) {
	svc := NewAssistantService(&fakeModel{err: errors.New("boom")}, fakePortfolio{})

	_, err := svc.TranslateBio(context.Background(), "", "fr")
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = svc.TranslateBio(context.Background(), "Hi", "fr")
	assert.True(t, errors.Is(err, apperr.ErrTranslation))
	assert.Contains(t, err.Error(), "boom")
}

func TestDescribeProject(t *testing.T) {
	m := &fakeModel{}
	svc := NewAssistantService(m, fakePortfolio{})

	_, err := svc.DescribeProject(context.Background(), "Weather", " ")
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	assert.Zero(t, m.calls)

	got, err := svc.DescribeProject(context.Background(), "Weather", "Forecasts")
	require.NoError(t, err)
	assert.Equal(t, "new Forecasts", got)
}

func TestChat(t *testing.T) {
	m := &fakeModel{}
	svc := NewAssistantService(m, fakePortfolio{})

	history := make([]domain.Message, 0, domain.MaxHistory+5)
	for i := 0; i < domain.MaxHistory+5; i++ {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleModel
		}
		history = append(history, domain.Message{Role: role, Content: "turn"})
	}

	got, err := svc.Chat(context.Background(), history, "  who are you? ")
	require.NoError(t, err)
	assert.Equal(t, "re: who are you?", got)
	assert.Len(t, m.history, domain.MaxHistory)
	assert.Equal(t, "Alex Doe", m.author.Name)
}

func TestChat_Validation(t *testing.T) {
	m := &fakeModel{}
	svc := NewAssistantService(m, fakePortfolio{})

	_, err := svc.Chat(context.Background(), nil, "")
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = svc.Chat(context.Background(), []domain.Message{{Role: "system", Content: "x"}}, "hi")
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	assert.Zero(t, m.calls)
}
