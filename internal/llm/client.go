// Package llm dispatches the site's prompt flows to the Gemini API.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/folio-lab/portfolio-backend/config"
	"github.com/folio-lab/portfolio-backend/internal/apperr"
	assistantdomain "github.com/folio-lab/portfolio-backend/internal/assistant/domain"
	contentdomain "github.com/folio-lab/portfolio-backend/internal/content/domain"
	"github.com/folio-lab/portfolio-backend/internal/logging"
	"github.com/folio-lab/portfolio-backend/internal/metrics"
	themedomain "github.com/folio-lab/portfolio-backend/internal/theme/domain"
)

var (
	// ErrEmptyResponse is a model reply without any text.
	ErrEmptyResponse = errors.New("model returned an empty response")
	// ErrDecode is a model reply that does not fit the expected shape.
	ErrDecode = errors.New("model response does not match schema")
)

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client runs every prompt flow of the site as a single structured call.
type Client struct {
	models  contentGenerator
	model   string
	timeout time.Duration
}

// New creates a Gemini API client from cfg.
func New(ctx context.Context, cfg config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", apperr.ErrUnavailable)
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return newClient(client.Models, cfg.Model, cfg.Timeout), nil
}

func newClient(models contentGenerator, model string, timeout time.Duration) *Client {
	return &Client{models: models, model: model, timeout: timeout}
}

// call sends one prompt and decodes the JSON reply into out.
func (c *Client) call(ctx context.Context, op string, contents []*genai.Content, cfg *genai.GenerateContentConfig, out any) (err error) {
	start := time.Now()
	defer func() { metrics.RecordCall(op, time.Since(start), err) }()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	cfg.ResponseMIMEType = "application/json"

	resp, err := c.models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return fmt.Errorf("%s: %w", op, ErrEmptyResponse)
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrDecode, err)
	}

	logging.FromContext(ctx).Debug().
		Str("op", op).
		Dur("latency", time.Since(start)).
		Msg("Model call completed")
	return nil
}

func userPrompt(text string) []*genai.Content {
	return []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}
}

// TranslateContent asks the model for the whole tree in targetLanguage.
func (c *Client) TranslateContent(ctx context.Context, content *contentdomain.WebsiteContent, targetLanguage string) (*contentdomain.WebsiteContent, error) {
	raw, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode content: %w", err)
	}
	prompt, err := render("translate", map[string]string{
		"TargetLanguage": targetLanguage,
		"ContentJSON":    string(raw),
	})
	if err != nil {
		return nil, err
	}

	var out contentdomain.WebsiteContent
	err = c.call(ctx, "translate_content", userPrompt(prompt), &genai.GenerateContentConfig{
		Temperature:    genai.Ptr[float32](0.1),
		ResponseSchema: schemaFor(reflect.TypeOf(out)),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GeneratePalette asks the model for a fresh light/dark palette.
func (c *Client) GeneratePalette(ctx context.Context) (*themedomain.Palette, error) {
	prompt, err := render("palette", nil)
	if err != nil {
		return nil, err
	}

	var out themedomain.Palette
	err = c.call(ctx, "generate_palette", userPrompt(prompt), &genai.GenerateContentConfig{
		Temperature:    genai.Ptr[float32](1),
		ResponseSchema: paletteSchema(),
	}, &out)
	if err != nil {
		if errors.Is(err, ErrDecode) {
			return nil, fmt.Errorf("%w: %w", apperr.ErrSchemaValidation, err)
		}
		return nil, err
	}
	return &out, nil
}

// DescribeProject writes an alternative project description.
func (c *Client) DescribeProject(ctx context.Context, projectName, originalDescription string) (string, error) {
	prompt, err := render("describe", map[string]string{
		"ProjectName":         projectName,
		"OriginalDescription": originalDescription,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		AlternativeDescription string `json:"alternativeDescription"`
	}
	err = c.call(ctx, "describe_project", userPrompt(prompt), &genai.GenerateContentConfig{
		ResponseSchema: singleFieldSchema("alternativeDescription", "The alternative project description."),
	}, &out)
	if err != nil {
		return "", err
	}
	return out.AlternativeDescription, nil
}

// TranslateBio translates a single biography text.
func (c *Client) TranslateBio(ctx context.Context, existingBio, targetLanguage string) (string, error) {
	prompt, err := render("bio", map[string]string{
		"ExistingBio":    existingBio,
		"TargetLanguage": targetLanguage,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		TranslatedBio string `json:"translatedBio"`
	}
	err = c.call(ctx, "translate_bio", userPrompt(prompt), &genai.GenerateContentConfig{
		Temperature:    genai.Ptr[float32](0.2),
		ResponseSchema: singleFieldSchema("translatedBio", "The bio translated into the target language."),
	}, &out)
	if err != nil {
		return "", err
	}
	return out.TranslatedBio, nil
}

// Chat answers message in the persona of the portfolio owner's assistant.
// history is replayed as prior turns; author and projects form the system context.
func (c *Client) Chat(ctx context.Context, author contentdomain.Author, projects []contentdomain.Project, history []assistantdomain.Message, message string) (string, error) {
	authorJSON, err := json.MarshalIndent(author, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode author: %w", err)
	}
	projectsJSON, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode projects: %w", err)
	}
	system, err := render("chat", map[string]string{
		"Name":         author.Name,
		"AuthorJSON":   string(authorJSON),
		"ProjectsJSON": string(projectsJSON),
	})
	if err != nil {
		return "", err
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		role := genai.Role(genai.RoleUser)
		if m.Role == assistantdomain.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	var out struct {
		Response string `json:"response"`
	}
	err = c.call(ctx, "chat", contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		ResponseSchema:    singleFieldSchema("response", "The assistant's response to the user."),
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Response, nil
}
