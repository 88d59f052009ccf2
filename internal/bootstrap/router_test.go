package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-lab/portfolio-backend/config"
	assistantdomain "github.com/folio-lab/portfolio-backend/internal/assistant/domain"
	contentdomain "github.com/folio-lab/portfolio-backend/internal/content/domain"
	"github.com/folio-lab/portfolio-backend/internal/session"
	themedomain "github.com/folio-lab/portfolio-backend/internal/theme/domain"
)

const testSession = "3f6c1b1e-8a5e-4a57-9b0a-2f1f5d7c9e11"

type fakeModel struct {
	fail       bool
	translates int
	palette    *themedomain.Palette
}

func (m *fakeModel) TranslateContent(_ context.Context, c *contentdomain.WebsiteContent, _ string) (*contentdomain.WebsiteContent, error) {
	m.translates++
	if m.fail {
		return nil, errors.New("unsupported language")
	}
	out := c.Clone()
	for _, f := range out.TranslatableFields() {
		*f.Value = strings.ToUpper(*f.Value)
	}
	out.Author.Contact.Email = "changed@example.com"
	return out, nil
}

func (m *fakeModel) GeneratePalette(context.Context) (*themedomain.Palette, error) {
	if m.fail {
		return nil, errors.New("model overloaded")
	}
	return m.palette.Clone(), nil
}

func (m *fakeModel) DescribeProject(context.Context, string, string) (string, error) {
	return "fresh copy", nil
}

func (m *fakeModel) TranslateBio(_ context.Context, bio, lang string) (string, error) {
	return lang + ": " + bio, nil
}

func (m *fakeModel) Chat(context.Context, contentdomain.Author, []contentdomain.Project, []assistantdomain.Message, string) (string, error) {
	return "hello from the assistant", nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Port: "0", AllowedOrigins: []string{"http://localhost:3000"}},
		App:       config.AppConfig{Environment: "test", Version: "test"},
		Redis:     config.RedisConfig{SessionTTL: time.Hour},
		LLM:       config.LLMConfig{Model: "gemini-test"},
		RateLimit: config.RateLimitConfig{PerMinute: 1000, Burst: 1000},
		Firebase:  config.FirebaseConfig{AuthorID: "main_author"},
	}
}

func newTestRouter(t *testing.T, model *fakeModel) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	svcs, err := BuildServices(context.Background(), cfg, model, nil, nil)
	require.NoError(t, err)
	return BuildRouter(RouterDeps{ServiceName: "portfolio-api", Config: cfg, Services: svcs})
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(session.HeaderName, testSession)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type contentResp struct {
	OK       bool                         `json:"ok"`
	Language string                       `json:"language"`
	Notice   string                       `json:"notice"`
	Error    string                       `json:"error"`
	Content  *contentdomain.WebsiteContent `json:"content"`
}

type themeResp struct {
	OK     bool   `json:"ok"`
	Notice string `json:"notice"`
	Theme  struct {
		Mode      string                 `json:"mode"`
		Palette   *themedomain.Palette   `json:"palette"`
		Variables []themedomain.StyleVar `json:"variables"`
	} `json:"theme"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, &fakeModel{})
	w := do(t, r, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
	assert.Contains(t, w.Body.String(), `"firestore":"disabled"`)
}

func TestContentRoutes(t *testing.T) {
	r := newTestRouter(t, &fakeModel{})

	w := do(t, r, http.MethodGet, "/api/v1/content", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[contentResp](t, w)
	assert.Equal(t, "Alex Doe", resp.Content.Author.Name)
	assert.Equal(t, testSession, w.Header().Get(session.HeaderName))

	w = do(t, r, http.MethodGet, "/api/v1/content/languages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `{"value":"fr","label":"French"}`)
}

func TestTranslateRoute(t *testing.T) {
	model := &fakeModel{}
	r := newTestRouter(t, model)

	w := do(t, r, http.MethodPost, "/api/v1/content/translate", gin.H{"targetLanguage": "fr"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[contentResp](t, w)
	assert.Equal(t, "fr", resp.Language)
	assert.Equal(t, "CREATIVE FULL-STACK DEVELOPER & AI ENTHUSIAST", resp.Content.Author.Title)
	assert.Equal(t, "alex.doe@example.com", resp.Content.Author.Contact.Email)

	// A second translation starts from the canonical tree again.
	w = do(t, r, http.MethodPost, "/api/v1/content/translate", gin.H{"targetLanguage": "de"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CREATIVE FULL-STACK DEVELOPER & AI ENTHUSIAST", decode[contentResp](t, w).Content.Author.Title)
	assert.Equal(t, 2, model.translates)

	w = do(t, r, http.MethodPost, "/api/v1/content/translate", gin.H{"targetLanguage": "English"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[contentResp](t, w)
	assert.Equal(t, "Content reset to English.", resp.Notice)
	assert.Equal(t, "Creative Full-Stack Developer & AI Enthusiast", resp.Content.Author.Title)
	assert.Equal(t, 2, model.translates)

	w = do(t, r, http.MethodPost, "/api/v1/content/translate", gin.H{"targetLanguage": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTranslateRoute_FailureReturnsOriginal(t *testing.T) {
	r := newTestRouter(t, &fakeModel{fail: true})

	w := do(t, r, http.MethodPost, "/api/v1/content/translate", gin.H{"targetLanguage": "xx"})
	require.Equal(t, http.StatusBadGateway, w.Code)
	resp := decode[contentResp](t, w)
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Notice)
	assert.Contains(t, resp.Error, "unsupported language")
	assert.Equal(t, "Creative Full-Stack Developer & AI Enthusiast", resp.Content.Author.Title)
}

func TestThemeRoutes(t *testing.T) {
	palette := themedomain.DefaultPalette()
	palette.Dark.Primary = "150 60% 40%"
	model := &fakeModel{palette: palette}
	r := newTestRouter(t, model)

	w := do(t, r, http.MethodGet, "/api/v1/theme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	theme := decode[themeResp](t, w).Theme
	assert.Equal(t, "light", theme.Mode)
	assert.Nil(t, theme.Palette)
	assert.Len(t, theme.Variables, themedomain.RoleCount)

	w = do(t, r, http.MethodPut, "/api/v1/theme/mode", gin.H{"mode": "dark"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/theme/generate", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	theme = decode[themeResp](t, w).Theme
	assert.Equal(t, "dark", theme.Mode)
	require.NotNil(t, theme.Palette)

	// Failure keeps the palette generated above.
	model.fail = true
	w = do(t, r, http.MethodPost, "/api/v1/theme/generate", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
	failed := decode[themeResp](t, w)
	assert.NotEmpty(t, failed.Notice)
	require.NotNil(t, failed.Theme.Palette)
	assert.Equal(t, "150 60% 40%", failed.Theme.Palette.Dark.Primary)

	w = do(t, r, http.MethodGet, "/api/v1/theme/style.css", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "--primary: 150 60% 40%;")

	w = do(t, r, http.MethodDelete, "/api/v1/theme/palette", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode[themeResp](t, w).Theme.Palette)
}

func TestThemeRoutes_InvalidInput(t *testing.T) {
	r := newTestRouter(t, &fakeModel{palette: themedomain.DefaultPalette()})

	w := do(t, r, http.MethodPut, "/api/v1/theme/mode", gin.H{"mode": "system"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	bad := themedomain.DefaultPalette()
	bad.Light.Ring = "blue"
	w = do(t, r, http.MethodPut, "/api/v1/theme/palette", bad)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodPut, "/api/v1/theme/palette", themedomain.DefaultPalette())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAssistantRoutes(t *testing.T) {
	r := newTestRouter(t, &fakeModel{})

	w := do(t, r, http.MethodPost, "/api/v1/assistant/translate-bio", gin.H{"existingBio": "Hi", "targetLanguage": "en"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"translatedBio":"Hi"`)

	w = do(t, r, http.MethodPost, "/api/v1/assistant/describe-project", gin.H{"projectName": "Zenith", "originalDescription": "Banking"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fresh copy")

	w = do(t, r, http.MethodPost, "/api/v1/assistant/chat", gin.H{
		"history": []gin.H{{"role": "user", "content": "hi"}, {"role": "model", "content": "hello"}},
		"message": "what do you build?",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "hello from the assistant")

	w = do(t, r, http.MethodPost, "/api/v1/assistant/chat", gin.H{"message": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactRoute_Unconfigured(t *testing.T) {
	r := newTestRouter(t, &fakeModel{})

	w := do(t, r, http.MethodPost, "/api/v1/contact", gin.H{"name": "J", "email": "x", "message": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/contact", gin.H{"name": "Jo", "email": "jo@example.com", "message": "Hello there, lovely site!"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
