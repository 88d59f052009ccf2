package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
	"github.com/folio-lab/portfolio-backend/internal/session"
	"github.com/folio-lab/portfolio-backend/internal/theme/domain"
	"github.com/folio-lab/portfolio-backend/internal/theme/repository"
)

type fakeSource struct {
	mu      sync.Mutex
	palette *domain.Palette
	err     error
	calls   int
	block   chan struct{}
}

func (f *fakeSource) GeneratePalette(ctx context.Context) (*domain.Palette, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.palette.Clone(), nil
}

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, error) {
	return "", apperr.ErrStorage
}
func (brokenStore) Set(context.Context, string, string) error { return apperr.ErrStorage }
func (brokenStore) Delete(context.Context, string) error      { return apperr.ErrStorage }

func warmPalette() *domain.Palette {
	p := domain.DefaultPalette()
	p.Light.Primary = "24 95% 53%"
	p.Dark.Primary = "20.5 90.2% 48.2%"
	return p
}

func TestGenerator_Success(t *testing.T) {
	src := &fakeSource{palette: warmPalette()}
	p, err := NewGenerator(src).Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, "20.5 90% 48%", p.Dark.Primary)

	for _, mode := range []domain.Mode{domain.ModeLight, domain.ModeDark} {
		for _, r := range domain.Roles {
			assert.Regexp(t, domain.CanonicalTriplet, r.Value(p.ForMode(mode)))
		}
	}
}

func TestGenerator_MissingRole(t *testing.T) {
	p := warmPalette()
	p.Dark.Ring = ""
	src := &fakeSource{palette: p}

	_, err := NewGenerator(src).Generate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrSchemaValidation))
	assert.True(t, errors.Is(err, apperr.ErrGeneration))
	assert.Equal(t, 1, src.calls)
}

func TestGenerator_UpstreamFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("quota exceeded")}
	_, err := NewGenerator(src).Generate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrGeneration))
	assert.False(t, errors.Is(err, apperr.ErrSchemaValidation))
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestApplicator_Defaults(t *testing.T) {
	a := NewApplicator(repository.NewMemoryStore())
	st := a.State()
	assert.Equal(t, domain.ModeLight, st.Mode)
	assert.Nil(t, st.Palette)
	assert.Equal(t, domain.ApplyTheme(domain.ModeLight, domain.DefaultPalette()), st.Variables)
}

func TestApplicator_PersistsAfterApply(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()
	a := NewApplicator(store)

	require.NoError(t, a.SetPalette(ctx, warmPalette()))
	require.NoError(t, a.SetMode(ctx, domain.ModeDark))

	mode, err := store.Get(ctx, KeyMode)
	require.NoError(t, err)
	assert.Equal(t, "dark", mode)

	raw, err := store.Get(ctx, KeyPalette)
	require.NoError(t, err)
	var saved domain.Palette
	require.NoError(t, json.Unmarshal([]byte(raw), &saved))
	assert.Equal(t, "24 95% 53%", saved.Light.Primary)

	assert.Equal(t, "20.5 90% 48%", a.State().Variables.Map()["--primary"])
}

func TestApplicator_RestoreFromPriorSession(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()
	p := warmPalette()
	require.NoError(t, p.Normalize())
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, KeyMode, "dark"))
	require.NoError(t, store.Set(ctx, KeyPalette, string(raw)))

	a := NewApplicator(store)
	a.Restore(ctx)

	st := a.State()
	assert.Equal(t, domain.ModeDark, st.Mode)
	assert.Equal(t, domain.ApplyTheme(domain.ModeDark, p), st.Variables)
	for i, r := range domain.Roles {
		assert.Equal(t, r.Value(&p.Dark), st.Variables[i].Value)
	}
}

func TestApplicator_RestoreIgnoresGarbage(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, KeyMode, "system"))
	require.NoError(t, store.Set(ctx, KeyPalette, `{"light":{"background":"oops"}}`))

	a := NewApplicator(store)
	a.Restore(ctx)
	assert.Equal(t, domain.ModeLight, a.State().Mode)
	assert.Nil(t, a.State().Palette)
}

func TestApplicator_StorageFaultsNeverFail(t *testing.T) {
	ctx := context.Background()
	a := NewApplicator(brokenStore{})
	a.Restore(ctx)

	require.NoError(t, a.SetMode(ctx, domain.ModeDark))
	require.NoError(t, a.SetPalette(ctx, warmPalette()))
	assert.Equal(t, "20.5 90% 48%", a.State().Variables.Map()["--primary"])

	a.ResetPalette(ctx)
	assert.Nil(t, a.State().Palette)
	assert.Equal(t, domain.ModeDark, a.State().Mode)
}

func TestApplicator_InvalidInputKeepsState(t *testing.T) {
	ctx := context.Background()
	a := NewApplicator(repository.NewMemoryStore())
	require.NoError(t, a.SetPalette(ctx, warmPalette()))
	before := a.State()

	err := a.SetMode(ctx, domain.Mode("sepia"))
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	bad := warmPalette()
	bad.Light.Border = "1 2 3"
	err = a.SetPalette(ctx, bad)
	assert.True(t, errors.Is(err, apperr.ErrSchemaValidation))

	assert.Equal(t, before, a.State())
}

func TestApplicator_ResetPalette(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()
	a := NewApplicator(store)
	require.NoError(t, a.SetPalette(ctx, warmPalette()))

	a.ResetPalette(ctx)
	assert.Nil(t, a.State().Palette)
	assert.Equal(t, domain.ApplyTheme(domain.ModeLight, nil), a.State().Variables)
	_, err := store.Get(ctx, KeyPalette)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestThemeService_GenerateFailureKeepsPreviousPalette(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()
	svc := NewThemeService(NewGenerator(&fakeSource{palette: warmPalette()}), store, session.NewMemoryGuard())

	a, err := svc.Generate(ctx, "s1")
	require.NoError(t, err)
	before := a.State()

	broken := warmPalette()
	broken.Light.Ring = ""
	svc = NewThemeService(NewGenerator(&fakeSource{palette: broken}), store, session.NewMemoryGuard())

	a, err = svc.Generate(ctx, "s1")
	assert.True(t, errors.Is(err, apperr.ErrGeneration))
	require.NotNil(t, a)
	assert.Equal(t, before, a.State())
	assert.Equal(t, before, svc.Load(ctx, "s1").State())
}

func TestThemeService_GenerateFailureWithoutPalette(t *testing.T) {
	svc := NewThemeService(NewGenerator(&fakeSource{err: errors.New("boom")}), repository.NewMemoryStore(), session.NewMemoryGuard())

	a, err := svc.Generate(context.Background(), "s1")
	assert.True(t, errors.Is(err, apperr.ErrGeneration))
	assert.Nil(t, a.State().Palette)
	assert.Equal(t, domain.ApplyTheme(domain.ModeLight, nil), a.State().Variables)
}

func TestThemeService_RejectsOverlappingGenerate(t *testing.T) {
	src := &fakeSource{palette: warmPalette(), block: make(chan struct{})}
	svc := NewThemeService(NewGenerator(src), repository.NewMemoryStore(), session.NewMemoryGuard())

	done := make(chan error, 1)
	go func() {
		_, err := svc.Generate(context.Background(), "s1")
		done <- err
	}()

	require.Eventually(t, func() bool {
		src.mu.Lock()
		defer src.mu.Unlock()
		return src.calls == 1
	}, time.Second, 5*time.Millisecond)

	_, err := svc.Generate(context.Background(), "s1")
	assert.True(t, errors.Is(err, apperr.ErrRequestInFlight))

	close(src.block)
	require.NoError(t, <-done)
}

func TestThemeService_GenerateKeepsModeChangedMeanwhile(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{palette: warmPalette(), block: make(chan struct{})}
	svc := NewThemeService(NewGenerator(src), repository.NewMemoryStore(), session.NewMemoryGuard())

	done := make(chan *Applicator, 1)
	go func() {
		a, err := svc.Generate(ctx, "s1")
		assert.NoError(t, err)
		done <- a
	}()

	require.Eventually(t, func() bool {
		src.mu.Lock()
		defer src.mu.Unlock()
		return src.calls == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, svc.Load(ctx, "s1").SetMode(ctx, domain.ModeDark))
	close(src.block)

	a := <-done
	assert.Equal(t, domain.ModeDark, a.State().Mode)
	require.NotNil(t, a.State().Palette)
	assert.Equal(t, "24 95% 53%", a.State().Palette.Light.Primary)

	state := svc.Load(ctx, "s1").State()
	assert.Equal(t, domain.ModeDark, state.Mode)
	require.NotNil(t, state.Palette)
	assert.Equal(t, domain.ApplyTheme(domain.ModeDark, state.Palette), state.Variables)
}
