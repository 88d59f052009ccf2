package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-lab/portfolio-backend/internal/content/seed"
)

func TestContentService_CanonicalIsACopy(t *testing.T) {
	c, err := seed.Default(time.Now())
	require.NoError(t, err)

	svc := NewContentService(c)
	c.Author.Name = "mutated before"

	first := svc.Canonical()
	assert.Equal(t, "Alex Doe", first.Author.Name)

	first.Author.Skills[0] = "COBOL"
	first.Projects[0].Tags[0] = "Fortran"
	first.Projects[0].Title = "changed"

	second := svc.Canonical()
	assert.Equal(t, "React", second.Author.Skills[0])
	assert.Equal(t, "React", second.Projects[0].Tags[0])
	assert.Equal(t, "AI-Powered Data Visualizer", second.Projects[0].Title)
}

func TestContentService_Accessors(t *testing.T) {
	c, err := seed.Default(time.Now())
	require.NoError(t, err)
	svc := NewContentService(c)

	assert.Equal(t, "alex.doe@example.com", svc.Author().Contact.Email)
	assert.Len(t, svc.Projects(), 6)
	assert.Equal(t, "en", Languages[0].Code)
}
