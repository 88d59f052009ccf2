package service

import (
	"github.com/folio-lab/portfolio-backend/internal/content/domain"
)

// Language is one entry of the site's language selector.
type Language struct {
	Code  string `json:"value"`
	Label string `json:"label"`
}

// Languages offered by the language selector, English first.
var Languages = []Language{
	{Code: "en", Label: "English"},
	{Code: "id", Label: "Indonesian"},
	{Code: "fr", Label: "French"},
	{Code: "es", Label: "Spanish"},
	{Code: "de", Label: "German"},
	{Code: "ja", Label: "Japanese"},
	{Code: "ko", Label: "Korean"},
	{Code: "zh", Label: "Chinese"},
	{Code: "ru", Label: "Russian"},
}

// ContentService owns the canonical (untranslated) website content.
type ContentService struct {
	canonical *domain.WebsiteContent
}

// NewContentService wraps an already validated content tree.
func NewContentService(canonical *domain.WebsiteContent) *ContentService {
	return &ContentService{canonical: canonical.Clone()}
}

// Canonical returns a deep copy of the original content; callers may mutate it freely.
func (s *ContentService) Canonical() *domain.WebsiteContent {
	return s.canonical.Clone()
}

// Author returns a copy of the author profile.
func (s *ContentService) Author() domain.Author {
	return s.Canonical().Author
}

// Projects returns a copy of the project list in display order.
func (s *ContentService) Projects() []domain.Project {
	return s.Canonical().Projects
}
