package service

import (
	"fmt"
	"strings"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
	"github.com/folio-lab/portfolio-backend/internal/content/domain"
)

// Reconcile merges a translated tree back onto its source. The result starts
// as a copy of original and takes only translatable leaves from translated;
// opaque fields, labels and the contact block always come from original.
// Projects are aligned by position, not id, so the translator must keep the
// list length and order.
func Reconcile(original, translated *domain.WebsiteContent) (*domain.WebsiteContent, error) {
	if len(translated.Projects) != len(original.Projects) {
		return nil, fmt.Errorf("%w: translator returned %d projects, expected %d",
			apperr.ErrReconciliation, len(translated.Projects), len(original.Projects))
	}

	out := original.Clone()
	dst := out.TranslatableFields()
	src := translated.TranslatableFields()
	if len(dst) != len(src) {
		return nil, fmt.Errorf("%w: %d translatable fields, expected %d",
			apperr.ErrReconciliation, len(src), len(dst))
	}

	var missing []string
	for i := range dst {
		if dst[i].Path != src[i].Path {
			return nil, fmt.Errorf("%w: field %s aligned with %s", apperr.ErrReconciliation, src[i].Path, dst[i].Path)
		}
		value := strings.TrimSpace(*src[i].Value)
		if value == "" {
			missing = append(missing, dst[i].Path)
			continue
		}
		*dst[i].Value = value
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: translation is missing %s", apperr.ErrTranslation, strings.Join(missing, ", "))
	}

	return out, nil
}
