package usecase

import (
	"context"

	"hr-registry/internal/domain/skill"
)

// TaxonomyCache fronts the approved-skill listing. Implementations must
// degrade to misses when the backing store is unavailable.
type TaxonomyCache interface {
	GetApproved(ctx context.Context) ([]skill.Skill, bool)
	SetApproved(ctx context.Context, skills []skill.Skill)
	Invalidate(ctx context.Context)
}

// NopTaxonomyCache always misses. Used when no cache is wired.
type NopTaxonomyCache struct{}

func (NopTaxonomyCache) GetApproved(context.Context) ([]skill.Skill, bool) { return nil, false }
func (NopTaxonomyCache) SetApproved(context.Context, []skill.Skill)       {}
func (NopTaxonomyCache) Invalidate(context.Context)                       {}
