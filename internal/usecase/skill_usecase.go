package usecase

import (
	"context"
	"errors"
	"strings"

	"hr-registry/internal/domain/skill"
	"hr-registry/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type CreateSkillInput struct {
	Name        string
	Category    string
	Description *string
}

type UpdateSkillInput struct {
	Name        string
	Category    string
	Description *string
}

type ListSkillsInput struct {
	Category *string
	Status   *skill.Status
	Search   string
	PageRequest
}

type SkillUsecase interface {
	CreateSkill(ctx context.Context, in CreateSkillInput) (skill.Skill, error)
	GetSkill(ctx context.Context, id uuid.UUID) (skill.Skill, error)
	UpdateSkill(ctx context.Context, id uuid.UUID, in UpdateSkillInput) (skill.Skill, error)
	ApproveSkill(ctx context.Context, id uuid.UUID) (skill.Skill, error)
	RejectSkill(ctx context.Context, id uuid.UUID) (skill.Skill, error)
	ListSkills(ctx context.Context, in ListSkillsInput) ([]skill.Skill, PageInfo, error)
	ListApprovedSkills(ctx context.Context) ([]skill.Skill, error)
}

type Skill struct {
	repo   repository.SkillRepository
	cache  TaxonomyCache
	logger zerolog.Logger
}

func NewSkillUsecase(repo repository.SkillRepository, cache TaxonomyCache, logger zerolog.Logger) *Skill {
	if cache == nil {
		cache = NopTaxonomyCache{}
	}
	return &Skill{repo: repo, cache: cache, logger: logger}
}

// CreateSkill registers a PENDING taxonomy entry. The name pre-check is
// case-sensitive and advisory; the unique index catches races.
func (u *Skill) CreateSkill(ctx context.Context, in CreateSkillInput) (skill.Skill, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" {
		return skill.Skill{}, ErrInvalidInput
	}

	if _, err := u.repo.FindByName(ctx, in.Name); err == nil {
		return skill.Skill{}, ErrSkillNameTaken
	} else if !errors.Is(err, repository.ErrSkillNotFound) {
		return skill.Skill{}, u.internal(err, "skill name lookup failed")
	}

	created, err := u.repo.Create(ctx, skill.Skill{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Status:      skill.StatusPending,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSkillNameTaken) {
			return skill.Skill{}, ErrSkillNameTaken
		}
		return skill.Skill{}, u.internal(err, "skill create failed")
	}

	u.logger.Info().Str("skill_id", created.ID.String()).Str("name", created.Name).Msg("skill requested, pending approval")
	return created, nil
}

func (u *Skill) GetSkill(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	s, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, u.internal(err, "skill lookup failed")
	}
	return s, nil
}

// UpdateSkill overwrites name, category and description regardless of
// status. Uniqueness is not re-checked here; a rename colliding at the
// index surfaces as a conflict.
func (u *Skill) UpdateSkill(ctx context.Context, id uuid.UUID, in UpdateSkillInput) (skill.Skill, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" {
		return skill.Skill{}, ErrInvalidInput
	}

	s, err := u.repo.Update(ctx, id, in.Name, in.Category, in.Description)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSkillNotFound):
			return skill.Skill{}, ErrSkillNotFound
		case errors.Is(err, repository.ErrSkillNameTaken):
			return skill.Skill{}, ErrSkillNameTaken
		}
		return skill.Skill{}, u.internal(err, "skill update failed")
	}

	u.cache.Invalidate(ctx)
	return s, nil
}

func (u *Skill) ApproveSkill(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	return u.transition(ctx, id, skill.StatusApproved)
}

func (u *Skill) RejectSkill(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	return u.transition(ctx, id, skill.StatusRejected)
}

func (u *Skill) transition(ctx context.Context, id uuid.UUID, to skill.Status) (skill.Skill, error) {
	s, err := u.repo.Transition(ctx, id, to)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSkillNotFound):
			return skill.Skill{}, ErrSkillNotFound
		case errors.Is(err, repository.ErrSkillNotPending):
			return skill.Skill{}, ErrSkillNotPending
		}
		return skill.Skill{}, u.internal(err, "skill transition failed")
	}

	u.cache.Invalidate(ctx)
	u.logger.Info().Str("skill_id", id.String()).Str("status", string(to)).Msg("skill transitioned")
	return s, nil
}

func (u *Skill) ListSkills(ctx context.Context, in ListSkillsInput) ([]skill.Skill, PageInfo, error) {
	if !in.Valid() {
		return nil, PageInfo{}, ErrInvalidInput
	}

	items, total, err := u.repo.List(ctx, repository.SkillListFilter{
		Category: in.Category,
		Status:   in.Status,
		Search:   in.Search,
		Page:     in.Page,
		Size:     in.Size,
	})
	if err != nil {
		return nil, PageInfo{}, u.internal(err, "skill list failed")
	}
	return items, PageInfo{Page: in.Page, Size: in.Size, Total: total}, nil
}

func (u *Skill) ListApprovedSkills(ctx context.Context) ([]skill.Skill, error) {
	if cached, ok := u.cache.GetApproved(ctx); ok {
		return cached, nil
	}

	items, err := u.repo.ListApproved(ctx)
	if err != nil {
		return nil, u.internal(err, "approved skill list failed")
	}

	u.cache.SetApproved(ctx, items)
	return items, nil
}

func (u *Skill) internal(err error, msg string) error {
	u.logger.Error().Err(err).Msg(msg)
	return ErrInternal
}
