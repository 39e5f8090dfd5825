package usecase

import (
	"context"
	"errors"
	"testing"

	"hr-registry/internal/domain/skill"
	"hr-registry/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type mockSkillRepo struct {
	byName       map[string]skill.Skill
	created      *skill.Skill
	transitioned skill.Skill
	items        []skill.Skill
	total        int64
	approved     []skill.Skill
	err          error
	listCalls    int
}

func (m *mockSkillRepo) Create(_ context.Context, s skill.Skill) (skill.Skill, error) {
	if m.err != nil {
		return skill.Skill{}, m.err
	}
	s.ID = uuid.New()
	m.created = &s
	return s, nil
}

func (m *mockSkillRepo) FindByID(_ context.Context, id uuid.UUID) (skill.Skill, error) {
	for _, s := range m.items {
		if s.ID == id {
			return s, nil
		}
	}
	return skill.Skill{}, repository.ErrSkillNotFound
}

func (m *mockSkillRepo) FindByName(_ context.Context, name string) (skill.Skill, error) {
	if s, ok := m.byName[name]; ok {
		return s, nil
	}
	return skill.Skill{}, repository.ErrSkillNotFound
}

func (m *mockSkillRepo) Update(_ context.Context, id uuid.UUID, name, category string, description *string) (skill.Skill, error) {
	if m.err != nil {
		return skill.Skill{}, m.err
	}
	return skill.Skill{ID: id, Name: name, Category: category, Description: description, Status: skill.StatusPending}, nil
}

func (m *mockSkillRepo) Transition(_ context.Context, id uuid.UUID, to skill.Status) (skill.Skill, error) {
	if m.err != nil {
		return skill.Skill{}, m.err
	}
	s := m.transitioned
	s.ID = id
	s.Status = to
	return s, nil
}

func (m *mockSkillRepo) List(context.Context, repository.SkillListFilter) ([]skill.Skill, int64, error) {
	return m.items, m.total, m.err
}

func (m *mockSkillRepo) ListApproved(context.Context) ([]skill.Skill, error) {
	m.listCalls++
	return m.approved, m.err
}

type mockTaxonomyCache struct {
	cached      []skill.Skill
	hit         bool
	sets        int
	invalidated int
}

func (m *mockTaxonomyCache) GetApproved(context.Context) ([]skill.Skill, bool) {
	return m.cached, m.hit
}
func (m *mockTaxonomyCache) SetApproved(_ context.Context, skills []skill.Skill) {
	m.cached = skills
	m.sets++
}
func (m *mockTaxonomyCache) Invalidate(context.Context) { m.invalidated++ }

func TestSkillUsecase_CreateSkill_DefaultsToPending(t *testing.T) {
	repo := &mockSkillRepo{byName: map[string]skill.Skill{}}
	uc := NewSkillUsecase(repo, nil, zerolog.Nop())

	created, err := uc.CreateSkill(context.Background(), CreateSkillInput{Name: "Go", Category: "Languages"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != skill.StatusPending {
		t.Fatalf("expected PENDING, got %s", created.Status)
	}
	if repo.created == nil || repo.created.Name != "Go" {
		t.Fatalf("create was not forwarded to the repository")
	}
}

func TestSkillUsecase_CreateSkill_DuplicateName(t *testing.T) {
	repo := &mockSkillRepo{byName: map[string]skill.Skill{
		"Go": {ID: uuid.New(), Name: "Go", Category: "Languages", Status: skill.StatusApproved},
	}}
	uc := NewSkillUsecase(repo, nil, zerolog.Nop())

	_, err := uc.CreateSkill(context.Background(), CreateSkillInput{Name: "Go", Category: "Languages"})
	if !errors.Is(err, ErrSkillNameTaken) {
		t.Fatalf("expected ErrSkillNameTaken, got %v", err)
	}
}

func TestSkillUsecase_CreateSkill_CaseSensitiveNameCheck(t *testing.T) {
	repo := &mockSkillRepo{byName: map[string]skill.Skill{
		"Go": {ID: uuid.New(), Name: "Go", Status: skill.StatusApproved},
	}}
	uc := NewSkillUsecase(repo, nil, zerolog.Nop())

	// "go" and "Go" are distinct names at this layer.
	_, err := uc.CreateSkill(context.Background(), CreateSkillInput{Name: "go", Category: "Languages"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestSkillUsecase_CreateSkill_BlankName(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{byName: map[string]skill.Skill{}}, nil, zerolog.Nop())
	_, err := uc.CreateSkill(context.Background(), CreateSkillInput{Name: "  ", Category: "Languages"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSkillUsecase_ApproveSkill_InvalidatesCache(t *testing.T) {
	cache := &mockTaxonomyCache{}
	uc := NewSkillUsecase(&mockSkillRepo{}, cache, zerolog.Nop())

	s, err := uc.ApproveSkill(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Status != skill.StatusApproved {
		t.Fatalf("expected APPROVED, got %s", s.Status)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected one cache invalidation, got %d", cache.invalidated)
	}
}

func TestSkillUsecase_ApproveSkill_NotPending(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{err: repository.ErrSkillNotPending}, nil, zerolog.Nop())
	_, err := uc.ApproveSkill(context.Background(), uuid.New())
	if !errors.Is(err, ErrSkillNotPending) {
		t.Fatalf("expected ErrSkillNotPending, got %v", err)
	}
}

func TestSkillUsecase_RejectSkill_NotFound(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{err: repository.ErrSkillNotFound}, nil, zerolog.Nop())
	_, err := uc.RejectSkill(context.Background(), uuid.New())
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestSkillUsecase_ListSkills_InvalidPage(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{}, nil, zerolog.Nop())
	_, _, err := uc.ListSkills(context.Background(), ListSkillsInput{PageRequest: PageRequest{Page: -1, Size: 20}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSkillUsecase_ListSkills_PageInfo(t *testing.T) {
	repo := &mockSkillRepo{
		items: []skill.Skill{{ID: uuid.New(), Name: "Go"}, {ID: uuid.New(), Name: "Java"}},
		total: 45,
	}
	uc := NewSkillUsecase(repo, nil, zerolog.Nop())

	items, page, err := uc.ListSkills(context.Background(), ListSkillsInput{PageRequest: PageRequest{Page: 1, Size: 20}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if page.TotalPages() != 3 {
		t.Fatalf("expected 3 total pages, got %d", page.TotalPages())
	}
	if page.First() || page.Last() {
		t.Fatalf("page 1 of 3 is neither first nor last")
	}
}

func TestSkillUsecase_ListApprovedSkills_CacheHit(t *testing.T) {
	repo := &mockSkillRepo{approved: []skill.Skill{{Name: "Go"}}}
	cache := &mockTaxonomyCache{cached: []skill.Skill{{Name: "Cached"}}, hit: true}
	uc := NewSkillUsecase(repo, cache, zerolog.Nop())

	items, err := uc.ListApprovedSkills(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Cached" {
		t.Fatalf("expected the cached listing, got %+v", items)
	}
	if repo.listCalls != 0 {
		t.Fatalf("repository should not be hit on a cache hit")
	}
}

func TestSkillUsecase_ListApprovedSkills_CacheMissPopulates(t *testing.T) {
	repo := &mockSkillRepo{approved: []skill.Skill{{Name: "Go"}, {Name: "Java"}}}
	cache := &mockTaxonomyCache{}
	uc := NewSkillUsecase(repo, cache, zerolog.Nop())

	items, err := uc.ListApprovedSkills(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if cache.sets != 1 {
		t.Fatalf("expected the cache to be populated once, got %d", cache.sets)
	}
}

func TestSkillUsecase_UpdateSkill_NameConflict(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{err: repository.ErrSkillNameTaken}, nil, zerolog.Nop())
	_, err := uc.UpdateSkill(context.Background(), uuid.New(), UpdateSkillInput{Name: "Go", Category: "Languages"})
	if !errors.Is(err, ErrSkillNameTaken) {
		t.Fatalf("expected ErrSkillNameTaken, got %v", err)
	}
}
