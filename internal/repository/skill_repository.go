package repository

import (
	"context"
	"errors"

	"hr-registry/internal/database"
	"hr-registry/internal/domain/skill"

	"github.com/google/uuid"
)

var (
	ErrSkillNotFound   = errors.New("skill not found")
	ErrSkillNameTaken  = errors.New("skill name already exists")
	ErrSkillNotPending = errors.New("skill not pending")
)

type SkillListFilter struct {
	Category *string
	Status   *skill.Status
	Search   string
	Page     int
	Size     int
}

type SkillRepository interface {
	Create(ctx context.Context, s skill.Skill) (skill.Skill, error)
	FindByID(ctx context.Context, id uuid.UUID) (skill.Skill, error)
	FindByName(ctx context.Context, name string) (skill.Skill, error)
	Update(ctx context.Context, id uuid.UUID, name, category string, description *string) (skill.Skill, error)
	Transition(ctx context.Context, id uuid.UUID, to skill.Status) (skill.Skill, error)
	List(ctx context.Context, f SkillListFilter) ([]skill.Skill, int64, error)
	ListApproved(ctx context.Context) ([]skill.Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

const skillColumns = `skill_id, name, category, description, status, created_at, updated_at`

func scanSkill(row database.Row) (skill.Skill, error) {
	var s skill.Skill
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO hr_skills (skill_id, name, category, description, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now(), now())
		 RETURNING `+skillColumns,
		s.ID, s.Name, s.Category, s.Description, s.Status,
	)

	created, err := scanSkill(row)
	if err != nil {
		if isUniqueViolation(err) {
			return skill.Skill{}, ErrSkillNameTaken
		}
		return skill.Skill{}, err
	}
	return created, nil
}

func (r *PostgresSkillRepository) FindByID(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	row := r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM hr_skills WHERE skill_id = $1`, id)
	s, err := scanSkill(row)
	if err != nil {
		if isNoRows(err) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) FindByName(ctx context.Context, name string) (skill.Skill, error) {
	row := r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM hr_skills WHERE name = $1`, name)
	s, err := scanSkill(row)
	if err != nil {
		if isNoRows(err) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}

// Update overwrites name, category and description; status is never touched
// here. Name uniqueness is not pre-checked on update, so a rename can still
// collide at the unique index.
func (r *PostgresSkillRepository) Update(ctx context.Context, id uuid.UUID, name, category string, description *string) (skill.Skill, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE hr_skills
		 SET name = $2, category = $3, description = $4, updated_at = now()
		 WHERE skill_id = $1
		 RETURNING `+skillColumns,
		id, name, category, description,
	)

	s, err := scanSkill(row)
	if err != nil {
		if isNoRows(err) {
			return skill.Skill{}, ErrSkillNotFound
		}
		if isUniqueViolation(err) {
			return skill.Skill{}, ErrSkillNameTaken
		}
		return skill.Skill{}, err
	}
	return s, nil
}

// Transition moves a PENDING skill to its terminal state inside a single
// transaction, locking the row so concurrent approvals cannot both pass the
// guard.
func (r *PostgresSkillRepository) Transition(ctx context.Context, id uuid.UUID, to skill.Status) (skill.Skill, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return skill.Skill{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var current skill.Status
	if err := tx.QueryRow(ctx, `SELECT status FROM hr_skills WHERE skill_id = $1 FOR UPDATE`, id).Scan(&current); err != nil {
		if isNoRows(err) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, err
	}
	if current != skill.StatusPending {
		return skill.Skill{}, ErrSkillNotPending
	}

	row := tx.QueryRow(ctx,
		`UPDATE hr_skills SET status = $2, updated_at = now() WHERE skill_id = $1 RETURNING `+skillColumns,
		id, to,
	)
	updated, err := scanSkill(row)
	if err != nil {
		return skill.Skill{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return skill.Skill{}, err
	}
	return updated, nil
}

// List pages skills sorted by name. A non-empty search term switches to a
// substring match on name and ignores the category/status filters.
func (r *PostgresSkillRepository) List(ctx context.Context, f SkillListFilter) ([]skill.Skill, int64, error) {
	where := `WHERE ($1::text IS NULL OR category = $1) AND ($2::text IS NULL OR status = $2)`
	args := []any{f.Category, statusArg(f.Status)}
	if f.Search != "" {
		where = `WHERE name LIKE '%' || $1 || '%' AND $2::text IS NULL`
		args = []any{f.Search, nil}
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM hr_skills `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+skillColumns+` FROM hr_skills `+where+` ORDER BY name ASC LIMIT $3 OFFSET $4`,
		append(args, f.Size, f.Page*f.Size)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresSkillRepository) ListApproved(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+skillColumns+` FROM hr_skills WHERE status = $1 ORDER BY name ASC`,
		skill.StatusApproved,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func statusArg(s *skill.Status) any {
	if s == nil {
		return nil
	}
	return string(*s)
}
