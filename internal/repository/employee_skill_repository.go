package repository

import (
	"context"
	"errors"

	"hr-registry/internal/database"
	"hr-registry/internal/domain/skill"

	"github.com/google/uuid"
)

var (
	ErrAssociationNotFound = errors.New("employee skill not found")
	ErrSkillNotApproved    = errors.New("skill not approved")
)

type EmployeeSkillRepository interface {
	FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]skill.EmployeeSkill, error)
	FindByPair(ctx context.Context, employeeID, skillID uuid.UUID) (skill.EmployeeSkill, error)
	Assign(ctx context.Context, employeeID, skillID uuid.UUID, proficiency skill.ProficiencyLevel, source skill.Source) (skill.EmployeeSkill, error)
	DeleteByPair(ctx context.Context, employeeID, skillID uuid.UUID) error
}

type PostgresEmployeeSkillRepository struct {
	db database.DB
}

func NewPostgresEmployeeSkillRepository(db database.DB) *PostgresEmployeeSkillRepository {
	return &PostgresEmployeeSkillRepository{db: db}
}

func (r *PostgresEmployeeSkillRepository) FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]skill.EmployeeSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT es.employee_skill_id, es.employee_id, es.skill_id, s.name, s.category,
		        es.proficiency, es.source, es.last_updated
		 FROM hr_employee_skills es
		 JOIN hr_skills s ON s.skill_id = es.skill_id
		 WHERE es.employee_id = $1
		 ORDER BY s.name ASC`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.EmployeeSkill, 0)
	for rows.Next() {
		var es skill.EmployeeSkill
		if err := rows.Scan(&es.ID, &es.EmployeeID, &es.SkillID, &es.SkillName, &es.Category, &es.Proficiency, &es.Source, &es.LastUpdated); err != nil {
			return nil, err
		}
		out = append(out, es)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresEmployeeSkillRepository) FindByPair(ctx context.Context, employeeID, skillID uuid.UUID) (skill.EmployeeSkill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT es.employee_skill_id, es.employee_id, es.skill_id, s.name, s.category,
		        es.proficiency, es.source, es.last_updated
		 FROM hr_employee_skills es
		 JOIN hr_skills s ON s.skill_id = es.skill_id
		 WHERE es.employee_id = $1 AND es.skill_id = $2`,
		employeeID, skillID,
	)

	var es skill.EmployeeSkill
	if err := row.Scan(&es.ID, &es.EmployeeID, &es.SkillID, &es.SkillName, &es.Category, &es.Proficiency, &es.Source, &es.LastUpdated); err != nil {
		if isNoRows(err) {
			return skill.EmployeeSkill{}, ErrAssociationNotFound
		}
		return skill.EmployeeSkill{}, err
	}
	return es, nil
}

// Assign runs the referential checks and the upsert in one transaction. The
// skill row is locked while its APPROVED status is verified so an approval
// being rolled back concurrently cannot slip through; the unique
// (employee_id, skill_id) index backs the at-most-one-association invariant.
func (r *PostgresEmployeeSkillRepository) Assign(ctx context.Context, employeeID, skillID uuid.UUID, proficiency skill.ProficiencyLevel, source skill.Source) (skill.EmployeeSkill, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return skill.EmployeeSkill{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM hr_employees WHERE employee_id = $1)`, employeeID).Scan(&exists); err != nil {
		return skill.EmployeeSkill{}, err
	}
	if !exists {
		return skill.EmployeeSkill{}, ErrEmployeeNotFound
	}

	var (
		status   skill.Status
		name     string
		category string
	)
	err = tx.QueryRow(ctx, `SELECT status, name, category FROM hr_skills WHERE skill_id = $1 FOR SHARE`, skillID).
		Scan(&status, &name, &category)
	if err != nil {
		if isNoRows(err) {
			return skill.EmployeeSkill{}, ErrSkillNotFound
		}
		return skill.EmployeeSkill{}, err
	}
	if status != skill.StatusApproved {
		return skill.EmployeeSkill{}, ErrSkillNotApproved
	}

	es := skill.EmployeeSkill{
		EmployeeID:  employeeID,
		SkillID:     skillID,
		SkillName:   name,
		Category:    category,
		Proficiency: proficiency,
		Source:      source,
	}
	row := tx.QueryRow(ctx,
		`INSERT INTO hr_employee_skills (employee_skill_id, employee_id, skill_id, proficiency, source, last_updated)
		 VALUES ($1, $2, $3, $4, $5, now())
		 ON CONFLICT (employee_id, skill_id)
		 DO UPDATE SET proficiency = EXCLUDED.proficiency, source = EXCLUDED.source, last_updated = now()
		 RETURNING employee_skill_id, last_updated`,
		uuid.New(), employeeID, skillID, proficiency, source,
	)
	if err := row.Scan(&es.ID, &es.LastUpdated); err != nil {
		return skill.EmployeeSkill{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return skill.EmployeeSkill{}, err
	}
	return es, nil
}

// DeleteByPair exists at the store layer only; no HTTP operation surfaces it.
func (r *PostgresEmployeeSkillRepository) DeleteByPair(ctx context.Context, employeeID, skillID uuid.UUID) error {
	rowsAffected, err := r.db.Exec(ctx,
		`DELETE FROM hr_employee_skills WHERE employee_id = $1 AND skill_id = $2`,
		employeeID, skillID,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrAssociationNotFound
	}
	return nil
}
