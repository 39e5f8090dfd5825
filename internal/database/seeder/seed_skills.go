package seeder

import (
	"context"

	"hr-registry/internal/database"
	"hr-registry/internal/domain/skill"

	"github.com/google/uuid"
)

// SkillSeeder loads a baseline approved taxonomy into an empty skills
// table so fresh environments can assign skills immediately.
type SkillSeeder struct{}

func (SkillSeeder) Name() string { return "skills" }

type seedSkill struct {
	name     string
	category string
}

var baselineSkills = []seedSkill{
	{"Go", "Languages"},
	{"Java", "Languages"},
	{"Python", "Languages"},
	{"TypeScript", "Languages"},
	{"PostgreSQL", "Databases"},
	{"Redis", "Databases"},
	{"Kubernetes", "Infrastructure"},
	{"Terraform", "Infrastructure"},
	{"People Management", "Leadership"},
	{"Project Planning", "Delivery"},
}

func (SkillSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "hr_skills", "skill_id", "name", "category", "status"); err != nil {
		return err
	}

	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(1) FROM hr_skills`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, s := range baselineSkills {
		_, err := db.Exec(ctx,
			`INSERT INTO hr_skills (skill_id, name, category, status, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, now(), now())
			 ON CONFLICT (name) DO NOTHING`,
			uuid.New(), s.name, s.category, skill.StatusApproved,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
