package dto

import (
	"time"

	"hr-registry/internal/domain/skill"

	"github.com/google/uuid"
)

type SkillResponse struct {
	SkillID     uuid.UUID `json:"skillId"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewSkillResponse(s skill.Skill) SkillResponse {
	return SkillResponse{
		SkillID:     s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func NewSkillResponses(skills []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, NewSkillResponse(s))
	}
	return out
}

type EmployeeSkillResponse struct {
	SkillID     uuid.UUID `json:"skillId"`
	SkillName   string    `json:"skillName"`
	Category    string    `json:"category"`
	Proficiency string    `json:"proficiency"`
	Source      string    `json:"source"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func NewEmployeeSkillResponse(es skill.EmployeeSkill) EmployeeSkillResponse {
	return EmployeeSkillResponse{
		SkillID:     es.SkillID,
		SkillName:   es.SkillName,
		Category:    es.Category,
		Proficiency: string(es.Proficiency),
		Source:      string(es.Source),
		LastUpdated: es.LastUpdated,
	}
}

func NewEmployeeSkillResponses(skills []skill.EmployeeSkill) []EmployeeSkillResponse {
	out := make([]EmployeeSkillResponse, 0, len(skills))
	for _, es := range skills {
		out = append(out, NewEmployeeSkillResponse(es))
	}
	return out
}
