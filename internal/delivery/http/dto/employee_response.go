package dto

import (
	"time"

	"hr-registry/internal/domain/employee"
	"hr-registry/internal/domain/skill"

	"github.com/google/uuid"
)

const hireDateLayout = "2006-01-02"

type EmployeeResponse struct {
	EmployeeID       uuid.UUID               `json:"employeeId"`
	Name             string                  `json:"name"`
	Role             string                  `json:"role"`
	Department       string                  `json:"department"`
	Team             *string                 `json:"team,omitempty"`
	EmploymentStatus string                  `json:"employmentStatus"`
	FTEAllocation    int                     `json:"fteAllocation"`
	WorkLocation     *string                 `json:"workLocation,omitempty"`
	ManagerID        *uuid.UUID              `json:"managerId,omitempty"`
	HireDate         string                  `json:"hireDate"`
	Email            *string                 `json:"email,omitempty"`
	Skills           []EmployeeSkillResponse `json:"skills"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

// NewEmployeeResponse builds the response view; skills may be nil for
// surfaces that intentionally omit the association fetch.
func NewEmployeeResponse(e employee.Employee, skills []skill.EmployeeSkill) EmployeeResponse {
	var loc *string
	if e.WorkLocation != nil {
		s := string(*e.WorkLocation)
		loc = &s
	}

	return EmployeeResponse{
		EmployeeID:       e.ID,
		Name:             e.Name,
		Role:             e.Role,
		Department:       e.Department,
		Team:             e.Team,
		EmploymentStatus: string(e.EmploymentStatus),
		FTEAllocation:    e.FTEAllocation,
		WorkLocation:     loc,
		ManagerID:        e.ManagerID,
		HireDate:         e.HireDate.Format(hireDateLayout),
		Email:            e.Email,
		Skills:           NewEmployeeSkillResponses(skills),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
