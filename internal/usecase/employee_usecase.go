package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hr-registry/internal/domain/employee"
	"hr-registry/internal/domain/skill"
	"hr-registry/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EmployeeInput is shared by create and update. EmploymentStatus and
// FTEAllocation are pointers because they default on create and are only
// overwritten on update when supplied; every other optional field is
// written as-is, nil included.
type EmployeeInput struct {
	Name             string
	Role             string
	Department       string
	Team             *string
	EmploymentStatus *employee.EmploymentStatus
	FTEAllocation    *int
	WorkLocation     *employee.WorkLocation
	ManagerID        *uuid.UUID
	HireDate         time.Time
	Email            *string
}

type AssignSkillInput struct {
	SkillID     uuid.UUID
	Proficiency skill.ProficiencyLevel
	Source      skill.Source
}

type ListEmployeesInput struct {
	Department *string
	Status     *employee.EmploymentStatus
	ManagerID  *uuid.UUID
	PageRequest
}

type EmployeeUsecase interface {
	CreateEmployee(ctx context.Context, in EmployeeInput) (employee.Employee, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (employee.Employee, []skill.EmployeeSkill, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, in EmployeeInput) (employee.Employee, []skill.EmployeeSkill, error)
	ListEmployees(ctx context.Context, in ListEmployeesInput) ([]employee.Employee, PageInfo, error)
	AssignSkill(ctx context.Context, employeeID uuid.UUID, in AssignSkillInput) (skill.EmployeeSkill, error)
	GetEmployeeSkills(ctx context.Context, employeeID uuid.UUID) ([]skill.EmployeeSkill, error)
}

type Employee struct {
	employees      repository.EmployeeRepository
	employeeSkills repository.EmployeeSkillRepository
	logger         zerolog.Logger
}

func NewEmployeeUsecase(
	employees repository.EmployeeRepository,
	employeeSkills repository.EmployeeSkillRepository,
	logger zerolog.Logger,
) *Employee {
	return &Employee{employees: employees, employeeSkills: employeeSkills, logger: logger}
}

func (u *Employee) CreateEmployee(ctx context.Context, in EmployeeInput) (employee.Employee, error) {
	if err := validateEmployeeInput(in); err != nil {
		return employee.Employee{}, err
	}

	e := employee.Employee{
		Name:             in.Name,
		Role:             in.Role,
		Department:       in.Department,
		Team:             in.Team,
		EmploymentStatus: employee.StatusActive,
		FTEAllocation:    employee.DefaultFTEAllocation,
		WorkLocation:     in.WorkLocation,
		ManagerID:        in.ManagerID,
		HireDate:         in.HireDate,
		Email:            in.Email,
	}
	if in.EmploymentStatus != nil {
		e.EmploymentStatus = *in.EmploymentStatus
	}
	if in.FTEAllocation != nil {
		e.FTEAllocation = *in.FTEAllocation
	}

	created, err := u.employees.Create(ctx, e)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return employee.Employee{}, ErrEmailTaken
		}
		return employee.Employee{}, u.internal(err, "employee create failed")
	}

	u.logger.Info().Str("employee_id", created.ID.String()).Str("name", created.Name).Msg("employee created")
	return created, nil
}

func (u *Employee) GetEmployee(ctx context.Context, id uuid.UUID) (employee.Employee, []skill.EmployeeSkill, error) {
	e, err := u.employees.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return employee.Employee{}, nil, ErrEmployeeNotFound
		}
		return employee.Employee{}, nil, u.internal(err, "employee lookup failed")
	}

	skills, err := u.employeeSkills.FindByEmployeeID(ctx, id)
	if err != nil {
		return employee.Employee{}, nil, u.internal(err, "employee skills lookup failed")
	}
	return e, skills, nil
}

// UpdateEmployee is a full-record overwrite except for employment status
// and FTE allocation, which change only when present in the input. The
// asymmetry matches the HR clients, which always send the full profile but
// treat status and allocation as separate administrative actions.
func (u *Employee) UpdateEmployee(ctx context.Context, id uuid.UUID, in EmployeeInput) (employee.Employee, []skill.EmployeeSkill, error) {
	if err := validateEmployeeInput(in); err != nil {
		return employee.Employee{}, nil, err
	}

	e, err := u.employees.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return employee.Employee{}, nil, ErrEmployeeNotFound
		}
		return employee.Employee{}, nil, u.internal(err, "employee lookup failed")
	}

	e.Name = in.Name
	e.Role = in.Role
	e.Department = in.Department
	e.Team = in.Team
	e.WorkLocation = in.WorkLocation
	e.ManagerID = in.ManagerID
	e.HireDate = in.HireDate
	e.Email = in.Email
	if in.EmploymentStatus != nil {
		e.EmploymentStatus = *in.EmploymentStatus
	}
	if in.FTEAllocation != nil {
		e.FTEAllocation = *in.FTEAllocation
	}

	updated, err := u.employees.Update(ctx, e)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmployeeNotFound):
			return employee.Employee{}, nil, ErrEmployeeNotFound
		case errors.Is(err, repository.ErrEmailTaken):
			return employee.Employee{}, nil, ErrEmailTaken
		}
		return employee.Employee{}, nil, u.internal(err, "employee update failed")
	}

	skills, err := u.employeeSkills.FindByEmployeeID(ctx, id)
	if err != nil {
		return employee.Employee{}, nil, u.internal(err, "employee skills lookup failed")
	}
	return updated, skills, nil
}

// ListEmployees intentionally returns records without their skills; the
// listing surface avoids the per-row association fetch.
func (u *Employee) ListEmployees(ctx context.Context, in ListEmployeesInput) ([]employee.Employee, PageInfo, error) {
	if !in.Valid() {
		return nil, PageInfo{}, ErrInvalidInput
	}

	items, total, err := u.employees.List(ctx, repository.EmployeeListFilter{
		Department: in.Department,
		Status:     in.Status,
		ManagerID:  in.ManagerID,
		Page:       in.Page,
		Size:       in.Size,
	})
	if err != nil {
		return nil, PageInfo{}, u.internal(err, "employee list failed")
	}
	return items, PageInfo{Page: in.Page, Size: in.Size, Total: total}, nil
}

func (u *Employee) AssignSkill(ctx context.Context, employeeID uuid.UUID, in AssignSkillInput) (skill.EmployeeSkill, error) {
	if in.SkillID == uuid.Nil || !in.Proficiency.IsValid() || !in.Source.IsValid() {
		return skill.EmployeeSkill{}, ErrInvalidInput
	}

	es, err := u.employeeSkills.Assign(ctx, employeeID, in.SkillID, in.Proficiency, in.Source)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmployeeNotFound):
			return skill.EmployeeSkill{}, ErrEmployeeNotFound
		case errors.Is(err, repository.ErrSkillNotFound):
			return skill.EmployeeSkill{}, ErrSkillNotFound
		case errors.Is(err, repository.ErrSkillNotApproved):
			return skill.EmployeeSkill{}, ErrSkillNotApproved
		}
		return skill.EmployeeSkill{}, u.internal(err, "skill assignment failed")
	}

	u.logger.Info().
		Str("employee_id", employeeID.String()).
		Str("skill_id", in.SkillID.String()).
		Str("proficiency", string(in.Proficiency)).
		Msg("skill assigned")
	return es, nil
}

func (u *Employee) GetEmployeeSkills(ctx context.Context, employeeID uuid.UUID) ([]skill.EmployeeSkill, error) {
	exists, err := u.employees.ExistsByID(ctx, employeeID)
	if err != nil {
		return nil, u.internal(err, "employee existence check failed")
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	skills, err := u.employeeSkills.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, u.internal(err, "employee skills lookup failed")
	}
	return skills, nil
}

func validateEmployeeInput(in EmployeeInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Role) == "" || strings.TrimSpace(in.Department) == "" {
		return ErrInvalidInput
	}
	if in.HireDate.IsZero() {
		return ErrInvalidInput
	}
	if in.FTEAllocation != nil && (*in.FTEAllocation < 0 || *in.FTEAllocation > 100) {
		return ErrInvalidInput
	}
	if in.EmploymentStatus != nil && !in.EmploymentStatus.IsValid() {
		return ErrInvalidInput
	}
	if in.WorkLocation != nil && !in.WorkLocation.IsValid() {
		return ErrInvalidInput
	}
	return nil
}

func (u *Employee) internal(err error, msg string) error {
	u.logger.Error().Err(err).Msg(msg)
	return ErrInternal
}
