package handler

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"hr-registry/internal/delivery/http/dto"
	"hr-registry/internal/delivery/http/middleware"
	"hr-registry/internal/domain/employee"
	"hr-registry/internal/domain/skill"
	"hr-registry/internal/pkg/response"
	"hr-registry/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const hireDateLayout = "2006-01-02"

type EmployeeHandler struct {
	uc usecase.EmployeeUsecase
}

type employeeRequest struct {
	Name             string     `json:"name"`
	Role             string     `json:"role"`
	Department       string     `json:"department"`
	Team             *string    `json:"team"`
	EmploymentStatus *string    `json:"employmentStatus"`
	FTEAllocation    *int       `json:"fteAllocation"`
	WorkLocation     *string    `json:"workLocation"`
	ManagerID        *uuid.UUID `json:"managerId"`
	HireDate         string     `json:"hireDate"`
	Email            *string    `json:"email"`
}

// toInput validates the request and converts it into the usecase shape.
// Field errors come back as a details map keyed by the JSON field name.
func (r employeeRequest) toInput() (usecase.EmployeeInput, map[string]string) {
	details := map[string]string{}

	if strings.TrimSpace(r.Name) == "" {
		details["name"] = "Name is required"
	} else if len(r.Name) > 200 {
		details["name"] = "Name must be at most 200 characters"
	}
	if strings.TrimSpace(r.Role) == "" {
		details["role"] = "Role is required"
	} else if len(r.Role) > 100 {
		details["role"] = "Role must be at most 100 characters"
	}
	if strings.TrimSpace(r.Department) == "" {
		details["department"] = "Department is required"
	} else if len(r.Department) > 100 {
		details["department"] = "Department must be at most 100 characters"
	}
	if r.Team != nil && len(*r.Team) > 100 {
		details["team"] = "Team must be at most 100 characters"
	}
	if r.FTEAllocation != nil && (*r.FTEAllocation < 0 || *r.FTEAllocation > 100) {
		details["fteAllocation"] = "FTE allocation must be between 0 and 100"
	}

	in := usecase.EmployeeInput{
		Name:          r.Name,
		Role:          r.Role,
		Department:    r.Department,
		Team:          r.Team,
		FTEAllocation: r.FTEAllocation,
		ManagerID:     r.ManagerID,
		Email:         r.Email,
	}

	if r.EmploymentStatus != nil {
		st, ok := employee.ParseEmploymentStatus(*r.EmploymentStatus)
		if !ok {
			details["employmentStatus"] = "Employment status must be one of ACTIVE, ON_LEAVE, TERMINATED"
		} else {
			in.EmploymentStatus = &st
		}
	}
	if r.WorkLocation != nil {
		loc, ok := employee.ParseWorkLocation(*r.WorkLocation)
		if !ok {
			details["workLocation"] = "Work location must be one of REMOTE, HYBRID, ONSITE"
		} else {
			in.WorkLocation = &loc
		}
	}

	if strings.TrimSpace(r.HireDate) == "" {
		details["hireDate"] = "Hire date is required"
	} else {
		d, err := time.Parse(hireDateLayout, r.HireDate)
		if err != nil {
			details["hireDate"] = "Hire date must be a date in YYYY-MM-DD format"
		} else {
			in.HireDate = d
		}
	}

	if r.Email != nil {
		if len(*r.Email) > 255 {
			details["email"] = "Email must be at most 255 characters"
		} else if _, err := mail.ParseAddress(*r.Email); err != nil {
			details["email"] = "Email must be a valid address"
		}
	}

	if len(details) > 0 {
		return usecase.EmployeeInput{}, details
	}
	return in, nil
}

type assignSkillRequest struct {
	SkillID     *uuid.UUID `json:"skillId"`
	Proficiency string     `json:"proficiency"`
	Source      string     `json:"source"`
}

func (r assignSkillRequest) toInput() (usecase.AssignSkillInput, map[string]string) {
	details := map[string]string{}

	in := usecase.AssignSkillInput{}
	if r.SkillID == nil || *r.SkillID == uuid.Nil {
		details["skillId"] = "Skill ID is required"
	} else {
		in.SkillID = *r.SkillID
	}

	if strings.TrimSpace(r.Proficiency) == "" {
		details["proficiency"] = "Proficiency level is required"
	} else {
		p, ok := skill.ParseProficiencyLevel(r.Proficiency)
		if !ok {
			details["proficiency"] = "Proficiency must be one of BEGINNER, INTERMEDIATE, ADVANCED, EXPERT"
		} else {
			in.Proficiency = p
		}
	}

	if strings.TrimSpace(r.Source) == "" {
		details["source"] = "Skill source is required"
	} else {
		s, ok := skill.ParseSource(r.Source)
		if !ok {
			details["source"] = "Source must be one of SELF_REPORTED, MANAGER_VERIFIED, ASSESSMENT"
		} else {
			in.Source = s
		}
	}

	if len(details) > 0 {
		return usecase.AssignSkillInput{}, details
	}
	return in, nil
}

func NewEmployeeHandler(uc usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

func (h *EmployeeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/employees")
	grp.Post("/", h.Create)
	grp.Get("/", h.List)
	grp.Get("/:employeeId", h.Get)
	grp.Put("/:employeeId", h.Update)
	grp.Post("/:employeeId/skills", h.AssignSkill)
	grp.Get("/:employeeId/skills", h.GetSkills)
}

func (h *EmployeeHandler) Create(c fiber.Ctx) error {
	var req employeeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.InvalidInput(nil, err)
	}
	in, details := req.toInput()
	if details != nil {
		return middleware.InvalidInput(details, nil)
	}

	created, err := h.uc.CreateEmployee(c.Context(), in)
	if err != nil {
		return mapEmployeeError(err)
	}
	return response.JSON(c, fiber.StatusCreated, dto.NewEmployeeResponse(created, nil))
}

func (h *EmployeeHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("employeeId"))
	if err != nil {
		return middleware.InvalidInput(map[string]string{"employeeId": "Employee ID must be a UUID"}, err)
	}

	e, skills, err := h.uc.GetEmployee(c.Context(), id)
	if err != nil {
		return mapEmployeeError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewEmployeeResponse(e, skills))
}

func (h *EmployeeHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("employeeId"))
	if err != nil {
		return middleware.InvalidInput(map[string]string{"employeeId": "Employee ID must be a UUID"}, err)
	}

	var req employeeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.InvalidInput(nil, err)
	}
	in, details := req.toInput()
	if details != nil {
		return middleware.InvalidInput(details, nil)
	}

	e, skills, err := h.uc.UpdateEmployee(c.Context(), id, in)
	if err != nil {
		return mapEmployeeError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewEmployeeResponse(e, skills))
}

func (h *EmployeeHandler) List(c fiber.Ctx) error {
	in := usecase.ListEmployeesInput{
		PageRequest: usecase.PageRequest{
			Page: parseQueryInt(c, "page", 0),
			Size: parseQueryInt(c, "size", 50),
		},
	}
	if v := c.Query("department"); v != "" {
		in.Department = &v
	}
	if v := c.Query("status"); v != "" {
		st, ok := employee.ParseEmploymentStatus(v)
		if !ok {
			return middleware.InvalidInput(map[string]string{"status": "Employment status must be one of ACTIVE, ON_LEAVE, TERMINATED"}, nil)
		}
		in.Status = &st
	}
	if v := c.Query("managerId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return middleware.InvalidInput(map[string]string{"managerId": "Manager ID must be a UUID"}, err)
		}
		in.ManagerID = &id
	}

	items, info, err := h.uc.ListEmployees(c.Context(), in)
	if err != nil {
		return mapEmployeeError(err)
	}

	content := make([]dto.EmployeeResponse, 0, len(items))
	for _, e := range items {
		content = append(content, dto.NewEmployeeResponse(e, nil))
	}
	return response.JSON(c, fiber.StatusOK, dto.NewPageResponse(content, info))
}

func (h *EmployeeHandler) AssignSkill(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("employeeId"))
	if err != nil {
		return middleware.InvalidInput(map[string]string{"employeeId": "Employee ID must be a UUID"}, err)
	}

	var req assignSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.InvalidInput(nil, err)
	}
	in, details := req.toInput()
	if details != nil {
		return middleware.InvalidInput(details, nil)
	}

	es, err := h.uc.AssignSkill(c.Context(), id, in)
	if err != nil {
		return mapEmployeeError(err)
	}
	return response.JSON(c, fiber.StatusCreated, dto.NewEmployeeSkillResponse(es))
}

func (h *EmployeeHandler) GetSkills(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("employeeId"))
	if err != nil {
		return middleware.InvalidInput(map[string]string{"employeeId": "Employee ID must be a UUID"}, err)
	}

	skills, err := h.uc.GetEmployeeSkills(c.Context(), id)
	if err != nil {
		return mapEmployeeError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewEmployeeSkillResponses(skills))
}

func mapEmployeeError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return middleware.NotFound("Employee not found", err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NotFound("Skill not found", err)
	case errors.Is(err, usecase.ErrSkillNotApproved):
		return middleware.BusinessRule("Skill not found in taxonomy. Please request admin approval for new skills", err)
	case errors.Is(err, usecase.ErrEmailTaken):
		return middleware.BusinessRule("Employee with this email already exists", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.InvalidInput(nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternal, nil, err)
	}
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
