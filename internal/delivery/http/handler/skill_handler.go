package handler

import (
	"errors"
	"strings"

	"hr-registry/internal/delivery/http/dto"
	"hr-registry/internal/delivery/http/middleware"
	"hr-registry/internal/domain/skill"
	"hr-registry/internal/pkg/response"
	"hr-registry/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type skillRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
}

func (r skillRequest) validate() map[string]string {
	details := map[string]string{}
	if strings.TrimSpace(r.Name) == "" {
		details["name"] = "Skill name is required"
	} else if len(r.Name) > 100 {
		details["name"] = "Skill name must be at most 100 characters"
	}
	if strings.TrimSpace(r.Category) == "" {
		details["category"] = "Category is required"
	} else if len(r.Category) > 50 {
		details["category"] = "Category must be at most 50 characters"
	}
	if r.Description != nil && len(*r.Description) > 500 {
		details["description"] = "Description must be at most 500 characters"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

// RegisterRoutes mounts the taxonomy surface. adminOnly guards the two
// transition endpoints; /approved must be registered before /:skillId.
func (h *SkillHandler) RegisterRoutes(r fiber.Router, adminOnly fiber.Handler) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/approved", h.ListApproved)
	grp.Post("/", h.Create)
	grp.Get("/", h.List)
	grp.Get("/:skillId", h.Get)
	grp.Put("/:skillId", h.Update)
	grp.Post("/:skillId/approve", h.Approve, adminOnly)
	grp.Post("/:skillId/reject", h.Reject, adminOnly)
}

// Create registers a skill request; it is accepted pending approval,
// hence 202 rather than 201.
func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.InvalidInput(nil, err)
	}
	if details := req.validate(); details != nil {
		return middleware.InvalidInput(details, nil)
	}

	created, err := h.uc.CreateSkill(c.Context(), usecase.CreateSkillInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		return mapSkillError(err, req.Name)
	}

	return response.JSON(c, fiber.StatusAccepted, dto.NewSkillResponse(created))
}

func (h *SkillHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("skillId"))
	if err != nil {
		return middleware.InvalidInput(map[string]string{"skillId": "Skill ID must be a UUID"}, err)
	}

	s, err := h.uc.GetSkill(c.Context(), id)
	if err != nil {
		return mapSkillError(err, "")
	}
	return response.JSON(c, fiber.StatusOK, dto.NewSkillResponse(s))
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("skillId"))
	if err != nil {
		return middleware.InvalidInput(map[string]string{"skillId": "Skill ID must be a UUID"}, err)
	}

	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.InvalidInput(nil, err)
	}
	if details := req.validate(); details != nil {
		return middleware.InvalidInput(details, nil)
	}

	s, err := h.uc.UpdateSkill(c.Context(), id, usecase.UpdateSkillInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		return mapSkillError(err, req.Name)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewSkillResponse(s))
}

func (h *SkillHandler) Approve(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("skillId"))
	if err != nil {
		return middleware.InvalidInput(map[string]string{"skillId": "Skill ID must be a UUID"}, err)
	}

	s, err := h.uc.ApproveSkill(c.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrSkillNotPending) {
			return middleware.BusinessRule("Only pending skills can be approved", err)
		}
		return mapSkillError(err, "")
	}
	return response.JSON(c, fiber.StatusOK, dto.NewSkillResponse(s))
}

func (h *SkillHandler) Reject(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("skillId"))
	if err != nil {
		return middleware.InvalidInput(map[string]string{"skillId": "Skill ID must be a UUID"}, err)
	}

	s, err := h.uc.RejectSkill(c.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrSkillNotPending) {
			return middleware.BusinessRule("Only pending skills can be rejected", err)
		}
		return mapSkillError(err, "")
	}
	return response.JSON(c, fiber.StatusOK, dto.NewSkillResponse(s))
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	in := usecase.ListSkillsInput{
		Search: c.Query("search"),
		PageRequest: usecase.PageRequest{
			Page: parseQueryInt(c, "page", 0),
			Size: parseQueryInt(c, "size", 50),
		},
	}
	if v := c.Query("category"); v != "" {
		in.Category = &v
	}
	if v := c.Query("status"); v != "" {
		st, ok := skill.ParseStatus(v)
		if !ok {
			return middleware.InvalidInput(map[string]string{"status": "Status must be one of PENDING, APPROVED, REJECTED"}, nil)
		}
		in.Status = &st
	}

	items, info, err := h.uc.ListSkills(c.Context(), in)
	if err != nil {
		return mapSkillError(err, "")
	}
	return response.JSON(c, fiber.StatusOK, dto.NewPageResponse(dto.NewSkillResponses(items), info))
}

func (h *SkillHandler) ListApproved(c fiber.Ctx) error {
	items, err := h.uc.ListApprovedSkills(c.Context())
	if err != nil {
		return mapSkillError(err, "")
	}
	return response.JSON(c, fiber.StatusOK, dto.NewSkillResponses(items))
}

func mapSkillError(err error, name string) error {
	switch {
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NotFound("Skill not found", err)
	case errors.Is(err, usecase.ErrSkillNameTaken):
		msg := "Skill with this name already exists"
		if name != "" {
			msg = "Skill with name '" + name + "' already exists"
		}
		return middleware.BusinessRule(msg, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.InvalidInput(nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternal, nil, err)
	}
}
