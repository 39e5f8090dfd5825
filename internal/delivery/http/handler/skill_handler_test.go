package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hr-registry/internal/delivery/http/middleware"
	"hr-registry/internal/domain/skill"
	"hr-registry/internal/pkg/response"
	"hr-registry/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type stubSkillUsecase struct {
	skill    skill.Skill
	items    []skill.Skill
	page     usecase.PageInfo
	approved []skill.Skill
	err      error
}

func (s stubSkillUsecase) CreateSkill(context.Context, usecase.CreateSkillInput) (skill.Skill, error) {
	return s.skill, s.err
}
func (s stubSkillUsecase) GetSkill(context.Context, uuid.UUID) (skill.Skill, error) {
	return s.skill, s.err
}
func (s stubSkillUsecase) UpdateSkill(context.Context, uuid.UUID, usecase.UpdateSkillInput) (skill.Skill, error) {
	return s.skill, s.err
}
func (s stubSkillUsecase) ApproveSkill(context.Context, uuid.UUID) (skill.Skill, error) {
	return s.skill, s.err
}
func (s stubSkillUsecase) RejectSkill(context.Context, uuid.UUID) (skill.Skill, error) {
	return s.skill, s.err
}
func (s stubSkillUsecase) ListSkills(context.Context, usecase.ListSkillsInput) ([]skill.Skill, usecase.PageInfo, error) {
	return s.items, s.page, s.err
}
func (s stubSkillUsecase) ListApprovedSkills(context.Context) ([]skill.Skill, error) {
	return s.approved, s.err
}

func passThrough(c fiber.Ctx) error { return c.Next() }

func newSkillTestApp(uc usecase.SkillUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(zerolog.Nop()).Middleware())
	NewSkillHandler(uc).RegisterRoutes(app.Group("/api/v1"), passThrough)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp
}

func decodeErrorBody(t *testing.T, resp *http.Response) response.ErrorBody {
	t.Helper()
	defer resp.Body.Close()
	var body response.ErrorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func pendingSkill() skill.Skill {
	return skill.Skill{
		ID:        uuid.New(),
		Name:      "Go",
		Category:  "Languages",
		Status:    skill.StatusPending,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestSkillHandler_Create_Accepted(t *testing.T) {
	app := newSkillTestApp(stubSkillUsecase{skill: pendingSkill()})

	resp := postJSON(t, app, "/api/v1/skills/", map[string]string{"name": "Go", "category": "Languages"})
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "PENDING" {
		t.Fatalf("expected PENDING status in body, got %v", body["status"])
	}
}

func TestSkillHandler_Create_MissingName(t *testing.T) {
	app := newSkillTestApp(stubSkillUsecase{})

	resp := postJSON(t, app, "/api/v1/skills/", map[string]string{"category": "Languages"})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	body := decodeErrorBody(t, resp)
	if body.Code != response.CodeInvalidInput {
		t.Fatalf("expected INVALID_INPUT, got %s", body.Code)
	}
	if body.Details["name"] != "Skill name is required" {
		t.Fatalf("unexpected details: %v", body.Details)
	}
	if body.TraceID == "" {
		t.Fatalf("expected a trace id")
	}
}

func TestSkillHandler_Create_DuplicateName(t *testing.T) {
	app := newSkillTestApp(stubSkillUsecase{err: usecase.ErrSkillNameTaken})

	resp := postJSON(t, app, "/api/v1/skills/", map[string]string{"name": "Go", "category": "Languages"})
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}

	body := decodeErrorBody(t, resp)
	if body.Code != response.CodeBusinessRule {
		t.Fatalf("expected BUSINESS_RULE_VIOLATION, got %s", body.Code)
	}
	if body.Message != "Skill with name 'Go' already exists" {
		t.Fatalf("unexpected message: %s", body.Message)
	}
}

func TestSkillHandler_Get_NotFound(t *testing.T) {
	app := newSkillTestApp(stubSkillUsecase{err: usecase.ErrSkillNotFound})

	req := httptest.NewRequest("GET", "/api/v1/skills/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	body := decodeErrorBody(t, resp)
	if body.Code != response.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %s", body.Code)
	}
}

func TestSkillHandler_Get_BadID(t *testing.T) {
	app := newSkillTestApp(stubSkillUsecase{})

	req := httptest.NewRequest("GET", "/api/v1/skills/not-a-uuid", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestSkillHandler_Approve_NotPending(t *testing.T) {
	app := newSkillTestApp(stubSkillUsecase{err: usecase.ErrSkillNotPending})

	resp := postJSON(t, app, "/api/v1/skills/"+uuid.NewString()+"/approve", nil)
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}

	body := decodeErrorBody(t, resp)
	if body.Message != "Only pending skills can be approved" {
		t.Fatalf("unexpected message: %s", body.Message)
	}
}

func TestSkillHandler_List_InvalidStatusFilter(t *testing.T) {
	app := newSkillTestApp(stubSkillUsecase{})

	req := httptest.NewRequest("GET", "/api/v1/skills/?status=OPEN", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestSkillHandler_List_PageEnvelope(t *testing.T) {
	s := pendingSkill()
	app := newSkillTestApp(stubSkillUsecase{
		items: []skill.Skill{s},
		page:  usecase.PageInfo{Page: 0, Size: 20, Total: 1},
	})

	req := httptest.NewRequest("GET", "/api/v1/skills/?page=0&size=20", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Content       []json.RawMessage `json:"content"`
		PageNumber    int               `json:"pageNumber"`
		PageSize      int               `json:"pageSize"`
		TotalElements int64             `json:"totalElements"`
		TotalPages    int               `json:"totalPages"`
		First         bool              `json:"first"`
		Last          bool              `json:"last"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Content) != 1 || body.TotalElements != 1 || body.TotalPages != 1 {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	if !body.First || !body.Last {
		t.Fatalf("single page should be first and last")
	}
}

func TestSkillHandler_ListApproved(t *testing.T) {
	s := pendingSkill()
	s.Status = skill.StatusApproved
	app := newSkillTestApp(stubSkillUsecase{approved: []skill.Skill{s}})

	req := httptest.NewRequest("GET", "/api/v1/skills/approved", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var items []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 1 || items[0]["status"] != "APPROVED" {
		t.Fatalf("unexpected listing: %v", items)
	}
}

func TestSkillHandler_InternalErrorHidesDetail(t *testing.T) {
	app := newSkillTestApp(stubSkillUsecase{err: usecase.ErrInternal})

	resp := postJSON(t, app, "/api/v1/skills/", map[string]string{"name": "Go", "category": "Languages"})
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	body := decodeErrorBody(t, resp)
	if body.Message != response.MessageInternal {
		t.Fatalf("internal detail leaked: %s", body.Message)
	}
}
