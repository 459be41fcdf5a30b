package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skillmatrix_backend/internals/constants"
	"skillmatrix_backend/internals/features/skillmatrix/dto"
	"skillmatrix_backend/internals/features/skillmatrix/matrix"
	"skillmatrix_backend/internals/features/skillmatrix/service"
	helper "skillmatrix_backend/internals/helpers"
	featuresMiddleware "skillmatrix_backend/internals/middlewares/features"
)

var validate = validator.New()

// DraftController: sesi edit matrix sebelum di-commit.
type DraftController struct {
	Drafts *service.DraftStore
	Sync   *service.SyncService
}

func NewDraftController(drafts *service.DraftStore, sync *service.SyncService) *DraftController {
	return &DraftController{Drafts: drafts, Sync: sync}
}

// ================================
// ➕ POST /api/a/skill-matrix/drafts
// ================================
func (ctrl *DraftController) CreateDraft(c *fiber.Ctx) error {
	var req dto.CreateDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	scope := featuresMiddleware.GetPlantScope(c)
	draft := ctrl.Drafts.Create(req.Department, req.Line, scope.PlantCode)

	return helper.JsonCreated(c, "Draft created", dto.DraftResponse{
		DraftID:    draft.ID.String(),
		Department: draft.Department,
		Line:       draft.Line,
		CellCount:  0,
	})
}

// ================================
// 🔀 POST /api/a/skill-matrix/drafts/:id/toggle
// ================================
func (ctrl *DraftController) ToggleCell(c *fiber.Ctx) error {
	draftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid draft id")
	}

	var req dto.ToggleCellRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var resp dto.DraftResponse
	err = ctrl.Drafts.With(draftID, func(d *service.Draft) error {
		d.Builder.Toggle(req.EmployeeKey, req.SkillName)
		resp = draftSummary(d)
		return nil
	})
	if errors.Is(err, service.ErrDraftNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Draft not found")
	}

	return helper.JsonUpdated(c, "Cell toggled", resp)
}

// ================================
// ✏️ POST /api/a/skill-matrix/drafts/:id/level
// ================================
func (ctrl *DraftController) SetCellLevel(c *fiber.Ctx) error {
	draftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid draft id")
	}

	var req dto.SetLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var resp dto.DraftResponse
	err = ctrl.Drafts.With(draftID, func(d *service.Draft) error {
		if err := d.Builder.SetLevel(req.EmployeeKey, req.SkillName, req.Level); err != nil {
			return err
		}
		resp = draftSummary(d)
		return nil
	})
	switch {
	case errors.Is(err, service.ErrDraftNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Draft not found")
	case errors.Is(err, matrix.ErrCellAbsent):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Cell must be selected before its level can be edited")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update cell level")
	}

	return helper.JsonUpdated(c, "Cell level updated", resp)
}

// ================================
// ☑️ POST /api/a/skill-matrix/drafts/:id/bulk-select
// ================================
func (ctrl *DraftController) BulkSelect(c *fiber.Ctx) error {
	draftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid draft id")
	}

	var req dto.BulkCellsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var resp dto.DraftResponse
	err = ctrl.Drafts.With(draftID, func(d *service.Draft) error {
		d.Builder.BulkSetAll(req.EmployeeKeys, req.SkillNames, constants.RequiredSkillLevel)
		resp = draftSummary(d)
		return nil
	})
	if errors.Is(err, service.ErrDraftNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Draft not found")
	}

	return helper.JsonUpdated(c, "Cells selected", resp)
}

// ================================
// 🧹 POST /api/a/skill-matrix/drafts/:id/bulk-clear
// ================================
func (ctrl *DraftController) BulkClear(c *fiber.Ctx) error {
	draftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid draft id")
	}

	var req dto.BulkCellsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var resp dto.DraftResponse
	err = ctrl.Drafts.With(draftID, func(d *service.Draft) error {
		d.Builder.BulkClear(req.EmployeeKeys, req.SkillNames)
		resp = draftSummary(d)
		return nil
	})
	if errors.Is(err, service.ErrDraftNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Draft not found")
	}

	return helper.JsonUpdated(c, "Cells cleared", resp)
}

// ================================
// 📑 POST /api/a/skill-matrix/drafts/:id/copy-template
// ================================
func (ctrl *DraftController) CopyTemplate(c *fiber.Ctx) error {
	draftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid draft id")
	}

	var req dto.CopyTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var resp dto.CopyTemplateResponse
	err = ctrl.Drafts.With(draftID, func(d *service.Draft) error {
		copied, err := d.Builder.CopyTemplate(req.SourceEmployeeKey, req.TargetEmployeeKeys)
		if err != nil {
			return err
		}
		resp = dto.CopyTemplateResponse{CopiedEmployees: copied, CellCount: d.Builder.Len()}
		return nil
	})
	switch {
	case errors.Is(err, service.ErrDraftNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Draft not found")
	case errors.Is(err, matrix.ErrEmptyTemplate):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Template employee has no skills to copy")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to copy template")
	}

	return helper.JsonUpdated(c, "Template copied", resp)
}

// ================================
// 📋 GET /api/a/skill-matrix/drafts/:id
// ================================
func (ctrl *DraftController) GetDraft(c *fiber.Ctx) error {
	draftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid draft id")
	}

	var cells []dto.CellDTO
	var summary dto.DraftResponse
	err = ctrl.Drafts.With(draftID, func(d *service.Draft) error {
		summary = draftSummary(d)
		for key, level := range d.Builder.Snapshot() {
			cells = append(cells, dto.CellDTO{
				EmployeeKey: key.EmployeeKey,
				SkillName:   key.SkillName,
				Level:       level,
			})
		}
		return nil
	})
	if errors.Is(err, service.ErrDraftNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Draft not found")
	}

	return helper.JsonOK(c, "Draft fetched", fiber.Map{
		"draft": summary,
		"cells": cells,
	})
}

// ================================
// 💾 POST /api/a/skill-matrix/drafts/:id/commit
// ================================
func (ctrl *DraftController) CommitDraft(c *fiber.Ctx) error {
	draftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid draft id")
	}

	var req dto.CommitDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.EmployeeNames == nil {
		req.EmployeeNames = map[string]string{}
	}

	var saved int
	err = ctrl.Drafts.With(draftID, func(d *service.Draft) error {
		n, err := ctrl.Sync.Commit(c.Context(), d, req)
		saved = n
		return err
	})
	switch {
	case errors.Is(err, service.ErrDraftNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Draft not found")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save skill matrix")
	}

	// draft selesai dipakai setelah commit sukses
	ctrl.Drafts.Delete(draftID)

	return helper.JsonCreated(c, "Skill matrix saved", dto.CommitDraftResponse{SavedCount: saved})
}

// ================================
// ❌ DELETE /api/a/skill-matrix/drafts/:id
// ================================
func (ctrl *DraftController) DiscardDraft(c *fiber.Ctx) error {
	draftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid draft id")
	}
	ctrl.Drafts.Delete(draftID)
	return helper.JsonDeleted(c, "Draft discarded", fiber.Map{"draft_id": draftID.String()})
}

func draftSummary(d *service.Draft) dto.DraftResponse {
	return dto.DraftResponse{
		DraftID:    d.ID.String(),
		Department: d.Department,
		Line:       d.Line,
		CellCount:  d.Builder.Len(),
	}
}
