package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillmatrix_backend/internals/features/skillmatrix/dto"
	"skillmatrix_backend/internals/features/skillmatrix/service"
	helper "skillmatrix_backend/internals/helpers"
	featuresMiddleware "skillmatrix_backend/internals/middlewares/features"
)

// AssignmentController: assignment yang sudah tersimpan di DB.
type AssignmentController struct {
	Sync *service.SyncService
}

func NewAssignmentController(sync *service.SyncService) *AssignmentController {
	return &AssignmentController{Sync: sync}
}

// ================================
// 📋 GET /api/a/skill-matrix/assignments
// ================================
func (ctrl *AssignmentController) ListAssignments(c *fiber.Ctx) error {
	scope := featuresMiddleware.GetPlantScope(c)
	paging := helper.ResolvePaging(c, 50, 200)

	rows, total, err := ctrl.Sync.List(c.Context(), service.AssignmentFilter{
		PlantCode:  scope.PlantCode,
		Department: c.Query("department"),
		Line:       c.Query("line"),
		SkillName:  c.Query("skill"),
		Limit:      paging.Limit,
		Offset:     paging.Offset,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Assignments fetched", rows, &pagination)
}

// ================================
// ✏️ PATCH /api/a/skill-matrix/assignments/:id/level
// ================================
// Optimistic: response selalu berisi state akhir; kalau persist gagal,
// state akhir = state sebelum edit.
func (ctrl *AssignmentController) UpdateLevel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	var req dto.UpdateAssignmentLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	out, err := ctrl.Sync.ApplyLevelUpdate(c.Context(), id, req.Level)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	case err != nil:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "Level change could not be saved and was reverted",
			"data":    out,
		})
	}

	return helper.JsonUpdated(c, "Assignment level updated", out)
}

// ================================
// 🗑️ DELETE /api/a/skill-matrix/assignments/:id
// ================================
// Pessimistic: sukses baru dilaporkan setelah DB mengonfirmasi.
func (ctrl *AssignmentController) DeleteAssignment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	if err := ctrl.Sync.Remove(c.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete assignment")
	}

	return helper.JsonDeleted(c, "Assignment deleted", fiber.Map{"skill_assignment_id": id.String()})
}
