package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skillmatrix_backend/internals/features/masters/service"
	helper "skillmatrix_backend/internals/helpers"
	featuresMiddleware "skillmatrix_backend/internals/middlewares/features"
)

type CascadeController struct {
	Service *service.CascadeService
}

func NewCascadeController(db *gorm.DB) *CascadeController {
	return &CascadeController{Service: service.NewCascadeService(db)}
}

// =============================
// 📋 List Departments (plant scoped)
// =============================
func (ctrl *CascadeController) ListDepartments(c *fiber.Ctx) error {
	scope := featuresMiddleware.GetPlantScope(c)

	departments, err := ctrl.Service.ListDepartments(c.UserContext(), scope)
	if err != nil {
		// degradasi: list kosong + error dilaporkan, cascade lain tetap jalan
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}
	return helper.JsonOK(c, "OK", departments)
}

// =============================
// 📋 List Lines (plant scoped)
// =============================
func (ctrl *CascadeController) ListLines(c *fiber.Ctx) error {
	scope := featuresMiddleware.GetPlantScope(c)

	lines, err := ctrl.Service.ListLines(c.UserContext(), scope)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}
	return helper.JsonOK(c, "OK", lines)
}

// =============================
// 📋 List Skills for Department (+ type map)
// =============================
func (ctrl *CascadeController) ListSkills(c *fiber.Ctx) error {
	department := c.Query("department")
	if department == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query param department is required")
	}
	scope := featuresMiddleware.GetPlantScope(c)

	result, err := ctrl.Service.ListSkills(c.UserContext(), scope, department)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}
	return helper.JsonOK(c, "OK", result)
}

// =============================
// 📋 List Labour for Department (location takes precedence)
// =============================
func (ctrl *CascadeController) ListLabour(c *fiber.Ctx) error {
	department := c.Query("department")
	if department == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query param department is required")
	}
	scope := featuresMiddleware.GetPlantScope(c)

	labour, err := ctrl.Service.ListLabour(c.UserContext(), scope, department)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}
	return helper.JsonOK(c, "OK", labour)
}
