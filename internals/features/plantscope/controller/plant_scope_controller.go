package controller

import (
	"github.com/gofiber/fiber/v2"

	"skillmatrix_backend/internals/features/plantscope/service"
	helper "skillmatrix_backend/internals/helpers"
	authMiddleware "skillmatrix_backend/internals/middlewares/auth"
)

type PlantScopeController struct {
	Resolver *service.Resolver
}

func NewPlantScopeController(resolver *service.Resolver) *PlantScopeController {
	return &PlantScopeController{Resolver: resolver}
}

// =============================
// 🏭 Get Plant Scope (current employee)
// =============================
func (ctrl *PlantScopeController) GetPlantScope(c *fiber.Ctx) error {
	personnelNo, _ := c.Locals(authMiddleware.LocPersonnelNo).(string)
	if personnelNo == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Personnel number not found in token")
	}

	scope := ctrl.Resolver.Resolve(c.UserContext(), personnelNo)
	return helper.JsonOK(c, "Plant scope resolved", scope)
}
