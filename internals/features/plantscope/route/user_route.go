package route

import (
	"github.com/gofiber/fiber/v2"

	scopecontroller "skillmatrix_backend/internals/features/plantscope/controller"
	"skillmatrix_backend/internals/features/plantscope/service"
)

// Scope endpoint untuk semua user login (dashboard butuh plant code duluan).
func PlantScopeUserRoutes(api fiber.Router, resolver *service.Resolver) {
	ctrl := scopecontroller.NewPlantScopeController(resolver)
	api.Get("/plant-scope", ctrl.GetPlantScope)
}
