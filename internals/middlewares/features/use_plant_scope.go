package features

import (
	"github.com/gofiber/fiber/v2"

	scopeservice "skillmatrix_backend/internals/features/plantscope/service"
	authMiddleware "skillmatrix_backend/internals/middlewares/auth"
)

// Locals key untuk scope hasil resolusi.
const LocPlantScope = "plant_scope"

// UsePlantScope me-resolve plant scope sekali per request dan menaruhnya di Locals.
// Resolver tidak pernah gagal total (selalu ada fallback), jadi middleware ini
// tidak pernah memutus chain.
func UsePlantScope(resolver *scopeservice.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		personnelNo, _ := c.Locals(authMiddleware.LocPersonnelNo).(string)
		scope := resolver.Resolve(c.UserContext(), personnelNo)
		c.Locals(LocPlantScope, scope)
		return c.Next()
	}
}

// GetPlantScope membaca scope dari Locals; zero value kalau middleware tidak terpasang.
func GetPlantScope(c *fiber.Ctx) scopeservice.PlantScope {
	if scope, ok := c.Locals(LocPlantScope).(scopeservice.PlantScope); ok {
		return scope
	}
	return scopeservice.PlantScope{}
}
