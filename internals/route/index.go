package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skillmatrix_backend/internals/configs"
	"skillmatrix_backend/internals/constants"
	mastersRoute "skillmatrix_backend/internals/features/masters/route"
	plantScopeRoute "skillmatrix_backend/internals/features/plantscope/route"
	plantScopeService "skillmatrix_backend/internals/features/plantscope/service"
	skillMatrixRoute "skillmatrix_backend/internals/features/skillmatrix/route"
	trainingRoute "skillmatrix_backend/internals/features/training/route"
	scheduleRoute "skillmatrix_backend/internals/features/trainingschedule/route"
	authMiddleware "skillmatrix_backend/internals/middlewares/auth"
	featuresMiddleware "skillmatrix_backend/internals/middlewares/features"
)

// SetupRoutes merakit seluruh surface HTTP:
//
//	/api/u → semua user login (identitas JWT + plant scope)
//	/api/a → khusus HR admin
func SetupRoutes(app *fiber.App, db *gorm.DB, resolver *plantScopeService.Resolver) {
	// 🔌 health check untuk probe
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	identity := authMiddleware.IdentityJWT(authMiddleware.IdentityJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})
	plantScope := featuresMiddleware.UsePlantScope(resolver)

	// ================================
	// 👤 USER (semua karyawan login)
	// ================================
	user := app.Group("/api/u", identity, plantScope)
	plantScopeRoute.PlantScopeUserRoutes(user, resolver)
	mastersRoute.MastersUserRoutes(user, db)
	trainingRoute.TrainingUserRoutes(user, db)

	// ================================
	// 🛡️ ADMIN (HR admin ke atas)
	// ================================
	admin := app.Group("/api/a", identity, plantScope,
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manage skill data"), constants.AdminAndAbove...))
	mastersRoute.MastersAdminRoutes(admin, db)
	skillMatrixRoute.SkillMatrixAdminRoutes(admin, db)
	trainingRoute.TrainingAdminRoutes(admin, db)
	scheduleRoute.TrainingScheduleAdminRoutes(admin, db)
}
