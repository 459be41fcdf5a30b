package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	masterscontroller "skillmatrix_backend/internals/features/masters/controller"
)

// Cascade read-only untuk user biasa (dropdown dashboard).
func MastersUserRoutes(api fiber.Router, db *gorm.DB) {
	cascadeCtrl := masterscontroller.NewCascadeController(db)

	masters := api.Group("/masters")
	masters.Get("/departments", cascadeCtrl.ListDepartments)
	masters.Get("/lines", cascadeCtrl.ListLines)
	masters.Get("/skills", cascadeCtrl.ListSkills)
	masters.Get("/labour", cascadeCtrl.ListLabour)
}
