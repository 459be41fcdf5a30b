package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	masterscontroller "skillmatrix_backend/internals/features/masters/controller"
)

// CUD master data + cascade reads untuk HR admin.
func MastersAdminRoutes(api fiber.Router, db *gorm.DB) {
	adminCtrl := masterscontroller.NewMastersAdminController(db)
	cascadeCtrl := masterscontroller.NewCascadeController(db)

	masters := api.Group("/masters")
	masters.Post("/departments", adminCtrl.CreateDepartment)
	masters.Post("/lines", adminCtrl.CreateLine)
	masters.Post("/skills", adminCtrl.CreateSkill)
	masters.Post("/labour", adminCtrl.CreateLabour)

	masters.Get("/departments", cascadeCtrl.ListDepartments)
	masters.Get("/lines", cascadeCtrl.ListLines)
	masters.Get("/skills", cascadeCtrl.ListSkills)
	masters.Get("/labour", cascadeCtrl.ListLabour)
}
