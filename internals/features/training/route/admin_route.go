package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	trainingController "skillmatrix_backend/internals/features/training/controller"
	"skillmatrix_backend/internals/features/training/service"
)

// TrainingAdminRoutes: kelola test, bank soal, dan penugasan.
func TrainingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ledger := service.NewLedgerService(db, service.NewGormSkillPromoter(db))
	ctrl := trainingController.NewTrainingAdminController(db, ledger)

	group := admin.Group("/training")

	// 📝 test & bank soal
	group.Post("/tests", ctrl.CreateTest)
	group.Get("/tests", ctrl.ListTests)
	group.Post("/tests/:id/questions", ctrl.AddQuestion)
	group.Post("/tests/:id/questions/import", ctrl.ImportQuestions)

	// 📌 penugasan
	group.Post("/assignments", ctrl.AssignTest)
	group.Get("/assignments", ctrl.ListAssignments)
}
