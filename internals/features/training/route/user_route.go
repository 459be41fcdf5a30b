package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	trainingController "skillmatrix_backend/internals/features/training/controller"
	"skillmatrix_backend/internals/features/training/service"
	"skillmatrix_backend/internals/middlewares"
)

// TrainingUserRoutes: sisi peserta test.
func TrainingUserRoutes(user fiber.Router, db *gorm.DB) {
	ledger := service.NewLedgerService(db, service.NewGormSkillPromoter(db))
	ctrl := trainingController.NewTrainingUserController(db, ledger)

	group := user.Group("/training")

	group.Get("/assignments", ctrl.MyAssignments)
	group.Get("/assignments/:id/questions", ctrl.GetAssignmentQuestions)
	group.Post("/assignments/:id/submit", middlewares.SubmitRateLimiter(), ctrl.SubmitAnswers)
	group.Get("/assignments/:id/results", ctrl.ListResults)
}
