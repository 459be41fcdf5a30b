package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "skillmatrix_backend/internals/features/trainingschedule/controller"
)

// TrainingScheduleAdminRoutes: CRUD jadwal sesi training.
func TrainingScheduleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewTrainingScheduleController(db)

	group := admin.Group("/training-schedules")
	group.Post("/", ctrl.CreateSchedule)
	group.Get("/", ctrl.ListSchedules)
	group.Put("/:id", ctrl.UpdateSchedule)
	group.Delete("/:id", ctrl.DeleteSchedule)
}
