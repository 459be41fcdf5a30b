package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	skillmatrixController "skillmatrix_backend/internals/features/skillmatrix/controller"
	"skillmatrix_backend/internals/features/skillmatrix/service"
)

// SkillMatrixAdminRoutes: draft matrix + assignment tersimpan (admin only).
func SkillMatrixAdminRoutes(admin fiber.Router, db *gorm.DB) {
	sync := service.NewSyncService(service.NewGormAssignmentStore(db))
	drafts := service.NewDraftStore()

	draftCtrl := skillmatrixController.NewDraftController(drafts, sync)
	assignmentCtrl := skillmatrixController.NewAssignmentController(sync)

	group := admin.Group("/skill-matrix")

	// 📦 draft
	group.Post("/drafts", draftCtrl.CreateDraft)
	group.Get("/drafts/:id", draftCtrl.GetDraft)
	group.Post("/drafts/:id/toggle", draftCtrl.ToggleCell)
	group.Post("/drafts/:id/level", draftCtrl.SetCellLevel)
	group.Post("/drafts/:id/bulk-select", draftCtrl.BulkSelect)
	group.Post("/drafts/:id/bulk-clear", draftCtrl.BulkClear)
	group.Post("/drafts/:id/copy-template", draftCtrl.CopyTemplate)
	group.Post("/drafts/:id/commit", draftCtrl.CommitDraft)
	group.Delete("/drafts/:id", draftCtrl.DiscardDraft)

	// 💾 assignment tersimpan
	group.Get("/assignments", assignmentCtrl.ListAssignments)
	group.Patch("/assignments/:id/level", assignmentCtrl.UpdateLevel)
	group.Delete("/assignments/:id", assignmentCtrl.DeleteAssignment)
}
