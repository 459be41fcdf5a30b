package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillmatrix_backend/internals/features/training/dto"
	"skillmatrix_backend/internals/features/training/model"
	"skillmatrix_backend/internals/features/training/service"
	helper "skillmatrix_backend/internals/helpers"
	authMiddleware "skillmatrix_backend/internals/middlewares/auth"
)

// TrainingUserController: sisi peserta — lihat penugasan, kerjakan, lihat hasil.
type TrainingUserController struct {
	DB     *gorm.DB
	Ledger *service.LedgerService
}

func NewTrainingUserController(db *gorm.DB, ledger *service.LedgerService) *TrainingUserController {
	return &TrainingUserController{DB: db, Ledger: ledger}
}

// ================================
// 📋 GET /api/u/training/assignments
// ================================
func (ctrl *TrainingUserController) MyAssignments(c *fiber.Ctx) error {
	employeeKey, _ := c.Locals(authMiddleware.LocPersonnelNo).(string)
	if employeeKey == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing identity")
	}

	var rows []model.TestAssignmentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("TestAssignmentTest").
		Where("test_assignment_employee_key = ?", employeeKey).
		Order("test_assignment_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}

	now := time.Now()
	out := make([]dto.TestAssignmentDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToTestAssignmentDTO(&rows[i], now))
	}
	return helper.JsonList(c, "Assignments fetched", out, nil)
}

// ================================
// 📝 GET /api/u/training/assignments/:id/questions
// ================================
// Soal tanpa kunci jawaban; hanya untuk assignment aktif milik sendiri.
func (ctrl *TrainingUserController) GetAssignmentQuestions(c *fiber.Ctx) error {
	assignment, err := ctrl.ownedAssignment(c)
	if err != nil {
		return err // sudah berupa response
	}
	if err := assignment.CanSubmit(); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Assignment is no longer open")
	}

	var questions []model.QuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("question_test_id = ?", assignment.TestAssignmentTestID).
		Order("question_order ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	out := make([]dto.QuestionDTO, 0, len(questions))
	for i := range questions {
		out = append(out, dto.ToQuestionDTO(&questions[i]))
	}
	return helper.JsonOK(c, "Questions fetched", fiber.Map{
		"assignment": dto.ToTestAssignmentDTO(assignment, time.Now()),
		"questions":  out,
	})
}

// ================================
// 🧮 POST /api/u/training/assignments/:id/submit
// ================================
func (ctrl *TrainingUserController) SubmitAnswers(c *fiber.Ctx) error {
	assignment, err := ctrl.ownedAssignment(c)
	if err != nil {
		return err
	}

	var req dto.SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Answers == nil {
		req.Answers = map[string][]string{}
	}

	result, err := ctrl.Ledger.RecordSubmission(c.Context(), assignment.TestAssignmentID, req.Answers)
	switch {
	case errors.Is(err, model.ErrAssignmentClosed):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Assignment is already closed")
	case errors.Is(err, model.ErrNoAttemptsLeft):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "No attempts remaining")
	case errors.Is(err, service.ErrNoQuestions):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Test has no questions")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record submission")
	}

	return helper.JsonCreated(c, "Submission recorded", result)
}

// ================================
// 📊 GET /api/u/training/assignments/:id/results
// ================================
func (ctrl *TrainingUserController) ListResults(c *fiber.Ctx) error {
	assignment, err := ctrl.ownedAssignment(c)
	if err != nil {
		return err
	}

	rows, err := ctrl.Ledger.ListResults(c.Context(), assignment.TestAssignmentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch results")
	}
	return helper.JsonList(c, "Results fetched", rows, nil)
}

// ownedAssignment memuat assignment dari path param dan memastikan miliknya
// identitas yang login. Return error = response sudah ditulis.
func (ctrl *TrainingUserController) ownedAssignment(c *fiber.Ctx) (*model.TestAssignmentModel, error) {
	employeeKey, _ := c.Locals(authMiddleware.LocPersonnelNo).(string)
	if employeeKey == "" {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Missing identity")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	var assignment model.TestAssignmentModel
	err = ctrl.DB.WithContext(c.Context()).
		First(&assignment, "test_assignment_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignment")
	}
	if assignment.TestAssignmentEmployeeKey != employeeKey {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "Assignment belongs to another employee")
	}
	return &assignment, nil
}
