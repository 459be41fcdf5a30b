package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillmatrix_backend/internals/features/training/dto"
	"skillmatrix_backend/internals/features/training/model"
	"skillmatrix_backend/internals/features/training/service"
	helper "skillmatrix_backend/internals/helpers"
	authMiddleware "skillmatrix_backend/internals/middlewares/auth"
	featuresMiddleware "skillmatrix_backend/internals/middlewares/features"
)

var validate = validator.New()

// TrainingAdminController: kelola test, bank soal, dan assignment.
type TrainingAdminController struct {
	DB     *gorm.DB
	Ledger *service.LedgerService
}

func NewTrainingAdminController(db *gorm.DB, ledger *service.LedgerService) *TrainingAdminController {
	return &TrainingAdminController{DB: db, Ledger: ledger}
}

// ================================
// ➕ POST /api/a/training/tests
// ================================
func (ctrl *TrainingAdminController) CreateTest(c *fiber.Ctx) error {
	var req dto.CreateTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	scope := featuresMiddleware.GetPlantScope(c)

	// cek duplikat nama test di plant yang sama
	var existing model.TestModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("test_name = ? AND test_plant_code = ?", req.TestName, scope.PlantCode).
		First(&existing).Error
	switch {
	case err == nil:
		return helper.JsonError(c, fiber.StatusConflict, "Test with this name already exists")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing test")
	}

	row := model.TestModel{
		TestName:            req.TestName,
		TestSkillName:       req.SkillName,
		TestDescription:     req.Description,
		TestPassingMarks:    req.PassingMarks,
		TestDurationMinutes: req.DurationMinutes,
		TestPlantCode:       scope.PlantCode,
		TestIsActive:        true,
	}
	if row.TestPassingMarks == 0 {
		row.TestPassingMarks = 70
	}
	if row.TestDurationMinutes == 0 {
		row.TestDurationMinutes = 30
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create test")
	}
	return helper.JsonCreated(c, "Test created", dto.ToTestDTO(&row))
}

// ================================
// 📋 GET /api/a/training/tests
// ================================
func (ctrl *TrainingAdminController) ListTests(c *fiber.Ctx) error {
	scope := featuresMiddleware.GetPlantScope(c)
	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.TestModel{}).
		Where("test_plant_code = ?", scope.PlantCode)
	if skill := c.Query("skill"); skill != "" {
		q = q.Where("test_skill_name = ?", skill)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count tests")
	}

	var rows []model.TestModel
	if err := q.Preload("TestQuestions").
		Order("test_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tests")
	}

	out := make([]dto.TestDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToTestDTO(&rows[i]))
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Tests fetched", out, &pagination)
}

// ================================
// ➕ POST /api/a/training/tests/:id/questions
// ================================
func (ctrl *TrainingAdminController) AddQuestion(c *fiber.Ctx) error {
	testID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid test id")
	}

	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !req.AllowMultiple && len(req.CorrectAnswers) > 1 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Multiple correct answers require allow_multiple")
	}
	optionSet := make(map[string]bool, len(req.Options))
	for _, opt := range req.Options {
		optionSet[opt] = true
	}
	for _, ans := range req.CorrectAnswers {
		if !optionSet[ans] {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Correct answer must be one of the options")
		}
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&model.QuestionModel{}).
		Where("question_test_id = ?", testID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count questions")
	}

	row := model.QuestionModel{
		QuestionTestID:         testID,
		QuestionText:           req.QuestionText,
		QuestionOptions:        req.Options,
		QuestionCorrectAnswers: req.CorrectAnswers,
		QuestionAllowMultiple:  req.AllowMultiple,
		QuestionMarks:          req.Marks,
		QuestionOrder:          int(count),
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}
	return helper.JsonCreated(c, "Question created", dto.ToQuestionDTO(&row))
}

// ================================
// 📥 POST /api/a/training/tests/:id/questions/import
// ================================
// Upload xlsx (field "file") berisi bank soal; baris invalid dilaporkan
// per-baris tanpa menggagalkan baris yang sehat.
func (ctrl *TrainingAdminController) ImportQuestions(c *fiber.Ctx) error {
	testID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid test id")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Workbook file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to open uploaded file")
	}
	defer file.Close()

	questions, importErrs, err := service.ParseQuestionWorkbook(file)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Failed to parse workbook")
	}

	var startOrder int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&model.QuestionModel{}).
		Where("question_test_id = ?", testID).Count(&startOrder).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count questions")
	}

	for i := range questions {
		questions[i].QuestionTestID = testID
		questions[i].QuestionOrder = int(startOrder) + i
	}
	if len(questions) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).Create(&questions).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save questions")
		}
	}

	return helper.JsonCreated(c, "Questions imported", fiber.Map{
		"imported_count": len(questions),
		"row_errors":     importErrs,
	})
}

// ================================
// 📌 POST /api/a/training/assignments
// ================================
func (ctrl *TrainingAdminController) AssignTest(c *fiber.Ctx) error {
	var req dto.AssignTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	scope := featuresMiddleware.GetPlantScope(c)
	assignedBy, _ := c.Locals(authMiddleware.LocPersonnelNo).(string)

	created, err := ctrl.Ledger.Assign(c.Context(), req, scope.PlantCode, assignedBy)
	switch {
	case errors.Is(err, model.ErrAttemptsNotConfigured),
		errors.Is(err, service.ErrDueInPast):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Test not found")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign test")
	}

	now := time.Now()
	out := make([]dto.TestAssignmentDTO, 0, len(created))
	for i := range created {
		out = append(out, dto.ToTestAssignmentDTO(&created[i], now))
	}
	return helper.JsonCreated(c, "Test assigned", out)
}

// ================================
// 📋 GET /api/a/training/assignments
// ================================
func (ctrl *TrainingAdminController) ListAssignments(c *fiber.Ctx) error {
	scope := featuresMiddleware.GetPlantScope(c)
	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.TestAssignmentModel{}).
		Where("test_assignment_plant_code = ?", scope.PlantCode)
	if status := c.Query("status"); status != "" {
		q = q.Where("test_assignment_status = ?", status)
	}
	if emp := c.Query("employee_key"); emp != "" {
		q = q.Where("test_assignment_employee_key = ?", emp)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count assignments")
	}

	var rows []model.TestAssignmentModel
	if err := q.Preload("TestAssignmentTest").
		Order("test_assignment_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}

	now := time.Now()
	out := make([]dto.TestAssignmentDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToTestAssignmentDTO(&rows[i], now))
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Assignments fetched", out, &pagination)
}
