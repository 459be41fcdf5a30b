package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillmatrix_backend/internals/features/trainingschedule/dto"
	"skillmatrix_backend/internals/features/trainingschedule/model"
	helper "skillmatrix_backend/internals/helpers"
	"skillmatrix_backend/internals/helpers/dbtime"
	authMiddleware "skillmatrix_backend/internals/middlewares/auth"
	featuresMiddleware "skillmatrix_backend/internals/middlewares/features"
)

var validate = validator.New()

// TrainingScheduleController: CRUD jadwal sesi training.
type TrainingScheduleController struct {
	DB *gorm.DB
}

func NewTrainingScheduleController(db *gorm.DB) *TrainingScheduleController {
	return &TrainingScheduleController{DB: db}
}

// normalisasi DD/MM/YYYY; input tanggal dari client selalu format lokal
func parseScheduleDate(raw string) (time.Time, error) {
	return time.Parse("02/01/2006", raw)
}

// ================================
// ➕ POST /api/a/training-schedules
// ================================
func (ctrl *TrainingScheduleController) CreateSchedule(c *fiber.Ctx) error {
	var req dto.CreateTrainingScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if len(req.EmployeeKeys) != len(req.EmployeeNames) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Employee keys and names must align")
	}

	date, err := parseScheduleDate(req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Date must be DD/MM/YYYY")
	}
	tod, err := dbtime.Parse(req.Time)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Time must be HH:MM")
	}

	scope := featuresMiddleware.GetPlantScope(c)
	createdBy, _ := c.Locals(authMiddleware.LocPersonnelNo).(string)

	row := model.TrainingScheduleModel{
		TrainingScheduleTopic:         req.Topic,
		TrainingScheduleSkillName:     req.SkillName,
		TrainingScheduleTrainer:       req.Trainer,
		TrainingScheduleVenue:         req.Venue,
		TrainingScheduleDate:          date,
		TrainingScheduleTime:          tod,
		TrainingScheduleEmployeeKeys:  req.EmployeeKeys,
		TrainingScheduleEmployeeNames: req.EmployeeNames,
		TrainingSchedulePlantCode:     scope.PlantCode,
		TrainingScheduleCreatedBy:     createdBy,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create schedule")
	}
	return helper.JsonCreated(c, "Schedule created", dto.ToTrainingScheduleDTO(&row))
}

// ================================
// 📋 GET /api/a/training-schedules
// ================================
func (ctrl *TrainingScheduleController) ListSchedules(c *fiber.Ctx) error {
	scope := featuresMiddleware.GetPlantScope(c)
	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.TrainingScheduleModel{}).
		Where("training_schedule_plant_code = ?", scope.PlantCode)
	if skill := c.Query("skill"); skill != "" {
		q = q.Where("training_schedule_skill_name = ?", skill)
	}
	if trainer := c.Query("trainer"); trainer != "" {
		q = q.Where("training_schedule_trainer = ?", trainer)
	}
	if from := c.Query("from"); from != "" {
		if d, err := parseScheduleDate(from); err == nil {
			q = q.Where("training_schedule_date >= ?", d)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schedules")
	}

	var rows []model.TrainingScheduleModel
	if err := q.Order("training_schedule_date ASC, training_schedule_time ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedules")
	}

	out := make([]dto.TrainingScheduleDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToTrainingScheduleDTO(&rows[i]))
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Schedules fetched", out, &pagination)
}

// ================================
// ✏️ PUT /api/a/training-schedules/:id
// ================================
func (ctrl *TrainingScheduleController) UpdateSchedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var req dto.UpdateTrainingScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.EmployeeKeys != nil && len(req.EmployeeKeys) != len(req.EmployeeNames) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Employee keys and names must align")
	}

	var row model.TrainingScheduleModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&row, "training_schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedule")
	}

	if req.Topic != nil {
		row.TrainingScheduleTopic = *req.Topic
	}
	if req.Trainer != nil {
		row.TrainingScheduleTrainer = *req.Trainer
	}
	if req.Venue != nil {
		row.TrainingScheduleVenue = *req.Venue
	}
	if req.Date != nil {
		d, err := parseScheduleDate(*req.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Date must be DD/MM/YYYY")
		}
		row.TrainingScheduleDate = d
	}
	if req.Time != nil {
		tod, err := dbtime.Parse(*req.Time)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Time must be HH:MM")
		}
		row.TrainingScheduleTime = tod
	}
	if req.EmployeeKeys != nil {
		row.TrainingScheduleEmployeeKeys = req.EmployeeKeys
		row.TrainingScheduleEmployeeNames = req.EmployeeNames
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update schedule")
	}
	return helper.JsonUpdated(c, "Schedule updated", dto.ToTrainingScheduleDTO(&row))
}

// ================================
// 🗑️ DELETE /api/a/training-schedules/:id
// ================================
func (ctrl *TrainingScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.TrainingScheduleModel{}, "training_schedule_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete schedule")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}
	return helper.JsonDeleted(c, "Schedule deleted", fiber.Map{"training_schedule_id": id.String()})
}
