package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skillmatrix_backend/internals/features/masters/dto"
	"skillmatrix_backend/internals/features/masters/model"
	helper "skillmatrix_backend/internals/helpers"
	featuresMiddleware "skillmatrix_backend/internals/middlewares/features"
)

type MastersAdminController struct {
	DB *gorm.DB
}

func NewMastersAdminController(db *gorm.DB) *MastersAdminController {
	return &MastersAdminController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Department
// =============================
func (ctrl *MastersAdminController) CreateDepartment(c *fiber.Ctx) error {
	var body dto.CreateDepartmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	scope := featuresMiddleware.GetPlantScope(c)

	// cek duplikasi (nama unik per plant)
	var existing model.DepartmentModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("department_name = ? AND department_plant_code = ?", body.DepartmentName, scope.PlantCode).
		First(&existing).Error
	switch {
	case err == nil:
		return helper.JsonError(c, fiber.StatusConflict, "Department already exists for this plant")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing department")
	}

	dept := model.DepartmentModel{
		DepartmentName:      body.DepartmentName,
		DepartmentPlantCode: scope.PlantCode,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&dept).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create department")
	}

	return helper.JsonCreated(c, "Department created", dept)
}

// =============================
// ➕ Create Line
// =============================
func (ctrl *MastersAdminController) CreateLine(c *fiber.Ctx) error {
	var body dto.CreateLineRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	scope := featuresMiddleware.GetPlantScope(c)

	var existing model.LineModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("line_name = ? AND line_plant_code = ?", body.LineName, scope.PlantCode).
		First(&existing).Error
	switch {
	case err == nil:
		return helper.JsonError(c, fiber.StatusConflict, "Line already exists for this plant")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing line")
	}

	line := model.LineModel{
		LineName:      body.LineName,
		LinePlantCode: scope.PlantCode,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&line).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create line")
	}

	return helper.JsonCreated(c, "Line created", line)
}

// =============================
// ➕ Create Skill (master definition)
// =============================
func (ctrl *MastersAdminController) CreateSkill(c *fiber.Ctx) error {
	var body dto.CreateSkillRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	scope := featuresMiddleware.GetPlantScope(c)

	var existing model.SkillModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("skill_name = ? AND skill_department = ? AND skill_plant_code = ?",
			body.SkillName, body.SkillDepartment, scope.PlantCode).
		First(&existing).Error
	switch {
	case err == nil:
		return helper.JsonError(c, fiber.StatusConflict, "Skill already exists in this department")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing skill")
	}

	skill := model.SkillModel{
		SkillName:       body.SkillName,
		SkillType:       body.SkillType,
		SkillDepartment: body.SkillDepartment,
		SkillPlantCode:  scope.PlantCode,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&skill).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create skill")
	}

	return helper.JsonCreated(c, "Skill created", dto.ToSkillDTO(skill))
}

// =============================
// ➕ Create Labour record
// =============================
func (ctrl *MastersAdminController) CreateLabour(c *fiber.Ctx) error {
	var body dto.CreateLabourRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	scope := featuresMiddleware.GetPlantScope(c)

	location := body.LabourLocation
	if location == "" && scope.Location != nil {
		location = *scope.Location
	}

	labour := model.LabourModel{
		LabourName:       body.LabourName,
		LabourCode:       body.LabourCode,
		LabourDepartment: body.LabourDepartment,
		LabourLocation:   location,
		LabourPlantCode:  scope.PlantCode,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&labour).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create labour record")
	}

	return helper.JsonCreated(c, "Labour record created", labour)
}
