package dto

import (
	"skillmatrix_backend/internals/features/masters/model"
	"time"
)

// ============================
// Response DTO
// ============================

type DepartmentDTO struct {
	DepartmentName      string `json:"department_name"`
	DepartmentPlantCode int    `json:"department_plant_code"`
}

type LineDTO struct {
	LineName      string `json:"line_name"`
	LinePlantCode int    `json:"line_plant_code"`
}

type SkillDTO struct {
	SkillID         string    `json:"skill_id"`
	SkillName       string    `json:"skill_name"`
	SkillType       string    `json:"skill_type"`
	SkillDepartment string    `json:"skill_department"`
	SkillPlantCode  int       `json:"skill_plant_code"`
	SkillCreatedAt  time.Time `json:"skill_created_at"`
}

// CascadeSkillsDTO: daftar skill satu department + klasifikasi type per nama.
// TypeByName dipakai matrix builder saat bulk assign (default level required).
type CascadeSkillsDTO struct {
	Skills     []SkillDTO        `json:"skills"`
	TypeByName map[string]string `json:"type_by_name"`
}

// LabourRecordDTO: identitas stabil karyawan untuk matrix cell.
// Key = labour_code kalau ada, kalau tidak name + "_" + id — stabil antar fetch.
type LabourRecordDTO struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// ============================
// Create Request DTO
// ============================

type CreateDepartmentRequest struct {
	DepartmentName string `json:"department_name" validate:"required,min=1,max=120"`
}

type CreateLineRequest struct {
	LineName string `json:"line_name" validate:"required,min=1,max=120"`
}

type CreateSkillRequest struct {
	SkillName       string `json:"skill_name" validate:"required,min=1,max=160"`
	SkillType       string `json:"skill_type" validate:"required,oneof=F C G"`
	SkillDepartment string `json:"skill_department" validate:"required,min=1,max=120"`
}

type CreateLabourRequest struct {
	LabourName       string  `json:"labour_name" validate:"required,min=1,max=160"`
	LabourCode       *string `json:"labour_code,omitempty" validate:"omitempty,max=40"`
	LabourDepartment string  `json:"labour_department" validate:"required"`
	LabourLocation   string  `json:"labour_location,omitempty"`
}

// ============================
// Converter
// ============================

func ToSkillDTO(m model.SkillModel) SkillDTO {
	return SkillDTO{
		SkillID:         m.SkillID,
		SkillName:       m.SkillName,
		SkillType:       m.SkillType,
		SkillDepartment: m.SkillDepartment,
		SkillPlantCode:  m.SkillPlantCode,
		SkillCreatedAt:  m.SkillCreatedAt,
	}
}
