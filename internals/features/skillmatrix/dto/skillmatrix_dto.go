package dto

import (
	"time"

	"skillmatrix_backend/internals/features/skillmatrix/model"
)

// =============================
// 📦 Draft (matrix in-memory)
// =============================

type CreateDraftRequest struct {
	Department string `json:"department" validate:"required,min=1,max=120"`
	Line       string `json:"line" validate:"required,min=1,max=120"`
}

type DraftResponse struct {
	DraftID    string `json:"draft_id"`
	Department string `json:"department"`
	Line       string `json:"line"`
	CellCount  int    `json:"cell_count"`
}

type ToggleCellRequest struct {
	EmployeeKey string `json:"employee_key" validate:"required"`
	SkillName   string `json:"skill_name" validate:"required"`
}

type SetLevelRequest struct {
	EmployeeKey string `json:"employee_key" validate:"required"`
	SkillName   string `json:"skill_name" validate:"required"`
	Level       int    `json:"level" validate:"required,min=1,max=5"`
}

type BulkCellsRequest struct {
	EmployeeKeys []string `json:"employee_keys" validate:"required,min=1,dive,required"`
	SkillNames   []string `json:"skill_names" validate:"required,min=1,dive,required"`
}

type CopyTemplateRequest struct {
	SourceEmployeeKey  string   `json:"source_employee_key" validate:"required"`
	TargetEmployeeKeys []string `json:"target_employee_keys" validate:"required,min=1,dive,required"`
}

type CopyTemplateResponse struct {
	CopiedEmployees int `json:"copied_employees"`
	CellCount       int `json:"cell_count"`
}

// CellDTO: representasi flat satu cell untuk response draft/list.
type CellDTO struct {
	EmployeeKey string `json:"employee_key"`
	SkillName   string `json:"skill_name"`
	Level       int    `json:"level"`
}

// =============================
// 💾 Commit & assignment tersimpan
// =============================

type CommitDraftRequest struct {
	// nama karyawan per key, dipakai untuk denormalisasi saat commit
	EmployeeNames map[string]string `json:"employee_names" validate:"required"`
	EmployeeCodes map[string]string `json:"employee_codes"`
	SkillTypes    map[string]string `json:"skill_types"`
}

type CommitDraftResponse struct {
	SavedCount int `json:"saved_count"`
}

type UpdateAssignmentLevelRequest struct {
	Level int `json:"level" validate:"required,min=1,max=5"`
}

type SkillAssignmentDTO struct {
	SkillAssignmentID string    `json:"skill_assignment_id"`
	EmployeeKey       string    `json:"employee_key"`
	EmployeeName      string    `json:"employee_name"`
	EmployeeCode      *string   `json:"employee_code,omitempty"`
	SkillName         string    `json:"skill_name"`
	SkillType         string    `json:"skill_type"`
	Level             int       `json:"level"`
	RequiredLevel     int       `json:"required_level"`
	MeetsRequirement  bool      `json:"meets_requirement"`
	Department        string    `json:"department"`
	Line              string    `json:"line"`
	PlantCode         int       `json:"plant_code"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func ToSkillAssignmentDTO(m *model.SkillAssignmentModel) SkillAssignmentDTO {
	return SkillAssignmentDTO{
		SkillAssignmentID: m.SkillAssignmentID.String(),
		EmployeeKey:       m.SkillAssignmentEmployeeKey,
		EmployeeName:      m.SkillAssignmentEmployeeName,
		EmployeeCode:      m.SkillAssignmentEmployeeCode,
		SkillName:         m.SkillAssignmentSkillName,
		SkillType:         m.SkillAssignmentSkillType,
		Level:             m.SkillAssignmentLevel,
		RequiredLevel:     m.SkillAssignmentRequiredLevel,
		MeetsRequirement:  m.MeetsRequirement(),
		Department:        m.SkillAssignmentDepartment,
		Line:              m.SkillAssignmentLine,
		PlantCode:         m.SkillAssignmentPlantCode,
		UpdatedAt:         m.SkillAssignmentUpdatedAt,
	}
}
