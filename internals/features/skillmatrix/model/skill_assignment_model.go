package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillAssignmentModel: satu cell matrix yang sudah di-commit.
// Soft delete dipakai supaya histori assignment tidak hilang.
type SkillAssignmentModel struct {
	SkillAssignmentID uuid.UUID `gorm:"column:skill_assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"skill_assignment_id"`

	SkillAssignmentEmployeeKey  string  `gorm:"column:skill_assignment_employee_key;type:varchar(80);not null;uniqueIndex:uq_assignment_cell,where:deleted_at IS NULL" json:"skill_assignment_employee_key"`
	SkillAssignmentEmployeeName string  `gorm:"column:skill_assignment_employee_name;type:varchar(120);not null" json:"skill_assignment_employee_name"`
	SkillAssignmentEmployeeCode *string `gorm:"column:skill_assignment_employee_code;type:varchar(50)" json:"skill_assignment_employee_code,omitempty"`

	SkillAssignmentSkillName string `gorm:"column:skill_assignment_skill_name;type:varchar(120);not null;uniqueIndex:uq_assignment_cell,where:deleted_at IS NULL" json:"skill_assignment_skill_name"`
	SkillAssignmentSkillType string `gorm:"column:skill_assignment_skill_type;type:char(1);not null;default:'G'" json:"skill_assignment_skill_type"`

	SkillAssignmentLevel         int `gorm:"column:skill_assignment_level;not null" json:"skill_assignment_level"`
	SkillAssignmentRequiredLevel int `gorm:"column:skill_assignment_required_level;not null;default:4" json:"skill_assignment_required_level"`

	SkillAssignmentDepartment string `gorm:"column:skill_assignment_department;type:varchar(120);not null;index" json:"skill_assignment_department"`
	SkillAssignmentLine       string `gorm:"column:skill_assignment_line;type:varchar(120);not null" json:"skill_assignment_line"`
	SkillAssignmentPlantCode  int    `gorm:"column:skill_assignment_plant_code;not null;index" json:"skill_assignment_plant_code"`

	SkillAssignmentCreatedAt time.Time      `gorm:"column:skill_assignment_created_at;autoCreateTime" json:"skill_assignment_created_at"`
	SkillAssignmentUpdatedAt time.Time      `gorm:"column:skill_assignment_updated_at;autoUpdateTime" json:"skill_assignment_updated_at"`
	SkillAssignmentDeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (SkillAssignmentModel) TableName() string {
	return "hr_skill_assignments"
}

// MeetsRequirement: level sudah mencapai required level cell ini.
func (m *SkillAssignmentModel) MeetsRequirement() bool {
	return m.SkillAssignmentLevel >= m.SkillAssignmentRequiredLevel
}
