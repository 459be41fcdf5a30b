package model

import (
	"time"

	"gorm.io/gorm"
)

// SkillModel: master skill per plant. Satu skill milik tepat satu department
// dalam satu plant scope; nama unik (case-sensitive) di dalam department itu.
type SkillModel struct {
	SkillID         string `gorm:"column:skill_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"skill_id"`
	SkillName       string `gorm:"column:skill_name;type:varchar(160);not null;uniqueIndex:uq_skill_name_dept_plant" json:"skill_name"`
	SkillType       string `gorm:"column:skill_type;type:char(1);not null;default:'G'" json:"skill_type"` // F/C/G
	SkillDepartment string `gorm:"column:skill_department;type:varchar(120);not null;uniqueIndex:uq_skill_name_dept_plant" json:"skill_department"`
	SkillPlantCode  int    `gorm:"column:skill_plant_code;not null;uniqueIndex:uq_skill_name_dept_plant" json:"skill_plant_code"`

	SkillCreatedAt time.Time      `gorm:"column:skill_created_at;autoCreateTime" json:"skill_created_at"`
	SkillDeletedAt gorm.DeletedAt `gorm:"column:skill_deleted_at;index" json:"-"`
}

func (SkillModel) TableName() string {
	return "hr_skills"
}
