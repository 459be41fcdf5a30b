package model

import (
	"time"
)

type DepartmentModel struct {
	DepartmentID        string    `gorm:"column:department_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"department_id"`
	DepartmentName      string    `gorm:"column:department_name;type:varchar(120);not null;uniqueIndex:uq_department_name_plant" json:"department_name"`
	DepartmentPlantCode int       `gorm:"column:department_plant_code;not null;uniqueIndex:uq_department_name_plant" json:"department_plant_code"`
	DepartmentCreatedAt time.Time `gorm:"column:department_created_at;autoCreateTime" json:"department_created_at"`
}

func (DepartmentModel) TableName() string {
	return "hr_departments"
}
