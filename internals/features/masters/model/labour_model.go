package model

import (
	"time"
)

// LabourModel: labour master. Record ini di-key secara fisik per lokasi,
// bukan per plant code — filter cascade labour pakai location dulu.
type LabourModel struct {
	LabourID         string  `gorm:"column:labour_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"labour_id"`
	LabourName       string  `gorm:"column:labour_name;type:varchar(160);not null" json:"labour_name"`
	LabourCode       *string `gorm:"column:labour_code;type:varchar(40);uniqueIndex" json:"labour_code,omitempty"`
	LabourDepartment string  `gorm:"column:labour_department;type:varchar(120);not null" json:"labour_department"`
	LabourLocation   string  `gorm:"column:labour_location;type:varchar(120)" json:"labour_location"`
	LabourPlantCode  int     `gorm:"column:labour_plant_code;not null" json:"labour_plant_code"`

	LabourCreatedAt time.Time `gorm:"column:labour_created_at;autoCreateTime" json:"labour_created_at"`
}

func (LabourModel) TableName() string {
	return "hr_labour_master"
}
