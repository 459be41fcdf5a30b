package model

import (
	"time"
)

type LineModel struct {
	LineID        string    `gorm:"column:line_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"line_id"`
	LineName      string    `gorm:"column:line_name;type:varchar(120);not null;uniqueIndex:uq_line_name_plant" json:"line_name"`
	LinePlantCode int       `gorm:"column:line_plant_code;not null;uniqueIndex:uq_line_name_plant" json:"line_plant_code"`
	LineCreatedAt time.Time `gorm:"column:line_created_at;autoCreateTime" json:"line_created_at"`
}

func (LineModel) TableName() string {
	return "hr_lines"
}
