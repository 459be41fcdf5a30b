package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"skillmatrix_backend/internals/helpers/dbtime"
)

// TrainingScheduleModel: jadwal sesi training offline untuk sekelompok karyawan.
type TrainingScheduleModel struct {
	TrainingScheduleID uuid.UUID `gorm:"column:training_schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"training_schedule_id"`

	TrainingScheduleTopic     string `gorm:"column:training_schedule_topic;type:varchar(200);not null" json:"training_schedule_topic"`
	TrainingScheduleSkillName string `gorm:"column:training_schedule_skill_name;type:varchar(120);not null;index" json:"training_schedule_skill_name"`
	TrainingScheduleTrainer   string `gorm:"column:training_schedule_trainer;type:varchar(120);not null" json:"training_schedule_trainer"`
	TrainingScheduleVenue     string `gorm:"column:training_schedule_venue;type:varchar(200);not null" json:"training_schedule_venue"`

	TrainingScheduleDate time.Time  `gorm:"column:training_schedule_date;type:date;not null;index" json:"training_schedule_date"`
	TrainingScheduleTime dbtime.Tod `gorm:"column:training_schedule_time;type:time;not null" json:"training_schedule_time"`

	TrainingScheduleEmployeeKeys  pq.StringArray `gorm:"column:training_schedule_employee_keys;type:text[];not null" json:"training_schedule_employee_keys"`
	TrainingScheduleEmployeeNames pq.StringArray `gorm:"column:training_schedule_employee_names;type:text[];not null" json:"training_schedule_employee_names"`

	TrainingSchedulePlantCode int    `gorm:"column:training_schedule_plant_code;not null;index" json:"training_schedule_plant_code"`
	TrainingScheduleCreatedBy string `gorm:"column:training_schedule_created_by;type:varchar(80);not null" json:"training_schedule_created_by"`

	TrainingScheduleCreatedAt time.Time      `gorm:"column:training_schedule_created_at;autoCreateTime" json:"training_schedule_created_at"`
	TrainingScheduleUpdatedAt time.Time      `gorm:"column:training_schedule_updated_at;autoUpdateTime" json:"training_schedule_updated_at"`
	TrainingScheduleDeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (TrainingScheduleModel) TableName() string {
	return "hr_training_schedules"
}
