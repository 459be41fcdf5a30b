package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestModel: definisi test skill (bank soal menempel lewat QuestionModel).
type TestModel struct {
	TestID uuid.UUID `gorm:"column:test_id;type:uuid;default:gen_random_uuid();primaryKey" json:"test_id"`

	TestName        string  `gorm:"column:test_name;type:varchar(160);not null;uniqueIndex:uq_test_name_plant,where:deleted_at IS NULL" json:"test_name"`
	TestSkillName   string  `gorm:"column:test_skill_name;type:varchar(120);not null;index" json:"test_skill_name"`
	TestDescription *string `gorm:"column:test_description;type:text" json:"test_description,omitempty"`

	// nilai kelulusan dalam persen, 0..100
	TestPassingMarks    float64 `gorm:"column:test_passing_marks;not null;default:70" json:"test_passing_marks"`
	TestDurationMinutes int     `gorm:"column:test_duration_minutes;not null;default:30" json:"test_duration_minutes"`

	TestPlantCode int  `gorm:"column:test_plant_code;not null;index;uniqueIndex:uq_test_name_plant,where:deleted_at IS NULL" json:"test_plant_code"`
	TestIsActive  bool `gorm:"column:test_is_active;not null;default:true" json:"test_is_active"`

	TestCreatedAt time.Time      `gorm:"column:test_created_at;autoCreateTime" json:"test_created_at"`
	TestUpdatedAt time.Time      `gorm:"column:test_updated_at;autoUpdateTime" json:"test_updated_at"`
	TestDeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`

	TestQuestions []QuestionModel `gorm:"foreignKey:QuestionTestID;references:TestID" json:"test_questions,omitempty"`
}

func (TestModel) TableName() string {
	return "hr_tests"
}
