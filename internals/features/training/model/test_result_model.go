package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TestResultModel: satu attempt yang sudah dinilai. Immutable — tidak ada
// update/delete; histori attempt dibaca apa adanya.
type TestResultModel struct {
	TestResultID           uuid.UUID `gorm:"column:test_result_id;type:uuid;default:gen_random_uuid();primaryKey" json:"test_result_id"`
	TestResultAssignmentID uuid.UUID `gorm:"column:test_result_assignment_id;type:uuid;not null;index" json:"test_result_assignment_id"`

	TestResultAttemptNumber int `gorm:"column:test_result_attempt_number;not null" json:"test_result_attempt_number"`

	TestResultEarnedMarks float64 `gorm:"column:test_result_earned_marks;not null" json:"test_result_earned_marks"`
	TestResultTotalMarks  float64 `gorm:"column:test_result_total_marks;not null" json:"test_result_total_marks"`
	TestResultPercentage  float64 `gorm:"column:test_result_percentage;not null" json:"test_result_percentage"`
	TestResultPassed      bool    `gorm:"column:test_result_passed;not null" json:"test_result_passed"`

	// breakdown per soal: [{question_id, correct, earned_marks}, ...]
	TestResultBreakdown datatypes.JSON `gorm:"column:test_result_breakdown;type:jsonb" json:"test_result_breakdown"`

	TestResultSubmittedAt time.Time `gorm:"column:test_result_submitted_at;not null" json:"test_result_submitted_at"`
	TestResultCreatedAt   time.Time `gorm:"column:test_result_created_at;autoCreateTime" json:"test_result_created_at"`
}

func (TestResultModel) TableName() string {
	return "hr_test_results"
}
