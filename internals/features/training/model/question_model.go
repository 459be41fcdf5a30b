package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// QuestionModel: satu soal pilihan ganda milik satu test.
// Jawaban benar disimpan sebagai array teks opsi; soal multi-jawaban
// ditandai QuestionAllowMultiple.
type QuestionModel struct {
	QuestionID     uuid.UUID `gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"question_id"`
	QuestionTestID uuid.UUID `gorm:"column:question_test_id;type:uuid;not null;index" json:"question_test_id"`

	QuestionText    string         `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionOptions pq.StringArray `gorm:"column:question_options;type:text[];not null" json:"question_options"`

	QuestionCorrectAnswers pq.StringArray `gorm:"column:question_correct_answers;type:text[];not null" json:"question_correct_answers"`
	QuestionAllowMultiple  bool           `gorm:"column:question_allow_multiple;not null;default:false" json:"question_allow_multiple"`

	QuestionMarks int `gorm:"column:question_marks;not null;default:1" json:"question_marks"`
	QuestionOrder int `gorm:"column:question_order;not null;default:0" json:"question_order"`

	QuestionCreatedAt time.Time `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time `gorm:"column:question_updated_at;autoUpdateTime" json:"question_updated_at"`
}

func (QuestionModel) TableName() string {
	return "hr_test_questions"
}
