package dto

import (
	"time"

	"skillmatrix_backend/internals/features/training/model"
)

// =============================
// 📝 Test & soal
// =============================

type CreateTestRequest struct {
	TestName        string  `json:"test_name" validate:"required,min=3,max=160"`
	SkillName       string  `json:"skill_name" validate:"required,min=1,max=120"`
	Description     *string `json:"description"`
	PassingMarks    float64 `json:"passing_marks" validate:"gte=0,lte=100"`
	DurationMinutes int     `json:"duration_minutes" validate:"gte=1,lte=480"`
}

type CreateQuestionRequest struct {
	QuestionText   string   `json:"question_text" validate:"required,min=3"`
	Options        []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectAnswers []string `json:"correct_answers" validate:"required,min=1,dive,required"`
	AllowMultiple  bool     `json:"allow_multiple"`
	Marks          int      `json:"marks" validate:"gte=1"`
}

type TestDTO struct {
	TestID          string  `json:"test_id"`
	TestName        string  `json:"test_name"`
	SkillName       string  `json:"skill_name"`
	Description     *string `json:"description,omitempty"`
	PassingMarks    float64 `json:"passing_marks"`
	DurationMinutes int     `json:"duration_minutes"`
	PlantCode       int     `json:"plant_code"`
	IsActive        bool    `json:"is_active"`
	QuestionCount   int     `json:"question_count"`
}

func ToTestDTO(m *model.TestModel) TestDTO {
	return TestDTO{
		TestID:          m.TestID.String(),
		TestName:        m.TestName,
		SkillName:       m.TestSkillName,
		Description:     m.TestDescription,
		PassingMarks:    m.TestPassingMarks,
		DurationMinutes: m.TestDurationMinutes,
		PlantCode:       m.TestPlantCode,
		IsActive:        m.TestIsActive,
		QuestionCount:   len(m.TestQuestions),
	}
}

// QuestionDTO untuk peserta: jawaban benar TIDAK pernah ikut keluar.
type QuestionDTO struct {
	QuestionID    string   `json:"question_id"`
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	AllowMultiple bool     `json:"allow_multiple"`
	Marks         int      `json:"marks"`
	Order         int      `json:"order"`
}

func ToQuestionDTO(m *model.QuestionModel) QuestionDTO {
	return QuestionDTO{
		QuestionID:    m.QuestionID.String(),
		QuestionText:  m.QuestionText,
		Options:       m.QuestionOptions,
		AllowMultiple: m.QuestionAllowMultiple,
		Marks:         m.QuestionMarks,
		Order:         m.QuestionOrder,
	}
}

// =============================
// 📌 Assignment
// =============================

type AssignTestRequest struct {
	TestID       string   `json:"test_id" validate:"required,uuid"`
	EmployeeKeys []string `json:"employee_keys" validate:"required,min=1,dive,required"`
	// nama per key untuk denormalisasi
	EmployeeNames map[string]string `json:"employee_names"`
	MaxAttempts   int               `json:"max_attempts" validate:"required,min=1,max=10"`
	DueDate       string            `json:"due_date" validate:"required"` // DD/MM/YYYY
	DueTime       string            `json:"due_time" validate:"required"` // HH:MM
}

type TestAssignmentDTO struct {
	TestAssignmentID  string     `json:"test_assignment_id"`
	TestID            string     `json:"test_id"`
	TestName          string     `json:"test_name,omitempty"`
	SkillName         string     `json:"skill_name,omitempty"`
	EmployeeKey       string     `json:"employee_key"`
	EmployeeName      string     `json:"employee_name"`
	Status            string     `json:"status"`
	MaxAttempts       int        `json:"max_attempts"`
	RemainingAttempts int        `json:"remaining_attempts"`
	DueDate           string     `json:"due_date"`
	DueTime           string     `json:"due_time"`
	Overdue           bool       `json:"overdue"`
	ClosedAt          *time.Time `json:"closed_at,omitempty"`
}

func ToTestAssignmentDTO(m *model.TestAssignmentModel, now time.Time) TestAssignmentDTO {
	out := TestAssignmentDTO{
		TestAssignmentID:  m.TestAssignmentID.String(),
		TestID:            m.TestAssignmentTestID.String(),
		EmployeeKey:       m.TestAssignmentEmployeeKey,
		EmployeeName:      m.TestAssignmentEmployeeName,
		Status:            m.TestAssignmentStatus,
		MaxAttempts:       m.TestAssignmentMaxAttempts,
		RemainingAttempts: m.TestAssignmentRemainingAttempts,
		DueDate:           m.TestAssignmentDueDate.Format("02/01/2006"),
		DueTime:           m.TestAssignmentDueTime.Format("15:04"),
		Overdue:           m.IsOverdue(now),
		ClosedAt:          m.TestAssignmentClosedAt,
	}
	if m.TestAssignmentTest != nil {
		out.TestName = m.TestAssignmentTest.TestName
		out.SkillName = m.TestAssignmentTest.TestSkillName
	}
	return out
}

// =============================
// 🧮 Submission & hasil
// =============================

type SubmitAnswersRequest struct {
	// jawaban per soal: question_id → opsi yang dipilih
	Answers map[string][]string `json:"answers" validate:"required"`
}

type QuestionResultDTO struct {
	QuestionID  string  `json:"question_id"`
	Correct     bool    `json:"correct"`
	EarnedMarks float64 `json:"earned_marks"`
	TotalMarks  float64 `json:"total_marks"`
}

type TestResultDTO struct {
	TestResultID      string              `json:"test_result_id"`
	AssignmentID      string              `json:"assignment_id"`
	AttemptNumber     int                 `json:"attempt_number"`
	EarnedMarks       float64             `json:"earned_marks"`
	TotalMarks        float64             `json:"total_marks"`
	Percentage        float64             `json:"percentage"`
	Passed            bool                `json:"passed"`
	RemainingAttempts int                 `json:"remaining_attempts"`
	Status            string              `json:"status"`
	Breakdown         []QuestionResultDTO `json:"breakdown,omitempty"`
	SubmittedAt       time.Time           `json:"submitted_at"`
}
