package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillmatrix_backend/internals/helpers/dbtime"
)

// Status assignment. "assigned" satu-satunya state yang menerima submission;
// "passed" dan "failed" terminal.
const (
	AssignmentStatusAssigned = "assigned"
	AssignmentStatusPassed   = "passed"
	AssignmentStatusFailed   = "failed"
)

var (
	ErrAssignmentClosed      = errors.New("assignment: already in a terminal state")
	ErrNoAttemptsLeft        = errors.New("assignment: no attempts remaining")
	ErrAttemptsNotConfigured = errors.New("assignment: max attempts must be at least 1")
)

// TestAssignmentModel: ledger penugasan test ke satu karyawan.
type TestAssignmentModel struct {
	TestAssignmentID     uuid.UUID `gorm:"column:test_assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"test_assignment_id"`
	TestAssignmentTestID uuid.UUID `gorm:"column:test_assignment_test_id;type:uuid;not null;index" json:"test_assignment_test_id"`

	TestAssignmentEmployeeKey  string `gorm:"column:test_assignment_employee_key;type:varchar(80);not null;index" json:"test_assignment_employee_key"`
	TestAssignmentEmployeeName string `gorm:"column:test_assignment_employee_name;type:varchar(120);not null" json:"test_assignment_employee_name"`

	TestAssignmentStatus            string `gorm:"column:test_assignment_status;type:varchar(20);not null;default:'assigned'" json:"test_assignment_status"`
	TestAssignmentMaxAttempts       int    `gorm:"column:test_assignment_max_attempts;not null" json:"test_assignment_max_attempts"`
	TestAssignmentRemainingAttempts int    `gorm:"column:test_assignment_remaining_attempts;not null" json:"test_assignment_remaining_attempts"`

	TestAssignmentDueDate time.Time  `gorm:"column:test_assignment_due_date;type:date;not null" json:"test_assignment_due_date"`
	TestAssignmentDueTime dbtime.Tod `gorm:"column:test_assignment_due_time;type:time;not null" json:"test_assignment_due_time"`

	TestAssignmentPlantCode  int        `gorm:"column:test_assignment_plant_code;not null;index" json:"test_assignment_plant_code"`
	TestAssignmentAssignedBy string     `gorm:"column:test_assignment_assigned_by;type:varchar(80);not null" json:"test_assignment_assigned_by"`
	TestAssignmentClosedAt   *time.Time `gorm:"column:test_assignment_closed_at" json:"test_assignment_closed_at,omitempty"`

	TestAssignmentCreatedAt time.Time      `gorm:"column:test_assignment_created_at;autoCreateTime" json:"test_assignment_created_at"`
	TestAssignmentUpdatedAt time.Time      `gorm:"column:test_assignment_updated_at;autoUpdateTime" json:"test_assignment_updated_at"`
	TestAssignmentDeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`

	TestAssignmentTest *TestModel `gorm:"foreignKey:TestAssignmentTestID;references:TestID" json:"test_assignment_test,omitempty"`
}

func (TestAssignmentModel) TableName() string {
	return "hr_test_assignments"
}

// =============================
// 🔁 State machine
// =============================

// CanSubmit: hanya assignment aktif dengan sisa attempt yang boleh submit.
func (m *TestAssignmentModel) CanSubmit() error {
	if m.TestAssignmentStatus != AssignmentStatusAssigned {
		return ErrAssignmentClosed
	}
	if m.TestAssignmentRemainingAttempts <= 0 {
		return ErrNoAttemptsLeft
	}
	return nil
}

// ApplyResult mengkonsumsi satu attempt dan mentransisikan status:
//   - lulus → passed (terminal, sisa attempt tidak relevan lagi)
//   - gagal + attempt habis → failed (terminal)
//   - gagal + attempt tersisa → tetap assigned
func (m *TestAssignmentModel) ApplyResult(passed bool, now time.Time) error {
	if err := m.CanSubmit(); err != nil {
		return err
	}

	m.TestAssignmentRemainingAttempts--

	switch {
	case passed:
		m.TestAssignmentStatus = AssignmentStatusPassed
		m.TestAssignmentClosedAt = &now
	case m.TestAssignmentRemainingAttempts <= 0:
		m.TestAssignmentStatus = AssignmentStatusFailed
		m.TestAssignmentClosedAt = &now
	}
	return nil
}

// IsOverdue: deadline = due date + due time (digabung di timezone now).
func (m *TestAssignmentModel) IsOverdue(now time.Time) bool {
	d := m.TestAssignmentDueDate
	deadline := time.Date(d.Year(), d.Month(), d.Day(),
		m.TestAssignmentDueTime.Hour(), m.TestAssignmentDueTime.Minute(), 0, 0, now.Location())
	return now.After(deadline)
}
