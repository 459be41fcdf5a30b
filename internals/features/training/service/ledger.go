package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skillmatrix_backend/internals/features/training/dto"
	"skillmatrix_backend/internals/features/training/model"
	"skillmatrix_backend/internals/helpers/dbtime"
)

var (
	ErrDueInPast   = errors.New("ledger: due date/time already passed")
	ErrNoQuestions = errors.New("ledger: test has no questions")
)

// dua submit paralel tidak boleh mengkonsumsi attempt yang sama
func lockForUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

// LedgerService: siklus hidup assignment test (assign → attempt → hasil).
type LedgerService struct {
	DB       *gorm.DB
	Promoter SkillLevelPromoter
}

func NewLedgerService(db *gorm.DB, promoter SkillLevelPromoter) *LedgerService {
	return &LedgerService{DB: db, Promoter: promoter}
}

// =============================
// 📌 Assign
// =============================

// AssignParams: hasil validasi request assign, siap dipakai tanpa I/O lagi.
type AssignParams struct {
	TestID      uuid.UUID
	MaxAttempts int
	DueDate     time.Time
	DueTime     dbtime.Tod
}

// ValidateAssignRequest memvalidasi seluruh input SEBELUM menyentuh DB:
// max attempts >= 1, tanggal DD/MM/YYYY, jam HH:MM, deadline belum lewat.
func ValidateAssignRequest(req dto.AssignTestRequest, now time.Time) (AssignParams, error) {
	var out AssignParams

	if req.MaxAttempts < 1 {
		return out, model.ErrAttemptsNotConfigured
	}

	testID, err := uuid.Parse(req.TestID)
	if err != nil {
		return out, fmt.Errorf("ledger: invalid test id: %w", err)
	}

	dueDate, err := time.ParseInLocation("02/01/2006", req.DueDate, now.Location())
	if err != nil {
		return out, fmt.Errorf("ledger: due date must be DD/MM/YYYY: %w", err)
	}

	dueTime, err := dbtime.Parse(req.DueTime)
	if err != nil {
		return out, fmt.Errorf("ledger: due time must be HH:MM: %w", err)
	}

	deadline := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(),
		dueTime.Hour(), dueTime.Minute(), 0, 0, now.Location())
	if !deadline.After(now) {
		return out, ErrDueInPast
	}

	out = AssignParams{TestID: testID, MaxAttempts: req.MaxAttempts, DueDate: dueDate, DueTime: dueTime}
	return out, nil
}

// Assign membuat satu assignment per karyawan. Karyawan yang sudah punya
// assignment aktif untuk test yang sama dilewati, bukan digandakan.
func (s *LedgerService) Assign(ctx context.Context, req dto.AssignTestRequest, plantCode int, assignedBy string) ([]model.TestAssignmentModel, error) {
	params, err := ValidateAssignRequest(req, time.Now())
	if err != nil {
		return nil, err
	}

	var test model.TestModel
	if err := s.DB.WithContext(ctx).First(&test, "test_id = ?", params.TestID).Error; err != nil {
		return nil, err
	}

	created := make([]model.TestAssignmentModel, 0, len(req.EmployeeKeys))
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, empKey := range req.EmployeeKeys {
			var exists int64
			if err := tx.Model(&model.TestAssignmentModel{}).
				Where("test_assignment_test_id = ? AND test_assignment_employee_key = ? AND test_assignment_status = ?",
					params.TestID, empKey, model.AssignmentStatusAssigned).
				Count(&exists).Error; err != nil {
				return err
			}
			if exists > 0 {
				continue
			}

			name := req.EmployeeNames[empKey]
			if name == "" {
				name = empKey
			}
			row := model.TestAssignmentModel{
				TestAssignmentTestID:            params.TestID,
				TestAssignmentEmployeeKey:       empKey,
				TestAssignmentEmployeeName:      name,
				TestAssignmentStatus:            model.AssignmentStatusAssigned,
				TestAssignmentMaxAttempts:       params.MaxAttempts,
				TestAssignmentRemainingAttempts: params.MaxAttempts,
				TestAssignmentDueDate:           params.DueDate,
				TestAssignmentDueTime:           params.DueTime,
				TestAssignmentPlantCode:         plantCode,
				TestAssignmentAssignedBy:        assignedBy,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			created = append(created, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// =============================
// 🧮 Submission
// =============================

// RecordSubmission menilai jawaban dan memutasi ledger dalam satu transaksi:
// guard state → score → consume attempt → simpan hasil immutable →
// promosi level skill kalau lulus.
func (s *LedgerService) RecordSubmission(ctx context.Context, assignmentID uuid.UUID, answers map[string][]string) (dto.TestResultDTO, error) {
	var out dto.TestResultDTO
	now := time.Now()

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assignment model.TestAssignmentModel
		if err := tx.Clauses(lockForUpdate()).
			Preload("TestAssignmentTest").
			First(&assignment, "test_assignment_id = ?", assignmentID).Error; err != nil {
			return err
		}
		if err := assignment.CanSubmit(); err != nil {
			return err
		}
		test := assignment.TestAssignmentTest
		if test == nil {
			return gorm.ErrRecordNotFound
		}

		var questions []model.QuestionModel
		if err := tx.Where("question_test_id = ?", test.TestID).
			Order("question_order ASC").
			Find(&questions).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return ErrNoQuestions
		}

		summary := ScoreAttempt(questions, answers, test.TestPassingMarks)
		attemptNumber := assignment.TestAssignmentMaxAttempts - assignment.TestAssignmentRemainingAttempts + 1

		if err := assignment.ApplyResult(summary.Passed, now); err != nil {
			return err
		}

		breakdown := make([]dto.QuestionResultDTO, 0, len(summary.Breakdown))
		for _, q := range summary.Breakdown {
			breakdown = append(breakdown, dto.QuestionResultDTO{
				QuestionID:  q.QuestionID,
				Correct:     q.Correct,
				EarnedMarks: q.EarnedMarks,
				TotalMarks:  q.TotalMarks,
			})
		}
		breakdownJSON, err := sonic.Marshal(breakdown)
		if err != nil {
			return err
		}

		result := model.TestResultModel{
			TestResultAssignmentID:  assignment.TestAssignmentID,
			TestResultAttemptNumber: attemptNumber,
			TestResultEarnedMarks:   summary.EarnedMarks,
			TestResultTotalMarks:    summary.TotalMarks,
			TestResultPercentage:    summary.Percentage,
			TestResultPassed:        summary.Passed,
			TestResultBreakdown:     datatypes.JSON(breakdownJSON),
			TestResultSubmittedAt:   now,
		}
		if err := tx.Create(&result).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.TestAssignmentModel{}).
			Where("test_assignment_id = ?", assignment.TestAssignmentID).
			Updates(map[string]any{
				"test_assignment_status":             assignment.TestAssignmentStatus,
				"test_assignment_remaining_attempts": assignment.TestAssignmentRemainingAttempts,
				"test_assignment_closed_at":          assignment.TestAssignmentClosedAt,
			}).Error; err != nil {
			return err
		}

		if summary.Passed && s.Promoter != nil {
			if err := s.Promoter.PromoteOnPass(ctx,
				assignment.TestAssignmentEmployeeKey,
				test.TestSkillName,
				assignment.TestAssignmentPlantCode); err != nil {
				// promosi gagal tidak membatalkan hasil test
				log.Printf("[WARN] skill promotion failed for %s/%s: %v",
					assignment.TestAssignmentEmployeeKey, test.TestSkillName, err)
			}
		}

		out = dto.TestResultDTO{
			TestResultID:      result.TestResultID.String(),
			AssignmentID:      assignment.TestAssignmentID.String(),
			AttemptNumber:     attemptNumber,
			EarnedMarks:       summary.EarnedMarks,
			TotalMarks:        summary.TotalMarks,
			Percentage:        summary.Percentage,
			Passed:            summary.Passed,
			RemainingAttempts: assignment.TestAssignmentRemainingAttempts,
			Status:            assignment.TestAssignmentStatus,
			Breakdown:         breakdown,
			SubmittedAt:       now,
		}
		return nil
	})
	if err != nil {
		return dto.TestResultDTO{}, err
	}
	return out, nil
}

// ListResults: histori attempt satu assignment, terbaru dulu.
func (s *LedgerService) ListResults(ctx context.Context, assignmentID uuid.UUID) ([]model.TestResultModel, error) {
	var rows []model.TestResultModel
	err := s.DB.WithContext(ctx).
		Where("test_result_assignment_id = ?", assignmentID).
		Order("test_result_attempt_number DESC").
		Find(&rows).Error
	return rows, err
}
