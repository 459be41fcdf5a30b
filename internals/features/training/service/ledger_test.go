package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillmatrix_backend/internals/features/training/dto"
	"skillmatrix_backend/internals/features/training/model"
	"skillmatrix_backend/internals/helpers/dbtime"
)

func TestValidateAssignRequest(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	base := dto.AssignTestRequest{
		TestID:      uuid.NewString(),
		MaxAttempts: 2,
		DueDate:     "15/03/2026",
		DueTime:     "17:30",
	}

	t.Run("valid", func(t *testing.T) {
		params, err := ValidateAssignRequest(base, now)
		require.NoError(t, err)
		assert.Equal(t, 2, params.MaxAttempts)
		assert.Equal(t, 15, params.DueDate.Day())
		assert.Equal(t, "17:30", params.DueTime.Format("15:04"))
	})

	t.Run("max attempts nol ditolak sebelum I/O", func(t *testing.T) {
		req := base
		req.MaxAttempts = 0
		_, err := ValidateAssignRequest(req, now)
		assert.ErrorIs(t, err, model.ErrAttemptsNotConfigured)
	})

	t.Run("format tanggal salah", func(t *testing.T) {
		req := base
		req.DueDate = "2026-03-15"
		_, err := ValidateAssignRequest(req, now)
		assert.Error(t, err)
	})

	t.Run("deadline sudah lewat", func(t *testing.T) {
		req := base
		req.DueDate = "01/03/2026"
		_, err := ValidateAssignRequest(req, now)
		assert.ErrorIs(t, err, ErrDueInPast)
	})

	t.Run("test id bukan uuid", func(t *testing.T) {
		req := base
		req.TestID = "not-a-uuid"
		_, err := ValidateAssignRequest(req, now)
		assert.Error(t, err)
	})
}

// jalan lengkap state machine dengan max attempts 2:
// gagal → masih assigned sisa 1; gagal lagi → failed terminal.
func TestAssignmentLedgerWalkFailTwice(t *testing.T) {
	now := time.Now()
	a := model.TestAssignmentModel{
		TestAssignmentStatus:            model.AssignmentStatusAssigned,
		TestAssignmentMaxAttempts:       2,
		TestAssignmentRemainingAttempts: 2,
	}

	require.NoError(t, a.CanSubmit())
	require.NoError(t, a.ApplyResult(false, now))
	assert.Equal(t, model.AssignmentStatusAssigned, a.TestAssignmentStatus)
	assert.Equal(t, 1, a.TestAssignmentRemainingAttempts)
	assert.Nil(t, a.TestAssignmentClosedAt)

	require.NoError(t, a.ApplyResult(false, now))
	assert.Equal(t, model.AssignmentStatusFailed, a.TestAssignmentStatus)
	assert.Equal(t, 0, a.TestAssignmentRemainingAttempts)
	require.NotNil(t, a.TestAssignmentClosedAt)

	// state terminal menolak submission berikutnya
	assert.ErrorIs(t, a.CanSubmit(), model.ErrAssignmentClosed)
	assert.ErrorIs(t, a.ApplyResult(true, now), model.ErrAssignmentClosed)
}

func TestAssignmentLedgerPassIsTerminalEvenWithAttemptsLeft(t *testing.T) {
	now := time.Now()
	a := model.TestAssignmentModel{
		TestAssignmentStatus:            model.AssignmentStatusAssigned,
		TestAssignmentMaxAttempts:       3,
		TestAssignmentRemainingAttempts: 3,
	}

	require.NoError(t, a.ApplyResult(true, now))
	assert.Equal(t, model.AssignmentStatusPassed, a.TestAssignmentStatus)
	assert.Equal(t, 2, a.TestAssignmentRemainingAttempts)
	assert.ErrorIs(t, a.CanSubmit(), model.ErrAssignmentClosed)
}

func TestAssignmentOverdue(t *testing.T) {
	loc := time.UTC
	due, _ := time.ParseInLocation("02/01/2006", "10/03/2026", loc)
	dueTime, _ := dbtime.Parse("17:30")

	a := model.TestAssignmentModel{
		TestAssignmentDueDate: due,
		TestAssignmentDueTime: dueTime,
	}

	assert.False(t, a.IsOverdue(time.Date(2026, 3, 10, 17, 29, 0, 0, loc)))
	assert.True(t, a.IsOverdue(time.Date(2026, 3, 10, 17, 31, 0, 0, loc)))
}
