package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillmatrix_backend/internals/features/training/model"
)

func question(text string, options, correct []string, multiple bool, marks int) model.QuestionModel {
	return model.QuestionModel{
		QuestionID:             uuid.New(),
		QuestionText:           text,
		QuestionOptions:        pq.StringArray(options),
		QuestionCorrectAnswers: pq.StringArray(correct),
		QuestionAllowMultiple:  multiple,
		QuestionMarks:          marks,
	}
}

func TestScoreAttemptTwoOfThree(t *testing.T) {
	q1 := question("Q1", []string{"A", "B"}, []string{"A"}, false, 1)
	q2 := question("Q2", []string{"A", "B"}, []string{"B"}, false, 1)
	q3 := question("Q3", []string{"A", "B"}, []string{"A"}, false, 1)
	questions := []model.QuestionModel{q1, q2, q3}

	answers := map[string][]string{
		q1.QuestionID.String(): {"A"},
		q2.QuestionID.String(): {"A"}, // salah
		q3.QuestionID.String(): {"A"},
	}

	got := ScoreAttempt(questions, answers, 70)
	assert.Equal(t, 2.0, got.EarnedMarks)
	assert.Equal(t, 3.0, got.TotalMarks)
	assert.Equal(t, 66.67, got.Percentage)
	assert.False(t, got.Passed)
	require.Len(t, got.Breakdown, 3)
	assert.True(t, got.Breakdown[0].Correct)
	assert.False(t, got.Breakdown[1].Correct)
}

func TestScoreAttemptUnansweredIsZeroNotError(t *testing.T) {
	q1 := question("Q1", []string{"A", "B"}, []string{"A"}, false, 2)
	q2 := question("Q2", []string{"A", "B"}, []string{"B"}, false, 2)

	answers := map[string][]string{
		q1.QuestionID.String(): {"A"},
		// q2 dilewati
	}

	got := ScoreAttempt([]model.QuestionModel{q1, q2}, answers, 50)
	assert.Equal(t, 2.0, got.EarnedMarks)
	assert.Equal(t, 50.0, got.Percentage)
	assert.True(t, got.Passed) // >= passing marks lulus
	assert.False(t, got.Breakdown[1].Correct)
	assert.Equal(t, 0.0, got.Breakdown[1].EarnedMarks)
}

func TestScoreAttemptMultiAnswerSetSemantics(t *testing.T) {
	q := question("Q", []string{"A", "B", "C", "D"}, []string{"A", "C"}, true, 3)
	questions := []model.QuestionModel{q}
	id := q.QuestionID.String()

	// urutan bebas
	got := ScoreAttempt(questions, map[string][]string{id: {"C", "A"}}, 100)
	assert.True(t, got.Passed)
	assert.Equal(t, 3.0, got.EarnedMarks)

	// subset → tanpa partial credit
	got = ScoreAttempt(questions, map[string][]string{id: {"A"}}, 100)
	assert.Equal(t, 0.0, got.EarnedMarks)

	// superset juga salah
	got = ScoreAttempt(questions, map[string][]string{id: {"A", "C", "D"}}, 100)
	assert.Equal(t, 0.0, got.EarnedMarks)
}

func TestScoreAttemptSingleAnswerRejectsMultipleSelections(t *testing.T) {
	q := question("Q", []string{"A", "B"}, []string{"A"}, false, 1)
	got := ScoreAttempt([]model.QuestionModel{q}, map[string][]string{
		q.QuestionID.String(): {"A", "B"},
	}, 50)
	assert.Equal(t, 0.0, got.EarnedMarks)
}

// 2/3 = 66.666…% tampil sebagai 66.67, tapi dengan passing marks 66.67
// peserta TIDAK lulus — pembulatan tampilan tidak boleh mendongkrak kelulusan.
func TestScoreAttemptPassComparesRawScoreNotRounded(t *testing.T) {
	q1 := question("Q1", []string{"A", "B"}, []string{"A"}, false, 1)
	q2 := question("Q2", []string{"A", "B"}, []string{"B"}, false, 1)
	q3 := question("Q3", []string{"A", "B"}, []string{"A"}, false, 1)
	questions := []model.QuestionModel{q1, q2, q3}
	answers := map[string][]string{
		q1.QuestionID.String(): {"A"},
		q3.QuestionID.String(): {"A"},
	}

	got := ScoreAttempt(questions, answers, 66.67)
	assert.Equal(t, 66.67, got.Percentage)
	assert.False(t, got.Passed, "66.666… < 66.67 meski tampilannya sama")

	got = ScoreAttempt(questions, answers, 66.66)
	assert.True(t, got.Passed)
}

func TestScoreAttemptEmptyBank(t *testing.T) {
	got := ScoreAttempt(nil, nil, 70)
	assert.Equal(t, 0.0, got.TotalMarks)
	assert.Equal(t, 0.0, got.Percentage)
	assert.False(t, got.Passed)
}

func TestScoreAttemptDeterministic(t *testing.T) {
	q1 := question("Q1", []string{"A", "B"}, []string{"A"}, false, 1)
	q2 := question("Q2", []string{"A", "B", "C"}, []string{"B", "C"}, true, 2)
	questions := []model.QuestionModel{q1, q2}
	answers := map[string][]string{
		q1.QuestionID.String(): {"A"},
		q2.QuestionID.String(): {"C", "B"},
	}

	first := ScoreAttempt(questions, answers, 70)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ScoreAttempt(questions, answers, 70))
	}
}
