package service

import (
	"math"
	"sort"

	"skillmatrix_backend/internals/features/training/model"
)

// QuestionScore: hasil penilaian satu soal.
type QuestionScore struct {
	QuestionID  string
	Correct     bool
	EarnedMarks float64
	TotalMarks  float64
}

// ScoreSummary: hasil penilaian satu attempt. Murni nilai, tanpa state ledger.
type ScoreSummary struct {
	EarnedMarks float64
	TotalMarks  float64
	Percentage  float64
	Passed      bool
	Breakdown   []QuestionScore
}

// ScoreAttempt menilai jawaban terhadap bank soal test. Fungsi murni:
// input sama → output sama, tanpa I/O.
//
// Aturan:
//   - soal single-answer benar kalau tepat satu jawaban dan sama persis;
//   - soal multi-answer benar kalau himpunan jawaban == himpunan kunci
//     (urutan bebas, tanpa partial credit);
//   - soal tanpa jawaban dinilai 0, tidak error;
//   - persen = earned/total*100, dibulatkan dua desimal; total 0 → persen 0;
//   - lulus kalau skor MENTAH >= passing marks (bukan persen yang dibulatkan).
func ScoreAttempt(questions []model.QuestionModel, answers map[string][]string, passingMarks float64) ScoreSummary {
	summary := ScoreSummary{Breakdown: make([]QuestionScore, 0, len(questions))}

	for i := range questions {
		q := &questions[i]
		marks := float64(q.QuestionMarks)
		summary.TotalMarks += marks

		score := QuestionScore{
			QuestionID: q.QuestionID.String(),
			TotalMarks: marks,
		}
		if answersMatch(q, answers[q.QuestionID.String()]) {
			score.Correct = true
			score.EarnedMarks = marks
			summary.EarnedMarks += marks
		}
		summary.Breakdown = append(summary.Breakdown, score)
	}

	// kelulusan dibanding skor mentah; pembulatan dua desimal cuma untuk tampilan
	rawPct := 0.0
	if summary.TotalMarks > 0 {
		rawPct = summary.EarnedMarks / summary.TotalMarks * 100
		summary.Percentage = round2(rawPct)
	}
	summary.Passed = rawPct >= passingMarks
	return summary
}

func answersMatch(q *model.QuestionModel, given []string) bool {
	if len(given) == 0 {
		return false
	}
	if !q.QuestionAllowMultiple {
		return len(given) == 1 && len(q.QuestionCorrectAnswers) == 1 &&
			given[0] == q.QuestionCorrectAnswers[0]
	}
	return sameSet(given, q.QuestionCorrectAnswers)
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
