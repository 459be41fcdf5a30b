package service

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/xuri/excelize/v2"

	"skillmatrix_backend/internals/features/training/model"
)

// Format workbook soal (sheet pertama, baris pertama header):
//
//	A: question_text
//	B: options          (dipisah "|", minimal 2)
//	C: correct_answers  (dipisah "|", harus subset options)
//	D: allow_multiple   (yes/no, default no)
//	E: marks            (default 1)
const optionSeparator = "|"

// ImportError: satu baris yang gagal diparse, dilaporkan tanpa menghentikan
// baris lain.
type ImportError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ParseQuestionWorkbook membaca xlsx menjadi rows QuestionModel (tanpa
// test id — caller yang menempelkan). Baris kosong dilewati.
func ParseQuestionWorkbook(r io.Reader) ([]model.QuestionModel, []ImportError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var questions []model.QuestionModel
	var importErrs []ImportError

	for i, row := range rows {
		if i == 0 { // header
			continue
		}
		rowNum := i + 1
		if isBlankRow(row) {
			continue
		}

		q, reason := parseQuestionRow(row)
		if reason != "" {
			importErrs = append(importErrs, ImportError{Row: rowNum, Reason: reason})
			continue
		}
		q.QuestionOrder = len(questions)
		questions = append(questions, q)
	}
	return questions, importErrs, nil
}

func parseQuestionRow(row []string) (model.QuestionModel, string) {
	var q model.QuestionModel

	text := strings.TrimSpace(cell(row, 0))
	if text == "" {
		return q, "question text is empty"
	}

	options := splitList(cell(row, 1))
	if len(options) < 2 {
		return q, "at least two options are required"
	}

	correct := splitList(cell(row, 2))
	if len(correct) == 0 {
		return q, "correct answers are missing"
	}
	optionSet := make(map[string]bool, len(options))
	for _, opt := range options {
		optionSet[opt] = true
	}
	for _, c := range correct {
		if !optionSet[c] {
			return q, fmt.Sprintf("correct answer %q is not one of the options", c)
		}
	}

	allowMultiple := parseYesNo(cell(row, 3))
	if !allowMultiple && len(correct) > 1 {
		return q, "multiple correct answers require allow_multiple = yes"
	}

	marks := 1
	if raw := strings.TrimSpace(cell(row, 4)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return q, fmt.Sprintf("invalid marks %q", raw)
		}
		marks = n
	}

	q.QuestionText = text
	q.QuestionOptions = pq.StringArray(options)
	q.QuestionCorrectAnswers = pq.StringArray(correct)
	q.QuestionAllowMultiple = allowMultiple
	q.QuestionMarks = marks
	return q, ""
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, optionSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseYesNo(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "true", "1":
		return true
	default:
		return false
	}
}
