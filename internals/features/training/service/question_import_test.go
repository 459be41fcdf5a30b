package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookOf(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseQuestionWorkbook(t *testing.T) {
	buf := workbookOf(t, [][]string{
		{"question_text", "options", "correct_answers", "allow_multiple", "marks"},
		{"What is the welding current unit?", "Ampere|Volt|Watt", "Ampere", "no", "2"},
		{"Select all PPE items", "Gloves|Helmet|Sandals", "Gloves|Helmet", "yes", ""},
		{"", "", "", "", ""}, // baris kosong dilewati
	})

	questions, importErrs, err := ParseQuestionWorkbook(buf)
	require.NoError(t, err)
	assert.Empty(t, importErrs)
	require.Len(t, questions, 2)

	assert.Equal(t, "What is the welding current unit?", questions[0].QuestionText)
	assert.Equal(t, []string{"Ampere", "Volt", "Watt"}, []string(questions[0].QuestionOptions))
	assert.Equal(t, 2, questions[0].QuestionMarks)
	assert.False(t, questions[0].QuestionAllowMultiple)
	assert.Equal(t, 0, questions[0].QuestionOrder)

	assert.True(t, questions[1].QuestionAllowMultiple)
	assert.Equal(t, 1, questions[1].QuestionMarks) // default
	assert.Equal(t, 1, questions[1].QuestionOrder)
}

func TestParseQuestionWorkbookReportsBadRows(t *testing.T) {
	buf := workbookOf(t, [][]string{
		{"question_text", "options", "correct_answers", "allow_multiple", "marks"},
		{"Only one option", "A", "A", "no", "1"},
		{"Answer not in options", "A|B", "C", "no", "1"},
		{"Multi without flag", "A|B|C", "A|B", "no", "1"},
		{"Good one", "A|B", "B", "no", "1"},
	})

	questions, importErrs, err := ParseQuestionWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Good one", questions[0].QuestionText)

	require.Len(t, importErrs, 3)
	assert.Equal(t, 2, importErrs[0].Row)
	assert.Contains(t, importErrs[1].Reason, "not one of the options")
	assert.Contains(t, importErrs[2].Reason, "allow_multiple")
}
