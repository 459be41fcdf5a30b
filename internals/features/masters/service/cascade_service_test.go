package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillmatrix_backend/internals/features/masters/model"
)

func TestUniqueCleanNames(t *testing.T) {
	t.Run("drops blanks and None sentinel", func(t *testing.T) {
		got := uniqueCleanNames([]string{"Machining", "", "  ", "None", "Assembly"})
		assert.Equal(t, []string{"Machining", "Assembly"}, got)
	})

	t.Run("dedupe keeps first-seen order", func(t *testing.T) {
		got := uniqueCleanNames([]string{"4DU", "4DX", "4DU", "4DX", "4DU"})
		assert.Equal(t, []string{"4DU", "4DX"}, got)
	})

	t.Run("dedupe is case-sensitive", func(t *testing.T) {
		got := uniqueCleanNames([]string{"Grinding", "grinding"})
		assert.Equal(t, []string{"Grinding", "grinding"}, got)
	})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		assert.Empty(t, uniqueCleanNames(nil))
	})
}

func TestToLabourRecord(t *testing.T) {
	code := "L-1042"

	t.Run("labour code wins as key", func(t *testing.T) {
		rec := toLabourRecord(model.LabourModel{
			LabourID:   "9f0c1a7e-0000-0000-0000-000000000001",
			LabourName: "Ramesh Pawar",
			LabourCode: &code,
		})
		assert.Equal(t, "L-1042", rec.Key)
		assert.Equal(t, "Ramesh Pawar", rec.Name)
		assert.Equal(t, "L-1042", rec.Code)
	})

	t.Run("without code falls back to name+id, still stable", func(t *testing.T) {
		row := model.LabourModel{
			LabourID:   "9f0c1a7e-0000-0000-0000-000000000002",
			LabourName: "Sunil Jadhav",
		}
		first := toLabourRecord(row)
		second := toLabourRecord(row)
		assert.Equal(t, "Sunil Jadhav_9f0c1a7e-0000-0000-0000-000000000002", first.Key)
		assert.Equal(t, first.Key, second.Key) // identitas tidak boleh geser antar fetch
	})
}

func TestIsUsableName(t *testing.T) {
	assert.True(t, isUsableName("CNC Setup"))
	assert.False(t, isUsableName(""))
	assert.False(t, isUsableName("   "))
	assert.False(t, isUsableName("None"))
}
