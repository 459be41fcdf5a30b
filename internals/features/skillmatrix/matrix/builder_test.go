package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleIsSelfInverse(t *testing.T) {
	b := NewBuilder()

	b.Toggle("EMP001", "Welding")
	level, ok := b.Level("EMP001", "Welding")
	require.True(t, ok)
	assert.Equal(t, 4, level)

	b.Toggle("EMP001", "Welding")
	_, ok = b.Level("EMP001", "Welding")
	assert.False(t, ok)
	assert.Equal(t, 0, b.Len())
}

func TestSetLevelClampsAndRequiresCell(t *testing.T) {
	b := NewBuilder()

	err := b.SetLevel("EMP001", "Welding", 3)
	assert.ErrorIs(t, err, ErrCellAbsent)

	b.Toggle("EMP001", "Welding")
	require.NoError(t, b.SetLevel("EMP001", "Welding", 9))
	level, _ := b.Level("EMP001", "Welding")
	assert.Equal(t, 5, level)

	require.NoError(t, b.SetLevel("EMP001", "Welding", -2))
	level, _ = b.Level("EMP001", "Welding")
	assert.Equal(t, 1, level)
}

func TestBulkSetAllKeepsExistingLevels(t *testing.T) {
	b := NewBuilder()

	// satu cell sudah diedit manual ke level 2 sebelum bulk select
	b.Toggle("EMP002", "Painting")
	require.NoError(t, b.SetLevel("EMP002", "Painting", 2))

	employees := []string{"EMP001", "EMP002", "EMP003"}
	skills := []string{"Welding", "Painting"}
	b.BulkSetAll(employees, skills, 4)

	assert.Equal(t, 6, b.Len())

	kept, _ := b.Level("EMP002", "Painting")
	assert.Equal(t, 2, kept, "cell yang sudah ada tidak boleh ditimpa bulk")

	fresh := 0
	for _, emp := range employees {
		for _, skill := range skills {
			level, ok := b.Level(emp, skill)
			require.True(t, ok)
			if level == 4 {
				fresh++
			}
		}
	}
	assert.Equal(t, 5, fresh)
}

func TestBulkClearRoundTrip(t *testing.T) {
	b := NewBuilder()
	b.Toggle("EMP009", "Assembly") // di luar himpunan bulk

	employees := []string{"EMP001", "EMP002"}
	skills := []string{"Welding", "Painting"}
	b.BulkSetAll(employees, skills, 4)
	require.Equal(t, 5, b.Len())

	b.BulkClear(employees, skills)
	assert.Equal(t, 1, b.Len())
	_, ok := b.Level("EMP009", "Assembly")
	assert.True(t, ok)
}

func TestCopyTemplate(t *testing.T) {
	b := NewBuilder()
	b.Toggle("EMP001", "Welding")
	b.Toggle("EMP001", "Painting")
	require.NoError(t, b.SetLevel("EMP001", "Painting", 3))

	copied, err := b.CopyTemplate("EMP001", []string{"EMP001", "EMP002", "EMP003"})
	require.NoError(t, err)
	assert.Equal(t, 2, copied, "source harus dilewati")

	// source tidak berubah
	assert.Equal(t, map[string]int{"Welding": 4, "Painting": 3}, b.SkillsOf("EMP001"))
	// target menerima level persis dari template
	assert.Equal(t, map[string]int{"Welding": 4, "Painting": 3}, b.SkillsOf("EMP002"))
	assert.Equal(t, map[string]int{"Welding": 4, "Painting": 3}, b.SkillsOf("EMP003"))
}

func TestCopyTemplateEmptySource(t *testing.T) {
	b := NewBuilder()
	copied, err := b.CopyTemplate("EMP001", []string{"EMP002"})
	assert.ErrorIs(t, err, ErrEmptyTemplate)
	assert.Equal(t, 0, copied)
	assert.Equal(t, 0, b.Len())
}

func TestCopyTemplateSourceNotMutatedByLaterTargetEdits(t *testing.T) {
	b := NewBuilder()
	b.Toggle("EMP001", "Welding")

	_, err := b.CopyTemplate("EMP001", []string{"EMP002"})
	require.NoError(t, err)

	require.NoError(t, b.SetLevel("EMP002", "Welding", 1))
	level, _ := b.Level("EMP001", "Welding")
	assert.Equal(t, 4, level)
}

func TestSnapshotIsDetached(t *testing.T) {
	b := NewBuilder()
	b.Toggle("EMP001", "Welding")

	snap := b.Snapshot()
	b.Toggle("EMP001", "Welding") // hapus dari builder

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 4, snap[CellKey{EmployeeKey: "EMP001", SkillName: "Welding"}])

	b.Restore(snap)
	level, ok := b.Level("EMP001", "Welding")
	require.True(t, ok)
	assert.Equal(t, 4, level)
}
