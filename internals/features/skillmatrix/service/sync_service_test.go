package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"skillmatrix_backend/internals/features/skillmatrix/dto"
	"skillmatrix_backend/internals/features/skillmatrix/model"
)

// fakeStore: store in-memory, bisa dipaksa gagal per operasi.
type fakeStore struct {
	rows        map[uuid.UUID]*model.SkillAssignmentModel
	failUpdate  error
	failDelete  error
	savedBatch  []model.SkillAssignmentModel
	deletedIDs  []uuid.UUID
	updatedNews []int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[uuid.UUID]*model.SkillAssignmentModel)}
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*model.SkillAssignmentModel, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *row
	return &cp, nil
}

func (f *fakeStore) SaveBatch(_ context.Context, rows []model.SkillAssignmentModel) (int, error) {
	f.savedBatch = append(f.savedBatch, rows...)
	return len(rows), nil
}

func (f *fakeStore) UpdateLevel(_ context.Context, id uuid.UUID, level int) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	f.rows[id].SkillAssignmentLevel = level
	f.updatedNews = append(f.updatedNews, level)
	return nil
}

func (f *fakeStore) SoftDelete(_ context.Context, id uuid.UUID) error {
	if f.failDelete != nil {
		return f.failDelete
	}
	delete(f.rows, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeStore) List(_ context.Context, _ AssignmentFilter) ([]model.SkillAssignmentModel, int64, error) {
	out := make([]model.SkillAssignmentModel, 0, len(f.rows))
	for _, row := range f.rows {
		out = append(out, *row)
	}
	return out, int64(len(out)), nil
}

func seedAssignment(f *fakeStore, level int) uuid.UUID {
	id := uuid.New()
	f.rows[id] = &model.SkillAssignmentModel{
		SkillAssignmentID:            id,
		SkillAssignmentEmployeeKey:   "EMP001",
		SkillAssignmentEmployeeName:  "Ravi Pawar",
		SkillAssignmentSkillName:     "Welding",
		SkillAssignmentSkillType:     "F",
		SkillAssignmentLevel:         level,
		SkillAssignmentRequiredLevel: 4,
		SkillAssignmentDepartment:    "Assembly",
		SkillAssignmentLine:          "Line-1",
		SkillAssignmentPlantCode:     2021,
	}
	return id
}

func TestBuildAssignmentsDeterministicAndDenormalized(t *testing.T) {
	store := NewDraftStore()
	draft := store.Create("Assembly", "Line-1", 2021)

	draft.Builder.Toggle("EMP002", "Painting")
	draft.Builder.Toggle("EMP001", "Welding")
	draft.Builder.Toggle("EMP001", "Painting")
	require.NoError(t, draft.Builder.SetLevel("EMP001", "Painting", 2))

	req := dto.CommitDraftRequest{
		EmployeeNames: map[string]string{"EMP001": "Ravi Pawar"},
		EmployeeCodes: map[string]string{"EMP001": "LC-17"},
		SkillTypes:    map[string]string{"Welding": "F", "Painting": "zzz"},
	}

	rows := BuildAssignments(draft, req)
	require.Len(t, rows, 3)

	// urutan stabil: employee lalu skill
	assert.Equal(t, "EMP001", rows[0].SkillAssignmentEmployeeKey)
	assert.Equal(t, "Painting", rows[0].SkillAssignmentSkillName)
	assert.Equal(t, 2, rows[0].SkillAssignmentLevel)
	assert.Equal(t, "Welding", rows[1].SkillAssignmentSkillName)
	assert.Equal(t, "EMP002", rows[2].SkillAssignmentEmployeeKey)

	// denormalisasi: nama dari request, fallback ke key kalau kosong
	assert.Equal(t, "Ravi Pawar", rows[0].SkillAssignmentEmployeeName)
	require.NotNil(t, rows[0].SkillAssignmentEmployeeCode)
	assert.Equal(t, "LC-17", *rows[0].SkillAssignmentEmployeeCode)
	assert.Equal(t, "EMP002", rows[2].SkillAssignmentEmployeeName)
	assert.Nil(t, rows[2].SkillAssignmentEmployeeCode)

	// tipe skill tidak valid → default G
	assert.Equal(t, "F", rows[1].SkillAssignmentSkillType)
	assert.Equal(t, "G", rows[0].SkillAssignmentSkillType)

	assert.Equal(t, "Assembly", rows[0].SkillAssignmentDepartment)
	assert.Equal(t, 2021, rows[0].SkillAssignmentPlantCode)
}

func TestApplyLevelUpdateOptimisticSuccess(t *testing.T) {
	store := newFakeStore()
	id := seedAssignment(store, 3)
	svc := NewSyncService(store)

	out, err := svc.ApplyLevelUpdate(context.Background(), id, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Level)
	assert.True(t, out.MeetsRequirement)
	assert.Equal(t, 5, store.rows[id].SkillAssignmentLevel)
}

func TestApplyLevelUpdateRollsBackOnStoreFailure(t *testing.T) {
	store := newFakeStore()
	id := seedAssignment(store, 3)
	store.failUpdate = errors.New("db down")
	svc := NewSyncService(store)

	out, err := svc.ApplyLevelUpdate(context.Background(), id, 5)
	require.Error(t, err)
	// caller menerima state lama, bukan level yang gagal disimpan
	assert.Equal(t, 3, out.Level)
	assert.Equal(t, 3, store.rows[id].SkillAssignmentLevel)
}

func TestRemoveIsPessimistic(t *testing.T) {
	store := newFakeStore()
	id := seedAssignment(store, 4)
	store.failDelete = errors.New("db down")
	svc := NewSyncService(store)

	err := svc.Remove(context.Background(), id)
	require.Error(t, err)
	// gagal di store → record tetap ada
	assert.Contains(t, store.rows, id)

	store.failDelete = nil
	require.NoError(t, svc.Remove(context.Background(), id))
	assert.NotContains(t, store.rows, id)
}

// Index unik cell-nya partial (where deleted_at IS NULL); kalau predikatnya
// tidak diulang di target ON CONFLICT, Postgres menolak upsert dengan 42P10
// dan semua commit draft gagal.
func TestSaveBatchConflictTargetRepeatsPartialIndexPredicate(t *testing.T) {
	// DryRun: cuma merakit SQL, tidak pernah menyentuh jaringan/DB
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=skillmatrix dbname=skillmatrix",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	rows := []model.SkillAssignmentModel{{
		SkillAssignmentEmployeeKey:   "EMP001",
		SkillAssignmentEmployeeName:  "Ravi Pawar",
		SkillAssignmentSkillName:     "Welding",
		SkillAssignmentSkillType:     "F",
		SkillAssignmentLevel:         4,
		SkillAssignmentRequiredLevel: 4,
		SkillAssignmentDepartment:    "Assembly",
		SkillAssignmentLine:          "Line-1",
		SkillAssignmentPlantCode:     2021,
	}}

	tx := db.Clauses(assignmentConflictClause()).Create(&rows)
	require.NoError(t, tx.Error)

	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, `ON CONFLICT ("skill_assignment_employee_key","skill_assignment_skill_name")`)
	assert.Contains(t, sql, `"excluded"."skill_assignment_level"`)

	// predikat harus di target (sebelum DO UPDATE), bukan cuma di klausa update
	wherePos := strings.Index(sql, "WHERE deleted_at IS NULL")
	updatePos := strings.Index(sql, "DO UPDATE")
	require.GreaterOrEqual(t, wherePos, 0)
	require.GreaterOrEqual(t, updatePos, 0)
	assert.Less(t, wherePos, updatePos)
}

func TestCommitEmptyDraftIsNoop(t *testing.T) {
	store := newFakeStore()
	svc := NewSyncService(store)
	drafts := NewDraftStore()
	draft := drafts.Create("Assembly", "Line-1", 2021)

	saved, err := svc.Commit(context.Background(), draft, dto.CommitDraftRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, saved)
	assert.Empty(t, store.savedBatch)
}
