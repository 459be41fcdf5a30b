package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skillmatrix_backend/internals/constants"
	"skillmatrix_backend/internals/features/skillmatrix/dto"
	"skillmatrix_backend/internals/features/skillmatrix/matrix"
	"skillmatrix_backend/internals/features/skillmatrix/model"
)

// AssignmentStore: akses persistence assignment; di-interface-kan supaya
// sync service bisa dites dengan store palsu yang gagal di tengah.
type AssignmentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.SkillAssignmentModel, error)
	SaveBatch(ctx context.Context, rows []model.SkillAssignmentModel) (int, error)
	UpdateLevel(ctx context.Context, id uuid.UUID, level int) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter AssignmentFilter) ([]model.SkillAssignmentModel, int64, error)
}

type AssignmentFilter struct {
	PlantCode  int
	Department string
	Line       string
	SkillName  string
	Limit      int
	Offset     int
}

// SyncService menjembatani draft in-memory dengan assignment tersimpan.
//
// Asimetri yang disengaja:
//   - update level = OPTIMISTIC: model di-mutate dulu, persist menyusul;
//     kalau persist gagal, level di-rollback dan caller menerima state lama.
//   - delete = PESSIMISTIC: store dikonfirmasi dulu, baru cell dianggap hilang.
type SyncService struct {
	Store AssignmentStore
}

func NewSyncService(store AssignmentStore) *SyncService {
	return &SyncService{Store: store}
}

// =============================
// 🔁 Build & commit draft
// =============================

func cellKeyOf(employeeKey, skillName string) matrix.CellKey {
	return matrix.CellKey{EmployeeKey: employeeKey, SkillName: skillName}
}

// BuildAssignments: transform murni snapshot draft → rows siap simpan.
// Urutan deterministik (employee, lalu skill) supaya batch insert stabil.
func BuildAssignments(draft *Draft, req dto.CommitDraftRequest) []model.SkillAssignmentModel {
	snapshot := draft.Builder.Snapshot()

	keys := make([]struct {
		Emp   string
		Skill string
	}, 0, len(snapshot))
	for key := range snapshot {
		keys = append(keys, struct {
			Emp   string
			Skill string
		}{key.EmployeeKey, key.SkillName})
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Emp != keys[j].Emp {
			return keys[i].Emp < keys[j].Emp
		}
		return keys[i].Skill < keys[j].Skill
	})

	rows := make([]model.SkillAssignmentModel, 0, len(keys))
	for _, k := range keys {
		level := snapshot[cellKeyOf(k.Emp, k.Skill)]

		name := req.EmployeeNames[k.Emp]
		if name == "" {
			name = k.Emp
		}

		var code *string
		if c, ok := req.EmployeeCodes[k.Emp]; ok && c != "" {
			code = &c
		}

		skillType := req.SkillTypes[k.Skill]
		if !constants.IsValidSkillType(skillType) {
			skillType = constants.DefaultSkillType
		}

		rows = append(rows, model.SkillAssignmentModel{
			SkillAssignmentEmployeeKey:   k.Emp,
			SkillAssignmentEmployeeName:  name,
			SkillAssignmentEmployeeCode:  code,
			SkillAssignmentSkillName:     k.Skill,
			SkillAssignmentSkillType:     skillType,
			SkillAssignmentLevel:         constants.ClampSkillLevel(level),
			SkillAssignmentRequiredLevel: constants.RequiredSkillLevel,
			SkillAssignmentDepartment:    draft.Department,
			SkillAssignmentLine:          draft.Line,
			SkillAssignmentPlantCode:     draft.PlantCode,
		})
	}
	return rows
}

// Commit menyimpan seluruh cell draft sebagai batch.
func (s *SyncService) Commit(ctx context.Context, draft *Draft, req dto.CommitDraftRequest) (int, error) {
	rows := BuildAssignments(draft, req)
	if len(rows) == 0 {
		return 0, nil
	}
	saved, err := s.Store.SaveBatch(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("commit draft: %w", err)
	}
	return saved, nil
}

// =============================
// ✏️ Optimistic level update
// =============================

// ApplyLevelUpdate mengembalikan DTO hasil akhir: state baru kalau persist
// sukses, state lama (hasil rollback) kalau gagal — error ikut dikembalikan
// supaya controller bisa memberi tahu client bahwa perubahan dibatalkan.
func (s *SyncService) ApplyLevelUpdate(ctx context.Context, id uuid.UUID, level int) (dto.SkillAssignmentDTO, error) {
	row, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return dto.SkillAssignmentDTO{}, err
	}

	oldLevel := row.SkillAssignmentLevel
	row.SkillAssignmentLevel = constants.ClampSkillLevel(level)

	if err := s.Store.UpdateLevel(ctx, id, row.SkillAssignmentLevel); err != nil {
		// rollback: kembalikan representasi lama ke caller
		row.SkillAssignmentLevel = oldLevel
		return dto.ToSkillAssignmentDTO(row), fmt.Errorf("update level reverted: %w", err)
	}
	return dto.ToSkillAssignmentDTO(row), nil
}

// =============================
// 🗑️ Pessimistic delete
// =============================

// Remove baru melaporkan sukses setelah store mengonfirmasi soft delete.
func (s *SyncService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.Store.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

func (s *SyncService) List(ctx context.Context, filter AssignmentFilter) ([]dto.SkillAssignmentDTO, int64, error) {
	rows, total, err := s.Store.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.SkillAssignmentDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToSkillAssignmentDTO(&rows[i]))
	}
	return out, total, nil
}

// =============================
// 🗄️ GORM store
// =============================

type GormAssignmentStore struct {
	DB *gorm.DB
}

func NewGormAssignmentStore(db *gorm.DB) *GormAssignmentStore {
	return &GormAssignmentStore{DB: db}
}

func (s *GormAssignmentStore) GetByID(ctx context.Context, id uuid.UUID) (*model.SkillAssignmentModel, error) {
	var row model.SkillAssignmentModel
	if err := s.DB.WithContext(ctx).
		First(&row, "skill_assignment_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// assignmentConflictClause: arbiter upsert per cell. Index uniknya partial
// (hanya row hidup), jadi target ON CONFLICT wajib mengulang predikat
// deleted_at IS NULL — tanpa itu Postgres menolak dengan 42P10.
func assignmentConflictClause() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{
			{Name: "skill_assignment_employee_key"},
			{Name: "skill_assignment_skill_name"},
		},
		TargetWhere: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "deleted_at IS NULL"},
		}},
		DoUpdates: clause.AssignmentColumns([]string{
			"skill_assignment_level",
			"skill_assignment_skill_type",
			"skill_assignment_department",
			"skill_assignment_line",
			"skill_assignment_updated_at",
		}),
	}
}

// SaveBatch upsert per cell: commit ulang draft yang sama tidak menggandakan row.
func (s *GormAssignmentStore) SaveBatch(ctx context.Context, rows []model.SkillAssignmentModel) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	err := s.DB.WithContext(ctx).
		Clauses(assignmentConflictClause()).
		CreateInBatches(rows, 200).Error
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *GormAssignmentStore) UpdateLevel(ctx context.Context, id uuid.UUID, level int) error {
	res := s.DB.WithContext(ctx).
		Model(&model.SkillAssignmentModel{}).
		Where("skill_assignment_id = ?", id).
		Update("skill_assignment_level", level)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *GormAssignmentStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Delete(&model.SkillAssignmentModel{}, "skill_assignment_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *GormAssignmentStore) List(ctx context.Context, filter AssignmentFilter) ([]model.SkillAssignmentModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.SkillAssignmentModel{}).
		Where("skill_assignment_plant_code = ?", filter.PlantCode)
	if filter.Department != "" {
		q = q.Where("skill_assignment_department = ?", filter.Department)
	}
	if filter.Line != "" {
		q = q.Where("skill_assignment_line = ?", filter.Line)
	}
	if filter.SkillName != "" {
		q = q.Where("skill_assignment_skill_name = ?", filter.SkillName)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.SkillAssignmentModel
	if err := q.Order("skill_assignment_employee_key ASC, skill_assignment_skill_name ASC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
