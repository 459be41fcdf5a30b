package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"skillmatrix_backend/internals/constants"
	"skillmatrix_backend/internals/features/masters/dto"
	"skillmatrix_backend/internals/features/masters/model"
	scopeservice "skillmatrix_backend/internals/features/plantscope/service"
)

// CascadeService: resolusi master data berantai
// department → line → skill (+type map) → labour, semua di-filter plant scope.
// Tiap operasi independen dan aman diulang; gagal satu tidak memblokir yang lain.
type CascadeService struct {
	DB *gorm.DB
}

func NewCascadeService(db *gorm.DB) *CascadeService {
	return &CascadeService{DB: db}
}

// =============================
// 📋 Departments
// =============================
func (s *CascadeService) ListDepartments(ctx context.Context, scope scopeservice.PlantScope) ([]dto.DepartmentDTO, error) {
	var names []string
	err := s.DB.WithContext(ctx).
		Model(&model.DepartmentModel{}).
		Where("department_plant_code = ?", scope.PlantCode).
		Order("department_created_at ASC").
		Pluck("department_name", &names).Error
	if err != nil {
		return []dto.DepartmentDTO{}, fmt.Errorf("failed to fetch departments: %w", err)
	}

	out := make([]dto.DepartmentDTO, 0, len(names))
	for _, name := range uniqueCleanNames(names) {
		out = append(out, dto.DepartmentDTO{DepartmentName: name, DepartmentPlantCode: scope.PlantCode})
	}
	return out, nil
}

// =============================
// 📋 Lines
// =============================
func (s *CascadeService) ListLines(ctx context.Context, scope scopeservice.PlantScope) ([]dto.LineDTO, error) {
	var names []string
	err := s.DB.WithContext(ctx).
		Model(&model.LineModel{}).
		Where("line_plant_code = ?", scope.PlantCode).
		Order("line_created_at ASC").
		Pluck("line_name", &names).Error
	if err != nil {
		return []dto.LineDTO{}, fmt.Errorf("failed to fetch lines: %w", err)
	}

	out := make([]dto.LineDTO, 0, len(names))
	for _, name := range uniqueCleanNames(names) {
		out = append(out, dto.LineDTO{LineName: name, LinePlantCode: scope.PlantCode})
	}
	return out, nil
}

// =============================
// 📋 Skills per department (+ type map)
// =============================
func (s *CascadeService) ListSkills(ctx context.Context, scope scopeservice.PlantScope, department string) (dto.CascadeSkillsDTO, error) {
	empty := dto.CascadeSkillsDTO{Skills: []dto.SkillDTO{}, TypeByName: map[string]string{}}
	if strings.TrimSpace(department) == "" {
		return empty, fmt.Errorf("department is required")
	}

	var rows []model.SkillModel
	err := s.DB.WithContext(ctx).
		Where("skill_department = ? AND skill_plant_code = ?", department, scope.PlantCode).
		Order("skill_created_at ASC").
		Find(&rows).Error
	if err != nil {
		return empty, fmt.Errorf("failed to fetch skills for %s: %w", department, err)
	}

	seen := make(map[string]struct{}, len(rows))
	out := dto.CascadeSkillsDTO{
		Skills:     make([]dto.SkillDTO, 0, len(rows)),
		TypeByName: make(map[string]string, len(rows)),
	}
	for _, row := range rows {
		name := row.SkillName
		if !isUsableName(name) {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out.Skills = append(out.Skills, dto.ToSkillDTO(row))

		skillType := row.SkillType
		if !constants.IsValidSkillType(skillType) {
			skillType = constants.DefaultSkillType
		}
		out.TypeByName[name] = skillType
	}
	return out, nil
}

// =============================
// 📋 Labour per department
// =============================
// Filter lokasi MENANG atas plant code: labour master di-key per lokasi fisik,
// satu lokasi bisa melayani beberapa plant code (2021 & 2022 sama-sama Baramati).
func (s *CascadeService) ListLabour(ctx context.Context, scope scopeservice.PlantScope, department string) ([]dto.LabourRecordDTO, error) {
	if strings.TrimSpace(department) == "" {
		return []dto.LabourRecordDTO{}, fmt.Errorf("department is required")
	}

	q := s.DB.WithContext(ctx).
		Model(&model.LabourModel{}).
		Where("labour_department = ?", department)
	if scope.Location != nil && *scope.Location != "" {
		q = q.Where("labour_location = ?", *scope.Location)
	} else {
		q = q.Where("labour_plant_code = ?", scope.PlantCode)
	}

	var rows []model.LabourModel
	if err := q.Order("labour_created_at ASC").Find(&rows).Error; err != nil {
		return []dto.LabourRecordDTO{}, fmt.Errorf("failed to fetch labour for %s: %w", department, err)
	}

	seen := make(map[string]struct{}, len(rows))
	out := make([]dto.LabourRecordDTO, 0, len(rows))
	for _, row := range rows {
		if !isUsableName(row.LabourName) {
			continue
		}
		rec := toLabourRecord(row)
		if _, dup := seen[rec.Key]; dup {
			continue
		}
		seen[rec.Key] = struct{}{}
		out = append(out, rec)
	}
	return out, nil
}

/* ===============================
   Pure helpers (dipakai juga di test)
=================================*/

// isUsableName: nama kosong atau sentinel "None" tidak boleh masuk hasil cascade.
func isUsableName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return trimmed != "" && trimmed != constants.NoneSentinel
}

// uniqueCleanNames menjaga urutan first-seen; dedupe case-sensitive.
func uniqueCleanNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if !isUsableName(name) {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// toLabourRecord: identity key stabil antar fetch supaya cell matrix tidak orphan.
func toLabourRecord(row model.LabourModel) dto.LabourRecordDTO {
	code := ""
	if row.LabourCode != nil {
		code = *row.LabourCode
	}
	key := code
	if key == "" {
		key = row.LabourName + "_" + row.LabourID
	}
	return dto.LabourRecordDTO{Key: key, Name: row.LabourName, Code: code}
}
