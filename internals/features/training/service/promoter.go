package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	skillmatrixModel "skillmatrix_backend/internals/features/skillmatrix/model"
)

// SkillLevelPromoter dipanggil ledger saat peserta lulus test sebuah skill.
// Di-interface-kan supaya ledger bisa dites tanpa DB.
type SkillLevelPromoter interface {
	PromoteOnPass(ctx context.Context, employeeKey, skillName string, plantCode int) error
}

// GormSkillPromoter menaikkan level assignment skill ke required level
// kalau masih di bawahnya. Karyawan tanpa assignment untuk skill tsb
// dibiarkan — promosi hanya berlaku untuk cell matrix yang ada.
type GormSkillPromoter struct {
	DB *gorm.DB
}

func NewGormSkillPromoter(db *gorm.DB) *GormSkillPromoter {
	return &GormSkillPromoter{DB: db}
}

func (p *GormSkillPromoter) PromoteOnPass(ctx context.Context, employeeKey, skillName string, plantCode int) error {
	var row skillmatrixModel.SkillAssignmentModel
	err := p.DB.WithContext(ctx).
		Where("skill_assignment_employee_key = ? AND skill_assignment_skill_name = ? AND skill_assignment_plant_code = ?",
			employeeKey, skillName, plantCode).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if row.MeetsRequirement() {
		return nil
	}
	return p.DB.WithContext(ctx).
		Model(&row).
		Update("skill_assignment_level", row.SkillAssignmentRequiredLevel).Error
}
