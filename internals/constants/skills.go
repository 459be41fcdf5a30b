package constants

// =======================
// SKILL TYPE (F/C/G)
// =======================

const (
	SkillTypeFunctional = "F"
	SkillTypeCritical   = "C"
	SkillTypeGeneric    = "G"
)

// DefaultSkillType dipakai ketika klasifikasi skill tidak ditemukan di master.
const DefaultSkillType = SkillTypeGeneric

func IsValidSkillType(t string) bool {
	switch t {
	case SkillTypeFunctional, SkillTypeCritical, SkillTypeGeneric:
		return true
	}
	return false
}

// =======================
// SKILL LEVEL
// =======================

const (
	MinSkillLevel = 1
	MaxSkillLevel = 5

	// RequiredSkillLevel: level >= 4 berarti requirement terpenuhi.
	RequiredSkillLevel = 4
)

// ClampSkillLevel memaksa level masuk range [1,5].
func ClampSkillLevel(level int) int {
	if level < MinSkillLevel {
		return MinSkillLevel
	}
	if level > MaxSkillLevel {
		return MaxSkillLevel
	}
	return level
}

// =======================
// MASTER DATA SENTINELS
// =======================

// NoneSentinel: nilai placeholder dari sumber data lama, tidak boleh ikut tersimpan.
const NoneSentinel = "None"
