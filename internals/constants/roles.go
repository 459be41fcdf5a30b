package constants

// =======================
// ROLES
// =======================

const (
	RoleHRAdmin  = "hr_admin"
	RoleTrainer  = "trainer"
	RoleEmployee = "employee"
)

// AdminAndAbove: role yang boleh mengelola master data & assignment.
var AdminAndAbove = []string{RoleHRAdmin}

// TrainerAndAbove: role yang boleh membuat test & jadwal training.
var TrainerAndAbove = []string{RoleHRAdmin, RoleTrainer}

func RoleErrorAdmin(action string) string {
	return "Only HR admin is allowed to " + action
}
