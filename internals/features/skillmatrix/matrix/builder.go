// Package matrix: sparse employee×skill level matrix, murni in-memory.
// Semua operasi di sini tanpa I/O; commit ke store adalah langkah terpisah
// di sync service.
package matrix

import (
	"errors"
	"fmt"

	"skillmatrix_backend/internals/constants"
)

// CellKey: compound key satu cell. Dulu pakai string "empKey_skillName" —
// ambigu kalau key karyawan mengandung underscore, makanya sekarang struct.
type CellKey struct {
	EmployeeKey string
	SkillName   string
}

var (
	ErrCellAbsent    = errors.New("matrix: cell is not assigned, toggle it first")
	ErrEmptyTemplate = errors.New("matrix: template employee has no skills assigned")
)

// Builder memegang matrix sparse. Absennya key berarti "belum di-assign"
// (level 0, tanpa record); key yang ada selalu punya level di [1,5].
type Builder struct {
	cells map[CellKey]int
}

func NewBuilder() *Builder {
	return &Builder{cells: make(map[CellKey]int)}
}

// Len: jumlah cell yang ter-assign.
func (b *Builder) Len() int { return len(b.cells) }

// Level membaca level satu cell; 0 + false kalau belum di-assign.
func (b *Builder) Level(employeeKey, skillName string) (int, bool) {
	level, ok := b.cells[CellKey{EmployeeKey: employeeKey, SkillName: skillName}]
	return level, ok
}

// =============================
// ✅ Toggle cell
// =============================
// absent → present di level required (4); present → hapus key.
// Dua kali toggle mengembalikan state semula.
func (b *Builder) Toggle(employeeKey, skillName string) {
	key := CellKey{EmployeeKey: employeeKey, SkillName: skillName}
	if _, ok := b.cells[key]; ok {
		delete(b.cells, key)
		return
	}
	b.cells[key] = constants.RequiredSkillLevel
}

// =============================
// ✏️ Set level (clamp 1..5)
// =============================
// Edit level hanya untuk cell yang sudah ada; cell absen harus lewat Toggle dulu.
func (b *Builder) SetLevel(employeeKey, skillName string, level int) error {
	key := CellKey{EmployeeKey: employeeKey, SkillName: skillName}
	if _, ok := b.cells[key]; !ok {
		return fmt.Errorf("%w: %s / %s", ErrCellAbsent, employeeKey, skillName)
	}
	b.cells[key] = constants.ClampSkillLevel(level)
	return nil
}

// =============================
// ☑️ Bulk select all (union non-destruktif)
// =============================
// Pasangan yang sudah ada TIDAK disentuh — level hasil edit manual tetap.
func (b *Builder) BulkSetAll(employeeKeys, skillNames []string, level int) {
	level = constants.ClampSkillLevel(level)
	for _, emp := range employeeKeys {
		for _, skill := range skillNames {
			key := CellKey{EmployeeKey: emp, SkillName: skill}
			if _, ok := b.cells[key]; !ok {
				b.cells[key] = level
			}
		}
	}
}

// =============================
// 🧹 Bulk clear
// =============================
// Hapus persis pasangan yang diberikan; cell di luar himpunan tidak tersentuh.
func (b *Builder) BulkClear(employeeKeys, skillNames []string) {
	for _, emp := range employeeKeys {
		for _, skill := range skillNames {
			delete(b.cells, CellKey{EmployeeKey: emp, SkillName: skill})
		}
	}
}

// =============================
// 📑 Copy template
// =============================
// Salin semua skill→level milik sourceEmployeeKey ke setiap target
// (source sendiri dilewati). Error kalau template kosong — dilaporkan,
// bukan panic, supaya caller bisa menampilkan notifikasi.
func (b *Builder) CopyTemplate(sourceEmployeeKey string, targetEmployeeKeys []string) (int, error) {
	template := b.SkillsOf(sourceEmployeeKey)
	if len(template) == 0 {
		return 0, ErrEmptyTemplate
	}

	copied := 0
	for _, target := range targetEmployeeKeys {
		if target == sourceEmployeeKey {
			continue
		}
		for skill, level := range template {
			b.cells[CellKey{EmployeeKey: target, SkillName: skill}] = level
		}
		copied++
	}
	return copied, nil
}

// SkillsOf: snapshot skill→level milik satu karyawan.
func (b *Builder) SkillsOf(employeeKey string) map[string]int {
	out := make(map[string]int)
	for key, level := range b.cells {
		if key.EmployeeKey == employeeKey {
			out[key.SkillName] = level
		}
	}
	return out
}

// SkillCountOf: jumlah cell ter-assign milik satu karyawan.
func (b *Builder) SkillCountOf(employeeKey string) int {
	n := 0
	for key := range b.cells {
		if key.EmployeeKey == employeeKey {
			n++
		}
	}
	return n
}

// Snapshot: salinan lepas seluruh matrix (aman dipegang setelah builder berubah).
func (b *Builder) Snapshot() map[CellKey]int {
	out := make(map[CellKey]int, len(b.cells))
	for key, level := range b.cells {
		out[key] = level
	}
	return out
}

// Restore mengganti isi matrix dengan snapshot (dipakai draft store saat load).
func (b *Builder) Restore(snapshot map[CellKey]int) {
	b.cells = make(map[CellKey]int, len(snapshot))
	for key, level := range snapshot {
		b.cells[key] = constants.ClampSkillLevel(level)
	}
}
