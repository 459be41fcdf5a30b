package service

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"skillmatrix_backend/internals/features/skillmatrix/matrix"
)

var ErrDraftNotFound = errors.New("skillmatrix: draft not found")

// Draft: satu sesi edit matrix untuk kombinasi department+line.
// Builder di dalamnya tidak thread-safe, jadi semua akses lewat store.
type Draft struct {
	ID         uuid.UUID
	Department string
	Line       string
	PlantCode  int
	Builder    *matrix.Builder
}

// DraftStore: registry draft in-memory per proses. Draft hilang saat restart —
// memang disengaja, commit-lah yang membuat data durable.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]*Draft
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[uuid.UUID]*Draft)}
}

func (s *DraftStore) Create(department, line string, plantCode int) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := &Draft{
		ID:         uuid.New(),
		Department: department,
		Line:       line,
		PlantCode:  plantCode,
		Builder:    matrix.NewBuilder(),
	}
	s.drafts[draft.ID] = draft
	return draft
}

// With menjalankan fn atas satu draft di bawah lock store.
func (s *DraftStore) With(id uuid.UUID, fn func(*Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[id]
	if !ok {
		return ErrDraftNotFound
	}
	return fn(draft)
}

func (s *DraftStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}
