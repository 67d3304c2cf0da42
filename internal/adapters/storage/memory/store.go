package memory

import (
	"sync"

	"livestock-records/internal/domain/calves"
	"livestock-records/internal/domain/cows"
	"livestock-records/internal/domain/livestock"
)

// Store guarda vacas y terneros en memoria bajo un único lock, así el borrado
// de un ternero y su desvinculación de las vacas son atómicos.
type Store struct {
	mu     sync.RWMutex
	cows   map[string]cows.Cow
	calves map[string]calves.Calf

	// orden de inserción, desempata created_at iguales
	seq  map[string]uint64
	next uint64
}

func NewStore() *Store {
	return &Store{
		cows:   make(map[string]cows.Cow),
		calves: make(map[string]calves.Calf),
		seq:    make(map[string]uint64),
	}
}

func (s *Store) Cows() cows.Repository     { return &cowRepo{s: s} }
func (s *Store) Calves() calves.Repository { return &calfRepo{s: s} }

// Close existe para cumplir el mismo ciclo de vida que los stores SQL.
func (s *Store) Close() error { return nil }

func (s *Store) stamp(id string) {
	s.next++
	s.seq[id] = s.next
}

func cloneMedicines(in []livestock.Medicine) []livestock.Medicine {
	out := make([]livestock.Medicine, len(in))
	copy(out, in)
	return out
}

func clonePlanned(in []livestock.PlannedMedicine) []livestock.PlannedMedicine {
	out := make([]livestock.PlannedMedicine, len(in))
	copy(out, in)
	return out
}

func sameTag(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}
