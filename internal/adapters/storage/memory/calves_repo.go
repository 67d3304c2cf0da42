package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"livestock-records/internal/domain/calves"
	"livestock-records/internal/domain/livestock"
)

type calfRepo struct {
	s *Store
}

func (r *calfRepo) Create(ctx context.Context, c calves.Calf) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("calf id required")
	}
	if _, exists := r.s.calves[c.ID]; exists {
		return livestock.Errorf(livestock.KindDuplicateKey, "calf already exists")
	}
	if err := r.checkUnique(c); err != nil {
		return err
	}

	r.s.calves[c.ID] = cloneCalf(c)
	r.s.stamp(c.ID)
	return nil
}

func (r *calfRepo) Update(ctx context.Context, c calves.Calf) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.calves[c.ID]; !exists {
		return livestock.Errorf(livestock.KindNotFound, "calf not found")
	}
	if err := r.checkUnique(c); err != nil {
		return err
	}

	r.s.calves[c.ID] = cloneCalf(c)
	return nil
}

func (r *calfRepo) GetByID(ctx context.Context, id string) (calves.Calf, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.calves[id]
	if !ok {
		return calves.Calf{}, livestock.Errorf(livestock.KindNotFound, "calf not found")
	}
	return cloneCalf(c), nil
}

func (r *calfRepo) List(ctx context.Context, filter calves.Filter) ([]calves.Calf, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]calves.Calf, 0)
	for _, c := range r.s.calves {
		if filter.Matches(c) {
			out = append(out, cloneCalf(c))
		}
	}

	// más nuevos primero
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return r.s.seq[out[i].ID] > r.s.seq[out[j].ID]
	})
	return out, nil
}

// Delete borra el ternero y lo quita de los linkedCalves de todas las vacas.
func (r *calfRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.calves[id]; !ok {
		return livestock.Errorf(livestock.KindNotFound, "calf not found")
	}
	delete(r.s.calves, id)
	delete(r.s.seq, id)

	for cowID, cow := range r.s.cows {
		kept := cow.LinkedCalves[:0:0]
		for _, l := range cow.LinkedCalves {
			if l.CalfID != id {
				kept = append(kept, l)
			}
		}
		if len(kept) != len(cow.LinkedCalves) {
			cow.LinkedCalves = kept
			r.s.cows[cowID] = cow
		}
	}
	return nil
}

// checkUnique hace de índice único sobre name y calfId. Se llama con el lock tomado.
func (r *calfRepo) checkUnique(c calves.Calf) error {
	for id, other := range r.s.calves {
		if id == c.ID {
			continue
		}
		if other.Name == c.Name {
			return livestock.Errorf(livestock.KindDuplicateKey, "a calf with this name already exists")
		}
		if sameTag(other.Tag, c.Tag) {
			return livestock.Errorf(livestock.KindDuplicateKey, "a calf with this calfId already exists")
		}
	}
	return nil
}

func cloneCalf(c calves.Calf) calves.Calf {
	c.Medicines = cloneMedicines(c.Medicines)
	c.MedicineToConsume = clonePlanned(c.MedicineToConsume)
	return c
}
