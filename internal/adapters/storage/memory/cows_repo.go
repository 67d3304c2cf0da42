package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"livestock-records/internal/domain/cows"
	"livestock-records/internal/domain/livestock"
)

type cowRepo struct {
	s *Store
}

func (r *cowRepo) Create(ctx context.Context, c cows.Cow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("cow id required")
	}
	if _, exists := r.s.cows[c.ID]; exists {
		return livestock.Errorf(livestock.KindDuplicateKey, "cow already exists")
	}
	if err := r.checkUnique(c); err != nil {
		return err
	}
	if err := r.checkLinks(c); err != nil {
		return err
	}

	r.s.cows[c.ID] = cloneCow(c)
	r.s.stamp(c.ID)
	return nil
}

func (r *cowRepo) Update(ctx context.Context, c cows.Cow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.cows[c.ID]; !exists {
		return livestock.Errorf(livestock.KindNotFound, "cow not found")
	}
	if err := r.checkUnique(c); err != nil {
		return err
	}
	if err := r.checkLinks(c); err != nil {
		return err
	}

	r.s.cows[c.ID] = cloneCow(c)
	return nil
}

func (r *cowRepo) GetByID(ctx context.Context, id string) (cows.Cow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.cows[id]
	if !ok {
		return cows.Cow{}, livestock.Errorf(livestock.KindNotFound, "cow not found")
	}
	return cloneCow(c), nil
}

func (r *cowRepo) GetByName(ctx context.Context, name string) (cows.Cow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.cows {
		if c.Name == name {
			return cloneCow(c), nil
		}
	}
	return cows.Cow{}, livestock.Errorf(livestock.KindNotFound, "cow not found: %s", name)
}

func (r *cowRepo) List(ctx context.Context, filter cows.Filter) ([]cows.Cow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]cows.Cow, 0)
	for _, c := range r.s.cows {
		if filter.Matches(c) {
			out = append(out, cloneCow(c))
		}
	}

	// más nuevas primero
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return r.s.seq[out[i].ID] > r.s.seq[out[j].ID]
	})
	return out, nil
}

func (r *cowRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.cows[id]; !ok {
		return livestock.Errorf(livestock.KindNotFound, "cow not found")
	}
	delete(r.s.cows, id)
	delete(r.s.seq, id)
	return nil
}

// checkUnique hace de índice único sobre name y cowId. Se llama con el lock tomado.
func (r *cowRepo) checkUnique(c cows.Cow) error {
	for id, other := range r.s.cows {
		if id == c.ID {
			continue
		}
		if other.Name == c.Name {
			return livestock.Errorf(livestock.KindDuplicateKey, "a cow with this name already exists")
		}
		if sameTag(other.Tag, c.Tag) {
			return livestock.Errorf(livestock.KindDuplicateKey, "a cow with this cowId already exists")
		}
	}
	return nil
}

// checkLinks hace de foreign key: cada link tiene que apuntar a un ternero que existe.
// Se llama con el lock tomado.
func (r *cowRepo) checkLinks(c cows.Cow) error {
	for _, l := range c.LinkedCalves {
		if _, ok := r.s.calves[l.CalfID]; !ok {
			return livestock.Errorf(livestock.KindInvalidReference, "linked calf no longer exists")
		}
	}
	return nil
}

func cloneCow(c cows.Cow) cows.Cow {
	c.Medicines = cloneMedicines(c.Medicines)
	c.MedicineToConsume = clonePlanned(c.MedicineToConsume)

	preg := make([]cows.Pregnancy, len(c.Pregnancies))
	copy(preg, c.Pregnancies)
	c.Pregnancies = preg

	links := make([]cows.CalfLink, len(c.LinkedCalves))
	copy(links, c.LinkedCalves)
	c.LinkedCalves = links
	return c
}
