package memory_test

import (
	"context"
	"testing"
	"time"

	"livestock-records/internal/adapters/storage/memory"
	"livestock-records/internal/domain/calves"
	"livestock-records/internal/domain/cows"
	"livestock-records/internal/domain/livestock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalf(name string, created time.Time) calves.Calf {
	return calves.Calf{
		ID:        uuid.NewString(),
		Name:      name,
		Image1:    "http://x/" + name,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestStore_CalfUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Calves()
	now := time.Now().UTC()

	tag := "T-1"
	a := newCalf("Bessie", now)
	a.Tag = &tag
	require.NoError(t, repo.Create(ctx, a))

	err := repo.Create(ctx, newCalf("Bessie", now))
	assert.ErrorIs(t, err, livestock.ErrDuplicateKey)

	b := newCalf("Otra", now)
	b.Tag = &tag
	err = repo.Create(ctx, b)
	require.ErrorIs(t, err, livestock.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "calfId")

	// sin tag no participa de la unicidad
	require.NoError(t, repo.Create(ctx, newCalf("C1", now)))
	require.NoError(t, repo.Create(ctx, newCalf("C2", now)))

	// un update puede conservar su propio nombre
	a.Breed = "Jersey"
	require.NoError(t, repo.Update(ctx, a))
}

func TestStore_CalfDeleteUnlinksCows(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	now := time.Now().UTC()

	c1, c2 := newCalf("c1", now), newCalf("c2", now)
	require.NoError(t, st.Calves().Create(ctx, c1))
	require.NoError(t, st.Calves().Create(ctx, c2))

	cow := cows.Cow{
		ID: uuid.NewString(), Name: "Rosie", Image1: "i", CreatedAt: now, UpdatedAt: now,
		LinkedCalves: []cows.CalfLink{{CalfID: c1.ID}, {CalfID: c2.ID}},
	}
	require.NoError(t, st.Cows().Create(ctx, cow))

	require.NoError(t, st.Calves().Delete(ctx, c1.ID))

	got, err := st.Cows().GetByID(ctx, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{c2.ID}, got.CalfIDs())

	_, err = st.Calves().GetByID(ctx, c1.ID)
	assert.ErrorIs(t, err, livestock.ErrNotFound)
	assert.ErrorIs(t, st.Calves().Delete(ctx, c1.ID), livestock.ErrNotFound)
}

func TestStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Calves()
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, newCalf("vieja", t0)))
	require.NoError(t, repo.Create(ctx, newCalf("nueva", t0.Add(time.Hour))))
	// mismo created_at: desempata el orden de inserción
	require.NoError(t, repo.Create(ctx, newCalf("empate", t0.Add(time.Hour))))

	got, err := repo.List(ctx, calves.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"empate", "nueva", "vieja"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	repo := st.Cows()
	now := time.Now().UTC()

	calf := newCalf("c1", now)
	require.NoError(t, st.Calves().Create(ctx, calf))
	linked := calf.ID
	cow := cows.Cow{
		ID: uuid.NewString(), Name: "Rosie", Image1: "i", CreatedAt: now,
		Medicines:    []livestock.Medicine{{Name: "B12"}},
		LinkedCalves: []cows.CalfLink{{CalfID: linked}},
	}
	require.NoError(t, repo.Create(ctx, cow))

	got, err := repo.GetByID(ctx, cow.ID)
	require.NoError(t, err)
	got.Medicines[0].Name = "cambiado"
	got.LinkedCalves[0].CalfID = "otro"

	again, err := repo.GetByID(ctx, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, "B12", again.Medicines[0].Name)
	assert.Equal(t, linked, again.LinkedCalves[0].CalfID)
}

func TestStore_CowGetByName(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Cows()

	cow := cows.Cow{ID: uuid.NewString(), Name: "Rosie", Image1: "i"}
	require.NoError(t, repo.Create(ctx, cow))

	got, err := repo.GetByName(ctx, "Rosie")
	require.NoError(t, err)
	assert.Equal(t, cow.ID, got.ID)

	_, err = repo.GetByName(ctx, "Luna")
	assert.ErrorIs(t, err, livestock.ErrNotFound)

	assert.ErrorIs(t, repo.Update(ctx, cows.Cow{ID: uuid.NewString(), Name: "X"}), livestock.ErrNotFound)
}

func TestStore_CowRejectsMissingCalfLink(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	now := time.Now().UTC()

	c1, c2 := newCalf("c1", now), newCalf("c2", now)
	require.NoError(t, st.Calves().Create(ctx, c1))
	require.NoError(t, st.Calves().Create(ctx, c2))

	// el ternero se borra entre la validación y el write de la vaca
	require.NoError(t, st.Calves().Delete(ctx, c2.ID))

	cow := cows.Cow{
		ID: uuid.NewString(), Name: "Rosie", Image1: "i", CreatedAt: now, UpdatedAt: now,
		LinkedCalves: []cows.CalfLink{{CalfID: c1.ID}, {CalfID: c2.ID}},
	}
	err := st.Cows().Create(ctx, cow)
	require.ErrorIs(t, err, livestock.ErrInvalidReference)
	assert.Equal(t, "linked calf no longer exists", err.Error())

	_, err = st.Cows().GetByID(ctx, cow.ID)
	assert.ErrorIs(t, err, livestock.ErrNotFound)

	// en Update la vaca queda como estaba
	cow.LinkedCalves = []cows.CalfLink{{CalfID: c1.ID}}
	require.NoError(t, st.Cows().Create(ctx, cow))

	cow.LinkedCalves = []cows.CalfLink{{CalfID: c1.ID}, {CalfID: c2.ID}}
	cow.Breed = "Jersey"
	require.ErrorIs(t, st.Cows().Update(ctx, cow), livestock.ErrInvalidReference)

	got, err := st.Cows().GetByID(ctx, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{c1.ID}, got.CalfIDs())
	assert.Equal(t, "", got.Breed)
}
