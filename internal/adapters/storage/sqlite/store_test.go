package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"livestock-records/internal/adapters/storage/sqlite"
	"livestock-records/internal/adapters/storage/sqlstore"
	"livestock-records/internal/domain/calves"
	"livestock-records/internal/domain/cows"
	"livestock-records/internal/domain/livestock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.Migrate(context.Background()))
	// idempotente
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func ptr[T any](v T) *T { return &v }

func TestSQLite_CalfRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	now := time.Date(2025, 4, 2, 10, 30, 0, 0, time.UTC)
	given := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	c := calves.Calf{
		ID:     uuid.NewString(),
		Tag:    ptr("T-1"),
		Name:   "Bessie",
		Breed:  "Jersey",
		Age:    ptr(0.0),
		Image1: "http://x/1.jpg",
		Medicines: []livestock.Medicine{
			{Name: "B12", DateGiven: &given, Dosage: "5ml", HasTaken: true},
		},
		MedicineToConsume: []livestock.PlannedMedicine{{Name: "Iver", MedicineNote: "en mayo"}},
		IsSick:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	require.NoError(t, st.Calves().Create(ctx, c))

	got, err := st.Calves().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "T-1", *got.Tag)
	require.NotNil(t, got.Age)
	assert.Equal(t, 0.0, *got.Age)
	assert.Nil(t, got.Weight)
	assert.True(t, got.IsSick)
	assert.False(t, got.IsPregnant)
	require.Len(t, got.Medicines, 1)
	assert.True(t, given.Equal(*got.Medicines[0].DateGiven))
	assert.Equal(t, c.MedicineToConsume, got.MedicineToConsume)
	assert.True(t, now.Equal(got.CreatedAt))

	_, err = st.Calves().GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, livestock.ErrNotFound)
}

func TestSQLite_UniqueConstraints(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	now := time.Now().UTC()

	a := calves.Calf{ID: uuid.NewString(), Tag: ptr("T-1"), Name: "Bessie", Image1: "i", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, st.Calves().Create(ctx, a))

	err := st.Calves().Create(ctx, calves.Calf{ID: uuid.NewString(), Name: "Bessie", Image1: "i", CreatedAt: now, UpdatedAt: now})
	require.ErrorIs(t, err, livestock.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "name")

	err = st.Calves().Create(ctx, calves.Calf{ID: uuid.NewString(), Tag: ptr("T-1"), Name: "Otra", Image1: "i", CreatedAt: now, UpdatedAt: now})
	require.ErrorIs(t, err, livestock.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "calfId")

	// tags nulos no chocan entre sí
	require.NoError(t, st.Calves().Create(ctx, calves.Calf{ID: uuid.NewString(), Name: "C1", Image1: "i", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, st.Calves().Create(ctx, calves.Calf{ID: uuid.NewString(), Name: "C2", Image1: "i", CreatedAt: now, UpdatedAt: now}))
}

func TestSQLite_CowLinksReplaceAndCascade(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	now := time.Now().UTC()

	ids := make([]string, 3)
	for i := range ids {
		ids[i] = uuid.NewString()
		require.NoError(t, st.Calves().Create(ctx, calves.Calf{
			ID: ids[i], Name: "c" + string(rune('1'+i)), Image1: "i", CreatedAt: now, UpdatedAt: now,
		}))
	}
	a, b, c := ids[0], ids[1], ids[2]

	breeding := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	cow := cows.Cow{
		ID: uuid.NewString(), Tag: ptr("R-1"), Name: "Rosie", Image1: "i",
		MilkProduction: ptr(18.5),
		Pregnancies:    []cows.Pregnancy{{Attempt: 1, Notes: "primera"}},
		Reproduction:   cows.Reproduction{BreedingDate: &breeding, CalvingCount: 1, IsFertilityConfirmed: true},
		LinkedCalves:   []cows.CalfLink{{CalfID: a}, {CalfID: b}},
		CreatedAt:      now, UpdatedAt: now,
	}
	require.NoError(t, st.Cows().Create(ctx, cow))

	got, err := st.Cows().GetByID(ctx, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, got.CalfIDs())
	assert.Equal(t, 18.5, *got.MilkProduction)
	assert.True(t, breeding.Equal(*got.BreedingDate))
	assert.Nil(t, got.CalvingDate)
	assert.Equal(t, 1, got.CalvingCount)
	assert.True(t, got.IsFertilityConfirmed)
	assert.Equal(t, cow.Pregnancies, got.Pregnancies)

	// reemplazo: [a, b] -> [c, b], respeta el orden pedido
	got.LinkedCalves = []cows.CalfLink{{CalfID: c}, {CalfID: b}}
	require.NoError(t, st.Cows().Update(ctx, got))
	got, err = st.Cows().GetByName(ctx, "Rosie")
	require.NoError(t, err)
	assert.Equal(t, []string{c, b}, got.CalfIDs())

	// borrar un ternero lo desvincula
	require.NoError(t, st.Calves().Delete(ctx, c))
	got, err = st.Cows().GetByID(ctx, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{b}, got.CalfIDs())

	// link a un ternero inexistente: la fila de la vaca no cambia
	got.Name = "Rosie II"
	got.LinkedCalves = []cows.CalfLink{{CalfID: uuid.NewString()}}
	err = st.Cows().Update(ctx, got)
	assert.ErrorIs(t, err, livestock.ErrInvalidReference)
	after, err := st.Cows().GetByID(ctx, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rosie", after.Name)
	assert.Equal(t, []string{b}, after.CalfIDs())

	require.NoError(t, st.Cows().Delete(ctx, cow.ID))
	assert.ErrorIs(t, st.Cows().Delete(ctx, cow.ID), livestock.ErrNotFound)
}

func TestSQLite_ListFilters(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	mk := func(name string, milk *float64, sick bool, created time.Time) {
		require.NoError(t, st.Cows().Create(ctx, cows.Cow{
			ID: uuid.NewString(), Name: name, Image1: "i",
			MilkProduction: milk, IsSick: sick, CreatedAt: created, UpdatedAt: created,
		}))
	}
	mk("Rosie", ptr(10.0), false, base)
	mk("rosita_50%", ptr(25.0), true, base.Add(time.Hour))
	mk("Luna", nil, true, base.Add(2*time.Hour))

	all, err := st.Cows().List(ctx, cows.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Luna", all[0].Name, "más nueva primero")

	byName, err := st.Cows().List(ctx, cows.Filter{Name: "ROS"})
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	// los comodines de LIKE se escapan
	literal, err := st.Cows().List(ctx, cows.Filter{Name: "_50%"})
	require.NoError(t, err)
	require.Len(t, literal, 1)
	assert.Equal(t, "rosita_50%", literal[0].Name)

	sick := true
	sickRos, err := st.Cows().List(ctx, cows.Filter{Name: "ros", IsSick: &sick})
	require.NoError(t, err)
	require.Len(t, sickRos, 1)

	milk, err := st.Cows().List(ctx, cows.Filter{MilkProduction: livestock.Range{Min: ptr(10.0), Max: ptr(20.0)}})
	require.NoError(t, err)
	require.Len(t, milk, 1)
	assert.Equal(t, "Rosie", milk[0].Name)

	since := base.Add(30 * time.Minute)
	recent, err := st.Cows().List(ctx, cows.Filter{CreatedSince: &since})
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	// mismo resultado que el predicado en memoria
	f := cows.Filter{IsSick: &sick, MilkProduction: livestock.Range{Min: ptr(0.0)}}
	got, err := st.Cows().List(ctx, f)
	require.NoError(t, err)
	want := 0
	for _, c := range all {
		if f.Matches(c) {
			want++
		}
	}
	assert.Len(t, got, want)
}

func TestSQLite_ListTiesKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	// ids en orden inverso al de alta: el desempate no depende del id
	ids := []string{
		"00000000-0000-4000-8000-000000000001",
		"ffffffff-ffff-4fff-bfff-ffffffffffff",
		"88888888-8888-4888-8888-888888888888",
	}
	for i, id := range ids {
		require.NoError(t, st.Calves().Create(ctx, calves.Calf{
			ID: id, Name: "empate-" + string(rune('a'+i)), Image1: "i", CreatedAt: now, UpdatedAt: now,
		}))
		require.NoError(t, st.Cows().Create(ctx, cows.Cow{
			ID: id, Name: "vaca-" + string(rune('a'+i)), Image1: "i", CreatedAt: now, UpdatedAt: now,
		}))
	}
	older := uuid.NewString()
	require.NoError(t, st.Calves().Create(ctx, calves.Calf{
		ID: older, Name: "vieja", Image1: "i", CreatedAt: now.Add(-time.Hour), UpdatedAt: now,
	}))

	gotCalves, err := st.Calves().List(ctx, calves.Filter{})
	require.NoError(t, err)
	names := make([]string, 0, len(gotCalves))
	for _, c := range gotCalves {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"empate-c", "empate-b", "empate-a", "vieja"}, names)

	gotCows, err := st.Cows().List(ctx, cows.Filter{})
	require.NoError(t, err)
	names = names[:0]
	for _, c := range gotCows {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"vaca-c", "vaca-b", "vaca-a"}, names)

	// un update no cambia el lugar en la lista
	first := gotCalves[2]
	first.Breed = "Jersey"
	require.NoError(t, st.Calves().Update(ctx, first))
	gotCalves, err = st.Calves().List(ctx, calves.Filter{})
	require.NoError(t, err)
	assert.Equal(t, "empate-a", gotCalves[2].Name)
}
