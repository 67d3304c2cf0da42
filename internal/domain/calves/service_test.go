package calves

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"
	"time"

	"livestock-records/internal/domain/livestock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Calf
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Calf{}}
}

func (r *testRepo) Create(ctx context.Context, c Calf) error {
	if c.ID == "" {
		return errors.New("repo: id required")
	}
	for _, other := range r.byID {
		if other.Name == c.Name {
			return livestock.Errorf(livestock.KindDuplicateKey, "a calf with this name already exists")
		}
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Update(ctx context.Context, c Calf) error {
	if _, ok := r.byID[c.ID]; !ok {
		return livestock.Errorf(livestock.KindNotFound, "calf not found")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Calf, error) {
	c, ok := r.byID[id]
	if !ok {
		return Calf{}, livestock.Errorf(livestock.KindNotFound, "calf not found")
	}
	return c, nil
}

func (r *testRepo) List(ctx context.Context, f Filter) ([]Calf, error) {
	out := make([]Calf, 0)
	for _, c := range r.byID {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return livestock.Errorf(livestock.KindNotFound, "calf not found")
	}
	delete(r.byID, id)
	return nil
}

func newTestService(now time.Time) (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_Defaults(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	c, err := svc.Create(context.Background(), Input{Name: "Bessie", Image1: "http://x/1.jpg"})
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.False(t, c.IsSick)
	assert.False(t, c.IsPregnant)
	assert.Empty(t, c.Medicines)
	assert.NotNil(t, c.Medicines)
	assert.NotNil(t, c.MedicineToConsume)
	assert.Nil(t, c.Age)
	assert.Nil(t, c.Tag)
	assert.Equal(t, now, c.CreatedAt)
	assert.Equal(t, now, c.UpdatedAt)
}

func TestService_Create_RequiredFields(t *testing.T) {
	svc, _ := newTestService(time.Now())

	cases := []Input{
		{Image1: "http://x/1.jpg", Breed: "Jersey", Age: 2},
		{Name: "Bessie", IsSick: true},
		{Name: "  ", Image1: "http://x/1.jpg"},
		{Name: "N/A", Image1: "http://x/1.jpg"},
		{},
	}
	for _, in := range cases {
		_, err := svc.Create(context.Background(), in)
		require.Error(t, err)
		assert.ErrorIs(t, err, livestock.ErrValidation)
	}
}

func TestService_Create_DuplicateName(t *testing.T) {
	svc, _ := newTestService(time.Now())

	_, err := svc.Create(context.Background(), Input{Name: "Bessie", Image1: "http://x/1.jpg"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), Input{Name: "Bessie", Image1: "http://x/2.jpg"})
	assert.ErrorIs(t, err, livestock.ErrDuplicateKey)
}

func TestService_Create_NegativeNumbers(t *testing.T) {
	svc, _ := newTestService(time.Now())

	_, err := svc.Create(context.Background(), Input{Name: "A", Image1: "i", Weight: json.Number("-3")})
	assert.ErrorIs(t, err, livestock.ErrValidation)
}

func TestService_Create_LegacyPregnantFlag(t *testing.T) {
	svc, _ := newTestService(time.Now())

	c, err := svc.Create(context.Background(), Input{Name: "A", Image1: "i", IsPregenant: true})
	require.NoError(t, err)
	assert.True(t, c.IsPregnant)

	// el nombre canónico gana
	c, err = svc.Create(context.Background(), Input{Name: "B", Image1: "i", IsPregnant: false, IsPregenant: true})
	require.NoError(t, err)
	assert.False(t, c.IsPregnant)
}

func TestService_Update_FullReplace(t *testing.T) {
	t1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	svc, _ := newTestService(t1)

	c, err := svc.Create(context.Background(), Input{
		Name:   "Bessie",
		Image1: "http://x/1.jpg",
		Breed:  "Jersey",
		IsSick: true,
		Medicines: []any{
			map[string]any{"name": "Ivermectina", "hasTaken": true},
		},
	})
	require.NoError(t, err)

	svc.now = func() time.Time { return t2 }
	// el update no trae breed, isSick ni medicines: quedan vacíos
	u, err := svc.Update(context.Background(), c.ID, Input{Name: "Bessie", Image1: "http://x/1.jpg"})
	require.NoError(t, err)

	assert.Equal(t, c.ID, u.ID)
	assert.Equal(t, t1, u.CreatedAt)
	assert.Equal(t, t2, u.UpdatedAt)
	assert.Empty(t, u.Breed)
	assert.False(t, u.IsSick)
	assert.Empty(t, u.Medicines)
}

func TestService_GetByID_MalformedIsNotFound(t *testing.T) {
	svc, _ := newTestService(time.Now())

	_, err := svc.GetByID(context.Background(), "not-an-id")
	assert.ErrorIs(t, err, livestock.ErrNotFound)

	err = svc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, livestock.ErrNotFound)
}

func TestService_List_InFarmDays(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(base.AddDate(0, 0, -10))

	_, err := svc.Create(context.Background(), Input{Name: "Vieja", Image1: "i"})
	require.NoError(t, err)

	svc.now = func() time.Time { return base.AddDate(0, 0, -1) }
	_, err = svc.Create(context.Background(), Input{Name: "Nueva", Image1: "i"})
	require.NoError(t, err)

	svc.now = func() time.Time { return base }
	days := 5
	got, err := svc.List(context.Background(), Filter{InFarmDays: &days})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Nueva", got[0].Name)

	all, err := svc.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Nueva", all[0].Name, "más nuevo primero")
}

func TestNormalize_Idempotent(t *testing.T) {
	in := Input{
		CalfID: " T-1 ",
		Name:   "Bessie",
		Image1: "http://x/1.jpg",
		Age:    json.Number("0"),
		Weight: "N/A",
		Medicines: []any{
			map[string]any{"name": "B12", "dateGiven": "2025-01-02", "dosage": "5ml"},
		},
	}
	first, err := Normalize(in)
	require.NoError(t, err)

	require.NotNil(t, first.Age)
	assert.Equal(t, 0.0, *first.Age)
	assert.Nil(t, first.Weight)
	assert.Equal(t, "T-1", *first.Tag)

	// renormalizar el registro ya canónico no lo cambia
	again, err := Normalize(Input{
		CalfID:    *first.Tag,
		Name:      first.Name,
		Image1:    first.Image1,
		Age:       first.Age,
		Weight:    first.Weight,
		Medicines: medicinesAsInput(first.Medicines),
	})
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func medicinesAsInput(meds []livestock.Medicine) []any {
	out := make([]any, 0, len(meds))
	for _, m := range meds {
		out = append(out, map[string]any{
			"name":      m.Name,
			"dateGiven": m.DateGiven,
			"dosage":    m.Dosage,
			"hasTaken":  m.HasTaken,
			"note":      m.Note,
		})
	}
	return out
}

func TestFilter_Monotonic(t *testing.T) {
	w := func(v float64) *float64 { return &v }
	yes := true
	pop := []Calf{
		{Name: "Bessie", Weight: w(80), IsSick: true},
		{Name: "bessie two", Weight: w(120)},
		{Name: "Luna", Weight: nil},
	}

	count := func(f Filter) int {
		n := 0
		for _, c := range pop {
			if f.Matches(c) {
				n++
			}
		}
		return n
	}

	base := Filter{Name: "BESS"}
	assert.Equal(t, 2, count(base))

	withSick := base
	withSick.IsSick = &yes
	assert.LessOrEqual(t, count(withSick), count(base))
	assert.Equal(t, 1, count(withSick))

	withWeight := base
	withWeight.Weight = livestock.Range{Min: w(100)}
	assert.LessOrEqual(t, count(withWeight), count(base))
	assert.Equal(t, 1, count(withWeight))

	// un rango con cota excluye los nulos
	assert.Equal(t, 2, count(Filter{Weight: livestock.Range{Max: w(1000)}}))
}
