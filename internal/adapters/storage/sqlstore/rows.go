package sqlstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"livestock-records/internal/domain/calves"
	"livestock-records/internal/domain/cows"
)

// Las listas anidadas (medicines, medicineToConsume, pregnancies) viajan como JSON.

type calfRow struct {
	ID                string          `db:"id"`
	Tag               sql.NullString  `db:"tag"`
	Name              string          `db:"name"`
	Breed             string          `db:"breed"`
	Age               sql.NullFloat64 `db:"age"`
	Weight            sql.NullFloat64 `db:"weight"`
	Image1            string          `db:"image1"`
	Image2            string          `db:"image2"`
	Medicines         string          `db:"medicines"`
	MedicineToConsume string          `db:"medicine_to_consume"`
	IsPregnant        bool            `db:"is_pregnant"`
	IsSick            bool            `db:"is_sick"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

const calfColumns = `id, tag, name, breed, age, weight, image1, image2,
	medicines, medicine_to_consume, is_pregnant, is_sick, created_at, updated_at`

type cowRow struct {
	ID                string          `db:"id"`
	Tag               sql.NullString  `db:"tag"`
	Name              string          `db:"name"`
	Breed             string          `db:"breed"`
	Age               sql.NullFloat64 `db:"age"`
	Weight            sql.NullFloat64 `db:"weight"`
	MilkProduction    sql.NullFloat64 `db:"milk_production"`
	Image1            string          `db:"image1"`
	Image2            string          `db:"image2"`
	Medicines         string          `db:"medicines"`
	MedicineToConsume string          `db:"medicine_to_consume"`
	Pregnancies       string          `db:"pregnancies"`

	BreedingDate                      sql.NullTime `db:"breeding_date"`
	EmbryonicDeathDate                sql.NullTime `db:"embryonic_death_date"`
	ExpectedCalvingDate               sql.NullTime `db:"expected_calving_date"`
	EarlyDewormingDate                sql.NullTime `db:"early_deworming_date"`
	PreCalvingMetabolicSupplimentDate sql.NullTime `db:"pre_calving_metabolic_supplement_date"`
	LateDewormingDate                 sql.NullTime `db:"late_deworming_date"`
	CalvingDate                       sql.NullTime `db:"calving_date"`
	CalvingCount                      int          `db:"calving_count"`
	IsFertilityConfirmed              bool         `db:"is_fertility_confirmed"`

	IsPregnant bool      `db:"is_pregnant"`
	IsSick     bool      `db:"is_sick"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

const cowColumns = `id, tag, name, breed, age, weight, milk_production, image1, image2,
	medicines, medicine_to_consume, pregnancies,
	breeding_date, embryonic_death_date, expected_calving_date, early_deworming_date,
	pre_calving_metabolic_supplement_date, late_deworming_date, calving_date,
	calving_count, is_fertility_confirmed,
	is_pregnant, is_sick, created_at, updated_at`

func toCalfRow(c calves.Calf) (calfRow, error) {
	meds, err := toJSON(c.Medicines)
	if err != nil {
		return calfRow{}, err
	}
	planned, err := toJSON(c.MedicineToConsume)
	if err != nil {
		return calfRow{}, err
	}
	return calfRow{
		ID:                c.ID,
		Tag:               nullString(c.Tag),
		Name:              c.Name,
		Breed:             c.Breed,
		Age:               nullFloat(c.Age),
		Weight:            nullFloat(c.Weight),
		Image1:            c.Image1,
		Image2:            c.Image2,
		Medicines:         meds,
		MedicineToConsume: planned,
		IsPregnant:        c.IsPregnant,
		IsSick:            c.IsSick,
		CreatedAt:         c.CreatedAt.UTC(),
		UpdatedAt:         c.UpdatedAt.UTC(),
	}, nil
}

func (r calfRow) toCalf() (calves.Calf, error) {
	c := calves.Calf{
		ID:         r.ID,
		Tag:        stringPtr(r.Tag),
		Name:       r.Name,
		Breed:      r.Breed,
		Age:        floatPtr(r.Age),
		Weight:     floatPtr(r.Weight),
		Image1:     r.Image1,
		Image2:     r.Image2,
		IsPregnant: r.IsPregnant,
		IsSick:     r.IsSick,
		CreatedAt:  r.CreatedAt.UTC(),
		UpdatedAt:  r.UpdatedAt.UTC(),
	}
	if err := fromJSON(r.Medicines, &c.Medicines); err != nil {
		return calves.Calf{}, fmt.Errorf("calf %s medicines: %w", r.ID, err)
	}
	if err := fromJSON(r.MedicineToConsume, &c.MedicineToConsume); err != nil {
		return calves.Calf{}, fmt.Errorf("calf %s medicine_to_consume: %w", r.ID, err)
	}
	return c, nil
}

func toCowRow(c cows.Cow) (cowRow, error) {
	meds, err := toJSON(c.Medicines)
	if err != nil {
		return cowRow{}, err
	}
	planned, err := toJSON(c.MedicineToConsume)
	if err != nil {
		return cowRow{}, err
	}
	preg, err := toJSON(c.Pregnancies)
	if err != nil {
		return cowRow{}, err
	}
	return cowRow{
		ID:                c.ID,
		Tag:               nullString(c.Tag),
		Name:              c.Name,
		Breed:             c.Breed,
		Age:               nullFloat(c.Age),
		Weight:            nullFloat(c.Weight),
		MilkProduction:    nullFloat(c.MilkProduction),
		Image1:            c.Image1,
		Image2:            c.Image2,
		Medicines:         meds,
		MedicineToConsume: planned,
		Pregnancies:       preg,

		BreedingDate:                      nullTime(c.BreedingDate),
		EmbryonicDeathDate:                nullTime(c.EmbryonicDeathDate),
		ExpectedCalvingDate:               nullTime(c.ExpectedCalvingDate),
		EarlyDewormingDate:                nullTime(c.EarlyDewormingDate),
		PreCalvingMetabolicSupplimentDate: nullTime(c.PreCalvingMetabolicSupplimentDate),
		LateDewormingDate:                 nullTime(c.LateDewormingDate),
		CalvingDate:                       nullTime(c.CalvingDate),
		CalvingCount:                      c.CalvingCount,
		IsFertilityConfirmed:              c.IsFertilityConfirmed,

		IsPregnant: c.IsPregnant,
		IsSick:     c.IsSick,
		CreatedAt:  c.CreatedAt.UTC(),
		UpdatedAt:  c.UpdatedAt.UTC(),
	}, nil
}

func (r cowRow) toCow() (cows.Cow, error) {
	c := cows.Cow{
		ID:             r.ID,
		Tag:            stringPtr(r.Tag),
		Name:           r.Name,
		Breed:          r.Breed,
		Age:            floatPtr(r.Age),
		Weight:         floatPtr(r.Weight),
		MilkProduction: floatPtr(r.MilkProduction),
		Image1:         r.Image1,
		Image2:         r.Image2,
		Reproduction: cows.Reproduction{
			BreedingDate:                      timePtr(r.BreedingDate),
			EmbryonicDeathDate:                timePtr(r.EmbryonicDeathDate),
			ExpectedCalvingDate:               timePtr(r.ExpectedCalvingDate),
			EarlyDewormingDate:                timePtr(r.EarlyDewormingDate),
			PreCalvingMetabolicSupplimentDate: timePtr(r.PreCalvingMetabolicSupplimentDate),
			LateDewormingDate:                 timePtr(r.LateDewormingDate),
			CalvingDate:                       timePtr(r.CalvingDate),
			CalvingCount:                      r.CalvingCount,
			IsFertilityConfirmed:              r.IsFertilityConfirmed,
		},
		LinkedCalves: []cows.CalfLink{},
		IsPregnant:   r.IsPregnant,
		IsSick:       r.IsSick,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
	if err := fromJSON(r.Medicines, &c.Medicines); err != nil {
		return cows.Cow{}, fmt.Errorf("cow %s medicines: %w", r.ID, err)
	}
	if err := fromJSON(r.MedicineToConsume, &c.MedicineToConsume); err != nil {
		return cows.Cow{}, fmt.Errorf("cow %s medicine_to_consume: %w", r.ID, err)
	}
	if err := fromJSON(r.Pregnancies, &c.Pregnancies); err != nil {
		return cows.Cow{}, fmt.Errorf("cow %s pregnancies: %w", r.ID, err)
	}
	return c, nil
}

func toJSON[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func fromJSON[T any](raw string, dst *[]T) error {
	*dst = []T{}
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// fechas nullable: NullTime en la frontera con la base
func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
