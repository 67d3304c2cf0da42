package cows

import (
	"time"

	"livestock-records/internal/domain/livestock"
)

// Pregnancy es un intento de preñez registrado.
type Pregnancy struct {
	Attempt   int        `json:"attempt"`
	StartDate *time.Time `json:"startDate"`
	DueDate   *time.Time `json:"dueDate"`
	Delivered bool       `json:"delivered"`
	Notes     string     `json:"notes"`
}

// Reproduction es la línea de tiempo de una preñez, en orden:
// servicio -> riesgo de muerte embrionaria -> parto esperado (servicio + 283 días, lo carga el operador)
// -> desparasitación temprana -> suplemento metabólico pre-parto -> desparasitación tardía -> parto.
type Reproduction struct {
	BreedingDate                      *time.Time
	EmbryonicDeathDate                *time.Time
	ExpectedCalvingDate               *time.Time
	EarlyDewormingDate                *time.Time
	PreCalvingMetabolicSupplimentDate *time.Time
	LateDewormingDate                 *time.Time
	CalvingDate                       *time.Time

	CalvingCount         int
	IsFertilityConfirmed bool
}

// CalfLink referencia un ternero por su identidad. La relación es unidireccional:
// el ternero no sabe quién es su madre.
type CalfLink struct {
	CalfID string
}

// Cow es el registro canónico de una vaca.
type Cow struct {
	ID  string
	Tag *string // cowId asignado por el operador, único si existe

	Name           string
	Breed          string
	Age            *float64
	Weight         *float64
	MilkProduction *float64

	Image1 string
	Image2 string

	Medicines         []livestock.Medicine
	MedicineToConsume []livestock.PlannedMedicine
	Pregnancies       []Pregnancy

	Reproduction

	LinkedCalves []CalfLink

	IsPregnant bool
	IsSick     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Cow) CalfIDs() []string {
	out := make([]string, 0, len(c.LinkedCalves))
	for _, l := range c.LinkedCalves {
		out = append(out, l.CalfID)
	}
	return out
}

// Filter: todos los criterios se combinan con AND; los vacíos no restringen.
type Filter struct {
	Name                 string
	IsSick               *bool
	IsPregnant           *bool
	IsFertilityConfirmed *bool
	Age                  livestock.Range
	Weight               livestock.Range
	MilkProduction       livestock.Range

	InFarmDays   *int
	CreatedSince *time.Time // lo calcula el service a partir de InFarmDays
}

func (f Filter) Matches(c Cow) bool {
	if !livestock.NameContains(c.Name, f.Name) {
		return false
	}
	if !livestock.MatchFlag(f.IsSick, c.IsSick) ||
		!livestock.MatchFlag(f.IsPregnant, c.IsPregnant) ||
		!livestock.MatchFlag(f.IsFertilityConfirmed, c.IsFertilityConfirmed) {
		return false
	}
	if !f.Age.Contains(c.Age) || !f.Weight.Contains(c.Weight) || !f.MilkProduction.Contains(c.MilkProduction) {
		return false
	}
	if f.CreatedSince != nil && c.CreatedAt.Before(*f.CreatedSince) {
		return false
	}
	return true
}
