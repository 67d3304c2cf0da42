package calves

import (
	"time"

	"livestock-records/internal/domain/livestock"
)

// Calf es el registro canónico de un ternero.
type Calf struct {
	ID  string
	Tag *string // calfId asignado por el operador, único si existe

	Name   string
	Breed  string
	Age    *float64
	Weight *float64

	Image1 string
	Image2 string

	Medicines         []livestock.Medicine
	MedicineToConsume []livestock.PlannedMedicine

	IsPregnant bool
	IsSick     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter: todos los criterios se combinan con AND; los vacíos no restringen.
type Filter struct {
	Name       string
	IsSick     *bool
	IsPregnant *bool
	Age        livestock.Range
	Weight     livestock.Range

	InFarmDays   *int
	CreatedSince *time.Time // lo calcula el service a partir de InFarmDays
}

func (f Filter) Matches(c Calf) bool {
	if !livestock.NameContains(c.Name, f.Name) {
		return false
	}
	if !livestock.MatchFlag(f.IsSick, c.IsSick) || !livestock.MatchFlag(f.IsPregnant, c.IsPregnant) {
		return false
	}
	if !f.Age.Contains(c.Age) || !f.Weight.Contains(c.Weight) {
		return false
	}
	if f.CreatedSince != nil && c.CreatedAt.Before(*f.CreatedSince) {
		return false
	}
	return true
}
