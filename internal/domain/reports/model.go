package reports

import "time"

// Sections que se pueden pedir por separado en GET /reports/{section}.
const (
	SectionOverview     = "overview"
	SectionBasicInfo    = "basic-info"
	SectionReproductive = "reproductive"
	SectionHealth       = "health"
	SectionMedicines    = "medicines"
)

// Ventana para contar partos próximos.
const nearCalvingWindow = 30 * 24 * time.Hour

type BasicInfo struct {
	ID             string   `json:"id"`
	CowID          *string  `json:"cowId"`
	Name           string   `json:"name"`
	Breed          string   `json:"breed"`
	Age            *float64 `json:"age"`
	Weight         *float64 `json:"weight"`
	MilkProduction *float64 `json:"milkProduction"`
	IsSick         bool     `json:"isSick"`
	IsPregnant     bool     `json:"isPregnant"`
}

type ReproductiveRecord struct {
	ID                                string     `json:"id"`
	CowID                             *string    `json:"cowId"`
	Name                              string     `json:"name"`
	BreedingDate                      *time.Time `json:"breedingDate"`
	EmbryonicDeathDate                *time.Time `json:"embryonicDeathDate"`
	ExpectedCalvingDate               *time.Time `json:"expectedCalvingDate"`
	EarlyDewormingDate                *time.Time `json:"earlyDewormingDate"`
	PreCalvingMetabolicSupplimentDate *time.Time `json:"preCalvingMetabolicSupplimentDate"`
	LateDewormingDate                 *time.Time `json:"lateDewormingDate"`
	CalvingDate                       *time.Time `json:"calvingDate"`
	CalvingCount                      int        `json:"calvingCount"`
	IsFertilityConfirmed              bool       `json:"isFertilityConfirmed"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Overview: los promedios, mínimos y máximos son null cuando no hay datos.
type Overview struct {
	TotalCows       int `json:"totalCows"`
	TotalPregnant   int `json:"totalPregnant"`
	TotalFertilized int `json:"totalFertilized"`
	TotalSick       int `json:"totalSick"`

	TotalMilk           float64  `json:"totalMilk"`
	AverageMilkProduced *float64 `json:"averageMilkProduced"`
	MinMilkProduced     *float64 `json:"minMilkProduced"`
	MaxMilkProduced     *float64 `json:"maxMilkProduced"`

	NearCalving    int `json:"nearCalving"`
	RecentlyCalved int `json:"recentlyCalved"`

	TotalCalves       int      `json:"totalCalves"`
	TotalSickCalves   int      `json:"totalSickCalves"`
	AverageCalfWeight *float64 `json:"averageCalfWeight"`
}

type Health struct {
	Cows      []StatusCount `json:"cows"`
	Calves    []StatusCount `json:"calves"`
	Pregnancy []StatusCount `json:"pregnancy"`
}

type Medicines struct {
	CowsTaken     int `json:"cowsTaken"`
	CowsPending   int `json:"cowsPending"`
	CalvesTaken   int `json:"calvesTaken"`
	CalvesPending int `json:"calvesPending"`
}

// Report es una foto puntual del rodeo; no se persiste.
type Report struct {
	GeneratedAt time.Time `json:"generatedAt"`

	Overview

	BasicInfo           []BasicInfo          `json:"basicInfo"`
	ReproductiveRecords []ReproductiveRecord `json:"reproductiveRecords"`
	Health              Health               `json:"health"`
	Medicines           Medicines            `json:"medicines"`
}

// ReproductionResult resume una carga masiva de registros reproductivos.
type ReproductionResult struct {
	Updated int      `json:"updated"`
	Skipped []string `json:"skipped"`
}
