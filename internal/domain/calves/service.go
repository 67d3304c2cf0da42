package calves

import (
	"context"
	"time"

	"livestock-records/internal/domain/livestock"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Input es el payload de alta y de actualización (reemplazo completo).
type Input struct {
	CalfID            any `json:"calfId"`
	Name              any `json:"name"`
	Breed             any `json:"breed"`
	Age               any `json:"age"`
	Weight            any `json:"weight"`
	Image1            any `json:"image1"`
	Image2            any `json:"image2"`
	Medicines         any `json:"medicines"`
	MedicineToConsume any `json:"medicineToConsume"`
	IsPregnant        any `json:"isPregnant"`
	IsPregenant       any `json:"isPregenant"` // nombre legacy
	IsSick            any `json:"isSick"`

	// Solo lectura: el formulario de edición reenvía el registro completo. Se ignoran.
	ID        any `json:"id"`
	CreatedAt any `json:"createdAt"`
	UpdatedAt any `json:"updatedAt"`
}

// Normalize produce el registro canónico (sin identidad ni timestamps).
// Los campos omitidos quedan vacíos/false.
func Normalize(in Input) (Calf, error) {
	pregnant := in.IsPregnant
	if pregnant == nil {
		pregnant = in.IsPregenant
	}

	c := Calf{
		Tag:               livestock.ParseTag(in.CalfID),
		Name:              livestock.ParseString(in.Name),
		Breed:             livestock.ParseString(in.Breed),
		Age:               livestock.ParseNumber(in.Age),
		Weight:            livestock.ParseNumber(in.Weight),
		Image1:            livestock.ParseString(in.Image1),
		Image2:            livestock.ParseString(in.Image2),
		Medicines:         livestock.NormalizeMedicines(in.Medicines),
		MedicineToConsume: livestock.NormalizePlannedMedicines(in.MedicineToConsume),
		IsPregnant:        livestock.ParseBool(pregnant),
		IsSick:            livestock.ParseBool(in.IsSick),
	}

	if err := livestock.Required("name", c.Name); err != nil {
		return Calf{}, err
	}
	if err := livestock.Required("image1", c.Image1); err != nil {
		return Calf{}, err
	}
	if err := livestock.NonNegative("age", c.Age); err != nil {
		return Calf{}, err
	}
	if err := livestock.NonNegative("weight", c.Weight); err != nil {
		return Calf{}, err
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Calf, error) {
	c, err := Normalize(in)
	if err != nil {
		return Calf{}, err
	}

	now := s.now().UTC()
	c.ID = livestock.NewID()
	c.CreatedAt = now
	c.UpdatedAt = now

	// La unicidad de name/calfId la garantiza el store.
	if err := s.repo.Create(ctx, c); err != nil {
		return Calf{}, err
	}
	return c, nil
}

// Update reemplaza todos los campos mutables del ternero.
func (s *Service) Update(ctx context.Context, id string, in Input) (Calf, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Calf{}, err
	}

	c, err := Normalize(in)
	if err != nil {
		return Calf{}, err
	}
	c.ID = current.ID
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, c); err != nil {
		return Calf{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Calf, error) {
	canonical, err := livestock.ParseID(id)
	if err != nil {
		return Calf{}, livestock.Errorf(livestock.KindNotFound, "calf not found")
	}
	return s.repo.GetByID(ctx, canonical)
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Calf, error) {
	filter.CreatedSince = livestock.Since(s.now(), filter.InFarmDays)
	return s.repo.List(ctx, filter)
}

// Delete borra el ternero y lo desvincula de todas las vacas.
func (s *Service) Delete(ctx context.Context, id string) error {
	canonical, err := livestock.ParseID(id)
	if err != nil {
		return livestock.Errorf(livestock.KindNotFound, "calf not found")
	}
	return s.repo.Delete(ctx, canonical)
}
