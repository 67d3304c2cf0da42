package cows

import (
	"context"
	"time"

	"livestock-records/internal/domain/calves"
	"livestock-records/internal/domain/livestock"
	"livestock-records/internal/platform/logger"
)

// CalfStore es lo que el módulo de vacas necesita de terneros. *calves.Service lo implementa.
type CalfStore interface {
	CalfLookup
	Create(ctx context.Context, in calves.Input) (calves.Calf, error)
}

type Service struct {
	repo   Repository
	calves CalfStore
	links  *LinkManager
	now    func() time.Time
}

func NewService(repo Repository, calfStore CalfStore) *Service {
	return &Service{
		repo:   repo,
		calves: calfStore,
		links:  NewLinkManager(calfStore),
		now:    time.Now,
	}
}

// ReproductionInput es la parte reproductiva del payload; también la usa la carga masiva de reportes.
type ReproductionInput struct {
	BreedingDate                      any `json:"breedingDate"`
	EmbryonicDeathDate                any `json:"embryonicDeathDate"`
	ExpectedCalvingDate               any `json:"expectedCalvingDate"`
	EarlyDewormingDate                any `json:"earlyDewormingDate"`
	PreCalvingMetabolicSupplimentDate any `json:"preCalvingMetabolicSupplimentDate"`
	LateDewormingDate                 any `json:"lateDewormingDate"`
	CalvingDate                       any `json:"calvingDate"`
	CalvingCount                      any `json:"calvingCount"`
	IsFertilityConfirmed              any `json:"isFertilityConfirmed"`
}

func (in ReproductionInput) Normalize() (Reproduction, error) {
	count, err := livestock.ParseCount("calvingCount", in.CalvingCount, 0, 0)
	if err != nil {
		return Reproduction{}, err
	}
	return Reproduction{
		BreedingDate:                      livestock.ParseDate(in.BreedingDate),
		EmbryonicDeathDate:                livestock.ParseDate(in.EmbryonicDeathDate),
		ExpectedCalvingDate:               livestock.ParseDate(in.ExpectedCalvingDate),
		EarlyDewormingDate:                livestock.ParseDate(in.EarlyDewormingDate),
		PreCalvingMetabolicSupplimentDate: livestock.ParseDate(in.PreCalvingMetabolicSupplimentDate),
		LateDewormingDate:                 livestock.ParseDate(in.LateDewormingDate),
		CalvingDate:                       livestock.ParseDate(in.CalvingDate),
		CalvingCount:                      count,
		IsFertilityConfirmed:              livestock.ParseBool(in.IsFertilityConfirmed),
	}, nil
}

// Input es el payload de alta y de actualización (reemplazo completo).
type Input struct {
	CowID          any `json:"cowId"`
	Name           any `json:"name"`
	Breed          any `json:"breed"`
	Age            any `json:"age"`
	Weight         any `json:"weight"`
	MilkProduction any `json:"milkProduction"`
	Image1         any `json:"image1"`
	Image2         any `json:"image2"`

	Medicines         any `json:"medicines"`
	MedicineToConsume any `json:"medicineToConsume"`
	Pregnancies       any `json:"pregnancies"`

	ReproductionInput

	LinkedCalves any `json:"linkedCalves"`
	Calves       any `json:"calves"` // nombre legacy de linkedCalves

	IsPregnant  any `json:"isPregnant"`
	IsPregenant any `json:"isPregenant"` // nombre legacy
	IsSick      any `json:"isSick"`

	// Solo lectura: el formulario de edición reenvía el registro completo. Se ignoran.
	ID        any `json:"id"`
	CreatedAt any `json:"createdAt"`
	UpdatedAt any `json:"updatedAt"`
}

func (in Input) linkRequest() any {
	if in.LinkedCalves != nil {
		return in.LinkedCalves
	}
	return in.Calves
}

// Normalize produce el registro canónico sin identidad, timestamps ni links.
func Normalize(in Input) (Cow, error) {
	pregnant := in.IsPregnant
	if pregnant == nil {
		pregnant = in.IsPregenant
	}

	rep, err := in.ReproductionInput.Normalize()
	if err != nil {
		return Cow{}, err
	}
	pregnancies, err := normalizePregnancies(in.Pregnancies)
	if err != nil {
		return Cow{}, err
	}

	c := Cow{
		Tag:               livestock.ParseTag(in.CowID),
		Name:              livestock.ParseString(in.Name),
		Breed:             livestock.ParseString(in.Breed),
		Age:               livestock.ParseNumber(in.Age),
		Weight:            livestock.ParseNumber(in.Weight),
		MilkProduction:    livestock.ParseNumber(in.MilkProduction),
		Image1:            livestock.ParseString(in.Image1),
		Image2:            livestock.ParseString(in.Image2),
		Medicines:         livestock.NormalizeMedicines(in.Medicines),
		MedicineToConsume: livestock.NormalizePlannedMedicines(in.MedicineToConsume),
		Pregnancies:       pregnancies,
		Reproduction:      rep,
		LinkedCalves:      []CalfLink{},
		IsPregnant:        livestock.ParseBool(pregnant),
		IsSick:            livestock.ParseBool(in.IsSick),
	}

	if err := livestock.Required("name", c.Name); err != nil {
		return Cow{}, err
	}
	if err := livestock.Required("image1", c.Image1); err != nil {
		return Cow{}, err
	}
	if err := livestock.NonNegative("age", c.Age); err != nil {
		return Cow{}, err
	}
	if err := livestock.NonNegative("weight", c.Weight); err != nil {
		return Cow{}, err
	}
	if err := livestock.NonNegative("milkProduction", c.MilkProduction); err != nil {
		return Cow{}, err
	}
	return c, nil
}

func normalizePregnancies(v any) ([]Pregnancy, error) {
	objs := livestock.Objects(v)
	out := make([]Pregnancy, 0, len(objs))
	for _, m := range objs {
		attempt, err := livestock.ParseCount("pregnancies.attempt", m["attempt"], 1, 1)
		if err != nil {
			return nil, err
		}
		out = append(out, Pregnancy{
			Attempt:   attempt,
			StartDate: livestock.ParseDate(m["startDate"]),
			DueDate:   livestock.ParseDate(m["dueDate"]),
			Delivered: livestock.ParseBool(m["delivered"]),
			Notes:     livestock.ParseString(m["notes"]),
		})
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Cow, error) {
	c, err := Normalize(in)
	if err != nil {
		return Cow{}, err
	}
	if c.LinkedCalves, err = s.links.Resolve(ctx, in.linkRequest()); err != nil {
		return Cow{}, err
	}

	now := s.now().UTC()
	c.ID = livestock.NewID()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.repo.Create(ctx, c); err != nil {
		return Cow{}, err
	}
	return c, nil
}

// Update reemplaza el documento completo. linkedCalves se reemplaza entero:
// los terneros que no vienen en el request quedan desvinculados.
// Si la validación falla la vaca no cambia.
func (s *Service) Update(ctx context.Context, id string, in Input) (Cow, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Cow{}, err
	}

	c, err := Normalize(in)
	if err != nil {
		return Cow{}, err
	}
	if c.LinkedCalves, err = s.links.Resolve(ctx, in.linkRequest()); err != nil {
		return Cow{}, err
	}

	c.ID = current.ID
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, c); err != nil {
		return Cow{}, err
	}
	return c, nil
}

// AddCalf registra un ternero y lo agrega (merge) a los linkedCalves de la vaca.
// No es atómico: si falla el segundo write el ternero queda creado sin vincular.
func (s *Service) AddCalf(ctx context.Context, cowID string, in calves.Input) (Cow, calves.Calf, error) {
	cow, err := s.GetByID(ctx, cowID)
	if err != nil {
		return Cow{}, calves.Calf{}, err
	}

	calf, err := s.calves.Create(ctx, in)
	if err != nil {
		return Cow{}, calves.Calf{}, err
	}

	cow.LinkedCalves = appendLink(cow.LinkedCalves, calf.ID)
	cow.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, cow); err != nil {
		logger.FromContext(ctx).Error("calf created but not linked", logger.Fields{
			"cow_id":  cow.ID,
			"calf_id": calf.ID,
			"err":     err,
		})
		return Cow{}, calves.Calf{}, err
	}
	return cow, calf, nil
}

// ApplyReproduction actualiza solo la línea de tiempo reproductiva de la vaca con ese nombre.
// Si tag no es nil también debe coincidir el cowId.
func (s *Service) ApplyReproduction(ctx context.Context, name string, tag *string, rep Reproduction) (Cow, error) {
	c, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return Cow{}, err
	}
	if tag != nil && (c.Tag == nil || *c.Tag != *tag) {
		return Cow{}, livestock.Errorf(livestock.KindNotFound, "cow not found: %s (%s)", name, *tag)
	}

	c.Reproduction = rep
	c.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, c); err != nil {
		return Cow{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Cow, error) {
	canonical, err := livestock.ParseID(id)
	if err != nil {
		return Cow{}, livestock.Errorf(livestock.KindNotFound, "cow not found")
	}
	return s.repo.GetByID(ctx, canonical)
}

// LinkedCalves devuelve los links de la vaca con {name, image1} resueltos.
func (s *Service) LinkedCalves(ctx context.Context, c Cow) []LinkedCalf {
	return s.links.Enrich(ctx, c.LinkedCalves)
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Cow, error) {
	filter.CreatedSince = livestock.Since(s.now(), filter.InFarmDays)
	return s.repo.List(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	canonical, err := livestock.ParseID(id)
	if err != nil {
		return livestock.Errorf(livestock.KindNotFound, "cow not found")
	}
	return s.repo.Delete(ctx, canonical)
}
