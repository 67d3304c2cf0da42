package reports

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"livestock-records/internal/domain/calves"
	"livestock-records/internal/domain/cows"
	"livestock-records/internal/domain/livestock"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type CowStore interface {
	List(ctx context.Context, filter cows.Filter) ([]cows.Cow, error)
	ApplyReproduction(ctx context.Context, name string, tag *string, rep cows.Reproduction) (cows.Cow, error)
}

type CalfSource interface {
	List(ctx context.Context, filter calves.Filter) ([]calves.Calf, error)
}

type Service struct {
	cows   CowStore
	calves CalfSource
	now    func() time.Time
}

func NewService(cowStore CowStore, calfSource CalfSource) *Service {
	return &Service{
		cows:   cowStore,
		calves: calfSource,
		now:    time.Now,
	}
}

// Generate recorre la población completa y calcula el reporte.
// Si falla cualquiera de las lecturas no hay resultado parcial.
func (s *Service) Generate(ctx context.Context) (Report, error) {
	var (
		cowList  []cows.Cow
		calfList []calves.Calf
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cowList, err = s.cows.List(gctx, cows.Filter{})
		return err
	})
	g.Go(func() error {
		var err error
		calfList, err = s.calves.List(gctx, calves.Filter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	return Build(s.now(), cowList, calfList), nil
}

// Build es el cálculo puro del reporte.
func Build(now time.Time, cowList []cows.Cow, calfList []calves.Calf) Report {
	rep := Report{
		GeneratedAt:         now.UTC(),
		BasicInfo:           make([]BasicInfo, 0, len(cowList)),
		ReproductiveRecords: make([]ReproductiveRecord, 0, len(cowList)),
	}

	// milkProduction nulo cuenta como 0 en la suma y en el promedio.
	milk := make([]float64, 0, len(cowList))
	recorded := make([]float64, 0, len(cowList))

	for _, c := range cowList {
		rep.TotalCows++
		if c.IsPregnant {
			rep.TotalPregnant++
		}
		if c.IsFertilityConfirmed {
			rep.TotalFertilized++
		}
		if c.IsSick {
			rep.TotalSick++
		}

		m := 0.0
		if c.MilkProduction != nil {
			m = *c.MilkProduction
			recorded = append(recorded, m)
		}
		milk = append(milk, m)

		if d := c.ExpectedCalvingDate; d != nil && !d.Before(now) && d.Sub(now) <= nearCalvingWindow {
			rep.NearCalving++
		}
		if d := c.CalvingDate; d != nil && d.Before(now) {
			rep.RecentlyCalved++
		}

		taken, pending := livestock.CountTaken(c.Medicines)
		rep.Medicines.CowsTaken += taken
		rep.Medicines.CowsPending += pending

		rep.BasicInfo = append(rep.BasicInfo, BasicInfo{
			ID:             c.ID,
			CowID:          c.Tag,
			Name:           c.Name,
			Breed:          c.Breed,
			Age:            c.Age,
			Weight:         c.Weight,
			MilkProduction: c.MilkProduction,
			IsSick:         c.IsSick,
			IsPregnant:     c.IsPregnant,
		})
		rep.ReproductiveRecords = append(rep.ReproductiveRecords, ReproductiveRecord{
			ID:                                c.ID,
			CowID:                             c.Tag,
			Name:                              c.Name,
			BreedingDate:                      c.BreedingDate,
			EmbryonicDeathDate:                c.EmbryonicDeathDate,
			ExpectedCalvingDate:               c.ExpectedCalvingDate,
			EarlyDewormingDate:                c.EarlyDewormingDate,
			PreCalvingMetabolicSupplimentDate: c.PreCalvingMetabolicSupplimentDate,
			LateDewormingDate:                 c.LateDewormingDate,
			CalvingDate:                       c.CalvingDate,
			CalvingCount:                      c.CalvingCount,
			IsFertilityConfirmed:              c.IsFertilityConfirmed,
		})
	}

	if len(milk) > 0 {
		rep.TotalMilk = floats.Sum(milk)
		avg := stat.Mean(milk, nil)
		rep.AverageMilkProduced = &avg
	}
	if len(recorded) > 0 {
		lo, hi := floats.Min(recorded), floats.Max(recorded)
		rep.MinMilkProduced = &lo
		rep.MaxMilkProduced = &hi
	}

	weights := make([]float64, 0, len(calfList))
	for _, c := range calfList {
		rep.TotalCalves++
		if c.IsSick {
			rep.TotalSickCalves++
		}
		if c.Weight != nil {
			weights = append(weights, *c.Weight)
		}
		taken, pending := livestock.CountTaken(c.Medicines)
		rep.Medicines.CalvesTaken += taken
		rep.Medicines.CalvesPending += pending
	}
	if len(weights) > 0 {
		avg := stat.Mean(weights, nil)
		rep.AverageCalfWeight = &avg
	}

	rep.Health = Health{
		Cows: []StatusCount{
			{Status: "Healthy", Count: rep.TotalCows - rep.TotalSick},
			{Status: "Sick", Count: rep.TotalSick},
		},
		Calves: []StatusCount{
			{Status: "Healthy", Count: rep.TotalCalves - rep.TotalSickCalves},
			{Status: "Sick", Count: rep.TotalSickCalves},
		},
		Pregnancy: []StatusCount{
			{Status: "Pregnant", Count: rep.TotalPregnant},
			{Status: "Not Pregnant", Count: rep.TotalCows - rep.TotalPregnant},
		},
	}
	return rep
}

// Section devuelve solo una parte del reporte.
func (s *Service) Section(ctx context.Context, name string) (any, error) {
	switch name {
	case SectionOverview, SectionBasicInfo, SectionReproductive, SectionHealth, SectionMedicines:
	default:
		return nil, livestock.Errorf(livestock.KindValidation, "invalid report type: %s", name)
	}

	rep, err := s.Generate(ctx)
	if err != nil {
		return nil, err
	}

	switch name {
	case SectionOverview:
		return rep.Overview, nil
	case SectionBasicInfo:
		return rep.BasicInfo, nil
	case SectionReproductive:
		return rep.ReproductiveRecords, nil
	case SectionHealth:
		return rep.Health, nil
	default:
		return rep.Medicines, nil
	}
}

// ReproductiveRecordInput es una fila de la carga masiva: identifica la vaca por
// name (+ cowId si viene) y trae la línea de tiempo reproductiva completa.
type ReproductiveRecordInput struct {
	Name  any `json:"name"`
	CowID any `json:"cowId"`
	cows.ReproductionInput

	// Solo lectura, se ignora.
	ID any `json:"id"`
}

// ApplyReproductive actualiza la línea reproductiva de vacas existentes.
// Todas las filas se validan antes del primer write: una fila inválida no deja cambios.
// Las filas que no corresponden a ninguna vaca se devuelven en Skipped.
func (s *Service) ApplyReproductive(ctx context.Context, records []ReproductiveRecordInput) (ReproductionResult, error) {
	type row struct {
		name string
		tag  *string
		rep  cows.Reproduction
	}

	rows := make([]row, 0, len(records))
	for i, rec := range records {
		name := livestock.ParseString(rec.Name)
		if err := livestock.Required("reproductiveRecords["+strconv.Itoa(i)+"].name", name); err != nil {
			return ReproductionResult{}, err
		}
		rep, err := rec.ReproductionInput.Normalize()
		if err != nil {
			return ReproductionResult{}, err
		}
		rows = append(rows, row{name: name, tag: livestock.ParseTag(rec.CowID), rep: rep})
	}

	res := ReproductionResult{Skipped: []string{}}
	for _, r := range rows {
		if _, err := s.cows.ApplyReproduction(ctx, r.name, r.tag, r.rep); err != nil {
			if errors.Is(err, livestock.ErrNotFound) {
				res.Skipped = append(res.Skipped, describe(r.name, r.tag))
				continue
			}
			return ReproductionResult{}, err
		}
		res.Updated++
	}
	return res, nil
}

func describe(name string, tag *string) string {
	if tag == nil {
		return name
	}
	return strings.Join([]string{name, *tag}, "/")
}
