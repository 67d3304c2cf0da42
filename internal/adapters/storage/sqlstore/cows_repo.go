package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"livestock-records/internal/domain/cows"
	"livestock-records/internal/domain/livestock"

	"github.com/jmoiron/sqlx"
)

type cowRepo struct {
	s *Store
}

const insertCow = `
	INSERT INTO cows (
		id, tag, name, breed, age, weight, milk_production, image1, image2,
		medicines, medicine_to_consume, pregnancies,
		breeding_date, embryonic_death_date, expected_calving_date, early_deworming_date,
		pre_calving_metabolic_supplement_date, late_deworming_date, calving_date,
		calving_count, is_fertility_confirmed,
		is_pregnant, is_sick, created_at, updated_at
	) VALUES (
		:id, :tag, :name, :breed, :age, :weight, :milk_production, :image1, :image2,
		:medicines, :medicine_to_consume, :pregnancies,
		:breeding_date, :embryonic_death_date, :expected_calving_date, :early_deworming_date,
		:pre_calving_metabolic_supplement_date, :late_deworming_date, :calving_date,
		:calving_count, :is_fertility_confirmed,
		:is_pregnant, :is_sick, :created_at, :updated_at
	)`

const updateCow = `
	UPDATE cows
	SET
		tag = :tag,
		name = :name,
		breed = :breed,
		age = :age,
		weight = :weight,
		milk_production = :milk_production,
		image1 = :image1,
		image2 = :image2,
		medicines = :medicines,
		medicine_to_consume = :medicine_to_consume,
		pregnancies = :pregnancies,
		breeding_date = :breeding_date,
		embryonic_death_date = :embryonic_death_date,
		expected_calving_date = :expected_calving_date,
		early_deworming_date = :early_deworming_date,
		pre_calving_metabolic_supplement_date = :pre_calving_metabolic_supplement_date,
		late_deworming_date = :late_deworming_date,
		calving_date = :calving_date,
		calving_count = :calving_count,
		is_fertility_confirmed = :is_fertility_confirmed,
		is_pregnant = :is_pregnant,
		is_sick = :is_sick,
		updated_at = :updated_at
	WHERE id = :id`

// Create inserta la fila y sus vínculos en una transacción.
func (r *cowRepo) Create(ctx context.Context, c cows.Cow) error {
	row, err := toCowRow(c)
	if err != nil {
		return err
	}
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, insertCow, row); err != nil {
			return err
		}
		return r.writeLinks(ctx, tx, c.ID, c.LinkedCalves)
	})
}

// Update reemplaza la fila y la lista completa de vínculos.
func (r *cowRepo) Update(ctx context.Context, c cows.Cow) error {
	row, err := toCowRow(c)
	if err != nil {
		return err
	}
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx, updateCow, row)
		if err != nil {
			return err
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return livestock.Errorf(livestock.KindNotFound, "cow not found")
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM cow_calves WHERE cow_id = ?`), c.ID); err != nil {
			return err
		}
		return r.writeLinks(ctx, tx, c.ID, c.LinkedCalves)
	})
}

func (r *cowRepo) GetByID(ctx context.Context, id string) (cows.Cow, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return cows.Cow{}, livestock.Errorf(livestock.KindNotFound, "cow not found")
	}
	return r.getOne(ctx, "id", id, "cow not found")
}

func (r *cowRepo) GetByName(ctx context.Context, name string) (cows.Cow, error) {
	return r.getOne(ctx, "name", name, "cow not found: "+name)
}

func (r *cowRepo) List(ctx context.Context, f cows.Filter) ([]cows.Cow, error) {
	var w where
	if name := strings.TrimSpace(f.Name); name != "" {
		w.add(`LOWER(name) LIKE ? ESCAPE '\'`, likePattern(name))
	}
	w.flag("is_sick", f.IsSick)
	w.flag("is_pregnant", f.IsPregnant)
	w.flag("is_fertility_confirmed", f.IsFertilityConfirmed)
	w.rangeOf("age", f.Age)
	w.rangeOf("weight", f.Weight)
	w.rangeOf("milk_production", f.MilkProduction)
	if f.CreatedSince != nil {
		w.add("created_at >= ?", f.CreatedSince.UTC())
	}

	q := r.s.db.Rebind(`SELECT ` + cowColumns + ` FROM cows` + w.String() + ` ORDER BY created_at DESC, seq DESC`)
	var rows []cowRow
	if err := r.s.db.SelectContext(ctx, &rows, q, w.args...); err != nil {
		return nil, err
	}

	out := make([]cows.Cow, 0, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		c, err := row.toCow()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
		ids = append(ids, c.ID)
	}
	if len(ids) == 0 {
		return out, nil
	}

	links, err := r.loadLinks(ctx, ids...)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if l, ok := links[out[i].ID]; ok {
			out[i].LinkedCalves = l
		}
	}
	return out, nil
}

func (r *cowRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.db.ExecContext(ctx, r.s.db.Rebind(`DELETE FROM cows WHERE id = ?`), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return livestock.Errorf(livestock.KindNotFound, "cow not found")
	}
	return nil
}

func (r *cowRepo) getOne(ctx context.Context, col, value, notFound string) (cows.Cow, error) {
	var row cowRow
	q := r.s.db.Rebind(`SELECT ` + cowColumns + ` FROM cows WHERE ` + col + ` = ?`)
	if err := r.s.db.GetContext(ctx, &row, q, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cows.Cow{}, livestock.Errorf(livestock.KindNotFound, "%s", notFound)
		}
		return cows.Cow{}, err
	}
	c, err := row.toCow()
	if err != nil {
		return cows.Cow{}, err
	}

	links, err := r.loadLinks(ctx, c.ID)
	if err != nil {
		return cows.Cow{}, err
	}
	if l, ok := links[c.ID]; ok {
		c.LinkedCalves = l
	}
	return c, nil
}

type linkRow struct {
	CowID  string `db:"cow_id"`
	CalfID string `db:"calf_id"`
}

// loadLinks trae los vínculos de varias vacas respetando el orden guardado.
func (r *cowRepo) loadLinks(ctx context.Context, cowIDs ...string) (map[string][]cows.CalfLink, error) {
	q, args, err := sqlx.In(`SELECT cow_id, calf_id FROM cow_calves WHERE cow_id IN (?) ORDER BY cow_id, position`, cowIDs)
	if err != nil {
		return nil, err
	}
	var rows []linkRow
	if err := r.s.db.SelectContext(ctx, &rows, r.s.db.Rebind(q), args...); err != nil {
		return nil, err
	}

	out := make(map[string][]cows.CalfLink, len(cowIDs))
	for _, l := range rows {
		out[l.CowID] = append(out[l.CowID], cows.CalfLink{CalfID: l.CalfID})
	}
	return out, nil
}

func (r *cowRepo) writeLinks(ctx context.Context, tx *sqlx.Tx, cowID string, links []cows.CalfLink) error {
	q := tx.Rebind(`INSERT INTO cow_calves (cow_id, calf_id, position) VALUES (?, ?, ?)`)
	for i, l := range links {
		if _, err := tx.ExecContext(ctx, q, cowID, l.CalfID, i); err != nil {
			return err
		}
	}
	return nil
}

func (r *cowRepo) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		if livestock.KindOf(err) != livestock.KindStore {
			return err
		}
		return r.s.mapError(err, "cow", "cowId")
	}
	return tx.Commit()
}
