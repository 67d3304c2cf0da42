package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"livestock-records/internal/domain/calves"
	"livestock-records/internal/domain/livestock"
)

type calfRepo struct {
	s *Store
}

func (r *calfRepo) Create(ctx context.Context, c calves.Calf) error {
	row, err := toCalfRow(c)
	if err != nil {
		return err
	}
	_, err = r.s.db.NamedExecContext(ctx, `
		INSERT INTO calves (
			id, tag, name, breed, age, weight, image1, image2,
			medicines, medicine_to_consume, is_pregnant, is_sick,
			created_at, updated_at
		) VALUES (
			:id, :tag, :name, :breed, :age, :weight, :image1, :image2,
			:medicines, :medicine_to_consume, :is_pregnant, :is_sick,
			:created_at, :updated_at
		)
	`, row)
	return r.s.mapError(err, "calf", "calfId")
}

func (r *calfRepo) Update(ctx context.Context, c calves.Calf) error {
	row, err := toCalfRow(c)
	if err != nil {
		return err
	}
	res, err := r.s.db.NamedExecContext(ctx, `
		UPDATE calves
		SET
			tag = :tag,
			name = :name,
			breed = :breed,
			age = :age,
			weight = :weight,
			image1 = :image1,
			image2 = :image2,
			medicines = :medicines,
			medicine_to_consume = :medicine_to_consume,
			is_pregnant = :is_pregnant,
			is_sick = :is_sick,
			updated_at = :updated_at
		WHERE id = :id
	`, row)
	if err != nil {
		return r.s.mapError(err, "calf", "calfId")
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return livestock.Errorf(livestock.KindNotFound, "calf not found")
	}
	return nil
}

func (r *calfRepo) GetByID(ctx context.Context, id string) (calves.Calf, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return calves.Calf{}, livestock.Errorf(livestock.KindNotFound, "calf not found")
	}

	var row calfRow
	q := r.s.db.Rebind(`SELECT ` + calfColumns + ` FROM calves WHERE id = ?`)
	if err := r.s.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return calves.Calf{}, livestock.Errorf(livestock.KindNotFound, "calf not found")
		}
		return calves.Calf{}, err
	}
	return row.toCalf()
}

func (r *calfRepo) List(ctx context.Context, f calves.Filter) ([]calves.Calf, error) {
	var w where
	if name := strings.TrimSpace(f.Name); name != "" {
		w.add(`LOWER(name) LIKE ? ESCAPE '\'`, likePattern(name))
	}
	w.flag("is_sick", f.IsSick)
	w.flag("is_pregnant", f.IsPregnant)
	w.rangeOf("age", f.Age)
	w.rangeOf("weight", f.Weight)
	if f.CreatedSince != nil {
		w.add("created_at >= ?", f.CreatedSince.UTC())
	}

	q := r.s.db.Rebind(`SELECT ` + calfColumns + ` FROM calves` + w.String() + ` ORDER BY created_at DESC, seq DESC`)
	var rows []calfRow
	if err := r.s.db.SelectContext(ctx, &rows, q, w.args...); err != nil {
		return nil, err
	}

	out := make([]calves.Calf, 0, len(rows))
	for _, row := range rows {
		c, err := row.toCalf()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Delete: cow_calves tiene ON DELETE CASCADE, el vínculo desaparece con el ternero.
func (r *calfRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.db.ExecContext(ctx, r.s.db.Rebind(`DELETE FROM calves WHERE id = ?`), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return livestock.Errorf(livestock.KindNotFound, "calf not found")
	}
	return nil
}
