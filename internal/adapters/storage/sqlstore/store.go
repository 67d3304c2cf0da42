package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"livestock-records/internal/domain/calves"
	"livestock-records/internal/domain/cows"
	"livestock-records/internal/domain/livestock"

	"github.com/jmoiron/sqlx"
)

// Violation clasifica errores de constraint que el store traduce a errores de dominio.
type Violation int

const (
	NoViolation Violation = iota
	UniqueViolation
	ForeignKeyViolation
)

// Dialect es lo que cambia entre motores: el DDL y cómo reconocer violaciones.
// Las queries se escriben con '?' y se pasan por Rebind.
type Dialect struct {
	Name   string
	Schema []string
	// Classify devuelve el tipo de violación y un detalle (constraint o columna).
	Classify func(err error) (Violation, string)
}

// Store implementa los repositorios de vacas y terneros sobre SQL.
type Store struct {
	db      *sqlx.DB
	dialect Dialect
}

func New(db *sqlx.DB, d Dialect) *Store {
	return &Store{db: db, dialect: d}
}

func (s *Store) Cows() cows.Repository     { return &cowRepo{s: s} }
func (s *Store) Calves() calves.Repository { return &calfRepo{s: s} }

func (s *Store) DB() *sqlx.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

// Migrate aplica el schema del dialecto. Es idempotente.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range s.dialect.Schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate %s: %w", s.dialect.Name, err)
		}
	}
	return nil
}

// mapError traduce violaciones de constraint. entity es "cow" o "calf".
func (s *Store) mapError(err error, entity, tagField string) error {
	if err == nil || s.dialect.Classify == nil {
		return err
	}
	kind, detail := s.dialect.Classify(err)
	switch kind {
	case UniqueViolation:
		detail = strings.ToLower(detail)
		switch {
		case strings.Contains(detail, "tag"):
			return livestock.Errorf(livestock.KindDuplicateKey, "a %s with this %s already exists", entity, tagField)
		case strings.Contains(detail, "name"):
			return livestock.Errorf(livestock.KindDuplicateKey, "a %s with this name already exists", entity)
		default:
			return livestock.Errorf(livestock.KindDuplicateKey, "%s already exists", entity)
		}
	case ForeignKeyViolation:
		return livestock.Errorf(livestock.KindInvalidReference, "linked calf no longer exists")
	}
	return err
}

// likePattern arma un patrón LIKE de subcadena escapando los comodines.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}

// where acumula condiciones AND con sus argumentos.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, args ...any) {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
}

func (w *where) rangeOf(col string, r livestock.Range) {
	if r.Min != nil {
		w.add(col+" >= ?", *r.Min)
	}
	if r.Max != nil {
		w.add(col+" <= ?", *r.Max)
	}
}

func (w *where) flag(col string, v *bool) {
	if v != nil {
		w.add(col+" = ?", *v)
	}
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
