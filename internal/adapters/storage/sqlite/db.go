package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"livestock-records/internal/adapters/storage/sqlstore"

	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

func init() {
	// sqlx no conoce el nombre del driver de modernc
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open abre (o crea) el archivo SQLite con foreign keys activas.
func Open(path string) (*sqlx.DB, error) {
	if path == "" {
		path = "livestock.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// un solo writer; evita SQLITE_BUSY entre conexiones del pool
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewStore abre el archivo y devuelve el store SQL con el dialecto de SQLite.
func NewStore(path string) (*sqlstore.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return sqlstore.New(db, Dialect), nil
}

var Dialect = sqlstore.Dialect{
	Name:     "sqlite",
	Schema:   schema,
	Classify: classify,
}

// classify usa el código extendido; el detalle es "tabla.columna" del mensaje.
func classify(err error) (sqlstore.Violation, string) {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return sqlstore.NoViolation, ""
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		msg := se.Error()
		if i := strings.LastIndex(msg, "failed: "); i >= 0 {
			msg = msg[i+len("failed: "):]
		}
		return sqlstore.UniqueViolation, msg
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return sqlstore.ForeignKeyViolation, ""
	}
	return sqlstore.NoViolation, ""
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS calves (
		id                  TEXT PRIMARY KEY,
		tag                 TEXT UNIQUE,
		name                TEXT NOT NULL UNIQUE,
		breed               TEXT NOT NULL DEFAULT '',
		age                 REAL,
		weight              REAL,
		image1              TEXT NOT NULL,
		image2              TEXT NOT NULL DEFAULT '',
		medicines           TEXT NOT NULL DEFAULT '[]',
		medicine_to_consume TEXT NOT NULL DEFAULT '[]',
		is_pregnant         BOOLEAN NOT NULL DEFAULT 0,
		is_sick             BOOLEAN NOT NULL DEFAULT 0,
		created_at          DATETIME NOT NULL,
		updated_at          DATETIME NOT NULL,
		seq                 INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS cows (
		id                  TEXT PRIMARY KEY,
		tag                 TEXT UNIQUE,
		name                TEXT NOT NULL UNIQUE,
		breed               TEXT NOT NULL DEFAULT '',
		age                 REAL,
		weight              REAL,
		milk_production     REAL,
		image1              TEXT NOT NULL,
		image2              TEXT NOT NULL DEFAULT '',
		medicines           TEXT NOT NULL DEFAULT '[]',
		medicine_to_consume TEXT NOT NULL DEFAULT '[]',
		pregnancies         TEXT NOT NULL DEFAULT '[]',
		breeding_date                         DATETIME,
		embryonic_death_date                  DATETIME,
		expected_calving_date                 DATETIME,
		early_deworming_date                  DATETIME,
		pre_calving_metabolic_supplement_date DATETIME,
		late_deworming_date                   DATETIME,
		calving_date                          DATETIME,
		calving_count          INTEGER NOT NULL DEFAULT 0,
		is_fertility_confirmed BOOLEAN NOT NULL DEFAULT 0,
		is_pregnant            BOOLEAN NOT NULL DEFAULT 0,
		is_sick                BOOLEAN NOT NULL DEFAULT 0,
		created_at             DATETIME NOT NULL,
		updated_at             DATETIME NOT NULL,
		seq                    INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS cow_calves (
		cow_id   TEXT NOT NULL REFERENCES cows(id) ON DELETE CASCADE,
		calf_id  TEXT NOT NULL REFERENCES calves(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		PRIMARY KEY (cow_id, calf_id)
	)`,
	`CREATE INDEX IF NOT EXISTS cow_calves_calf_id_idx ON cow_calves (calf_id)`,
	// seq: orden de alta, desempata created_at. Las escrituras ya están serializadas (una conexión).
	`CREATE TRIGGER IF NOT EXISTS calves_seq AFTER INSERT ON calves
	BEGIN
		UPDATE calves SET seq = (SELECT COALESCE(MAX(seq), 0) + 1 FROM calves) WHERE id = NEW.id;
	END`,
	`CREATE TRIGGER IF NOT EXISTS cows_seq AFTER INSERT ON cows
	BEGIN
		UPDATE cows SET seq = (SELECT COALESCE(MAX(seq), 0) + 1 FROM cows) WHERE id = NEW.id;
	END`,
}
