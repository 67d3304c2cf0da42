package postgres

import (
	"context"
	"errors"
	"time"

	"livestock-records/internal/adapters/storage/sqlstore"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql) envuelto en sqlx.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para un rodeo chico (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// NewStore abre la base y devuelve el store SQL con el dialecto de Postgres.
func NewStore(dsn string) (*sqlstore.Store, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	return sqlstore.New(db, Dialect), nil
}

var Dialect = sqlstore.Dialect{
	Name:     "postgres",
	Schema:   schema,
	Classify: classify,
}

// classify reconoce unique_violation (23505) y foreign_key_violation (23503).
func classify(err error) (sqlstore.Violation, string) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return sqlstore.NoViolation, ""
	}
	switch pgErr.Code {
	case "23505":
		return sqlstore.UniqueViolation, pgErr.ConstraintName
	case "23503":
		return sqlstore.ForeignKeyViolation, pgErr.ConstraintName
	}
	return sqlstore.NoViolation, ""
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS calves (
		id                  TEXT PRIMARY KEY,
		tag                 TEXT,
		name                TEXT NOT NULL,
		breed               TEXT NOT NULL DEFAULT '',
		age                 DOUBLE PRECISION,
		weight              DOUBLE PRECISION,
		image1              TEXT NOT NULL,
		image2              TEXT NOT NULL DEFAULT '',
		medicines           JSONB NOT NULL DEFAULT '[]',
		medicine_to_consume JSONB NOT NULL DEFAULT '[]',
		is_pregnant         BOOLEAN NOT NULL DEFAULT FALSE,
		is_sick             BOOLEAN NOT NULL DEFAULT FALSE,
		created_at          TIMESTAMPTZ NOT NULL,
		updated_at          TIMESTAMPTZ NOT NULL,
		seq                 BIGINT GENERATED BY DEFAULT AS IDENTITY,
		CONSTRAINT calves_name_key UNIQUE (name),
		CONSTRAINT calves_tag_key UNIQUE (tag)
	)`,
	`CREATE TABLE IF NOT EXISTS cows (
		id                  TEXT PRIMARY KEY,
		tag                 TEXT,
		name                TEXT NOT NULL,
		breed               TEXT NOT NULL DEFAULT '',
		age                 DOUBLE PRECISION,
		weight              DOUBLE PRECISION,
		milk_production     DOUBLE PRECISION,
		image1              TEXT NOT NULL,
		image2              TEXT NOT NULL DEFAULT '',
		medicines           JSONB NOT NULL DEFAULT '[]',
		medicine_to_consume JSONB NOT NULL DEFAULT '[]',
		pregnancies         JSONB NOT NULL DEFAULT '[]',
		breeding_date                         TIMESTAMPTZ,
		embryonic_death_date                  TIMESTAMPTZ,
		expected_calving_date                 TIMESTAMPTZ,
		early_deworming_date                  TIMESTAMPTZ,
		pre_calving_metabolic_supplement_date TIMESTAMPTZ,
		late_deworming_date                   TIMESTAMPTZ,
		calving_date                          TIMESTAMPTZ,
		calving_count          INTEGER NOT NULL DEFAULT 0,
		is_fertility_confirmed BOOLEAN NOT NULL DEFAULT FALSE,
		is_pregnant            BOOLEAN NOT NULL DEFAULT FALSE,
		is_sick                BOOLEAN NOT NULL DEFAULT FALSE,
		created_at             TIMESTAMPTZ NOT NULL,
		updated_at             TIMESTAMPTZ NOT NULL,
		seq                    BIGINT GENERATED BY DEFAULT AS IDENTITY,
		CONSTRAINT cows_name_key UNIQUE (name),
		CONSTRAINT cows_tag_key UNIQUE (tag)
	)`,
	`CREATE TABLE IF NOT EXISTS cow_calves (
		cow_id   TEXT NOT NULL REFERENCES cows(id) ON DELETE CASCADE,
		calf_id  TEXT NOT NULL REFERENCES calves(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		PRIMARY KEY (cow_id, calf_id)
	)`,
	`CREATE INDEX IF NOT EXISTS cow_calves_calf_id_idx ON cow_calves (calf_id)`,
	`CREATE INDEX IF NOT EXISTS cows_created_at_idx ON cows (created_at DESC, seq DESC)`,
	`CREATE INDEX IF NOT EXISTS calves_created_at_idx ON calves (created_at DESC, seq DESC)`,
}
