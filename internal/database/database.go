// Package database — хранилище на PostgreSQL через sqlx.
package database

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type DB struct {
	*sqlx.DB
}

func Connect(dsn string) (*DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, err
	}
	return &DB{db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         SERIAL PRIMARY KEY,
	name       VARCHAR(50)  NOT NULL,
	email      VARCHAR(255) NOT NULL UNIQUE,
	password   VARCHAR(255) NOT NULL,
	created_at TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS todos (
	id          SERIAL PRIMARY KEY,
	title       VARCHAR(100) NOT NULL,
	description VARCHAR(1000),
	status      VARCHAR(20) NOT NULL DEFAULT 'pending'
		CHECK (status IN ('pending', 'in_progress', 'completed')),
	priority    VARCHAR(10) NOT NULL DEFAULT 'medium'
		CHECK (priority IN ('low', 'medium', 'high')),
	due_date    TIMESTAMPTZ,
	user_id     INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_todos_user_created
	ON todos (user_id, created_at DESC);
`

// InitSchema выполняет идемпотентный DDL при старте.
func (db *DB) InitSchema() error {
	_, err := db.Exec(schema)
	return err
}
