package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the pure-Go SQLite driver to register it with the database/sql package.
	_ "modernc.org/sqlite"
)

type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	// the ledger is written by one processor at a time
	conn.SetMaxOpenConns(1)

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

// Init - creates the transaction ledger schema.
func (that *Storage) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS transactions (
			seq          INTEGER PRIMARY KEY AUTOINCREMENT,
			id           TEXT    NOT NULL UNIQUE,
			instruction  TEXT    NOT NULL,
			game_id      TEXT    NOT NULL,
			signer       TEXT    NOT NULL,
			code         INTEGER NOT NULL,
			error        TEXT    NOT NULL DEFAULT '',
			game         BLOB,
			processed_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS transactions_game_id ON transactions (game_id);
	`

	_, err := that.Connection.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("can't close database: %w", err)
	}

	return nil
}
