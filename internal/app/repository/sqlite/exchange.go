package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"cinevoice/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS exchanges (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TIMESTAMP NOT NULL,
	upload_path TEXT NOT NULL,
	response_path TEXT,
	transcript TEXT,
	reply_text TEXT,
	provider TEXT NOT NULL,
	latency_ms INTEGER NOT NULL DEFAULT 0,
	error_message TEXT
);
CREATE INDEX IF NOT EXISTS idx_exchanges_created_at ON exchanges(created_at DESC);
`

// SQLiteDB is the default exchange history backend
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (and creates if needed) the database at dbFilePath
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	if dir := filepath.Dir(dbFilePath); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create exchanges table: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) Record(e *model.Exchange) (int, error) {
	insertSQL := `INSERT INTO exchanges
		(created_at, upload_path, response_path, transcript, reply_text, provider, latency_ms, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);`
	result, err := sdb.db.Exec(insertSQL,
		e.CreatedAt, e.UploadPath, e.ResponsePath, e.Transcript, e.ReplyText, e.Provider, e.LatencyMs, e.ErrorMessage)
	if err != nil {
		return 0, fmt.Errorf("failed to insert exchange: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read insert id: %w", err)
	}
	return int(id), nil
}

func (sdb *SQLiteDB) List(limit, offset int) ([]model.Exchange, error) {
	sqlStr := `
		SELECT id, created_at, upload_path, response_path, transcript, reply_text, provider, latency_ms, error_message
		FROM exchanges
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?;`
	rows, err := sdb.db.Query(sqlStr, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	return scanExchanges(rows)
}

func (sdb *SQLiteDB) Count() (int, error) {
	var count int
	if err := sdb.db.QueryRow(`SELECT COUNT(*) FROM exchanges;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count failed: %w", err)
	}
	return count, nil
}

func scanExchanges(rows *sql.Rows) ([]model.Exchange, error) {
	exchanges := make([]model.Exchange, 0)
	for rows.Next() {
		var e model.Exchange
		err := rows.Scan(&e.ID, &e.CreatedAt, &e.UploadPath, &e.ResponsePath, &e.Transcript,
			&e.ReplyText, &e.Provider, &e.LatencyMs, &e.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		exchanges = append(exchanges, e)
	}
	return exchanges, rows.Err()
}
