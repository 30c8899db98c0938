package pg

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"cinevoice/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS exchanges (
	id SERIAL PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL,
	upload_path TEXT NOT NULL,
	response_path TEXT,
	transcript TEXT,
	reply_text TEXT,
	provider TEXT NOT NULL,
	latency_ms BIGINT NOT NULL DEFAULT 0,
	error_message TEXT
);
CREATE INDEX IF NOT EXISTS idx_exchanges_created_at ON exchanges(created_at DESC);
`

// PostgresDB is the Postgres-backed exchange history store
type PostgresDB struct {
	db *sql.DB
}

// NewPostgresDB opens a connection with the given connection string
func NewPostgresDB(connectionString string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &PostgresDB{db: db}, nil
}

// NewPostgresDBWithConn wraps an existing connection, used by tests
func NewPostgresDBWithConn(db *sql.DB) *PostgresDB {
	return &PostgresDB{db: db}
}

// ConnectionString assembles a lib/pq connection string
func ConnectionString(host, port, user, password, dbname string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

// EnsureSchema creates the exchanges table if missing
func (pdb *PostgresDB) EnsureSchema() error {
	if _, err := pdb.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to create exchanges table: %w", err)
	}
	return nil
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}

func (pdb *PostgresDB) Record(e *model.Exchange) (int, error) {
	insertSQL := `INSERT INTO exchanges
		(created_at, upload_path, response_path, transcript, reply_text, provider, latency_ms, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;`
	var id int
	err := pdb.db.QueryRow(insertSQL,
		e.CreatedAt, e.UploadPath, e.ResponsePath, e.Transcript, e.ReplyText, e.Provider, e.LatencyMs, e.ErrorMessage).
		Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert exchange: %w", err)
	}
	return id, nil
}

func (pdb *PostgresDB) List(limit, offset int) ([]model.Exchange, error) {
	sqlStr := `
		SELECT id, created_at, upload_path, response_path, transcript, reply_text, provider, latency_ms, error_message
		FROM exchanges
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;`
	rows, err := pdb.db.Query(sqlStr, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

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

func (pdb *PostgresDB) Count() (int, error) {
	var count int
	if err := pdb.db.QueryRow(`SELECT COUNT(*) FROM exchanges;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count failed: %w", err)
	}
	return count, nil
}
