package pg

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinevoice/internal/app/model"
	"cinevoice/internal/app/repository"
)

func TestPostgresDB_Interface(t *testing.T) {
	var _ repository.ExchangeDAO = (*PostgresDB)(nil)
}

func TestConnectionString(t *testing.T) {
	got := ConnectionString("localhost", "5432", "postgres", "pw", "cinevoice")
	assert.Equal(t, "host=localhost port=5432 user=postgres password=pw dbname=cinevoice sslmode=disable", got)
}

func TestRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	pdb := NewPostgresDBWithConn(db)
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO exchanges`)).
		WithArgs(createdAt, "media/uploads/a.mp3", "media/responses/b.mp3",
			"a thriller please", "Try Heat.", "gemini", int64(900), "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	id, err := pdb.Record(&model.Exchange{
		CreatedAt:    createdAt,
		UploadPath:   "media/uploads/a.mp3",
		ResponsePath: "media/responses/b.mp3",
		Transcript:   "a thriller please",
		ReplyText:    "Try Heat.",
		Provider:     "gemini",
		LatencyMs:    900,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	pdb := NewPostgresDBWithConn(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "created_at", "upload_path", "response_path", "transcript",
		"reply_text", "provider", "latency_ms", "error_message",
	}).
		AddRow(2, now, "u2", "r2", "t2", "reply2", "gemini", int64(800), "").
		AddRow(1, now.Add(-time.Minute), "u1", "r1", "t1", "reply1", "gemini", int64(700), "")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, created_at, upload_path`)).
		WithArgs(20, 0).
		WillReturnRows(rows)

	exchanges, err := pdb.List(20, 0)
	require.NoError(t, err)
	require.Len(t, exchanges, 2)
	assert.Equal(t, 2, exchanges[0].ID)
	assert.Equal(t, "reply2", exchanges[0].ReplyText)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	pdb := NewPostgresDBWithConn(db)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM exchanges`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := pdb.Count()
	require.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
