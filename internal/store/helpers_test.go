package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := newDB(conn, logger.Nop())
	db.retryBase = time.Millisecond
	return db, mock
}

func newTestOrderRepo(t *testing.T) (*orderRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &orderRepository{db: db, logger: logger.Nop()}, mock
}

func newTestItemRepo(t *testing.T) (*itemRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &itemRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
