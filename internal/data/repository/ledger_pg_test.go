package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockLedger(t *testing.T) (BookingLedger, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return NewPostgresLedger(mock, zap.NewNop()), mock
}

func TestPostgresLedgerAppend(t *testing.T) {
	ledger, mock := newMockLedger(t)
	b := newBooking("National Museum", "2026-10-20", 2, 1)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(b.ID, b.Reference, b.Name, b.Museum, 2, 1, b.TicketType, b.Date, b.TimeSlot, b.TotalPrice, b.BookedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, ledger.Append(context.Background(), b))
}

func TestPostgresLedgerAppendError(t *testing.T) {
	ledger, mock := newMockLedger(t)
	b := newBooking("National Museum", "2026-10-20", 2, 1)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	err := ledger.Append(context.Background(), b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestPostgresLedgerCapacityUsed(t *testing.T) {
	ledger, mock := newMockLedger(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(adults + kids), 0)")).
		WithArgs("National Museum", "2026-10-20").
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(42)))

	used, err := ledger.CapacityUsed(context.Background(), "National Museum", "2026-10-20")
	require.NoError(t, err)
	assert.Equal(t, 42, used)
}

func TestPostgresLedgerFindByIDNotFound(t *testing.T) {
	ledger, mock := newMockLedger(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	booking, err := ledger.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, booking)
}

func TestPostgresLedgerFindAllError(t *testing.T) {
	ledger, mock := newMockLedger(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY booked_at")).
		WillReturnError(errors.New("relation does not exist"))

	_, err := ledger.FindAll(context.Background())
	assert.Error(t, err)
}

func TestNewLedgerFallsBackToFile(t *testing.T) {
	ledger := NewLedger("postgres", "bookings.json", nil, zap.NewNop())
	_, isFile := ledger.(*fileLedger)
	assert.True(t, isFile)
}
