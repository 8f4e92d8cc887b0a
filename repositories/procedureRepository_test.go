package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/arthurhenrique02/doc-pay-manager/cache"
	"github.com/arthurhenrique02/doc-pay-manager/models"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUnreachableCache returns a cache whose redis backend is down, so every
// cache call falls through to the database path.
func newUnreachableCache(t *testing.T) *cache.Cache {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { client.Close() })

	c, err := cache.NewCache(client)
	require.NoError(t, err)
	return c
}

func TestFinancialReportGroupsByStatus(t *testing.T) {
	db, mock, sqlDB := newTestDB(t)
	t.Cleanup(func() { sqlDB.Close() })

	repo, err := NewProcedureRepository(db, newUnreachableCache(t))
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT SUM(value) AS total_value, COUNT(*) AS procedures, payment_status AS status FROM "procedures" WHERE doctor_id = $1 GROUP BY "payment_status"`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"total_value", "procedures", "status"}).
			AddRow(150.0, 2, "paid").
			AddRow(30.0, 1, "pending"))

	rows, err := repo.FinancialReport(context.Background(), 7)
	require.NoError(t, err)

	assert.ElementsMatch(t, []models.FinancialReportRow{
		{TotalValue: 150, Procedures: 2, Status: "paid"},
		{TotalValue: 30, Procedures: 1, Status: "pending"},
	}, rows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinancialReportEmptyForUnknownDoctor(t *testing.T) {
	db, mock, sqlDB := newTestDB(t)
	t.Cleanup(func() { sqlDB.Close() })

	repo, err := NewProcedureRepository(db, newUnreachableCache(t))
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT SUM(value) AS total_value`)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"total_value", "procedures", "status"}))

	rows, err := repo.FinancialReport(context.Background(), 404)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
