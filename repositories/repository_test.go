package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/arthurhenrique02/doc-pay-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock, sqlDB
}

func newProcedureBase(t *testing.T) (*Repository[models.Procedure], sqlmock.Sqlmock) {
	t.Helper()
	db, mock, sqlDB := newTestDB(t)
	t.Cleanup(func() { sqlDB.Close() })

	repo, err := NewRepository[models.Procedure](db)
	require.NoError(t, err)
	return repo, mock
}

func TestNewRepositoryDerivesColumns(t *testing.T) {
	repo, _ := newProcedureBase(t)

	for _, column := range []string{"id", "doctor_id", "patient_id", "date", "value", "payment_status"} {
		assert.True(t, repo.columns[column], "expected column %q to be queryable", column)
	}
	assert.False(t, repo.columns["no_such_column"])
}

func TestFilterCombinesRangeAndEquality(t *testing.T) {
	repo, mock := newProcedureBase(t)

	rows := sqlmock.NewRows([]string{"id", "doctor_id", "patient_id", "date", "value", "payment_status"}).
		AddRow(1, 7, 3, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), 120.0, "glossed")

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "procedures" WHERE date BETWEEN $1 AND $2 AND "payment_status" = $3`)).
		WithArgs("2024-05-01", "2024-05-31", "glossed").
		WillReturnRows(rows)

	results, err := repo.Filter(context.Background(), Criteria{
		"date" + RangeSuffix: Range{Start: "2024-05-01", End: "2024-05-31"},
		"payment_status":     "glossed",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(7), results[0].DoctorID)
	assert.Equal(t, "glossed", results[0].PaymentStatus)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterEqualityOnly(t *testing.T) {
	repo, mock := newProcedureBase(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "procedures" WHERE "doctor_id" = $1`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "doctor_id"}))

	results, err := repo.Filter(context.Background(), Criteria{"doctor_id": int64(7)})
	require.NoError(t, err)
	assert.Empty(t, results)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterFailsFastBeforeQuery(t *testing.T) {
	repo, mock := newProcedureBase(t)

	tests := []struct {
		name     string
		criteria Criteria
	}{
		{
			name:     "unknown equality column",
			criteria: Criteria{"no_such_column": 1},
		},
		{
			name:     "unknown range column",
			criteria: Criteria{"no_such_column" + RangeSuffix: Range{Start: "a", End: "b"}},
		},
		{
			name:     "range value is not a Range",
			criteria: Criteria{"date" + RangeSuffix: "2024-05-01"},
		},
		{
			name:     "missing range start",
			criteria: Criteria{"date" + RangeSuffix: Range{Start: "", End: "2024-05-31"}},
		},
		{
			name:     "missing range end",
			criteria: Criteria{"date" + RangeSuffix: Range{Start: "2024-05-01", End: nil}},
		},
		{
			name:     "zero time bound",
			criteria: Criteria{"date" + RangeSuffix: Range{Start: time.Time{}, End: time.Now()}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Filter(context.Background(), tt.criteria)

			var filterErr *InvalidFilterError
			require.ErrorAs(t, err, &filterErr)
		})
	}

	// No queries may have reached the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterDoesNotMutateCriteria(t *testing.T) {
	repo, mock := newProcedureBase(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "procedures" WHERE date BETWEEN $1 AND $2`)).
		WithArgs("2024-05-01", "2024-05-31").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	criteria := Criteria{"date" + RangeSuffix: Range{Start: "2024-05-01", End: "2024-05-31"}}
	_, err := repo.Filter(context.Background(), criteria)
	require.NoError(t, err)

	assert.Contains(t, criteria, "date"+RangeSuffix)
}

func TestExists(t *testing.T) {
	repo, mock := newProcedureBase(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT count(*) FROM "procedures" WHERE "doctor_id" = $1`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), Criteria{"doctor_id": int64(7)})
	require.NoError(t, err)
	assert.True(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsRejectsRangeCriteria(t *testing.T) {
	repo, mock := newProcedureBase(t)

	_, err := repo.Exists(context.Background(), Criteria{
		"date" + RangeSuffix: Range{Start: "2024-05-01", End: "2024-05-31"},
	})

	var filterErr *InvalidFilterError
	require.ErrorAs(t, err, &filterErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsRejectsUnknownColumn(t *testing.T) {
	repo, mock := newProcedureBase(t)

	_, err := repo.Exists(context.Background(), Criteria{"no_such_column": 1})

	var filterErr *InvalidFilterError
	require.ErrorAs(t, err, &filterErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInsertsSingleRow(t *testing.T) {
	db, mock, sqlDB := newTestDB(t)
	t.Cleanup(func() { sqlDB.Close() })

	repo, err := NewRepository[models.Patient](db)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "patients"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectCommit()

	patient := models.Patient{Name: "Ana Souza"}
	require.NoError(t, repo.Create(context.Background(), &patient))
	assert.Equal(t, int64(11), patient.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDReturnsNilWhenAbsent(t *testing.T) {
	db, mock, sqlDB := newTestDB(t)
	t.Cleanup(func() { sqlDB.Close() })

	repo, err := NewRepository[models.Patient](db)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "patients" WHERE id = $1`)).
		WithArgs(int64(99), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	patient, err := repo.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, patient)
}
