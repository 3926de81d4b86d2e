package postgre

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"inventory-srv/internal/reception/repository"
	"inventory-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var receptionCols = []string{
	"id", "equipment_name", "category", "quantity", "minimum_threshold", "sending_dept",
	"reception_date", "notes", "created_by", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (repository.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db, log.NewNop()), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	notes := "sealed"

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO equipment_receptions")).
		WithArgs("Laptop", "IT", 5, 2, "Finance", date, "sealed", "u-1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(receptionCols).
			AddRow(int64(7), "Laptop", "IT", 5, 2, "Finance", date, "sealed", "u-1", now, now))

	got, err := repo.Create(context.Background(), repository.CreateOptions{
		EquipmentName:    "Laptop",
		Category:         "IT",
		Quantity:         5,
		MinimumThreshold: 2,
		SendingDept:      "Finance",
		ReceptionDate:    date,
		Notes:            &notes,
		CreatedBy:        "u-1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "sealed", *got.Notes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM equipment_receptions WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListFilters(t *testing.T) {
	now := time.Now().UTC()

	tcs := map[string]struct {
		opt       repository.ListOptions
		wantWhere string
		args      []driver.Value
	}{
		"no filter": {
			opt:       repository.ListOptions{Limit: 20, Offset: 0},
			wantWhere: "FROM equipment_receptions ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2",
			args:      []driver.Value{20, 0},
		},
		"category": {
			opt:       repository.ListOptions{Category: "IT", Limit: 10, Offset: 10},
			wantWhere: "WHERE category = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3",
			args:      []driver.Value{"IT", 10, 10},
		},
		"low stock": {
			opt:       repository.ListOptions{LowStock: true, Limit: 5},
			wantWhere: "WHERE quantity < minimum_threshold ORDER BY",
			args:      []driver.Value{5, 0},
		},
		"category and low stock": {
			opt:       repository.ListOptions{Category: "IT", LowStock: true, Limit: 5, Offset: 5},
			wantWhere: "WHERE category = $1 AND quantity < minimum_threshold ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3",
			args:      []driver.Value{"IT", 5, 5},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			mock.ExpectQuery(regexp.QuoteMeta(tc.wantWhere)).
				WithArgs(tc.args...).
				WillReturnRows(sqlmock.NewRows(receptionCols).
					AddRow(int64(1), "Chair", "Furniture", 1, 3, "HR", now, nil, "u-1", now, now))

			got, err := repo.List(context.Background(), tc.opt)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Nil(t, got[0].Notes)
			assert.True(t, got[0].IsLowStock())
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCount(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM equipment_receptions WHERE category = $1")).
		WithArgs("IT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	total, err := repo.Count(context.Background(), repository.ListOptions{Category: "IT"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestUpdateNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE equipment_receptions SET")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), repository.UpdateOptions{ID: 9})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDelete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM equipment_receptions WHERE id = $1")).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), 3))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM equipment_receptions WHERE id = $1")).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 3), repository.ErrNotFound)
	})
}

func TestStorageErrorIsLogged(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	core, logs := observer.New(zapcore.ErrorLevel)
	repo := New(db, log.NewFromZap(zap.New(core)))

	mock.ExpectQuery(regexp.QuoteMeta("FROM equipment_receptions WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnError(errors.New("connection reset"))

	_, err = repo.GetByID(context.Background(), 9)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)

	entries := logs.FilterMessageSnippet("reception.repository.postgre.GetByID").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "connection reset")
}
