package postgre

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"inventory-srv/internal/user/repository"
	"inventory-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "email", "password_hash", "name", "role", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (repository.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db, log.NewNop()), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "alice@example.com", "hash", "Alice", "USER", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u, err := repo.Create(context.Background(), repository.CreateOptions{
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Name:         "Alice",
		Role:         "USER",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.False(t, u.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), repository.CreateOptions{Email: "alice@example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestGetByEmail(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u-1", "alice@example.com", "hash", "Alice", "USER", now, now))

	u, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, "hash", u.PasswordHash)
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetByNameAndRole(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE name = $1 AND role = $2")).
		WithArgs("Bob", "MANAGER").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u-2", "bob@example.com", "hash", "Bob", "MANAGER", now, now))

	u, err := repo.GetByNameAndRole(context.Background(), "Bob", "MANAGER")
	require.NoError(t, err)
	assert.Equal(t, "u-2", u.ID)
}

func TestListAndCount(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2")).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u-1", "alice@example.com", "hash", "Alice", "USER", now, now).
			AddRow("u-2", "bob@example.com", "hash", "Bob", "MANAGER", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	users, err := repo.List(context.Background(), repository.ListOptions{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.NoError(t, mock.ExpectationsWereMet())
}
