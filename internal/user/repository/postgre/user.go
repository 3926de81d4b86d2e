package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inventory-srv/internal/model"
	"inventory-srv/internal/user/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.User, error) {
	now := time.Now().UTC()
	row := userRow{
		ID:           uuid.New().String(),
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
		Name:         opt.Name,
		Role:         opt.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (:id, :email, :password_hash, :name, :role, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.User{}, repository.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "user.repository.postgre.Create: %v", err)
		return model.User{}, fmt.Errorf("Create: %w", err)
	}

	return row.toModel(), nil
}

func (r *implRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	return r.getOne(ctx, "GetByID", `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *implRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getOne(ctx, "GetByEmail", `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// GetByNameAndRole returns the oldest account matching name and role.
func (r *implRepository) GetByNameAndRole(ctx context.Context, name, role string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE name = $1 AND role = $2 ORDER BY created_at ASC LIMIT 1`
	return r.getOne(ctx, "GetByNameAndRole", query, name, role)
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, query, opt.Limit, opt.Offset); err != nil {
		r.l.Errorf(ctx, "user.repository.postgre.List: %v", err)
		return nil, fmt.Errorf("List: %w", err)
	}

	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toModel())
	}
	return users, nil
}

func (r *implRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users`); err != nil {
		r.l.Errorf(ctx, "user.repository.postgre.Count: %v", err)
		return 0, fmt.Errorf("Count: %w", err)
	}
	return total, nil
}

func (r *implRepository) getOne(ctx context.Context, op, query string, args ...interface{}) (model.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "user.repository.postgre.%s: %v", op, err)
		return model.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return row.toModel(), nil
}
