package mocks

import (
	"context"

	"inventory-srv/internal/model"
	"inventory-srv/internal/user/repository"

	"github.com/stretchr/testify/mock"
)

// PostgresRepository is a mock type for the PostgresRepository type
type PostgresRepository struct {
	mock.Mock
}

func (_m *PostgresRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.User, error) {
	ret := _m.Called(ctx, opt)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *PostgresRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *PostgresRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	ret := _m.Called(ctx, email)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *PostgresRepository) GetByNameAndRole(ctx context.Context, name, role string) (model.User, error) {
	ret := _m.Called(ctx, name, role)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *PostgresRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.User, error) {
	ret := _m.Called(ctx, opt)
	var r0 []model.User
	if v := ret.Get(0); v != nil {
		r0 = v.([]model.User)
	}
	return r0, ret.Error(1)
}

func (_m *PostgresRepository) Count(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(int64), ret.Error(1)
}

// NewPostgresRepository creates a new instance of PostgresRepository and registers
// a cleanup that asserts the expectations.
func NewPostgresRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *PostgresRepository {
	m := &PostgresRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
