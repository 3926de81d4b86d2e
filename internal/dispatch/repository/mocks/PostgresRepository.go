package mocks

import (
	"context"

	"inventory-srv/internal/dispatch/repository"
	"inventory-srv/internal/model"

	"github.com/stretchr/testify/mock"
)

// PostgresRepository is a mock type for the PostgresRepository type
type PostgresRepository struct {
	mock.Mock
}

func (_m *PostgresRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.EquipmentDelivery, error) {
	ret := _m.Called(ctx, opt)
	return ret.Get(0).(model.EquipmentDelivery), ret.Error(1)
}

func (_m *PostgresRepository) GetByID(ctx context.Context, id int64) (model.EquipmentDelivery, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.EquipmentDelivery), ret.Error(1)
}

func (_m *PostgresRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.EquipmentDelivery, error) {
	ret := _m.Called(ctx, opt)
	var r0 []model.EquipmentDelivery
	if v := ret.Get(0); v != nil {
		r0 = v.([]model.EquipmentDelivery)
	}
	return r0, ret.Error(1)
}

func (_m *PostgresRepository) Count(ctx context.Context, opt repository.ListOptions) (int64, error) {
	ret := _m.Called(ctx, opt)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *PostgresRepository) Update(ctx context.Context, opt repository.UpdateOptions) (model.EquipmentDelivery, error) {
	ret := _m.Called(ctx, opt)
	return ret.Get(0).(model.EquipmentDelivery), ret.Error(1)
}

func (_m *PostgresRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
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
