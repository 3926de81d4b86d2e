package mocks

import (
	"context"

	"inventory-srv/internal/dispatch"
	"inventory-srv/internal/model"

	"github.com/stretchr/testify/mock"
)

// UseCase is a mock type for the UseCase type
type UseCase struct {
	mock.Mock
}

func (_m *UseCase) Create(ctx context.Context, sc model.Scope, input dispatch.CreateInput) (model.EquipmentDelivery, error) {
	ret := _m.Called(ctx, sc, input)
	return ret.Get(0).(model.EquipmentDelivery), ret.Error(1)
}

func (_m *UseCase) List(ctx context.Context, sc model.Scope, input dispatch.ListInput) (dispatch.ListOutput, error) {
	ret := _m.Called(ctx, sc, input)
	return ret.Get(0).(dispatch.ListOutput), ret.Error(1)
}

func (_m *UseCase) Detail(ctx context.Context, sc model.Scope, id int64) (model.EquipmentDelivery, error) {
	ret := _m.Called(ctx, sc, id)
	return ret.Get(0).(model.EquipmentDelivery), ret.Error(1)
}

func (_m *UseCase) Update(ctx context.Context, sc model.Scope, input dispatch.UpdateInput) (model.EquipmentDelivery, error) {
	ret := _m.Called(ctx, sc, input)
	return ret.Get(0).(model.EquipmentDelivery), ret.Error(1)
}

func (_m *UseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	ret := _m.Called(ctx, sc, id)
	return ret.Error(0)
}

// NewUseCase creates a new instance of UseCase and registers a cleanup that
// asserts the expectations.
func NewUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *UseCase {
	m := &UseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
