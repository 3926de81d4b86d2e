package mocks

import (
	"context"

	"inventory-srv/internal/model"
	"inventory-srv/internal/user"

	"github.com/stretchr/testify/mock"
)

// UseCase is a mock type for the UseCase type
type UseCase struct {
	mock.Mock
}

func (_m *UseCase) Create(ctx context.Context, input user.CreateInput) (model.User, error) {
	ret := _m.Called(ctx, input)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *UseCase) GetByEmail(ctx context.Context, email string) (model.User, error) {
	ret := _m.Called(ctx, email)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *UseCase) GetByID(ctx context.Context, id string) (model.UserSummary, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.UserSummary), ret.Error(1)
}

func (_m *UseCase) FindManagerByName(ctx context.Context, name string) (model.UserSummary, error) {
	ret := _m.Called(ctx, name)
	return ret.Get(0).(model.UserSummary), ret.Error(1)
}

func (_m *UseCase) List(ctx context.Context, input user.ListInput) (user.ListOutput, error) {
	ret := _m.Called(ctx, input)
	return ret.Get(0).(user.ListOutput), ret.Error(1)
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
