package mocks

import (
	"context"

	"inventory-srv/internal/model"

	"github.com/stretchr/testify/mock"
)

// CacheRepository is a mock type for the CacheRepository type
type CacheRepository struct {
	mock.Mock
}

func (_m *CacheRepository) Get(ctx context.Context, id string) (model.UserSummary, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.UserSummary), ret.Error(1)
}

func (_m *CacheRepository) Set(ctx context.Context, u model.UserSummary) error {
	ret := _m.Called(ctx, u)
	return ret.Error(0)
}

// NewCacheRepository creates a new instance of CacheRepository and registers a
// cleanup that asserts the expectations.
func NewCacheRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CacheRepository {
	m := &CacheRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
