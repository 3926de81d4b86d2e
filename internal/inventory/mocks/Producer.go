package mocks

import (
	"context"

	"inventory-srv/internal/model"

	"github.com/stretchr/testify/mock"
)

// Producer is a mock type for the Producer type
type Producer struct {
	mock.Mock
}

func (_m *Producer) PublishReceptionCreated(ctx context.Context, r model.EquipmentReception) error {
	ret := _m.Called(ctx, r)
	return ret.Error(0)
}

func (_m *Producer) PublishDeliveryCreated(ctx context.Context, d model.EquipmentDelivery) error {
	ret := _m.Called(ctx, d)
	return ret.Error(0)
}

// NewProducer creates a new instance of Producer and registers a cleanup that
// asserts the expectations.
func NewProducer(t interface {
	mock.TestingT
	Cleanup(func())
}) *Producer {
	m := &Producer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
