package mocks

import (
	"context"

	"foodplate-dashboard/dashboard-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type FoodsAPI struct {
	mock.Mock
}

func (m *FoodsAPI) List(ctx context.Context) ([]domain.FoodPlate, error) {
	ret := m.Called(ctx)
	var foods []domain.FoodPlate
	if ret.Get(0) != nil {
		foods = ret.Get(0).([]domain.FoodPlate)
	}
	return foods, ret.Error(1)
}

func (m *FoodsAPI) Create(ctx context.Context, draft domain.FoodDraft, available bool) (*domain.FoodPlate, error) {
	ret := m.Called(ctx, draft, available)
	var food *domain.FoodPlate
	if ret.Get(0) != nil {
		food = ret.Get(0).(*domain.FoodPlate)
	}
	return food, ret.Error(1)
}

func (m *FoodsAPI) Update(ctx context.Context, food domain.FoodPlate) (*domain.FoodPlate, error) {
	ret := m.Called(ctx, food)
	var updated *domain.FoodPlate
	if ret.Get(0) != nil {
		updated = ret.Get(0).(*domain.FoodPlate)
	}
	return updated, ret.Error(1)
}

func (m *FoodsAPI) Delete(ctx context.Context, id int) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

func NewFoodsAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *FoodsAPI {
	m := &FoodsAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
