package mocks

import (
	"context"

	"foodplate-dashboard/dashboard-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

type SnapshotStore struct {
	mock.Mock
}

func (m *SnapshotStore) Save(ctx context.Context, foods []domain.FoodPlate) error {
	ret := m.Called(ctx, foods)
	return ret.Error(0)
}

func (m *SnapshotStore) Restore(ctx context.Context) ([]domain.FoodPlate, error) {
	ret := m.Called(ctx)
	var foods []domain.FoodPlate
	if ret.Get(0) != nil {
		foods = ret.Get(0).([]domain.FoodPlate)
	}
	return foods, ret.Error(1)
}

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) Publish(ctx context.Context, event domain.FoodEvent) error {
	ret := m.Called(ctx, event)
	return ret.Error(0)
}

type ActivityJournal struct {
	mock.Mock
}

func (m *ActivityJournal) Record(ctx context.Context, entry domain.ActivityEntry) error {
	ret := m.Called(ctx, entry)
	return ret.Error(0)
}

func (m *ActivityJournal) Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	ret := m.Called(ctx, limit)
	var entries []domain.ActivityEntry
	if ret.Get(0) != nil {
		entries = ret.Get(0).([]domain.ActivityEntry)
	}
	return entries, ret.Error(1)
}

type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(foodID int) ([]byte, error) {
	ret := m.Called(foodID)
	var png []byte
	if ret.Get(0) != nil {
		png = ret.Get(0).([]byte)
	}
	return png, ret.Error(1)
}

type MessageWriter struct {
	mock.Mock
}

func (m *MessageWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	ret := m.Called(ctx, msgs)
	return ret.Error(0)
}
