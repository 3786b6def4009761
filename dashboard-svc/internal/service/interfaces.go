package service

import (
	"context"

	"foodplate-dashboard/dashboard-svc/internal/domain"
)

type FoodsAPI interface {
	List(ctx context.Context) ([]domain.FoodPlate, error)
	Create(ctx context.Context, draft domain.FoodDraft, available bool) (*domain.FoodPlate, error)
	Update(ctx context.Context, food domain.FoodPlate) (*domain.FoodPlate, error)
	Delete(ctx context.Context, id int) error
}

type SnapshotStore interface {
	Save(ctx context.Context, foods []domain.FoodPlate) error
	Restore(ctx context.Context) ([]domain.FoodPlate, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.FoodEvent) error
}

type ActivityJournal interface {
	Record(ctx context.Context, entry domain.ActivityEntry) error
	Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}

type SynchronizerInterface interface {
	Load(ctx context.Context) error
	Add(ctx context.Context, draft domain.FoodDraft) (*domain.FoodPlate, error)
	Update(ctx context.Context, id int, draft domain.FoodDraft) (*domain.FoodPlate, error)
	ToggleAvailability(ctx context.Context, id int) (*domain.FoodPlate, error)
	Delete(ctx context.Context, id int) error
	Foods() []domain.FoodPlate
	Find(id int) (domain.FoodPlate, bool)
}

var _ SynchronizerInterface = (*Synchronizer)(nil)
