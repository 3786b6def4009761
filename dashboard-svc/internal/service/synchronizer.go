package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"foodplate-dashboard/dashboard-svc/internal/domain"
)

// AlertFoodNotFound is the message shown to the user when an action targets a
// food that is not in the local list.
const AlertFoodNotFound = "Food not found."

var ErrFoodNotFound = errors.New("food not found")

// Synchronizer keeps an ordered in-memory copy of the backend's food list and
// patches it after every round-trip. The mutex only guards the slice; it is
// never held while a request is in flight, so concurrent actions on the same
// food race and the last local write wins.
type Synchronizer struct {
	api       FoodsAPI
	snapshots SnapshotStore
	publisher EventPublisher
	journal   ActivityJournal

	mu    sync.RWMutex
	foods []domain.FoodPlate

	now func() time.Time
}

func NewSynchronizer(api FoodsAPI, snapshots SnapshotStore, publisher EventPublisher, journal ActivityJournal) *Synchronizer {
	return &Synchronizer{
		api:       api,
		snapshots: snapshots,
		publisher: publisher,
		journal:   journal,
		foods:     []domain.FoodPlate{},
		now:       time.Now,
	}
}

func (s *Synchronizer) Foods() []domain.FoodPlate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

func (s *Synchronizer) Find(id int) (domain.FoodPlate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.foods[i], true
	}
	return domain.FoodPlate{}, false
}

// Load replaces the local list with the backend's list.
func (s *Synchronizer) Load(ctx context.Context) error {
	foods, err := s.api.List(ctx)
	s.record(ctx, domain.OpLoad, 0, err)
	if err != nil {
		log.Printf("ERROR: Failed to load foods: %v", err)
		return fmt.Errorf("load foods: %w", err)
	}

	s.mu.Lock()
	s.foods = append(make([]domain.FoodPlate, 0, len(foods)), foods...)
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.saveSnapshot(ctx, snapshot)
	return nil
}

// Warm loads the list and, if the backend is unreachable, falls back to the
// last saved snapshot.
func (s *Synchronizer) Warm(ctx context.Context) error {
	loadErr := s.Load(ctx)
	if loadErr == nil || s.snapshots == nil {
		return loadErr
	}

	foods, err := s.snapshots.Restore(ctx)
	if err != nil {
		log.Printf("ERROR: Failed to restore snapshot: %v", err)
		return loadErr
	}

	s.mu.Lock()
	s.foods = append(make([]domain.FoodPlate, 0, len(foods)), foods...)
	s.mu.Unlock()

	log.Printf("Serving stale snapshot with %d foods", len(foods))
	return nil
}

func (s *Synchronizer) Add(ctx context.Context, draft domain.FoodDraft) (*domain.FoodPlate, error) {
	created, err := s.api.Create(ctx, draft, true)
	if err != nil {
		s.record(ctx, domain.OpAdd, 0, err)
		log.Printf("ERROR: Failed to add food %q: %v", draft.Name, err)
		return nil, fmt.Errorf("add food: %w", err)
	}
	s.record(ctx, domain.OpAdd, created.ID, nil)

	s.mu.Lock()
	s.foods = append(s.foods, *created)
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.saveSnapshot(ctx, snapshot)
	s.publish(ctx, domain.EventFoodCreated, *created)
	return created, nil
}

// Update sends the draft merged with the food's current id and availability,
// then copies name, image, price and description from the response onto the
// local record.
func (s *Synchronizer) Update(ctx context.Context, id int, draft domain.FoodDraft) (*domain.FoodPlate, error) {
	current, ok := s.Find(id)
	if !ok {
		s.alert(id)
		return nil, ErrFoodNotFound
	}

	food := domain.FoodPlate{
		ID:          current.ID,
		Name:        draft.Name,
		Image:       draft.Image,
		Price:       draft.Price,
		Description: draft.Description,
		Available:   current.Available,
	}

	updated, err := s.api.Update(ctx, food)
	s.record(ctx, domain.OpUpdate, id, err)
	if err != nil {
		log.Printf("ERROR: Failed to update food %d: %v", id, err)
		return nil, fmt.Errorf("update food %d: %w", id, err)
	}

	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		s.alert(id)
		return nil, ErrFoodNotFound
	}
	item := &s.foods[i]
	item.Name = updated.Name
	item.Image = updated.Image
	item.Price = updated.Price
	item.Description = updated.Description
	patched := *item
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.saveSnapshot(ctx, snapshot)
	s.publish(ctx, domain.EventFoodUpdated, patched)
	return &patched, nil
}

// ToggleAvailability flips the flag locally before sending the whole record.
// A failed request is not rolled back.
func (s *Synchronizer) ToggleAvailability(ctx context.Context, id int) (*domain.FoodPlate, error) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		s.alert(id)
		return nil, ErrFoodNotFound
	}
	s.foods[i].Available = !s.foods[i].Available
	toggled := s.foods[i]
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.saveSnapshot(ctx, snapshot)

	_, err := s.api.Update(ctx, toggled)
	s.record(ctx, domain.OpToggle, id, err)
	if err != nil {
		log.Printf("ERROR: Failed to save availability of food %d: %v", id, err)
		return &toggled, fmt.Errorf("toggle food %d: %w", id, err)
	}

	s.publish(ctx, domain.EventFoodAvailabilityChanged, toggled)
	return &toggled, nil
}

func (s *Synchronizer) Delete(ctx context.Context, id int) error {
	err := s.api.Delete(ctx, id)
	s.record(ctx, domain.OpDelete, id, err)
	if err != nil {
		log.Printf("ERROR: Failed to delete food %d: %v", id, err)
		return fmt.Errorf("delete food %d: %w", id, err)
	}

	s.mu.Lock()
	kept := s.foods[:0]
	for _, food := range s.foods {
		if food.ID != id {
			kept = append(kept, food)
		}
	}
	s.foods = kept
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.saveSnapshot(ctx, snapshot)
	s.publish(ctx, domain.EventFoodDeleted, domain.FoodPlate{ID: id})
	return nil
}

func (s *Synchronizer) indexLocked(id int) int {
	for i := range s.foods {
		if s.foods[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Synchronizer) copyLocked() []domain.FoodPlate {
	out := make([]domain.FoodPlate, len(s.foods))
	copy(out, s.foods)
	return out
}

func (s *Synchronizer) alert(id int) {
	log.Printf("ALERT: %s (id=%d)", AlertFoodNotFound, id)
}

func (s *Synchronizer) saveSnapshot(ctx context.Context, foods []domain.FoodPlate) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(ctx, foods); err != nil {
		log.Printf("ERROR: Failed to save snapshot: %v", err)
	}
}

func (s *Synchronizer) publish(ctx context.Context, eventType string, food domain.FoodPlate) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(ctx, domain.FoodEvent{
		Type:      eventType,
		FoodID:    food.ID,
		Available: food.Available,
		Timestamp: s.now(),
	})
}

func (s *Synchronizer) record(ctx context.Context, op string, foodID int, opErr error) {
	if s.journal == nil {
		return
	}
	entry := domain.ActivityEntry{
		Operation: op,
		FoodID:    foodID,
		Succeeded: opErr == nil,
		CreatedAt: s.now(),
	}
	if opErr != nil {
		entry.Error = opErr.Error()
	}
	if err := s.journal.Record(ctx, entry); err != nil {
		log.Printf("ERROR: Failed to record %s activity: %v", op, err)
	}
}
