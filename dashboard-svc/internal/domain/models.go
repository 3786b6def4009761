package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type FoodPlate struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

// FoodDraft is what the add and edit forms collect: a FoodPlate without id and availability.
type FoodDraft struct {
	Name        string `json:"name" validate:"required"`
	Image       string `json:"image" validate:"required,url"`
	Price       string `json:"price" validate:"required,numeric"`
	Description string `json:"description"`
}

var validate = validator.New()

func (d FoodDraft) Validate() error {
	return validate.Struct(d)
}

const (
	EventFoodCreated             = "food_created"
	EventFoodUpdated             = "food_updated"
	EventFoodAvailabilityChanged = "food_availability_changed"
	EventFoodDeleted             = "food_deleted"
)

type FoodEvent struct {
	Type      string    `json:"type"`
	FoodID    int       `json:"food_id"`
	Available bool      `json:"available"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	OpLoad   = "load"
	OpAdd    = "add"
	OpUpdate = "update"
	OpToggle = "toggle"
	OpDelete = "delete"
)

type ActivityEntry struct {
	ID        int       `json:"id"`
	Operation string    `json:"operation"`
	FoodID    int       `json:"food_id,omitempty"`
	Succeeded bool      `json:"succeeded"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
