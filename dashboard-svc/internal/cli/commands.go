package cli

import (
	"context"

	"foodplate-dashboard/dashboard-svc/internal/domain"
	"foodplate-dashboard/dashboard-svc/internal/service"
)

type ListCmd struct {
	session *session
}

func (c *ListCmd) Execute(_ []string) error {
	return c.session.withFoods(nil)
}

type AddCmd struct {
	DraftFlags
	session *session
}

func (c *AddCmd) Execute(_ []string) error {
	draft := c.draft()
	if err := draft.Validate(); err != nil {
		return err
	}
	return c.session.withFoods(func(ctx context.Context, foods *service.Synchronizer) error {
		_, err := foods.Add(ctx, draft)
		return err
	})
}

type EditCmd struct {
	DraftFlags
	Args    IDArg `positional-args:"yes" required:"yes"`
	session *session
}

func (c *EditCmd) Execute(_ []string) error {
	draft := c.draft()
	if err := draft.Validate(); err != nil {
		return err
	}
	return c.session.withFoods(func(ctx context.Context, foods *service.Synchronizer) error {
		_, err := foods.Update(ctx, c.Args.ID, draft)
		return err
	})
}

type ToggleCmd struct {
	Args    IDArg `positional-args:"yes" required:"yes"`
	session *session
}

func (c *ToggleCmd) Execute(_ []string) error {
	return c.session.withFoods(func(ctx context.Context, foods *service.Synchronizer) error {
		_, err := foods.ToggleAvailability(ctx, c.Args.ID)
		return err
	})
}

type DeleteCmd struct {
	Args    IDArg `positional-args:"yes" required:"yes"`
	session *session
}

func (c *DeleteCmd) Execute(_ []string) error {
	return c.session.withFoods(func(ctx context.Context, foods *service.Synchronizer) error {
		return foods.Delete(ctx, c.Args.ID)
	})
}

func (d DraftFlags) draft() domain.FoodDraft {
	return domain.FoodDraft{
		Name:        d.Name,
		Image:       d.Image,
		Price:       d.Price,
		Description: d.Description,
	}
}
