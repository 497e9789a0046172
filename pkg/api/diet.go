package api

import (
	"context"
	"fmt"

	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

// MealPlan fetches the meal plan entries for a date ("YYYY-MM-DD"), one
// entry per meal type.
func (c *Client) MealPlan(ctx context.Context, date string) ([]model.MealPlan, error) {
	if date == "" {
		return nil, fmt.Errorf("date is required")
	}

	var plans []model.MealPlan
	if err := c.get(ctx, "/diet/"+date, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// GenerateMealPlan asks the backend to generate a meal plan for a date,
// tailored to the given conditions and targets.
func (c *Client) GenerateMealPlan(ctx context.Context, req model.DietGenerateRequest) ([]model.MealPlan, error) {
	if req.Date == "" {
		return nil, fmt.Errorf("date is required")
	}

	var plans []model.MealPlan
	if err := c.post(ctx, "/diet/generate", req, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}
