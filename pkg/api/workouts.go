package api

import (
	"context"

	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

// GenerateWorkout asks the backend for a workout plan matched to the
// user's conditions, fitness level and available equipment.
func (c *Client) GenerateWorkout(ctx context.Context, req model.WorkoutGenerateRequest) (*model.WorkoutPlan, error) {
	var plan model.WorkoutPlan
	if err := c.post(ctx, "/workouts/generate", req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
