package api

import (
	"context"

	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

// TravelMatches fetches travel-companion match suggestions
func (c *Client) TravelMatches(ctx context.Context) ([]model.TravelMatch, error) {
	var matches []model.TravelMatch
	if err := c.get(ctx, "/travel/matches", &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// CreateTravelProfile creates or replaces the user's travel profile
func (c *Client) CreateTravelProfile(ctx context.Context, profile model.TravelProfileCreate) (*model.TravelProfileResult, error) {
	var result model.TravelProfileResult
	if err := c.post(ctx, "/travel/profile", profile, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
