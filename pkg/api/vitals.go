package api

import (
	"context"
	"fmt"

	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

// defaultVitalsLimit caps a history fetch when the caller passes no limit
const defaultVitalsLimit = 20

// ListVitals fetches the most recent vital readings, newest first
func (c *Client) ListVitals(ctx context.Context, limit int) ([]model.VitalReading, error) {
	if limit <= 0 {
		limit = defaultVitalsLimit
	}

	var readings []model.VitalReading
	if err := c.get(ctx, fmt.Sprintf("/vitals?limit=%d", limit), &readings); err != nil {
		return nil, err
	}
	return readings, nil
}

// LatestVital fetches the single most recent vital reading
func (c *Client) LatestVital(ctx context.Context) (*model.VitalReading, error) {
	var reading model.VitalReading
	if err := c.get(ctx, "/vitals/latest", &reading); err != nil {
		return nil, err
	}
	return &reading, nil
}

// LogVital records a new vitals snapshot. Only the metrics set on the
// payload are submitted; the backend stores absent metrics as null.
func (c *Client) LogVital(ctx context.Context, vital model.VitalCreate) (*model.VitalReading, error) {
	var reading model.VitalReading
	if err := c.post(ctx, "/vitals", vital, &reading); err != nil {
		return nil, err
	}
	return &reading, nil
}
