package api

import (
	"context"
	"fmt"

	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

// ListMedications fetches the user's medication schedule. An empty schedule
// is an empty slice, not an error.
func (c *Client) ListMedications(ctx context.Context) ([]model.Medication, error) {
	var medications []model.Medication
	if err := c.get(ctx, "/medications", &medications); err != nil {
		return nil, err
	}
	return medications, nil
}

// AddMedication creates a medication schedule entry
func (c *Client) AddMedication(ctx context.Context, med model.MedicationCreate) (*model.Medication, error) {
	if med.Name == "" {
		return nil, fmt.Errorf("medication name is required")
	}
	if med.Dosage == "" {
		return nil, fmt.Errorf("medication dosage is required")
	}
	if med.Frequency == "" {
		return nil, fmt.Errorf("medication frequency is required")
	}

	var created model.Medication
	if err := c.post(ctx, "/medications", med, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteMedication removes a medication schedule entry
func (c *Client) DeleteMedication(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("medication ID is required")
	}
	return c.delete(ctx, "/medications/"+id)
}
