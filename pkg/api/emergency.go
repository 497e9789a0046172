package api

import (
	"context"
	"fmt"

	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
	"go.uber.org/zap"
)

// LocationProvider supplies the device's current coordinates for an SOS
// trigger. Implementations may block on platform permission prompts, so
// acquisition is bounded by the caller's context.
type LocationProvider interface {
	CurrentLocation(ctx context.Context) (latitude, longitude float64, err error)
}

// sosTriggerRequest is the payload for POST /emergency/trigger. Coordinates
// are omitted entirely when the location is unknown.
type sosTriggerRequest struct {
	TriggerMethod model.TriggerMethod `json:"trigger_method"`
	Latitude      *float64            `json:"latitude,omitempty"`
	Longitude     *float64            `json:"longitude,omitempty"`
	Address       *string             `json:"address,omitempty"`
}

// TriggerSOS dispatches an emergency SOS event. Location acquisition is
// best-effort: when provider is nil or fails to produce coordinates, the
// trigger is sent without latitude/longitude rather than failing the whole
// operation. An SOS must never be blocked on a denied location permission.
func (c *Client) TriggerSOS(ctx context.Context, method model.TriggerMethod, provider LocationProvider) (*model.SOSEvent, error) {
	req := sosTriggerRequest{TriggerMethod: method}

	if provider != nil {
		lat, lon, err := provider.CurrentLocation(ctx)
		if err != nil {
			c.logger.Warn("location unavailable, triggering SOS without coordinates",
				zap.String("trigger_method", string(method)),
				zap.Error(err),
			)
		} else {
			req.Latitude = &lat
			req.Longitude = &lon
		}
	}

	var event model.SOSEvent
	if err := c.post(ctx, "/emergency/trigger", req, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// TriggerSOSAt dispatches an SOS event with known coordinates
func (c *Client) TriggerSOSAt(ctx context.Context, method model.TriggerMethod, latitude, longitude float64) (*model.SOSEvent, error) {
	req := sosTriggerRequest{
		TriggerMethod: method,
		Latitude:      &latitude,
		Longitude:     &longitude,
	}

	var event model.SOSEvent
	if err := c.post(ctx, "/emergency/trigger", req, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// sosUpdateRequest is the payload for PATCH /emergency/{id}
type sosUpdateRequest struct {
	Status model.SOSStatus `json:"status"`
	Notes  *string         `json:"notes,omitempty"`
}

// UpdateSOS resolves or cancels an SOS event, with optional notes. Moving
// to resolved or cancelled sets the event's resolved_at server-side.
func (c *Client) UpdateSOS(ctx context.Context, id string, status model.SOSStatus, notes *string) (*model.SOSEvent, error) {
	if id == "" {
		return nil, fmt.Errorf("SOS event ID is required")
	}
	switch status {
	case model.SOSStatusPending, model.SOSStatusDispatched, model.SOSStatusResolved, model.SOSStatusCancelled:
	default:
		return nil, fmt.Errorf("invalid SOS status %q", status)
	}

	var event model.SOSEvent
	if err := c.patch(ctx, "/emergency/"+id, sosUpdateRequest{Status: status, Notes: notes}, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// SOSHistory fetches past SOS events, newest first
func (c *Client) SOSHistory(ctx context.Context) ([]model.SOSEvent, error) {
	var events []model.SOSEvent
	if err := c.get(ctx, "/emergency/history", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// EmergencyContacts fetches the user's emergency contacts
func (c *Client) EmergencyContacts(ctx context.Context) ([]model.EmergencyContact, error) {
	var contacts []model.EmergencyContact
	if err := c.get(ctx, "/emergency/contacts", &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// AddEmergencyContact registers a contact to notify on SOS
func (c *Client) AddEmergencyContact(ctx context.Context, contact model.EmergencyContactCreate) (*model.EmergencyContact, error) {
	if contact.Name == "" {
		return nil, fmt.Errorf("contact name is required")
	}
	if contact.Phone == "" {
		return nil, fmt.Errorf("contact phone is required")
	}

	var created model.EmergencyContact
	if err := c.post(ctx, "/emergency/contacts", contact, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteEmergencyContact removes an emergency contact
func (c *Client) DeleteEmergencyContact(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("contact ID is required")
	}
	return c.delete(ctx, "/emergency/contacts/"+id)
}
