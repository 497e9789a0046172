package api

import (
	"context"
	"fmt"

	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

// WearableProviders lists the wearable data providers the backend supports
func (c *Client) WearableProviders(ctx context.Context) ([]model.WearableProvider, error) {
	var providers []model.WearableProvider
	if err := c.get(ctx, "/wearables/providers", &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// Wearables lists the user's connected wearable integrations
func (c *Client) Wearables(ctx context.Context) ([]model.Wearable, error) {
	var wearables []model.Wearable
	if err := c.get(ctx, "/wearables", &wearables); err != nil {
		return nil, err
	}
	return wearables, nil
}

// ConnectWearable links a wearable provider account using its OAuth tokens
func (c *Client) ConnectWearable(ctx context.Context, req model.WearableConnectRequest) (*model.Wearable, error) {
	if req.Provider == "" {
		return nil, fmt.Errorf("provider is required")
	}
	if req.AccessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}

	var wearable model.Wearable
	if err := c.post(ctx, "/wearables/connect", req, &wearable); err != nil {
		return nil, err
	}
	return &wearable, nil
}

// DisconnectWearable removes a connected wearable integration
func (c *Client) DisconnectWearable(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("wearable ID is required")
	}
	return c.delete(ctx, "/wearables/"+id)
}
