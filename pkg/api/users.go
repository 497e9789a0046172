package api

import (
	"context"

	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

// Me fetches the authenticated user's profile
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.get(ctx, "/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateMe applies a partial profile update and returns the updated profile
func (c *Client) UpdateMe(ctx context.Context, update model.UserUpdate) (*model.User, error) {
	var user model.User
	if err := c.patch(ctx, "/users/me", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeactivateMe deactivates the authenticated user's account (GDPR right to
// erasure). The backend soft-deletes: the account is marked inactive and
// data erasure is scheduled server-side. The session credential is left
// untouched; callers typically follow up with Logout.
func (c *Client) DeactivateMe(ctx context.Context) error {
	return c.delete(ctx, "/users/me")
}
