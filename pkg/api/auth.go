package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

// Register creates an account and authenticates the session with the
// returned access token.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*model.Token, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if req.Phone == "" {
		return nil, fmt.Errorf("phone is required")
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	var token model.Token
	if err := c.post(ctx, "/auth/register", req, &token); err != nil {
		return nil, err
	}

	c.session.Set(token.AccessToken)
	return &token, nil
}

// Login authenticates with phone and password and stores the returned
// access token on the session. The backend implements the OAuth2 password
// flow, so the body is form-urlencoded with the phone as username; every
// other write on this API is JSON.
func (c *Client) Login(ctx context.Context, phone, password string) (*model.Token, error) {
	if phone == "" {
		return nil, fmt.Errorf("phone is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	form := url.Values{}
	form.Set("username", phone)
	form.Set("password", password)

	var token model.Token
	if err := c.doForm(ctx, "POST", "/auth/login", form, &token); err != nil {
		return nil, err
	}

	c.session.Set(token.AccessToken)
	return &token, nil
}

// BiometricLogin authenticates with a signed device biometric token
func (c *Client) BiometricLogin(ctx context.Context, userID, biometricToken string) (*model.Token, error) {
	body := map[string]string{
		"user_id":         userID,
		"biometric_token": biometricToken,
	}

	var token model.Token
	if err := c.post(ctx, "/auth/biometric-login", body, &token); err != nil {
		return nil, err
	}

	c.session.Set(token.AccessToken)
	return &token, nil
}

// Refresh exchanges a refresh token for a new access token and stores it
// on the session. The client never schedules this automatically; callers
// invoke it when a request fails with an expired credential.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*model.Token, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is required")
	}

	body := map[string]string{"refresh_token": refreshToken}

	var token model.Token
	if err := c.post(ctx, "/auth/refresh", body, &token); err != nil {
		return nil, err
	}

	c.session.Set(token.AccessToken)
	return &token, nil
}

// AadhaarVerify submits an Aadhaar number and a selfie for face verification
func (c *Client) AadhaarVerify(ctx context.Context, aadhaarNumber, faceImageB64 string) (*model.AadhaarVerifyResult, error) {
	body := map[string]string{
		"aadhaar_number": aadhaarNumber,
		"face_image_b64": faceImageB64,
	}

	var result model.AadhaarVerifyResult
	if err := c.post(ctx, "/auth/aadhaar-verify", body, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Logout clears the session credential. This is purely client-side; a
// request already in flight completes with the token it started with.
func (c *Client) Logout() {
	c.session.Clear()
}
