package api

import (
	"context"
	"fmt"

	"kessoku/models"
)

// Login exchanges credentials for a session token. The token is not
// stored here; the account service owns the session lifecycle.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.post(ctx, "/oauth/login", req, &auth); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &auth, nil
}

// Register creates a new account pending email verification.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := c.post(ctx, "/account/register", req, nil); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// VerifyEmail confirms a registration with the emailed code.
func (c *Client) VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) error {
	if err := c.post(ctx, "/account/verifyEmail", req, nil); err != nil {
		return fmt.Errorf("email verification failed: %w", err)
	}
	return nil
}

// ForgotPassword asks the service to email a password reset token.
func (c *Client) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	if err := c.post(ctx, "/account/forgotPassword", req, nil); err != nil {
		return fmt.Errorf("password reset request failed: %w", err)
	}
	return nil
}

// ResetPassword completes a password reset with the emailed token.
func (c *Client) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if err := c.post(ctx, "/account/resetPassword", req, nil); err != nil {
		return fmt.Errorf("password reset failed: %w", err)
	}
	return nil
}

// GetProfile fetches the signed-in user's account data.
func (c *Client) GetProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.get(ctx, "/account/profile", nil, &profile); err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &profile, nil
}
