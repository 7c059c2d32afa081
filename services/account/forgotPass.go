package account

import (
	"context"

	"kessoku/models"
)

// RequestPasswordReset asks the service to email a reset token.
func (s *DefaultAccountService) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return s.API.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: email})
}

// ResetPassword completes the reset flow with the emailed token.
func (s *DefaultAccountService) ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error {
	if token == "" || newPassword == "" {
		return ErrMissingFields
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	return s.API.ResetPassword(ctx, models.ResetPasswordRequest{
		Token:       token,
		NewPassword: newPassword,
	})
}
