package account

import (
	"context"
	"regexp"

	"kessoku/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// SignUp registers a new account. The account stays pending until the
// emailed verification code is confirmed via VerifyEmail.
func (s *DefaultAccountService) SignUp(ctx context.Context, name, email, password, confirmPassword string) error {
	if name == "" || email == "" || password == "" || confirmPassword == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	return s.API.Register(ctx, models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
}

// VerifyEmail confirms a pending registration with the emailed code.
func (s *DefaultAccountService) VerifyEmail(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return ErrMissingFields
	}
	return s.API.VerifyEmail(ctx, models.VerifyEmailRequest{Email: email, Code: code})
}
