package account

import (
	"context"

	"kessoku/models"
	"kessoku/utils"
)

// AccountAPI is the slice of the remote service the account flows use.
type AccountAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) error
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
	GetProfile(ctx context.Context) (*models.Profile, error)
}

// AccountService drives the account lifecycle: registration and email
// verification, sign in/out, password reset, and profile access.
type AccountService interface {
	SignUp(ctx context.Context, name, email, password, confirmPassword string) error
	VerifyEmail(ctx context.Context, email, code string) error
	SignIn(ctx context.Context, email, password string) (*models.AuthResponse, error)
	SignOut()
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error
	Profile(ctx context.Context) (*models.Profile, error)
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	API     AccountAPI
	Session *utils.AuthSession
}
