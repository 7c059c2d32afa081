package account

import (
	"context"

	"go.uber.org/zap"

	"kessoku/models"
	"kessoku/utils"
)

// SignIn exchanges credentials for a session token and stores it in
// the injected session.
func (s *DefaultAccountService) SignIn(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	auth, err := s.API.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	if err := s.Session.SetToken(auth.Token); err != nil {
		logger.Error("failed to store session token", zap.Error(err))
		return nil, err
	}

	logger.Info("signed in", zap.String("userId", auth.ID))
	return auth, nil
}

// SignOut drops the session token. The server keeps its own session
// records; dropping the token is all the client can or needs to do.
func (s *DefaultAccountService) SignOut() {
	s.Session.Clear()
}
