package account

import (
	"context"

	"kessoku/models"
)

// Profile fetches the signed-in user's account data.
func (s *DefaultAccountService) Profile(ctx context.Context) (*models.Profile, error) {
	if !s.Session.SignedIn() {
		return nil, ErrNotSignedIn
	}
	return s.API.GetProfile(ctx)
}
