package studio

import (
	"context"

	"go.uber.org/zap"

	"kessoku/models"
	"kessoku/utils"
)

// Listing fetches the owner's store with its rooms.
func (s *DefaultStudioService) Listing(ctx context.Context) (*models.Store, error) {
	if !s.Session.SignedIn() {
		return nil, ErrNotSignedIn
	}
	return s.API.GetMyStudio(ctx)
}

// UpdateListing updates the store's public details.
func (s *DefaultStudioService) UpdateListing(ctx context.Context, update models.StudioUpdate) error {
	if !s.Session.SignedIn() {
		return ErrNotSignedIn
	}
	return s.API.UpdateStudio(ctx, update)
}

// AddRoom creates a rehearsal room on the owner's store.
func (s *DefaultStudioService) AddRoom(ctx context.Context, input models.ClassInput) (*models.StoreClass, error) {
	if !s.Session.SignedIn() {
		return nil, ErrNotSignedIn
	}
	if err := validateRoom(input); err != nil {
		return nil, err
	}

	class, err := s.API.CreateClass(ctx, input)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("room created",
		zap.String("classId", class.ID), zap.String("name", class.Name))
	return class, nil
}

// UpdateRoom updates one of the owner's rooms.
func (s *DefaultStudioService) UpdateRoom(ctx context.Context, classID string, input models.ClassInput) error {
	if !s.Session.SignedIn() {
		return ErrNotSignedIn
	}
	if err := validateRoom(input); err != nil {
		return err
	}
	return s.API.UpdateClass(ctx, classID, input)
}

// RemoveRoom deletes one of the owner's rooms.
func (s *DefaultStudioService) RemoveRoom(ctx context.Context, classID string) error {
	if !s.Session.SignedIn() {
		return ErrNotSignedIn
	}
	return s.API.DeleteClass(ctx, classID)
}

func validateRoom(input models.ClassInput) error {
	if input.Name == "" {
		return ErrRoomName
	}
	for _, code := range input.Instruments {
		if !utils.ValidInstrumentCode(code) {
			return ErrUnknownInstrument
		}
	}
	return nil
}
