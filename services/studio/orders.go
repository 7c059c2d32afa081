package studio

import (
	"context"

	"kessoku/models"
)

// Orders lists bookings placed against the owner's rooms.
func (s *DefaultStudioService) Orders(ctx context.Context) ([]models.StudioOrder, error) {
	if !s.Session.SignedIn() {
		return nil, ErrNotSignedIn
	}
	return s.API.GetStudioOrders(ctx)
}

// ApproveOrder moves an order in review to the deposit stage.
func (s *DefaultStudioService) ApproveOrder(ctx context.Context, bookID string) error {
	return s.review(ctx, bookID, models.ReviewApprove)
}

// RejectOrder cancels an order in review.
func (s *DefaultStudioService) RejectOrder(ctx context.Context, bookID string) error {
	return s.review(ctx, bookID, models.ReviewReject)
}

func (s *DefaultStudioService) review(ctx context.Context, bookID, action string) error {
	if !s.Session.SignedIn() {
		return ErrNotSignedIn
	}
	return s.API.ReviewOrder(ctx, bookID, models.ReviewOrderRequest{Action: action})
}
