package api

import (
	"context"
	"fmt"

	"kessoku/models"
)

// SubmitBooking sends a booking submission built from the user's draft.
// No automatic retry: a failure is returned to the caller, who decides
// whether to re-fetch availability and try again.
func (c *Client) SubmitBooking(ctx context.Context, req models.BookRequest) (*models.BookResult, error) {
	var result models.BookResult
	if err := c.post(ctx, "/book", req, &result); err != nil {
		return nil, fmt.Errorf("failed to submit booking: %w", err)
	}
	return &result, nil
}

// GetMyBookings lists the signed-in user's bookings.
func (c *Client) GetMyBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.get(ctx, "/book/my", nil, &bookings); err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return bookings, nil
}

// CancelBooking cancels one of the signed-in user's bookings.
func (c *Client) CancelBooking(ctx context.Context, bookID string) error {
	if err := c.put(ctx, "/book/"+bookID+"/cancel", nil, nil); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	return nil
}
