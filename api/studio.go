package api

import (
	"context"
	"fmt"

	"kessoku/models"
)

// GetMyStudio fetches the signed-in owner's store listing.
func (c *Client) GetMyStudio(ctx context.Context) (*models.Store, error) {
	var store models.Store
	if err := c.get(ctx, "/studio", nil, &store); err != nil {
		return nil, fmt.Errorf("failed to fetch studio: %w", err)
	}
	return &store, nil
}

// UpdateStudio updates the owner's listing details.
func (c *Client) UpdateStudio(ctx context.Context, update models.StudioUpdate) error {
	if err := c.put(ctx, "/studio", update, nil); err != nil {
		return fmt.Errorf("failed to update studio: %w", err)
	}
	return nil
}

// CreateClass adds a rehearsal room to the owner's store.
func (c *Client) CreateClass(ctx context.Context, input models.ClassInput) (*models.StoreClass, error) {
	var class models.StoreClass
	if err := c.post(ctx, "/studio/classes", input, &class); err != nil {
		return nil, fmt.Errorf("failed to create class: %w", err)
	}
	return &class, nil
}

// UpdateClass updates one of the owner's rooms.
func (c *Client) UpdateClass(ctx context.Context, classID string, input models.ClassInput) error {
	if err := c.put(ctx, "/studio/classes/"+classID, input, nil); err != nil {
		return fmt.Errorf("failed to update class: %w", err)
	}
	return nil
}

// DeleteClass removes one of the owner's rooms.
func (c *Client) DeleteClass(ctx context.Context, classID string) error {
	if err := c.delete(ctx, "/studio/classes/"+classID); err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}
	return nil
}

// GetStudioOrders lists bookings placed against the owner's rooms.
func (c *Client) GetStudioOrders(ctx context.Context) ([]models.StudioOrder, error) {
	var orders []models.StudioOrder
	if err := c.get(ctx, "/studio/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("failed to fetch studio orders: %w", err)
	}
	return orders, nil
}

// ReviewOrder approves or rejects an order awaiting review.
func (c *Client) ReviewOrder(ctx context.Context, bookID string, req models.ReviewOrderRequest) error {
	if err := c.put(ctx, "/studio/orders/"+bookID+"/review", req, nil); err != nil {
		return fmt.Errorf("failed to review order: %w", err)
	}
	return nil
}
