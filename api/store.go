package api

import (
	"context"
	"fmt"
	"net/url"

	"kessoku/models"
)

// GetStores searches studio listings. Empty city or instrument codes
// are omitted from the query (no filter).
func (c *Client) GetStores(ctx context.Context, city, instrument string) ([]models.Store, error) {
	query := url.Values{}
	if city != "" {
		query.Set("city", city)
	}
	if instrument != "" {
		query.Set("instrument", instrument)
	}

	var result models.StoreSearchResult
	if err := c.get(ctx, "/public/stores", query, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch stores: %w", err)
	}
	return result.Stores, nil
}

// GetStoreInfo fetches one store with its rooms and bookable time grid.
func (c *Client) GetStoreInfo(ctx context.Context, storeID string) (*models.Store, error) {
	var store models.Store
	if err := c.get(ctx, "/public/storeInfo/"+storeID, nil, &store); err != nil {
		return nil, fmt.Errorf("failed to fetch store info: %w", err)
	}
	return &store, nil
}

// GetClassOrders fetches the confirmed bookings of one room, i.e. the
// slots already taken by other users.
func (c *Client) GetClassOrders(ctx context.Context, classID string) ([]models.ClassOrder, error) {
	var orders []models.ClassOrder
	if err := c.get(ctx, "/public/classOrders/"+classID, nil, &orders); err != nil {
		return nil, fmt.Errorf("failed to fetch class orders: %w", err)
	}
	return orders, nil
}
