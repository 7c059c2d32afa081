package booking

import (
	"context"

	"kessoku/models"
)

// StoreAPI is the slice of the remote service a store-detail session
// needs: store info, per-room confirmed orders, and booking submission.
type StoreAPI interface {
	GetStoreInfo(ctx context.Context, storeID string) (*models.Store, error)
	GetClassOrders(ctx context.Context, classID string) ([]models.ClassOrder, error)
	SubmitBooking(ctx context.Context, req models.BookRequest) (*models.BookResult, error)
}
