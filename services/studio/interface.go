package studio

import (
	"context"

	"kessoku/models"
	"kessoku/utils"
)

// StudioAPI is the slice of the remote service the owner flows use.
type StudioAPI interface {
	GetMyStudio(ctx context.Context) (*models.Store, error)
	UpdateStudio(ctx context.Context, update models.StudioUpdate) error
	CreateClass(ctx context.Context, input models.ClassInput) (*models.StoreClass, error)
	UpdateClass(ctx context.Context, classID string, input models.ClassInput) error
	DeleteClass(ctx context.Context, classID string) error
	GetStudioOrders(ctx context.Context) ([]models.StudioOrder, error)
	ReviewOrder(ctx context.Context, bookID string, req models.ReviewOrderRequest) error
}

// StudioService drives the owner-side flows: listing maintenance, room
// management, and order review.
type StudioService interface {
	Listing(ctx context.Context) (*models.Store, error)
	UpdateListing(ctx context.Context, update models.StudioUpdate) error
	AddRoom(ctx context.Context, input models.ClassInput) (*models.StoreClass, error)
	UpdateRoom(ctx context.Context, classID string, input models.ClassInput) error
	RemoveRoom(ctx context.Context, classID string) error
	Orders(ctx context.Context) ([]models.StudioOrder, error)
	ApproveOrder(ctx context.Context, bookID string) error
	RejectOrder(ctx context.Context, bookID string) error
}

// DefaultStudioService is the production implementation.
type DefaultStudioService struct {
	API     StudioAPI
	Session *utils.AuthSession
}
