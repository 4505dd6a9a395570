package repository

import (
	"context"
	"errors"

	"github.com/1230harry/commercial-db-api/internal/entity"
)

// ErrNotFound is returned when a keyed read matches no row or a keyed write affects none.
var ErrNotFound = errors.New("not found")

// ResourceRepository handles persistence for one table described by an entity.Resource.
type ResourceRepository interface {
	FindAll(ctx context.Context) ([]entity.Row, error)
	FindByID(ctx context.Context, id int64) (entity.Row, error)
	// Create inserts the given column values and returns the generated id.
	Create(ctx context.Context, values map[string]any) (int64, error)
	Update(ctx context.Context, id int64, values map[string]any) error
	Delete(ctx context.Context, id int64) error
}

// DetailsRepository runs the read-only join and relationship queries.
type DetailsRepository interface {
	CustomerFullDetails(ctx context.Context, customerID int64) (entity.Row, error)
	ProductsFullDetails(ctx context.Context) ([]entity.Row, error)
	InventoryFullDetails(ctx context.Context, filter entity.InventoryFilter) ([]entity.Row, error)
	OrderItemsByOrder(ctx context.Context, orderID int64) ([]entity.Row, error)
	InventoryByProduct(ctx context.Context, productID int64) ([]entity.Row, error)
	InventoryByWarehouse(ctx context.Context, warehouseID int64) ([]entity.Row, error)
}

// UserRepository handles persistence for Users.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (int64, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
