package sqlstore

import (
	"context"
	"fmt"

	"github.com/1230harry/commercial-db-api/internal/entity"
	"github.com/1230harry/commercial-db-api/internal/repository"
)

const customerFullDetailsSQL = `
	SELECT
		c.id, c.first_name, c.last_name, c.email,
		s_addr.street AS shipping_street, s_addr.city AS shipping_city, s_addr.state AS shipping_state,
		b_addr.street AS billing_street, b_addr.city AS billing_city, b_addr.state AS billing_state
	FROM customers c
	INNER JOIN addresses s_addr ON c.shipping_address_id = s_addr.id
	INNER JOIN addresses b_addr ON c.billing_address_id = b_addr.id`

const productsFullDetailsSQL = `
	SELECT
		p.id, p.sku, p.name, p.description, p.price, p.cost,
		c.name AS category_name,
		s.name AS supplier_name
	FROM products p
	INNER JOIN categories c ON p.category_id = c.id
	INNER JOIN suppliers s ON p.supplier_id = s.id`

const inventoryFullDetailsSQL = `
	SELECT
		i.id, i.quantity,
		p.name AS product_name, p.sku AS product_sku,
		w.name AS warehouse_name, w.location AS warehouse_location
	FROM inventory i
	INNER JOIN products p ON i.product_id = p.id
	INNER JOIN warehouses w ON i.warehouse_id = w.id`

type detailsRepository struct {
	*Store
}

// NewDetailsRepository creates a DetailsRepository for the join and relationship reads.
func NewDetailsRepository(store *Store) repository.DetailsRepository {
	return &detailsRepository{Store: store}
}

// CustomerFullDetails returns the customer flattened with both addresses.
// A broken address link yields ErrNotFound, never a partial record.
func (r *detailsRepository) CustomerFullDetails(ctx context.Context, customerID int64) (entity.Row, error) {
	q, args := NewQuery(customerFullDetailsSQL).Where("c.id = ?", customerID).Build()
	rows, err := r.query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer %d with addresses: %w", customerID, err)
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}
	return rows[0], nil
}

func (r *detailsRepository) ProductsFullDetails(ctx context.Context) ([]entity.Row, error) {
	q, args := NewQuery(productsFullDetailsSQL).OrderBy("p.id").Build()
	rows, err := r.query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products with full details: %w", err)
	}
	return rows, nil
}

func (r *detailsRepository) InventoryFullDetails(ctx context.Context, filter entity.InventoryFilter) ([]entity.Row, error) {
	q, args := inventoryFullDetailsQuery(filter).Build()
	rows, err := r.query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory with full details: %w", err)
	}
	return rows, nil
}

func inventoryFullDetailsQuery(filter entity.InventoryFilter) *Query {
	q := NewQuery(inventoryFullDetailsSQL)
	if name, ok := filter.ProductName.Get(); ok {
		q.Where("LOWER(p.name) LIKE LOWER(?)", "%"+name+"%")
	}
	return q.OrderBy("i.id").Paginate(filter.Page.Size, filter.Page.Offset())
}

// OrderItemsByOrder returns an empty list, not ErrNotFound, when the order has no items or does not exist.
func (r *detailsRepository) OrderItemsByOrder(ctx context.Context, orderID int64) ([]entity.Row, error) {
	return r.listBy(ctx, "order_items", "order_id", orderID)
}

func (r *detailsRepository) InventoryByProduct(ctx context.Context, productID int64) ([]entity.Row, error) {
	return r.listBy(ctx, "inventory", "product_id", productID)
}

func (r *detailsRepository) InventoryByWarehouse(ctx context.Context, warehouseID int64) ([]entity.Row, error) {
	return r.listBy(ctx, "inventory", "warehouse_id", warehouseID)
}

func (r *detailsRepository) listBy(ctx context.Context, table, column string, id int64) ([]entity.Row, error) {
	q, args := NewQuery("SELECT * FROM "+table).Where(column+" = ?", id).OrderBy("id").Build()
	rows, err := r.query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by %s %d: %w", table, column, id, err)
	}
	return rows, nil
}
