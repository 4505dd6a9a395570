package entity

// Row is a single result row keyed by column name.
type Row map[string]any

// Resource describes a table exposed through the generic CRUD routes.
type Resource struct {
	// Name is the singular display name used in response messages, e.g. "Order item".
	Name string
	// Plural is the lower-case noun used in log lines, e.g. "order items".
	Plural string
	// Path is the route segment under /api.
	Path  string
	Table string
	// CreateColumns are bound from the request body on insert, in order.
	CreateColumns []string
	// UpdateColumns are bound from the request body on update, in order.
	// Some resources only allow a narrow subset of their columns to change.
	UpdateColumns []string
}

func (r Resource) NotFoundMessage() string { return r.Name + " not found" }
func (r Resource) CreatedMessage() string  { return r.Name + " created successfully" }
func (r Resource) UpdatedMessage() string  { return r.Name + " updated successfully" }
func (r Resource) DeletedMessage() string  { return r.Name + " deleted successfully" }

var (
	Addresses = Resource{
		Name:          "Address",
		Plural:        "addresses",
		Path:          "addresses",
		Table:         "addresses",
		CreateColumns: []string{"street", "city", "state", "postal_code", "country"},
		UpdateColumns: []string{"street", "city", "state", "postal_code", "country"},
	}

	Categories = Resource{
		Name:          "Category",
		Plural:        "categories",
		Path:          "categories",
		Table:         "categories",
		CreateColumns: []string{"name"},
		UpdateColumns: []string{"name"},
	}

	Customers = Resource{
		Name:          "Customer",
		Plural:        "customers",
		Path:          "customers",
		Table:         "customers",
		CreateColumns: []string{"first_name", "last_name", "email", "phone"},
		UpdateColumns: []string{"first_name", "last_name", "email", "phone"},
	}

	Inventory = Resource{
		Name:          "Inventory record",
		Plural:        "inventory records",
		Path:          "inventory",
		Table:         "inventory",
		CreateColumns: []string{"product_id", "warehouse_id", "quantity"},
		// Quantity is a blind overwrite, not an increment.
		UpdateColumns: []string{"quantity"},
	}

	OrderItems = Resource{
		Name:          "Order item",
		Plural:        "order items",
		Path:          "order-items",
		Table:         "order_items",
		CreateColumns: []string{"order_id", "product_id", "quantity", "price"},
		UpdateColumns: []string{"quantity", "price"},
	}

	Orders = Resource{
		Name:          "Order",
		Plural:        "orders",
		Path:          "orders",
		Table:         "orders",
		CreateColumns: []string{"customer_id", "total", "shipping_address_id", "billing_address_id"},
		UpdateColumns: []string{"status"},
	}

	Payments = Resource{
		Name:          "Payment",
		Plural:        "payments",
		Path:          "payments",
		Table:         "payments",
		CreateColumns: []string{"order_id", "amount", "payment_date", "payment_method", "transaction_id"},
		UpdateColumns: []string{"payment_status"},
	}

	Products = Resource{
		Name:          "Product",
		Plural:        "products",
		Path:          "products",
		Table:         "products",
		CreateColumns: []string{"sku", "name", "description", "category_id", "supplier_id", "price", "cost"},
		UpdateColumns: []string{"sku", "name", "description", "category_id", "supplier_id", "price", "cost"},
	}

	Suppliers = Resource{
		Name:          "Supplier",
		Plural:        "suppliers",
		Path:          "suppliers",
		Table:         "suppliers",
		CreateColumns: []string{"name", "contact_email", "contact_phone"},
		UpdateColumns: []string{"name", "contact_email", "contact_phone"},
	}

	Warehouses = Resource{
		Name:          "Warehouse",
		Plural:        "warehouses",
		Path:          "warehouses",
		Table:         "warehouses",
		CreateColumns: []string{"name", "location"},
		UpdateColumns: []string{"name", "location"},
	}
)

// Resources returns every table exposed under /api.
func Resources() []Resource {
	return []Resource{
		Addresses,
		Categories,
		Customers,
		Inventory,
		OrderItems,
		Orders,
		Payments,
		Products,
		Suppliers,
		Warehouses,
	}
}
