package validation

// CreateProductRequest is the payload for POST /api/products. Only field
// presence is validated: price sign, category values and duplicate names
// are accepted as-is and stored verbatim.
type CreateProductRequest struct {
	Name           string                 `json:"name" validate:"required"`
	Description    string                 `json:"description" validate:"required"`
	Price          float64                `json:"price"`
	Category       string                 `json:"category" validate:"required"`
	Brand          string                 `json:"brand" validate:"required"`
	ImageURL       string                 `json:"image_url" validate:"required"`
	InStock        *bool                  `json:"in_stock"`       // defaults to true
	Specifications map[string]interface{} `json:"specifications"` // free-form
}

// AddCartItemRequest is the payload for POST /api/cart. Quantity is a
// pointer so presence is required but zero and negative values pass; the
// merge rule sums whatever the client sends.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"required"`
}

// CreateOrderRequest is the payload for POST /api/orders. Line items are
// opaque maps and total_amount is trusted, not recomputed.
type CreateOrderRequest struct {
	CustomerName  string                   `json:"customer_name" validate:"required"`
	CustomerEmail string                   `json:"customer_email" validate:"required"`
	CustomerPhone string                   `json:"customer_phone" validate:"required"`
	Items         []map[string]interface{} `json:"items" validate:"required"`
	TotalAmount   *float64                 `json:"total_amount" validate:"required"`
}
