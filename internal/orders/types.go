package orders

import "time"

// StatusPending is the only status this API ever writes. Orders are
// immutable once created; downstream systems own later transitions.
const StatusPending = "pending"

// Order is the immutable snapshot stored in the orders table. Items are
// opaque line-item maps persisted verbatim and TotalAmount is whatever the
// client claimed; nothing is recomputed or cross-checked against the
// catalog at placement time.
type Order struct {
	ID            string                   `json:"id" dynamodbav:"id"` // PK
	CustomerName  string                   `json:"customer_name" dynamodbav:"customer_name"`
	CustomerEmail string                   `json:"customer_email" dynamodbav:"customer_email"`
	CustomerPhone string                   `json:"customer_phone" dynamodbav:"customer_phone"`
	Items         []map[string]interface{} `json:"items" dynamodbav:"items,omitempty"`
	TotalAmount   float64                  `json:"total_amount" dynamodbav:"total_amount"`
	Status        string                   `json:"status" dynamodbav:"status"`
	PayPalOrderID *string                  `json:"paypal_order_id" dynamodbav:"paypal_order_id,omitempty"`
	CreatedAt     time.Time                `json:"created_at" dynamodbav:"created_at"`
}
