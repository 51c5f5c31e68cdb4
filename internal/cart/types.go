package cart

import "time"

// Item is one cart line. The cart table is keyed by product_id, which is
// what guarantees at most one line per product: adds for the same product
// land on the same item. The id attribute exists so clients can address a
// line without knowing the product id and is assigned once, on first insert.
type Item struct {
	ID        string    `json:"id" dynamodbav:"id"`
	ProductID string    `json:"product_id" dynamodbav:"product_id"` // PK
	Quantity  int       `json:"quantity" dynamodbav:"quantity"`
	AddedAt   time.Time `json:"added_at" dynamodbav:"added_at"`
}
