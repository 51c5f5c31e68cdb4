package catalog

import "time"

// Product is an appliance listing stored in the products table.
// Specifications is deliberately schemaless: whatever key/value pairs the
// client sends are stored and returned as-is.
type Product struct {
	ID             string                 `json:"id" dynamodbav:"id"` // PK
	Name           string                 `json:"name" dynamodbav:"name"`
	Description    string                 `json:"description" dynamodbav:"description"`
	Price          float64                `json:"price" dynamodbav:"price"`
	Category       string                 `json:"category" dynamodbav:"category"`
	Brand          string                 `json:"brand" dynamodbav:"brand"`
	ImageURL       string                 `json:"image_url" dynamodbav:"image_url"`
	InStock        bool                   `json:"in_stock" dynamodbav:"in_stock"`
	Specifications map[string]interface{} `json:"specifications" dynamodbav:"specifications"`
	CreatedAt      time.Time              `json:"created_at" dynamodbav:"created_at"`
}
