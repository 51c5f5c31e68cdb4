package payment

import (
	"context"
	"errors"
)

// ErrPaymentFailed is what Gateway implementations must map provider errors
// to. Handlers translate it to a 502; there is no retry policy here — any
// future retry must reuse the gateway's own idempotency key.
var ErrPaymentFailed = errors.New("payment failed")

// Link is a HATEOAS-style link on a remote order, e.g. the buyer approval
// redirect.
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

// RemoteOrder is the gateway-side transaction handle. It is distinct from
// this system's Order entity and is never persisted here.
type RemoteOrder struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []Link `json:"links"`
}

// Capture is the result of capturing a remote order.
type Capture struct {
	ID            string                 `json:"id"`
	Status        string                 `json:"status"`
	PaymentSource map[string]interface{} `json:"payment_source"`
}

// Gateway is the payment-provider contract the API depends on.
type Gateway interface {
	CreateRemoteOrder(ctx context.Context, amount float64) (*RemoteOrder, error)
	CaptureRemoteOrder(ctx context.Context, remoteOrderID string) (*Capture, error)
}
