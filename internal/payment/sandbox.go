package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const sandboxApprovalURL = "https://www.sandbox.paypal.com/checkoutnow?token=DEMO_TOKEN"

// Sandbox is the stub Gateway used outside production. Both calls always
// succeed with synthetic values and never leave the process.
type Sandbox struct {
	newID func() string
}

// NewSandbox returns the stub gateway.
func NewSandbox() *Sandbox {
	return &Sandbox{newID: uuid.NewString}
}

func (s *Sandbox) CreateRemoteOrder(ctx context.Context, amount float64) (*RemoteOrder, error) {
	return &RemoteOrder{
		ID:     fmt.Sprintf("PAYPAL_%s", s.newID()),
		Status: "CREATED",
		Links: []Link{
			{
				Href:   sandboxApprovalURL,
				Rel:    "approve",
				Method: "GET",
			},
		},
	}, nil
}

func (s *Sandbox) CaptureRemoteOrder(ctx context.Context, remoteOrderID string) (*Capture, error) {
	return &Capture{
		ID:     remoteOrderID,
		Status: "COMPLETED",
		PaymentSource: map[string]interface{}{
			"paypal": map[string]interface{}{},
		},
	}, nil
}
