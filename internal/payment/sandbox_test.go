package payment

import (
	"context"
	"strings"
	"testing"
)

func TestSandbox_CreateRemoteOrder(t *testing.T) {
	gw := NewSandbox()

	remote, err := gw.CreateRemoteOrder(context.Background(), 999.95)
	if err != nil {
		t.Fatalf("CreateRemoteOrder error: %v", err)
	}
	if !strings.HasPrefix(remote.ID, "PAYPAL_") {
		t.Fatalf("unexpected remote order id %q", remote.ID)
	}
	if remote.Status != "CREATED" {
		t.Fatalf("expected CREATED, got %q", remote.Status)
	}
	if len(remote.Links) != 1 || remote.Links[0].Rel != "approve" || remote.Links[0].Method != "GET" {
		t.Fatalf("expected a single approve link, got %+v", remote.Links)
	}

	other, err := gw.CreateRemoteOrder(context.Background(), 1.0)
	if err != nil {
		t.Fatalf("CreateRemoteOrder error: %v", err)
	}
	if other.ID == remote.ID {
		t.Fatal("expected unique remote order ids")
	}
}

func TestSandbox_CaptureRemoteOrder(t *testing.T) {
	gw := NewSandbox()

	capture, err := gw.CaptureRemoteOrder(context.Background(), "PAYPAL_abc")
	if err != nil {
		t.Fatalf("CaptureRemoteOrder error: %v", err)
	}
	if capture.ID != "PAYPAL_abc" {
		t.Fatalf("capture should echo the remote order id, got %q", capture.ID)
	}
	if capture.Status != "COMPLETED" {
		t.Fatalf("expected COMPLETED, got %q", capture.Status)
	}
	if _, ok := capture.PaymentSource["paypal"]; !ok {
		t.Fatalf("expected paypal payment source, got %+v", capture.PaymentSource)
	}
}
