package aws

import (
	"context"
	"testing"

	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/testutil"
)

func TestPublisher_DisabledWithoutQueueURL(t *testing.T) {
	rec := &testutil.SQSRecorder{}
	p := NewPublisher(rec, "")

	if p.Enabled() {
		t.Fatal("publisher with empty queue URL should be disabled")
	}
	if err := p.SendOrderEvent(context.Background(), `{"order_id":"o1"}`, nil); err != nil {
		t.Fatalf("disabled publisher should no-op, got %v", err)
	}
	if rec.SentCount() != 0 {
		t.Fatalf("disabled publisher sent %d messages", rec.SentCount())
	}
}

func TestPublisher_SendsBodyAndAttributes(t *testing.T) {
	rec := &testutil.SQSRecorder{}
	p := NewPublisher(rec, "https://sqs.test/order-events")

	err := p.SendOrderEvent(context.Background(), `{"order_id":"o1"}`, map[string]string{
		"order_id":       "o1",
		"correlation_id": "req-123",
	})
	if err != nil {
		t.Fatalf("SendOrderEvent error: %v", err)
	}
	if rec.SentCount() != 1 {
		t.Fatalf("expected 1 message, got %d", rec.SentCount())
	}

	msg := rec.Sent[0]
	if *msg.QueueUrl != "https://sqs.test/order-events" {
		t.Fatalf("wrong queue url %q", *msg.QueueUrl)
	}
	if *msg.MessageBody != `{"order_id":"o1"}` {
		t.Fatalf("wrong body %q", *msg.MessageBody)
	}
	attr, ok := msg.MessageAttributes["correlation_id"]
	if !ok || *attr.StringValue != "req-123" {
		t.Fatalf("correlation_id attribute missing or wrong: %+v", msg.MessageAttributes)
	}
}

func TestMetricsRecorder(t *testing.T) {
	rec := &testutil.CloudWatchRecorder{}

	disabled := NewMetricsRecorder(rec, "")
	if disabled.Enabled() {
		t.Fatal("recorder with empty namespace should be disabled")
	}
	if err := disabled.Count(context.Background(), MetricOrdersCreated, 1); err != nil {
		t.Fatalf("disabled recorder should no-op, got %v", err)
	}
	if rec.MetricCount(MetricOrdersCreated) != 0 {
		t.Fatal("disabled recorder emitted data")
	}

	m := NewMetricsRecorder(rec, "NovaEletro/API")
	if err := m.Count(context.Background(), MetricOrdersCreated, 1); err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if rec.MetricCount(MetricOrdersCreated) != 1 {
		t.Fatalf("expected 1 datapoint, got %d", rec.MetricCount(MetricOrdersCreated))
	}
	if *rec.Puts[0].Namespace != "NovaEletro/API" {
		t.Fatalf("wrong namespace %q", *rec.Puts[0].Namespace)
	}
}
