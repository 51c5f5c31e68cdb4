package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metric names emitted by the API.
const (
	MetricOrdersCreated    = "OrdersCreated"
	MetricCartAdds         = "CartAdds"
	MetricPaymentsCaptured = "PaymentsCaptured"
)

// MetricsRecorder publishes count metrics to CloudWatch. A recorder with an
// empty namespace is disabled; every call becomes a no-op so callers never
// have to nil-check.
type MetricsRecorder struct {
	CloudWatch CloudWatchAPI
	Namespace  string
	nowFunc    func() time.Time
}

// NewMetricsRecorder returns a MetricsRecorder bound to a namespace.
func NewMetricsRecorder(cw CloudWatchAPI, namespace string) *MetricsRecorder {
	return &MetricsRecorder{
		CloudWatch: cw,
		Namespace:  namespace,
		nowFunc:    time.Now,
	}
}

// Enabled reports whether metrics will actually be sent.
func (m *MetricsRecorder) Enabled() bool {
	return m != nil && m.Namespace != "" && m.CloudWatch != nil
}

// Count publishes a single count datapoint for the named metric.
func (m *MetricsRecorder) Count(ctx context.Context, name string, value float64) error {
	if !m.Enabled() {
		return nil
	}
	ts := m.nowFunc()
	_, err := m.CloudWatch.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: &m.Namespace,
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: &name,
				Timestamp:  &ts,
				Value:      &value,
				Unit:       cwtypes.StandardUnitCount,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}
