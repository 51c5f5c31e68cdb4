package testutil

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSRecorder records every SendMessage call. Set Err to make sends fail.
type SQSRecorder struct {
	mu   sync.Mutex
	Err  error
	Sent []*sqs.SendMessageInput
}

func (r *SQSRecorder) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	r.Sent = append(r.Sent, params)
	return &sqs.SendMessageOutput{}, nil
}

// SentCount reports how many messages were accepted.
func (r *SQSRecorder) SentCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Sent)
}

// CloudWatchRecorder records every PutMetricData call.
type CloudWatchRecorder struct {
	mu   sync.Mutex
	Err  error
	Puts []*cloudwatch.PutMetricDataInput
}

func (r *CloudWatchRecorder) PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	r.Puts = append(r.Puts, params)
	return &cloudwatch.PutMetricDataOutput{}, nil
}

// MetricCount reports how many datapoints were recorded for a metric name.
func (r *CloudWatchRecorder) MetricCount(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.Puts {
		for _, d := range p.MetricData {
			if d.MetricName != nil && *d.MetricName == name {
				n++
			}
		}
	}
	return n
}
