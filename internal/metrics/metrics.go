package metrics

import (
	"context"
	"log"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/EvangelicalThreads/evangelical-threads/internal/aws"
)

// Recorder publishes count metrics to CloudWatch. Delivery is best-effort:
// failures are logged and never surfaced to callers, and a Recorder with a
// nil client is a no-op (handy in tests and local runs).
type Recorder struct {
	client    aws.CloudWatchAPI
	namespace string
}

// NewRecorder binds a Recorder to a metric namespace.
func NewRecorder(client aws.CloudWatchAPI, namespace string) *Recorder {
	return &Recorder{client: client, namespace: namespace}
}

// Count emits a count-of-one datum for name.
func (r *Recorder) Count(ctx context.Context, name string) {
	if r == nil || r.client == nil {
		return
	}
	_, err := r.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: sdkaws.String(r.namespace),
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: sdkaws.String(name),
				Value:      sdkaws.Float64(1),
				Unit:       cwtypes.StandardUnitCount,
			},
		},
	})
	if err != nil {
		log.Printf("put metric %s: %v", name, err)
	}
}
