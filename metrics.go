package extern

import (
	"log/slog"

	"github.com/hashicorp/go-metrics"
)

var (
	MetricDispatchHandledCount   = []string{"extern", "dispatch", "handled", "count"}
	MetricDispatchUnhandledCount = []string{"extern", "dispatch", "unhandled", "count"}
	MetricDispatchDistribCount   = []string{"extern", "dispatch", "distributed", "count"}
	MetricQueueInCount           = []string{"extern", "queue", "in", "count"}
	MetricQueueOutCount          = []string{"extern", "queue", "out", "count"}
	MetricQueueDrainBatchSize    = []string{"extern", "queue", "drain", "batch", "size"}
	MetricWorkerStartCount       = []string{"extern", "worker", "start", "count"}
)

type TelemetryLabel string

var (
	LabelError    TelemetryLabel = "error"
	LabelInlet    TelemetryLabel = "inlet"
	LabelOutlet   TelemetryLabel = "outlet"
	LabelSelector TelemetryLabel = "selector"
	LabelSymbol   TelemetryLabel = "symbol"
	LabelPlatform TelemetryLabel = "platform"
	LabelWorker   TelemetryLabel = "worker"
	LabelDuration TelemetryLabel = "duration"
)

func (lab TelemetryLabel) M(val string) metrics.Label {
	return metrics.Label{Name: string(lab), Value: val}
}

func (lab TelemetryLabel) L(val any) slog.Attr {
	return slog.Attr{
		Key:   string(lab),
		Value: slog.AnyValue(val),
	}
}
