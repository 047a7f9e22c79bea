package chunk

import (
	"context"
	"sync"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	metricsOnce    sync.Once
	metricsInitErr error
	chunkCounter   metric.Int64Counter
	chunkSizeHist  metric.Int64Histogram
)

func ensureMetrics() error {
	metricsOnce.Do(func() {
		meter := otel.GetMeterProvider().Meter("textsplit.chunk")
		metricsInitErr = initMetrics(meter)
	})
	return metricsInitErr
}

func initMetrics(meter metric.Meter) error {
	var err error
	chunkCounter, err = meter.Int64Counter(
		"textsplit_chunks_total",
		metric.WithDescription("Total chunks produced"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}
	chunkSizeHist, err = meter.Int64Histogram(
		"textsplit_chunk_size_chars",
		metric.WithDescription("Chunk sizes in characters"),
		metric.WithUnit("1"),
		metric.WithExplicitBucketBoundaries(64, 128, 256, 512, 1024, 2048, 4096, 8192),
	)
	return err
}

func recordChunks(ctx context.Context, corpusID string, chunks []Chunk) {
	if len(chunks) == 0 {
		return
	}
	if err := ensureMetrics(); err != nil || chunkCounter == nil || chunkSizeHist == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("corpus_id", corpusID))
	chunkCounter.Add(ctx, int64(len(chunks)), attrs)
	for i := range chunks {
		chunkSizeHist.Record(ctx, int64(utf8.RuneCountInString(chunks[i].Text)), attrs)
	}
}
