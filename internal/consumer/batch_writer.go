package consumer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nani454554/portfolio/internal/domain"
	"github.com/nani454554/portfolio/internal/repository"
)

const finalFlushTimeout = 10 * time.Second

// BatchWriterConfig configures the batch writer
type BatchWriterConfig struct {
	MaxBatchSize int
	FlushTimeout time.Duration
}

// BatchWriter groups envelopes and writes their events to the warehouse
type BatchWriter struct {
	repository repository.EventRepository
	config     BatchWriterConfig
	log        *zap.Logger
}

// NewBatchWriter creates a new batch writer
func NewBatchWriter(repo repository.EventRepository, config BatchWriterConfig, log *zap.Logger) *BatchWriter {
	return &BatchWriter{
		repository: repo,
		config:     config,
		log:        log,
	}
}

// Start consumes envelopes until ctx is done or in is closed, flushing on
// size or on timeout. A pending batch is flushed before returning.
func (w *BatchWriter) Start(ctx context.Context, in <-chan *Envelope) {
	ticker := time.NewTicker(w.config.FlushTimeout)
	defer ticker.Stop()

	batch := make([]*Envelope, 0, w.config.MaxBatchSize)

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Batch writer shutting down")
			w.finalFlush(ctx, batch)
			return

		case envelope, ok := <-in:
			if !ok {
				w.log.Info("Batch writer input channel closed")
				w.finalFlush(ctx, batch)
				return
			}

			batch = append(batch, envelope)
			if len(batch) >= w.config.MaxBatchSize {
				w.log.Debug("Batch size threshold reached", zap.Int("batch_size", len(batch)))
				w.processBatch(ctx, batch)
				batch = make([]*Envelope, 0, w.config.MaxBatchSize)
				ticker.Reset(w.config.FlushTimeout)
			}

		case <-ticker.C:
			if len(batch) > 0 {
				w.log.Debug("Batch timeout reached", zap.Int("envelope_count", len(batch)))
				w.processBatch(ctx, batch)
				batch = make([]*Envelope, 0, w.config.MaxBatchSize)
			}
		}
	}
}

// finalFlush writes the pending batch on a context detached from shutdown
func (w *BatchWriter) finalFlush(ctx context.Context, batch []*Envelope) {
	if len(batch) == 0 {
		return
	}

	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalFlushTimeout)
	defer cancel()

	w.log.Info("Flushing final batch", zap.Int("envelope_count", len(batch)))
	w.processBatch(flushCtx, batch)
}

// processBatch inserts the batch and acks every message on a full insert, nacking otherwise
func (w *BatchWriter) processBatch(ctx context.Context, envelopes []*Envelope) {
	if len(envelopes) == 0 {
		return
	}

	events := make([]*domain.TrackingEvent, len(envelopes))
	for i, env := range envelopes {
		events[i] = env.Event
	}

	inserted, err := w.repository.InsertBatch(ctx, events)
	if err != nil {
		w.log.Error("Failed to insert tracking batch",
			zap.Error(err),
			zap.Int("event_count", len(events)))
		w.settle(ctx, envelopes, (*Envelope).Nack, "nack")
		return
	}

	if inserted != len(events) {
		w.log.Warn("Partial insert success",
			zap.Int("inserted", inserted),
			zap.Int("expected", len(events)))
		w.settle(ctx, envelopes, (*Envelope).Nack, "nack")
		return
	}

	w.log.Info("Inserted tracking events", zap.Int("count", inserted))
	w.settle(ctx, envelopes, (*Envelope).Ack, "ack")
}

func (w *BatchWriter) settle(ctx context.Context, envelopes []*Envelope, fn func(*Envelope, context.Context) error, action string) {
	for _, env := range envelopes {
		if err := fn(env, ctx); err != nil {
			w.log.Error("Failed to settle envelope",
				zap.String("action", action),
				zap.String("event_id", env.Event.EventID),
				zap.Error(err))
		}
	}
}
