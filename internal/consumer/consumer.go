package consumer

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/nani454554/portfolio/internal/config"
	"github.com/nani454554/portfolio/internal/queue"
	"github.com/nani454554/portfolio/internal/repository"
)

const (
	receiveMaxMessages     = 10
	receiveWaitTimeSeconds = 20
	stageBufferSize        = 100
)

// Consumer runs the receive, parse and write stages that move tracking
// events from the queue into the warehouse
type Consumer struct {
	receiver    *Receiver
	parser      *ParserStage
	batchWriter *BatchWriter
}

// NewConsumer wires the pipeline stages
func NewConsumer(cfg config.Consumer, queueConsumer queue.QueueConsumer, repo repository.EventRepository, log *zap.Logger) *Consumer {
	receiver := NewReceiver(queueConsumer, ReceiverConfig{
		MaxMessages:     receiveMaxMessages,
		WaitTimeSeconds: receiveWaitTimeSeconds,
	}, log.Named("receiver"))

	parser := NewParserStage(queueConsumer, NewTrackingEventParser(), log.Named("parser"))

	batchWriter := NewBatchWriter(repo, BatchWriterConfig{
		MaxBatchSize: cfg.BatchSizeMax,
		FlushTimeout: time.Duration(cfg.BatchTimeoutSec) * time.Second,
	}, log.Named("writer"))

	return &Consumer{
		receiver:    receiver,
		parser:      parser,
		batchWriter: batchWriter,
	}
}

// Start blocks until ctx is done and every stage has drained
func (c *Consumer) Start(ctx context.Context) {
	messages := make(chan types.Message, stageBufferSize)
	envelopes := make(chan *Envelope, stageBufferSize)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		c.receiver.Start(ctx, messages)
	}()

	go func() {
		defer wg.Done()
		c.parser.Start(ctx, messages, envelopes)
	}()

	go func() {
		defer wg.Done()
		c.batchWriter.Start(ctx, envelopes)
	}()

	wg.Wait()
}
