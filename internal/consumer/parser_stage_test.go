package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nani454554/portfolio/internal/domain"
)

func testMessage(id, body string) types.Message {
	return types.Message{
		MessageId:     aws.String(id),
		ReceiptHandle: aws.String("receipt-" + id),
		Body:          aws.String(body),
	}
}

func TestParserStage_Start_Success(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	mockParser := new(MockMessageParser)

	event := &domain.TrackingEvent{EventID: "e-1", EventType: domain.EventTypeView, OccurredAt: testOccurredAt}
	mockParser.On("Parse", []byte(`{"event_id":"e-1"}`)).Return(event, nil)

	stage := NewParserStage(mockConsumer, mockParser, zap.NewNop())

	in := make(chan types.Message, 1)
	out := make(chan *Envelope, 1)
	in <- testMessage("m-1", `{"event_id":"e-1"}`)
	close(in)

	stage.Start(context.Background(), in, out)

	envelope, ok := <-out
	require.True(t, ok)
	assert.Equal(t, event, envelope.Event)

	_, ok = <-out
	assert.False(t, ok, "output channel should be closed")
	mockConsumer.AssertNotCalled(t, "DeleteMessage", mock.Anything, mock.Anything)
}

func TestParserStage_Start_MalformedMessageDeleted(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	mockParser := new(MockMessageParser)

	mockParser.On("Parse", mock.Anything).Return(nil, errors.New("failed to unmarshal message body"))
	mockConsumer.On("QueueURL").Return(testQueueURL)
	mockConsumer.On("DeleteMessage", mock.Anything, mock.MatchedBy(func(input *sqs.DeleteMessageInput) bool {
		return aws.ToString(input.ReceiptHandle) == "receipt-m-1" && aws.ToString(input.QueueUrl) == testQueueURL
	})).Return(&sqs.DeleteMessageOutput{}, nil)

	stage := NewParserStage(mockConsumer, mockParser, zap.NewNop())

	in := make(chan types.Message, 1)
	out := make(chan *Envelope, 1)
	in <- testMessage("m-1", `garbage`)
	close(in)

	stage.Start(context.Background(), in, out)

	_, ok := <-out
	assert.False(t, ok, "no envelope should be emitted for a malformed message")
	mockConsumer.AssertExpectations(t)
}

func TestParserStage_Start_DeleteFailureDoesNotStop(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	mockParser := new(MockMessageParser)

	good := &domain.TrackingEvent{EventID: "e-2", EventType: domain.EventTypeDownload, OccurredAt: testOccurredAt}
	mockParser.On("Parse", []byte("bad")).Return(nil, errors.New("failed to unmarshal message body"))
	mockParser.On("Parse", []byte("good")).Return(good, nil)
	mockConsumer.On("QueueURL").Return(testQueueURL)
	mockConsumer.On("DeleteMessage", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	stage := NewParserStage(mockConsumer, mockParser, zap.NewNop())

	in := make(chan types.Message, 2)
	out := make(chan *Envelope, 2)
	in <- testMessage("m-1", "bad")
	in <- testMessage("m-2", "good")
	close(in)

	stage.Start(context.Background(), in, out)

	envelope, ok := <-out
	require.True(t, ok)
	assert.Equal(t, "e-2", envelope.Event.EventID)
}

func TestParserStage_EnvelopeAckDeletesMessage(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	mockParser := new(MockMessageParser)

	mockParser.On("Parse", mock.Anything).Return(&domain.TrackingEvent{EventID: "e-1"}, nil)
	mockConsumer.On("QueueURL").Return(testQueueURL)
	mockConsumer.On("DeleteMessage", mock.Anything, mock.MatchedBy(func(input *sqs.DeleteMessageInput) bool {
		return aws.ToString(input.ReceiptHandle) == "receipt-m-1"
	})).Return(&sqs.DeleteMessageOutput{}, nil)

	stage := NewParserStage(mockConsumer, mockParser, zap.NewNop())

	envelope := stage.parseMessage(context.Background(), testMessage("m-1", "{}"))
	require.NotNil(t, envelope)

	assert.NoError(t, envelope.Ack(context.Background()))
	mockConsumer.AssertExpectations(t)
}

func TestParserStage_EnvelopeNackReleasesMessage(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	mockParser := new(MockMessageParser)

	mockParser.On("Parse", mock.Anything).Return(&domain.TrackingEvent{EventID: "e-1"}, nil)
	mockConsumer.On("QueueURL").Return(testQueueURL)
	mockConsumer.On("ChangeMessageVisibility", mock.Anything, mock.MatchedBy(func(input *sqs.ChangeMessageVisibilityInput) bool {
		return aws.ToString(input.ReceiptHandle) == "receipt-m-1" && input.VisibilityTimeout == 0
	})).Return(&sqs.ChangeMessageVisibilityOutput{}, nil)

	stage := NewParserStage(mockConsumer, mockParser, zap.NewNop())

	envelope := stage.parseMessage(context.Background(), testMessage("m-1", "{}"))
	require.NotNil(t, envelope)

	assert.NoError(t, envelope.Nack(context.Background()))
	mockConsumer.AssertExpectations(t)
	mockConsumer.AssertNotCalled(t, "DeleteMessage", mock.Anything, mock.Anything)
}

func TestParserStage_Start_ContextCancellation(t *testing.T) {
	stage := NewParserStage(new(MockQueueConsumer), new(MockMessageParser), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan types.Message)
	out := make(chan *Envelope)

	done := make(chan struct{})
	go func() {
		stage.Start(ctx, in, out)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("parser stage did not stop after cancellation")
	}
}
