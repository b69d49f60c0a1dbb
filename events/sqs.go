package events

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/klauspost/compress/zstd"
	"github.com/ofast-team/backend/logger"
)

type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// SqsQueue publishes events as zstd compressed, base64 encoded json and
// receives them back.
type SqsQueue struct {
	client   sqsAPI
	queueUrl string
	encoder  *zstd.Encoder
	decoder  *zstd.Decoder
}

func NewSqsQueue(client sqsAPI, queueUrl string) (*SqsQueue, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &SqsQueue{
		client:   client,
		queueUrl: queueUrl,
		encoder:  enc,
		decoder:  dec,
	}, nil
}

func (q *SqsQueue) Publish(ctx context.Context, ev VerdictResolved) error {
	jsonEv, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	compressed := q.encoder.EncodeAll(jsonEv, make([]byte, 0, len(jsonEv)))
	encoded := base64.StdEncoding.EncodeToString(compressed)

	_, err = q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueUrl),
		MessageBody: aws.String(encoded),
	})
	if err != nil {
		return fmt.Errorf("failed to send event of %s: %w", ev.SubmissionID, err)
	}
	return nil
}

// Receive long-polls the queue until ctx is done. Messages are deleted only
// after the handler succeeds, otherwise they reappear after the visibility
// timeout.
func (q *SqsQueue) Receive(ctx context.Context, handler Handler) error {
	log := logger.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		output, err := q.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(q.queueUrl),
			MaxNumberOfMessages: 10,
			WaitTimeSeconds:     5,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Error("failed to receive messages", slog.String("error", err.Error()))
			time.Sleep(1 * time.Second)
			continue
		}

		for _, msg := range output.Messages {
			if msg.Body == nil || msg.ReceiptHandle == nil {
				continue
			}

			ev, err := q.decode(*msg.Body)
			if err != nil {
				// undecodable messages would be redelivered forever
				log.Error("dropping malformed event", slog.String("error", err.Error()))
				q.delete(ctx, *msg.ReceiptHandle)
				continue
			}

			err = handler(ctx, ev)
			if err != nil {
				log.Error("failed to handle event",
					slog.String("submission_id", ev.SubmissionID),
					slog.String("error", err.Error()))
				continue
			}
			q.delete(ctx, *msg.ReceiptHandle)
		}
	}
}

func (q *SqsQueue) decode(body string) (VerdictResolved, error) {
	var ev VerdictResolved
	compressed, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return ev, fmt.Errorf("failed to decode base64: %w", err)
	}
	jsonEv, err := q.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return ev, fmt.Errorf("failed to decompress: %w", err)
	}
	err = json.Unmarshal(jsonEv, &ev)
	if err != nil {
		return ev, fmt.Errorf("failed to unmarshal: %w", err)
	}
	return ev, nil
}

func (q *SqsQueue) delete(ctx context.Context, handle string) {
	_, err := q.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.queueUrl),
		ReceiptHandle: aws.String(handle),
	})
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete message", slog.String("error", err.Error()))
	}
}
