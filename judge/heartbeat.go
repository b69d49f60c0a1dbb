package judge

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ofast-team/backend/logger"
)

const lastOnlineKey = "LastOnline"

type onlineRecorder interface {
	RecordOnline(ctx context.Context, at time.Time) error
}

// Heartbeat probes the judge and remembers the last time it answered.
type Heartbeat struct {
	judge *Client
	store onlineRecorder
	now   func() time.Time
}

func NewHeartbeat(judge *Client, store onlineRecorder) *Heartbeat {
	return &Heartbeat{judge: judge, store: store, now: time.Now}
}

// Check returns false if the judge did not answer the probe. The error is
// only set when recording the successful probe failed.
func (h *Heartbeat) Check(ctx context.Context) (bool, error) {
	about, err := h.judge.About(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("judge liveness probe failed", "error", err)
		return false, nil
	}

	err = h.store.RecordOnline(ctx, h.now())
	if err != nil {
		return true, fmt.Errorf("failed to record judge liveness: %w", err)
	}

	logger.FromContext(ctx).Debug("judge is online", "version", about.Version)
	return true, nil
}

type ddbUpdater interface {
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput,
		optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// DdbJudgeData keeps the judge liveness document in DynamoDB.
type DdbJudgeData struct {
	client    ddbUpdater
	tableName string
}

func NewDdbJudgeData(client ddbUpdater, tableName string) *DdbJudgeData {
	return &DdbJudgeData{client: client, tableName: tableName}
}

func (d *DdbJudgeData) RecordOnline(ctx context.Context, at time.Time) error {
	update := expression.Set(
		expression.Name("time"),
		expression.Value(at.UTC().Format(time.RFC3339)))
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return fmt.Errorf("failed to build update expression: %w", err)
	}

	_, err = d.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: lastOnlineKey},
		},
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", lastOnlineKey, err)
	}
	return nil
}
