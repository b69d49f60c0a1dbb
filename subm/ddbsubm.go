package subm

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

type DynamoDbSubmTable struct {
	submTable dynamo.Table
}

func NewDynamoDbSubmTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbSubmTable {
	db := dynamo.NewFromIface(ddbClient)
	return &DynamoDbSubmTable{submTable: db.Table(tableName)}
}

func (ddb *DynamoDbSubmTable) Create(ctx context.Context, subm *Submission) error {
	err := ddb.submTable.Put(subm).If("attribute_not_exists(id)").Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to put submission %s: %w", subm.ID, err)
	}
	return nil
}

func (ddb *DynamoDbSubmTable) Get(ctx context.Context, id string) (*Submission, error) {
	subm := new(Submission)
	err := ddb.submTable.Get("id", id).One(ctx, subm)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return subm, nil
}

func (ddb *DynamoDbSubmTable) SaveResult(ctx context.Context, id string, res Result) (*Submission, error) {
	updated := new(Submission)
	err := ddb.submTable.Update("id", id).
		Set("verdict", res.Verdict).
		Set("verdict_list", res.VerdictList).
		Set("passed_cases", res.PassedCases).
		Set("pending", res.Pending).
		Set("time", res.Time).
		Set("memory", res.Memory).
		Add("version", 1).
		If("pending = ?", true).
		Value(ctx, updated)
	if err != nil {
		if dynamo.IsCondCheckFailed(err) {
			return nil, ErrAlreadyResolved
		}
		return nil, fmt.Errorf("failed to save result of %s: %w", id, err)
	}
	return updated, nil
}

func (ddb *DynamoDbSubmTable) ListByUser(ctx context.Context, uid string) ([]Submission, error) {
	var subms []Submission
	err := ddb.submTable.Get("uid", uid).Index("uid-index").All(ctx, &subms)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions of %s: %w", uid, err)
	}
	return subms, nil
}
