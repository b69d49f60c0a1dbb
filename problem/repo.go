package problem

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

type problemRepo interface {
	// GetProblem returns nil, nil when the problem does not exist.
	GetProblem(ctx context.Context, id string) (*Problem, error)
	ListProblems(ctx context.Context) ([]Problem, error)
	// GetProblemData returns nil, nil when the data record does not exist.
	GetProblemData(ctx context.Context, id string) (*problemDataRow, error)
	SaveProblem(ctx context.Context, p *Problem) error
	SaveProblemData(ctx context.Context, row *problemDataRow) error
}

type DdbProblemRepo struct {
	ddbClient        *dynamodb.Client
	problemTableName string
	problemTable     dynamo.Table
	dataTable        dynamo.Table
}

func NewDdbProblemRepo(ddbClient *dynamodb.Client, problemTableName, dataTableName string) *DdbProblemRepo {
	db := dynamo.NewFromIface(ddbClient)
	return &DdbProblemRepo{
		ddbClient:        ddbClient,
		problemTableName: problemTableName,
		problemTable:     db.Table(problemTableName),
		dataTable:        db.Table(dataTableName),
	}
}

func (r *DdbProblemRepo) GetProblem(ctx context.Context, id string) (*Problem, error) {
	p := new(Problem)
	err := r.problemTable.Get("problem_id", id).One(ctx, p)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *DdbProblemRepo) ListProblems(ctx context.Context) ([]Problem, error) {
	scanInput := &dynamodb.ScanInput{
		TableName: aws.String(r.problemTableName),
	}

	problems := make([]Problem, 0)
	paginator := dynamodb.NewScanPaginator(r.ddbClient, scanInput)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan problems: %w", err)
		}

		var pageProblems []Problem
		err = attributevalue.UnmarshalListOfMaps(page.Items, &pageProblems)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal problems: %w", err)
		}
		problems = append(problems, pageProblems...)
	}

	return problems, nil
}

func (r *DdbProblemRepo) GetProblemData(ctx context.Context, id string) (*problemDataRow, error) {
	row := new(problemDataRow)
	err := r.dataTable.Get("problem_id", id).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

func (r *DdbProblemRepo) SaveProblem(ctx context.Context, p *Problem) error {
	return r.problemTable.Put(p).Run(ctx)
}

func (r *DdbProblemRepo) SaveProblemData(ctx context.Context, row *problemDataRow) error {
	return r.dataTable.Put(row).Run(ctx)
}
