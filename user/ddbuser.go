package user

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

type userRepo interface {
	// Get returns nil, nil when the user does not exist.
	Get(ctx context.Context, uid string) (*userRow, error)
	// GetByEmail returns nil, nil when no user has the email.
	GetByEmail(ctx context.Context, email string) (*userRow, error)
	// Create fails with errUserExists if the uid is taken.
	Create(ctx context.Context, row *userRow) error
	SetField(ctx context.Context, uid string, field string, value string) error
	AddToStats(ctx context.Context, uid string, problemID string, stats ...string) error
}

var errUserExists = errors.New("user already exists")

type DynamoDbUserTable struct {
	usersTable dynamo.Table
}

func NewDynamoDbUserTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbUserTable {
	db := dynamo.NewFromIface(ddbClient)
	return &DynamoDbUserTable{usersTable: db.Table(tableName)}
}

func (ddb *DynamoDbUserTable) Get(ctx context.Context, uid string) (*userRow, error) {
	row := new(userRow)
	err := ddb.usersTable.Get("uid", uid).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

func (ddb *DynamoDbUserTable) GetByEmail(ctx context.Context, email string) (*userRow, error) {
	var rows []userRow
	err := ddb.usersTable.Get("email", email).Index("email-index").Limit(1).All(ctx, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	// index projections may omit attributes, read the full item
	return ddb.Get(ctx, rows[0].UID)
}

func (ddb *DynamoDbUserTable) Create(ctx context.Context, row *userRow) error {
	err := ddb.usersTable.Put(row).If("attribute_not_exists(uid)").Run(ctx)
	if dynamo.IsCondCheckFailed(err) {
		return errUserExists
	}
	return err
}

func (ddb *DynamoDbUserTable) SetField(ctx context.Context, uid string, field string, value string) error {
	return ddb.usersTable.Update("uid", uid).
		Set(field, value).
		If("attribute_exists(uid)").
		Run(ctx)
}

func (ddb *DynamoDbUserTable) AddToStats(ctx context.Context, uid string, problemID string, stats ...string) error {
	upd := ddb.usersTable.Update("uid", uid)
	for _, stat := range stats {
		upd = upd.AddStringsToSet(stat, problemID)
	}
	return upd.If("attribute_exists(uid)").Run(ctx)
}
