package user

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/ofast-team/backend/srvcerror"
)

type UserSrvc struct {
	repo   userRepo
	jwtKey []byte
	now    func() time.Time
}

func NewUserSrvc(repo userRepo, jwtKey []byte) *UserSrvc {
	return &UserSrvc{
		repo:   repo,
		jwtKey: jwtKey,
		now:    time.Now,
	}
}

func NewDdbUserSrvc(ddbClient *dynamodb.Client, tableName string, jwtKey []byte) *UserSrvc {
	return NewUserSrvc(NewDynamoDbUserTable(ddbClient, tableName), jwtKey)
}

// UserExists reports whether a UserData record exists for uid.
func (s *UserSrvc) UserExists(ctx context.Context, uid string) (bool, error) {
	row, err := s.repo.Get(ctx, uid)
	if err != nil {
		return false, fmt.Errorf("failed to get user %s: %w", uid, err)
	}
	return row != nil, nil
}

func (s *UserSrvc) GetUserData(ctx context.Context, uid string) (*User, error) {
	if uid == "" {
		return nil, newErrMissingUID()
	}
	row, err := s.repo.Get(ctx, uid)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, newErrUserNotFound()
	}
	return row.toUser(), nil
}
