package user

import (
	"context"
	"strings"

	"github.com/ofast-team/backend/srvcerror"
	"github.com/ofast-team/backend/user/auth"
	"golang.org/x/crypto/bcrypt"
)

type LoginResult struct {
	UID   string
	Token string
}

func (s *UserSrvc) Login(ctx context.Context, email string, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, newErrMissingEmail()
	}
	if password == "" {
		return nil, newErrMissingPassword()
	}

	row, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, newErrInvalidCredentials()
	}
	err = bcrypt.CompareHashAndPassword(row.BcryptPwd, []byte(password))
	if err != nil {
		return nil, newErrInvalidCredentials()
	}

	token, err := auth.GenerateJWT(row.UID, row.Email, s.jwtKey, s.now())
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}
	return &LoginResult{UID: row.UID, Token: token}, nil
}
