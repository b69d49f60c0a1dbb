package user

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/ofast-team/backend/srvcerror"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type RegisterParams struct {
	Email    string
	Password string
	Username string
}

func (s *UserSrvc) Register(ctx context.Context, p RegisterParams) (*User, error) {
	email := strings.TrimSpace(p.Email)
	if email == "" {
		return nil, newErrMissingEmail()
	}
	if p.Password == "" {
		return nil, newErrMissingPassword()
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(p.Password) < minPasswordLength {
		return nil, newErrWeakPassword()
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}
	if existing != nil {
		return nil, newErrEmailInUse()
	}

	bcryptPwd, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}

	row := &userRow{
		UID:       uuid.New().String(),
		Email:     email,
		BcryptPwd: bcryptPwd,
		Username:  p.Username,
		CreatedAt: s.now(),
	}
	err = s.repo.Create(ctx, row)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(fmt.Errorf("failed to create user: %w", err))
	}

	return row.toUser(), nil
}

func validateEmail(email string) error {
	const maxEmailLength = 320
	if len(email) > maxEmailLength {
		return newErrInvalidEmail()
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return newErrInvalidEmail()
	}
	return nil
}
