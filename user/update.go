package user

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ofast-team/backend/logger"
	"github.com/ofast-team/backend/srvcerror"
)

const (
	UpdateNone     = "No update"
	UpdateSuccess  = "Success"
	UpdateFailed   = "Internal Server Error"
	UpdateEmailUse = "Email in Use"
	UpdateBadEmail = "Invalid Email"
)

// UpdateParams holds the requested profile changes. Nil or empty fields are
// left untouched.
type UpdateParams struct {
	UID      string
	Email    *string
	Username *string
	Name     *string
	School   *string
}

// UpdateResult has one status per field, see the Update* constants.
type UpdateResult struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	School   string `json:"school"`
}

func (s *UserSrvc) UpdateUserData(ctx context.Context, p UpdateParams) (*UpdateResult, error) {
	if p.UID == "" {
		return nil, newErrMissingUID()
	}
	row, err := s.repo.Get(ctx, p.UID)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, newErrUserNotFound()
	}

	res := &UpdateResult{
		Email:    s.updateEmail(ctx, row, p.Email),
		Username: s.updateField(ctx, p.UID, FieldUsername, p.Username),
		Name:     s.updateField(ctx, p.UID, FieldName, p.Name),
		School:   s.updateField(ctx, p.UID, FieldSchool, p.School),
	}
	return res, nil
}

func (s *UserSrvc) updateField(ctx context.Context, uid string, field string, value *string) string {
	if value == nil || *value == "" {
		return UpdateNone
	}
	err := s.repo.SetField(ctx, uid, field, *value)
	if err != nil {
		logger.FromContext(ctx).Error("failed to update user field",
			slog.String("uid", uid), slog.String("field", field), slog.String("error", err.Error()))
		return UpdateFailed
	}
	return UpdateSuccess
}

func (s *UserSrvc) updateEmail(ctx context.Context, row *userRow, value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return UpdateNone
	}
	email := strings.TrimSpace(*value)
	if email == row.Email {
		return UpdateNone
	}
	if validateEmail(email) != nil {
		return UpdateBadEmail
	}

	other, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Error("failed to look up email",
			slog.String("uid", row.UID), slog.String("error", err.Error()))
		return UpdateFailed
	}
	if other != nil && other.UID != row.UID {
		return UpdateEmailUse
	}

	return s.updateField(ctx, row.UID, FieldEmail, &email)
}
