package user

import (
	"net/http"

	"github.com/ofast-team/backend/srvcerror"
)

const ErrCodeMissingEmail = "missing_email"

func newErrMissingEmail() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMissingEmail,
		"Missing Email",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeMissingPassword = "missing_password"

func newErrMissingPassword() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMissingPassword,
		"Missing Password",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidEmail = "invalid_email"

func newErrInvalidEmail() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidEmail,
		"Invalid Email",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeWeakPassword = "weak_password"

func newErrWeakPassword() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeWeakPassword,
		"Password should be at least 6 characters",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEmailInUse = "email_in_use"

func newErrEmailInUse() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailInUse,
		"Email in Use",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeInvalidCredentials = "invalid_credentials"

func newErrInvalidCredentials() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidCredentials,
		"Invalid Credentials",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeMissingUID = "missing_uid"

func newErrMissingUID() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMissingUID,
		"Missing uid",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUserNotFound = "user_not_found"

func newErrUserNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUserNotFound,
		"User Data not Found",
	).SetHttpStatusCode(http.StatusNotFound)
}
