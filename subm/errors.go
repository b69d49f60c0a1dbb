package subm

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ofast-team/backend/srvcerror"
)

// ErrAlreadyResolved is returned by SubmRepo.SaveResult when the submission
// is no longer pending.
var ErrAlreadyResolved = errors.New("submission already resolved")

const ErrCodeMissingFields = "missing_fields"

func newErrMissingFields(missing []string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMissingFields,
		"Missing required fields",
	).SetDetails(missing).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidLanguage = "invalid_language"

func newErrInvalidLanguage() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidLanguage,
		"Invalid language",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeCaseCountMismatch = "case_count_mismatch"

func newErrCaseCountMismatch() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCaseCountMismatch,
		"Different number of inputs and outputs.",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeNoCases = "no_cases"

func newErrNoCases() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNoCases,
		"No inputs or expected outputs.",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTooManyCases = "too_many_cases"

func newErrTooManyCases(maxCases int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTooManyCases,
		fmt.Sprintf("Too many cases (max of %d)", maxCases),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUserNotFound = "user_not_found"

func newErrUserNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUserNotFound,
		"User does not exist.",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeSubmNotFound = "submission_not_found"

func newErrSubmNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmNotFound,
		"Submission id not found.",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeMissingToken = "missing_token"

func newErrMissingToken() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMissingToken,
		"Missing token",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeMissingUID = "missing_uid"

func newErrMissingUID() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMissingUID,
		"Missing uid",
	).SetHttpStatusCode(http.StatusBadRequest)
}
