package problem

import (
	"fmt"
	"net/http"

	"github.com/ofast-team/backend/srvcerror"
)

const (
	ErrCodeProblemNotFound  = "problem_not_found"
	ErrCodeTestFilesMissing = "test_files_unavailable"
	ErrCodeMissingProblemID = "missing_problem_id"
)

func newErrProblemNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeProblemNotFound,
		"Problem does not exist.",
	).SetHttpStatusCode(http.StatusNotFound)
}

func newErrTestFilesUnavailable() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTestFilesMissing,
		"Test files of the problem are unavailable.",
	).SetHttpStatusCode(http.StatusInternalServerError)
}

func newErrMissingProblemID() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMissingProblemID,
		"Missing problemID",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const (
	ErrCodeNoTestCases      = "no_test_cases"
	ErrCodeTooManyTestCases = "too_many_test_cases"
)

func newErrNoTestCases() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNoTestCases,
		"Problem has no test cases.",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrTooManyTestCases(max int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTooManyTestCases,
		fmt.Sprintf("Too many test cases (max of %d)", max),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTestFilesTooLarge = "test_files_too_large"

func newErrTestFilesTooLarge(maxBytes int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTestFilesTooLarge,
		fmt.Sprintf("Test files exceed %d bytes and no test file bucket is configured.", maxBytes),
	).SetHttpStatusCode(http.StatusBadRequest)
}
