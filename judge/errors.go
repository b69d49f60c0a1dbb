package judge

import (
	"errors"
	"fmt"
)

// ErrTokenCountMismatch is returned by CreateBatch when the judge does not
// answer with exactly one entry per item.
var ErrTokenCountMismatch = errors.New("judge returned a different number of tokens than items")

// UpstreamError is a non-success response of the judge. The HTTP layer
// relays StatusCode and Body to the client verbatim.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("judge responded with status %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) ForwardedResponse() (int, []byte) {
	return e.StatusCode, e.Body
}
