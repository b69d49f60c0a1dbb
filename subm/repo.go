package subm

import "context"

type SubmRepo interface {
	// Create fails if the id is already taken.
	Create(ctx context.Context, subm *Submission) error
	// Get returns nil, nil when the submission does not exist.
	Get(ctx context.Context, id string) (*Submission, error)
	// SaveResult stores res only while the submission is still pending and
	// returns the updated record. Otherwise it returns ErrAlreadyResolved.
	SaveResult(ctx context.Context, id string, res Result) (*Submission, error)
	ListByUser(ctx context.Context, uid string) ([]Submission, error)
}
