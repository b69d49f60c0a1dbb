package events

import (
	"context"
	"time"
)

// VerdictResolved is emitted once per submission, when it stops being pending.
type VerdictResolved struct {
	SubmissionID string    `json:"submission_id"`
	UID          string    `json:"uid"`
	ProblemID    string    `json:"problem_id"`
	Verdict      int       `json:"verdict"`
	ResolvedAt   time.Time `json:"resolved_at"`
}

type Handler func(ctx context.Context, ev VerdictResolved) error

// Publisher is implemented by Direct and SqsQueue.
type Publisher interface {
	Publish(ctx context.Context, ev VerdictResolved) error
}

// Direct delivers events to the handler in-process, synchronously.
type Direct struct {
	handler Handler
}

func NewDirect(handler Handler) *Direct {
	return &Direct{handler: handler}
}

func (d *Direct) Publish(ctx context.Context, ev VerdictResolved) error {
	return d.handler(ctx, ev)
}
