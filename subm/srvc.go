package subm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ofast-team/backend/conf"
	"github.com/ofast-team/backend/events"
	"github.com/ofast-team/backend/judge"
	"github.com/ofast-team/backend/problem"
)

type judgeGateway interface {
	CreateBatch(ctx context.Context, items []judge.BatchItem) ([]string, error)
	PollBatch(ctx context.Context, tokens []string) ([]judge.Status, error)
}

type problemSource interface {
	GetLimits(ctx context.Context, problemID string) problem.Limits
	GetTestCases(ctx context.Context, problemID string) ([]problem.TestCase, error)
}

type userDirectory interface {
	UserExists(ctx context.Context, uid string) (bool, error)
}

type verdictPublisher interface {
	Publish(ctx context.Context, ev events.VerdictResolved) error
}

type SubmSrvc struct {
	judge    judgeGateway
	problems problemSource
	users    userDirectory
	repo     SubmRepo
	verdicts verdictPublisher
	limits   conf.Limits

	now   func() time.Time
	newID func() string
}

func NewSubmSrvc(
	judge judgeGateway,
	problems problemSource,
	users userDirectory,
	repo SubmRepo,
	verdicts verdictPublisher,
	limits conf.Limits,
) *SubmSrvc {
	return &SubmSrvc{
		judge:    judge,
		problems: problems,
		users:    users,
		repo:     repo,
		verdicts: verdicts,
		limits:   limits,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}
