package subm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ofast-team/backend/events"
	"github.com/ofast-team/backend/judge"
	"github.com/ofast-team/backend/logger"
	"github.com/ofast-team/backend/srvcerror"
)

// GetVerdict returns the submission, polling the judge first while it is
// pending. Resolved submissions are returned as stored.
func (s *SubmSrvc) GetVerdict(ctx context.Context, id string) (*Submission, error) {
	if id == "" {
		return nil, newErrMissingToken()
	}

	subm, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(fmt.Errorf("failed to get submission %s: %w", id, err))
	}
	if subm == nil {
		return nil, newErrSubmNotFound()
	}
	if !subm.Pending {
		return subm, nil
	}

	statuses, err := s.judge.PollBatch(ctx, subm.Tokens)
	if err != nil {
		var upstreamErr *judge.UpstreamError
		if errors.As(err, &upstreamErr) {
			return nil, upstreamErr
		}
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}
	// cases the judge did not report on are unfinished
	for len(statuses) < len(subm.Tokens) {
		statuses = append(statuses, judge.Status{})
	}

	res := Aggregate(statuses)
	updated, err := s.repo.SaveResult(ctx, id, res)
	if errors.Is(err, ErrAlreadyResolved) {
		// a concurrent poll resolved it first
		final, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, srvcerror.ErrInternalSE().SetDebug(fmt.Errorf("failed to reread submission %s: %w", id, err))
		}
		if final == nil {
			return nil, srvcerror.ErrInternalSE().SetDebug(fmt.Errorf("submission %s vanished after being resolved", id))
		}
		return final, nil
	}
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}

	if !updated.Pending {
		s.publishResolved(ctx, updated)
	}
	return updated, nil
}

func (s *SubmSrvc) publishResolved(ctx context.Context, subm *Submission) {
	if subm.IsAdHoc() {
		return
	}
	err := s.verdicts.Publish(ctx, events.VerdictResolved{
		SubmissionID: subm.ID,
		UID:          subm.UID,
		ProblemID:    subm.ProblemID,
		Verdict:      subm.Verdict,
		ResolvedAt:   s.now().UTC(),
	})
	if err != nil {
		logger.FromContext(ctx).Error("failed to publish resolved verdict",
			slog.String("submission_id", subm.ID),
			slog.String("error", err.Error()))
	}
}
