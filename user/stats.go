package user

import (
	"context"
	"fmt"

	"github.com/ofast-team/backend/judge"
)

// RecordVerdict adds problemID to the user's attempted set and to the set
// matching the final verdict. Sets make repeated calls harmless.
func (s *UserSrvc) RecordVerdict(ctx context.Context, uid string, problemID string, verdict int) error {
	if uid == "" || problemID == "" {
		return fmt.Errorf("uid and problem id are required")
	}

	stats := []string{StatAttempted}
	switch {
	case verdict == judge.StatusAccepted:
		stats = append(stats, StatAccepted)
	case verdict == judge.StatusWrongAnswer:
		stats = append(stats, StatWrong)
	case verdict == judge.StatusTimeLimitExceeded:
		stats = append(stats, StatTLE)
	case judge.IsRuntimeError(verdict):
		stats = append(stats, StatRTE)
	}

	err := s.repo.AddToStats(ctx, uid, problemID, stats...)
	if err != nil {
		return fmt.Errorf("failed to record verdict of %s for %s: %w", problemID, uid, err)
	}
	return nil
}
