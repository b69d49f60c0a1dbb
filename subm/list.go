package subm

import (
	"context"
	"slices"
	"sort"

	"github.com/ofast-team/backend/judge"
	"github.com/ofast-team/backend/srvcerror"
)

// ListUserSubmissions groups the user's submissions by problem, one group per
// requested problem id in request order. Without problem ids every problem
// the user submitted to is listed. Ad-hoc submissions are never listed.
func (s *SubmSrvc) ListUserSubmissions(ctx context.Context, uid string,
	problemIDs []string, brief bool) ([]ProblemSubmissions, error) {
	if uid == "" {
		return nil, newErrMissingUID()
	}

	subms, err := s.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}

	byProblem := make(map[string][]Submission)
	for _, subm := range subms {
		if subm.IsAdHoc() {
			continue
		}
		byProblem[subm.ProblemID] = append(byProblem[subm.ProblemID], subm)
	}

	if len(problemIDs) == 0 {
		for id := range byProblem {
			problemIDs = append(problemIDs, id)
		}
		sort.Strings(problemIDs)
	}

	res := make([]ProblemSubmissions, 0, len(problemIDs))
	for _, id := range problemIDs {
		group := byProblem[id]
		slices.SortFunc(group, func(a, b Submission) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})

		ps := ProblemSubmissions{
			ProblemID:   id,
			IsSubmitted: len(group) > 0,
			IsAccepted: slices.ContainsFunc(group, func(s Submission) bool {
				return !s.Pending && s.Verdict == judge.StatusAccepted
			}),
		}
		if !brief {
			ps.Submissions = group
			if ps.Submissions == nil {
				ps.Submissions = []Submission{}
			}
		}
		res = append(res, ps)
	}
	return res, nil
}
