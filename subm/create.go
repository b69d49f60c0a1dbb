package subm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ofast-team/backend/judge"
	"github.com/ofast-team/backend/logger"
	"github.com/ofast-team/backend/srvcerror"
)

// Submit validates the request, sends one judge execution per test case and
// stores the pending submission. It returns the submission id.
func (s *SubmSrvc) Submit(ctx context.Context, p SubmitParams) (string, error) {
	// validate REQUEST
	missing := []string{}
	if p.UID == "" {
		missing = append(missing, "Missing uid")
	}
	if p.SourceCode == "" {
		missing = append(missing, "Missing source_code")
	}
	if p.Language == "" {
		missing = append(missing, "Missing language")
	}
	if p.isAdHoc() {
		if p.Inputs == nil {
			missing = append(missing, "Missing inputs array")
		}
		if p.Outputs == nil {
			missing = append(missing, "Missing outputs array")
		}
	}
	if len(missing) > 0 {
		return "", newErrMissingFields(missing)
	}

	lang, ok := lookupLanguage(p.Language)
	if !ok {
		return "", newErrInvalidLanguage()
	}

	// retrieve TEST CASES and LIMITS
	problemID := AdHocProblemID
	inputs, outputs := p.Inputs, p.Outputs
	timeLimit, memoryLimit := p.TimeLimit, p.MemoryLimit
	if p.isAdHoc() {
		if err := s.checkCaseCounts(inputs, outputs); err != nil {
			return "", err
		}
	} else {
		problemID = p.ProblemID
		cases, err := s.problems.GetTestCases(ctx, problemID)
		if err != nil {
			return "", err
		}
		inputs = make([]string, len(cases))
		outputs = make([]string, len(cases))
		for i, c := range cases {
			inputs[i] = c.Input
			outputs[i] = c.Output
		}
		if err := s.checkCaseCounts(inputs, outputs); err != nil {
			return "", err
		}
		limits := s.problems.GetLimits(ctx, problemID)
		timeLimit, memoryLimit = limits.TimeLimit, limits.MemoryLimit
	}

	// validate USER
	exists, err := s.users.UserExists(ctx, p.UID)
	if err != nil {
		return "", srvcerror.ErrInternalSE().SetDebug(err)
	}
	if !exists {
		return "", newErrUserNotFound()
	}

	eff := clampLimits(timeLimit, memoryLimit, s.limits)
	items := make([]judge.BatchItem, len(inputs))
	for i := range inputs {
		items[i] = judge.BatchItem{
			SourceCode:           p.SourceCode,
			Stdin:                inputs[i],
			ExpectedOutput:       outputs[i],
			LanguageID:           lang.ID,
			CompilerOptions:      lang.CompilerOptions,
			CommandLineArguments: lang.Args,
			CPUTimeLimit:         eff.TimeLimit,
			MemoryLimit:          eff.MemoryLimit,
		}
	}

	tokens, err := s.judge.CreateBatch(ctx, items)
	if err != nil {
		var upstreamErr *judge.UpstreamError
		if errors.As(err, &upstreamErr) {
			return "", upstreamErr
		}
		return "", srvcerror.ErrInternalSE().SetDebug(fmt.Errorf("failed to create judge batch: %w", err))
	}
	if len(tokens) != len(items) {
		return "", srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("%w: %d tokens for %d items", judge.ErrTokenCountMismatch, len(tokens), len(items)))
	}

	subm := &Submission{
		ID:          s.newID(),
		UID:         p.UID,
		SourceCode:  p.SourceCode,
		Language:    p.Language,
		Tokens:      tokens,
		ProblemID:   problemID,
		CreatedAt:   s.now().UTC(),
		Pending:     true,
		Verdict:     InitialVerdict,
		VerdictList: []int{},
		TotalCases:  len(tokens),
	}
	err = s.repo.Create(ctx, subm)
	if err != nil {
		// the batch is already queued on the judge and its tokens are lost
		logger.FromContext(ctx).Error("failed to store submission",
			slog.String("uid", p.UID),
			slog.Any("tokens", tokens),
			slog.String("error", err.Error()))
		return "", srvcerror.ErrInternalSE().SetDebug(fmt.Errorf("failed to create submission: %w", err))
	}

	logger.FromContext(ctx).Info("created submission",
		slog.String("submission_id", subm.ID),
		slog.String("problem_id", problemID),
		slog.Int("cases", len(tokens)))

	return subm.ID, nil
}

func (s *SubmSrvc) checkCaseCounts(inputs, outputs []string) error {
	if len(inputs) != len(outputs) {
		return newErrCaseCountMismatch()
	}
	if len(inputs) == 0 {
		return newErrNoCases()
	}
	if len(inputs) > s.limits.MaxCases {
		return newErrTooManyCases(s.limits.MaxCases)
	}
	return nil
}
