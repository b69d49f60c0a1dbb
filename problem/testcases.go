package problem

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/ofast-team/backend/srvcerror"
	"golang.org/x/sync/errgroup"
)

const downloadConcurrency = 10

// GetProblemData returns the ordered test cases as raw text.
func (s *ProblemSrvc) GetProblemData(ctx context.Context, problemID string) ([]TestCase, error) {
	if problemID == "" {
		return nil, newErrMissingProblemID()
	}

	row, err := s.repo.GetProblemData(ctx, problemID)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(fmt.Errorf("failed to get problem data %s: %w", problemID, err))
	}
	if row == nil {
		return nil, newErrProblemNotFound()
	}

	cases := make([]TestCase, len(row.Data))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(downloadConcurrency)
	for i, r := range row.Data {
		i, r := i, r
		g.Go(func() error {
			input, err := s.resolve(gctx, r.Input, r.InputKey)
			if err != nil {
				return fmt.Errorf("input of case %d: %w", i+1, err)
			}
			output, err := s.resolve(gctx, r.Output, r.OutputKey)
			if err != nil {
				return fmt.Errorf("output of case %d: %w", i+1, err)
			}
			cases[i] = TestCase{Input: input, Output: output}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, newErrTestFilesUnavailable().SetDebug(err)
	}
	return cases, nil
}

// GetTestCases returns the ordered test cases base64 encoded, ready for the judge.
func (s *ProblemSrvc) GetTestCases(ctx context.Context, problemID string) ([]TestCase, error) {
	cases, err := s.GetProblemData(ctx, problemID)
	if err != nil {
		return nil, err
	}
	for i := range cases {
		cases[i].Input = base64.StdEncoding.EncodeToString([]byte(cases[i].Input))
		cases[i].Output = base64.StdEncoding.EncodeToString([]byte(cases[i].Output))
	}
	return cases, nil
}

func (s *ProblemSrvc) resolve(ctx context.Context, inline string, key *string) (string, error) {
	if key == nil || *key == "" {
		return inline, nil
	}
	if s.testFiles == nil {
		return "", fmt.Errorf("test file %s referenced but no bucket configured", *key)
	}

	compressed, err := s.testFiles.Download(ctx, *key)
	if err != nil {
		return "", err
	}
	content, err := s.zstdDec.DecodeAll(compressed, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decompress %s: %w", *key, err)
	}
	return string(content), nil
}
