package problem

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/klauspost/compress/zstd"
	"github.com/ofast-team/backend/conf"
	"github.com/ofast-team/backend/logger"
	"github.com/ofast-team/backend/srvcerror"
)

type objectStore interface {
	Upload(ctx context.Context, content []byte, key string, mediaType string) error
	Download(ctx context.Context, key string) ([]byte, error)
}

type ProblemSrvc struct {
	repo      problemRepo
	testFiles objectStore // nil when no bucket is configured
	limits    conf.Limits
	defaults  Limits
	zstdDec   *zstd.Decoder
	zstdEnc   *zstd.Encoder
}

func NewProblemSrvc(repo problemRepo, testFiles objectStore, limits conf.Limits) (*ProblemSrvc, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	return &ProblemSrvc{
		repo:      repo,
		testFiles: testFiles,
		limits:    limits,
		defaults: Limits{
			TimeLimit:   limits.DefaultTimeLimit,
			MemoryLimit: limits.DefaultMemoryLimit,
		},
		zstdDec: dec,
		zstdEnc: enc,
	}, nil
}

func NewDdbProblemSrvc(ddbClient *dynamodb.Client, tables conf.Tables,
	testFiles objectStore, limits conf.Limits) (*ProblemSrvc, error) {
	repo := NewDdbProblemRepo(ddbClient, tables.Problems, tables.ProblemData)
	return NewProblemSrvc(repo, testFiles, limits)
}

// GetLimits never fails. A missing record or a store error yields the
// defaults; each non-positive field is defaulted on its own.
func (s *ProblemSrvc) GetLimits(ctx context.Context, problemID string) Limits {
	p, err := s.repo.GetProblem(ctx, problemID)
	if err != nil {
		logger.FromContext(ctx).Warn("failed to read problem limits, using defaults",
			slog.String("problem_id", problemID), slog.String("error", err.Error()))
		return s.defaults
	}
	if p == nil {
		return s.defaults
	}

	res := Limits{TimeLimit: p.TimeLimit, MemoryLimit: p.MemoryLimit}
	if res.TimeLimit <= 0 {
		res.TimeLimit = s.defaults.TimeLimit
	}
	if res.MemoryLimit <= 0 {
		res.MemoryLimit = s.defaults.MemoryLimit
	}
	return res
}

func (s *ProblemSrvc) GetProblem(ctx context.Context, problemID string) (*Problem, error) {
	if problemID == "" {
		return nil, newErrMissingProblemID()
	}
	p, err := s.repo.GetProblem(ctx, problemID)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(fmt.Errorf("failed to get problem %s: %w", problemID, err))
	}
	if p == nil {
		return nil, newErrProblemNotFound()
	}
	return p, nil
}

func (s *ProblemSrvc) ListProblems(ctx context.Context) ([]Problem, error) {
	problems, err := s.repo.ListProblems(ctx)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}
	return problems, nil
}
