package problem

import (
	"context"
	"fmt"

	"github.com/ofast-team/backend/srvcerror"
	"golang.org/x/sync/errgroup"
)

// InlineCaseLimit is the largest test file, in bytes, kept inside the
// problem data row. Larger files go to the test file bucket.
const InlineCaseLimit = 64 * 1024

// InlineRowLimit bounds the inline test files of one problem data row.
// DynamoDB rejects items above 400 KB; the rest is left for attribute
// names and keys.
const InlineRowLimit = 350 * 1024

const testFileMediaType = "application/zstd"

const uploadConcurrency = 10

type testFile struct {
	content string
	key     string
	inline  bool
}

// ImportProblem publishes a problem together with its ordered test cases.
// The data row is written before the catalog entry so that a listed problem
// always has its cases.
func (s *ProblemSrvc) ImportProblem(ctx context.Context, p Problem, cases []TestCase) error {
	if p.ID == "" {
		return newErrMissingProblemID()
	}
	if len(cases) == 0 {
		return newErrNoTestCases()
	}
	if s.limits.MaxCases > 0 && len(cases) > s.limits.MaxCases {
		return newErrTooManyTestCases(s.limits.MaxCases)
	}

	files, err := s.placeTestFiles(p.ID, cases)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)
	for _, f := range files {
		if f.inline {
			continue
		}
		f := f
		g.Go(func() error {
			compressed := s.zstdEnc.EncodeAll([]byte(f.content), nil)
			return s.testFiles.Upload(gctx, compressed, f.key, testFileMediaType)
		})
	}
	if err := g.Wait(); err != nil {
		return srvcerror.ErrInternalSE().SetDebug(fmt.Errorf("failed to upload test files of %s: %w", p.ID, err))
	}

	rows := make([]testCaseRow, len(cases))
	for i := range rows {
		in, out := files[2*i], files[2*i+1]
		rows[i].Input, rows[i].InputKey = in.rowValue()
		rows[i].Output, rows[i].OutputKey = out.rowValue()
	}

	err = s.repo.SaveProblemData(ctx, &problemDataRow{ProblemID: p.ID, Data: rows})
	if err != nil {
		return srvcerror.ErrInternalSE().SetDebug(fmt.Errorf("failed to save problem data %s: %w", p.ID, err))
	}
	err = s.repo.SaveProblem(ctx, &p)
	if err != nil {
		return srvcerror.ErrInternalSE().SetDebug(fmt.Errorf("failed to save problem %s: %w", p.ID, err))
	}
	return nil
}

// placeTestFiles decides, in case order, which files stay inline. A file
// stays inline while it is small, or there is no bucket, and the row has
// room for it. Nothing is uploaded here, so a problem that cannot be stored
// fails before any upload.
func (s *ProblemSrvc) placeTestFiles(problemID string, cases []TestCase) ([]testFile, error) {
	files := make([]testFile, 0, 2*len(cases))
	for i, c := range cases {
		files = append(files,
			testFile{content: c.Input, key: testFileKey(problemID, i+1, "in")},
			testFile{content: c.Output, key: testFileKey(problemID, i+1, "out")})
	}

	inlineBytes := 0
	for i := range files {
		size := len(files[i].content)
		small := size <= InlineCaseLimit || s.testFiles == nil
		if small && inlineBytes+size <= InlineRowLimit {
			files[i].inline = true
			inlineBytes += size
			continue
		}
		if s.testFiles == nil {
			return nil, newErrTestFilesTooLarge(InlineRowLimit)
		}
	}
	return files, nil
}

func (f testFile) rowValue() (string, *string) {
	if f.inline {
		return f.content, nil
	}
	key := f.key
	return "", &key
}

func testFileKey(problemID string, n int, ext string) string {
	return fmt.Sprintf("tests/%s/%03d.%s", problemID, n, ext)
}
