package problem

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ofast-team/backend/srvcerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportProblemRoundTrip(t *testing.T) {
	repo := NewInMemRepo()
	objects := fakeObjects{}
	srvc := newSrvc(t, repo, objects)
	ctx := context.Background()

	big := strings.Repeat("7 ", InlineCaseLimit)
	cases := []TestCase{
		{Input: "1 2\n", Output: "3\n"},
		{Input: big, Output: "14\n"},
	}
	p := Problem{ID: "sum", Name: "Sum", TimeLimit: 2, MemoryLimit: 128}
	require.NoError(t, srvc.ImportProblem(ctx, p, cases))

	// only the large input left the row
	assert.Len(t, objects, 1)
	assert.Contains(t, objects, "tests/sum/002.in")

	got, err := srvc.GetProblemData(ctx, "sum")
	require.NoError(t, err)
	assert.Equal(t, cases, got)

	stored, err := srvc.GetProblem(ctx, "sum")
	require.NoError(t, err)
	assert.Equal(t, p, *stored)
	assert.Equal(t, Limits{TimeLimit: 2, MemoryLimit: 128}, srvc.GetLimits(ctx, "sum"))
}

func TestImportProblemWithoutBucketKeepsCasesInline(t *testing.T) {
	srvc := newSrvc(t, NewInMemRepo(), nil)
	big := strings.Repeat("x", InlineCaseLimit+1)

	err := srvc.ImportProblem(context.Background(), Problem{ID: "p"}, []TestCase{{Input: big, Output: "ok"}})
	require.NoError(t, err)

	got, err := srvc.GetProblemData(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, big, got[0].Input)
}

func inlineRowBytes(t *testing.T, repo *InMemRepo, problemID string) int {
	row, err := repo.GetProblemData(context.Background(), problemID)
	require.NoError(t, err)
	require.NotNil(t, row)
	total := 0
	for _, r := range row.Data {
		total += len(r.Input) + len(r.Output)
	}
	return total
}

func TestImportProblemSpillsWhenRowIsFull(t *testing.T) {
	repo := NewInMemRepo()
	objects := fakeObjects{}
	srvc := newSrvc(t, repo, objects)
	ctx := context.Background()

	// every file is small on its own, together they exceed the row limit
	cases := make([]TestCase, 8)
	for i := range cases {
		cases[i] = TestCase{Input: strings.Repeat(string(rune('a'+i)), 60*1024), Output: "ok"}
	}
	require.NoError(t, srvc.ImportProblem(ctx, Problem{ID: "wide"}, cases))

	assert.LessOrEqual(t, inlineRowBytes(t, repo, "wide"), InlineRowLimit)
	assert.Len(t, objects, 3)
	assert.Contains(t, objects, "tests/wide/006.in")
	assert.Contains(t, objects, "tests/wide/008.in")

	got, err := srvc.GetProblemData(ctx, "wide")
	require.NoError(t, err)
	assert.Equal(t, cases, got)
}

func TestImportProblemTooLargeWithoutBucket(t *testing.T) {
	repo := NewInMemRepo()
	srvc := newSrvc(t, repo, nil)
	ctx := context.Background()

	cases := make([]TestCase, 8)
	for i := range cases {
		cases[i] = TestCase{Input: strings.Repeat("7", 60*1024), Output: "ok"}
	}
	err := srvc.ImportProblem(ctx, Problem{ID: "wide"}, cases)

	var srvcErr *srvcerror.Error
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, ErrCodeTestFilesTooLarge, srvcErr.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, srvcErr.HttpStatusCode())

	_, err = srvc.GetProblemData(ctx, "wide")
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, ErrCodeProblemNotFound, srvcErr.ErrorCode())
	problems, err := srvc.ListProblems(ctx)
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestImportProblemValidation(t *testing.T) {
	srvc := newSrvc(t, NewInMemRepo(), nil)
	ctx := context.Background()

	var srvcErr *srvcerror.Error
	err := srvc.ImportProblem(ctx, Problem{}, []TestCase{{Input: "1", Output: "1"}})
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, ErrCodeMissingProblemID, srvcErr.ErrorCode())

	err = srvc.ImportProblem(ctx, Problem{ID: "empty"}, nil)
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, ErrCodeNoTestCases, srvcErr.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, srvcErr.HttpStatusCode())

	tooMany := make([]TestCase, 101)
	err = srvc.ImportProblem(ctx, Problem{ID: "many"}, tooMany)
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, ErrCodeTooManyTestCases, srvcErr.ErrorCode())
	assert.Equal(t, "Too many test cases (max of 100)", srvcErr.Error())

	// nothing was published
	problems, err := srvc.ListProblems(ctx)
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func writeFile(t *testing.T, path string, content string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestReadProblemDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "problem.toml"), `
id = "hello"
name = "Hello"
text = "ignored"

[constraints]
time_seconds = 3
memory_megabytes = 64
`)
	writeFile(t, filepath.Join(dir, "statement.md"), "Print hello.")
	writeFile(t, filepath.Join(dir, "tests", "02.in"), "b")
	writeFile(t, filepath.Join(dir, "tests", "02.out"), "B")
	writeFile(t, filepath.Join(dir, "tests", "01.in"), "a")
	writeFile(t, filepath.Join(dir, "tests", "01.ans"), "A")
	writeFile(t, filepath.Join(dir, "tests", "README"), "skipped")

	p, cases, err := ReadProblemDir(dir)
	require.NoError(t, err)
	assert.Equal(t, Problem{ID: "hello", Name: "Hello", Text: "Print hello.", TimeLimit: 3, MemoryLimit: 64}, p)
	assert.Equal(t, []TestCase{{Input: "a", Output: "A"}, {Input: "b", Output: "B"}}, cases)
}

func TestReadProblemDirUnpairedTest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "problem.toml"), `id = "x"`)
	writeFile(t, filepath.Join(dir, "tests", "1.in"), "a")

	_, _, err := ReadProblemDir(dir)
	assert.ErrorContains(t, err, "test 1 has no output file")
}

func TestReadProblemDirMissingID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "problem.toml"), `name = "x"`)

	_, _, err := ReadProblemDir(dir)
	assert.ErrorContains(t, err, "no id")
}
