package problem

import (
	"context"
	"sort"
	"sync"
)

type InMemRepo struct {
	mu       sync.RWMutex
	problems map[string]Problem
	data     map[string]problemDataRow
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		problems: make(map[string]Problem),
		data:     make(map[string]problemDataRow),
	}
}

func (r *InMemRepo) PutProblem(p Problem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.problems[p.ID] = p
}

// PutTestCases stores inline test cases for a problem.
func (r *InMemRepo) PutTestCases(problemID string, cases []TestCase) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row := problemDataRow{ProblemID: problemID}
	for _, c := range cases {
		row.Data = append(row.Data, testCaseRow{Input: c.Input, Output: c.Output})
	}
	r.data[problemID] = row
}

// PutStoredTestCase appends a test case whose files live in the object store.
func (r *InMemRepo) PutStoredTestCase(problemID string, inputKey, outputKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row := r.data[problemID]
	row.ProblemID = problemID
	row.Data = append(row.Data, testCaseRow{InputKey: &inputKey, OutputKey: &outputKey})
	r.data[problemID] = row
}

func (r *InMemRepo) GetProblem(ctx context.Context, id string) (*Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.problems[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *InMemRepo) ListProblems(ctx context.Context) ([]Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Problem, 0, len(r.problems))
	for _, p := range r.problems {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (r *InMemRepo) GetProblemData(ctx context.Context, id string) (*problemDataRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if row, ok := r.data[id]; ok {
		return &row, nil
	}
	return nil, nil
}

func (r *InMemRepo) SaveProblem(ctx context.Context, p *Problem) error {
	r.PutProblem(*p)
	return nil
}

func (r *InMemRepo) SaveProblemData(ctx context.Context, row *problemDataRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[row.ProblemID] = *row
	return nil
}
