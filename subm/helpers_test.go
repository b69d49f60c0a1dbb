package subm

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ofast-team/backend/conf"
	"github.com/ofast-team/backend/events"
	"github.com/ofast-team/backend/judge"
	"github.com/ofast-team/backend/problem"
	"github.com/ofast-team/backend/srvcerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJudge struct {
	mu       sync.Mutex
	batches  [][]judge.BatchItem
	statuses map[string]judge.Status
	polls    int
	pollErr  error
	dropLast bool // answer with one token less than requested
}

func newFakeJudge() *fakeJudge {
	return &fakeJudge{statuses: make(map[string]judge.Status)}
}

func (f *fakeJudge) CreateBatch(ctx context.Context, items []judge.BatchItem) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, items)
	tokens := make([]string, len(items))
	for i := range items {
		tokens[i] = fmt.Sprintf("tok-%d-%d", len(f.batches), i)
	}
	if f.dropLast && len(tokens) > 0 {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens, nil
}

func (f *fakeJudge) PollBatch(ctx context.Context, tokens []string) ([]judge.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.polls++
	if f.pollErr != nil {
		return nil, f.pollErr
	}
	res := make([]judge.Status, len(tokens))
	for i, tok := range tokens {
		res[i] = f.statuses[tok]
	}
	return res, nil
}

func (f *fakeJudge) setAll(tokens []string, st judge.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, tok := range tokens {
		f.statuses[tok] = st
	}
}

func (f *fakeJudge) createCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.batches)
}

type fakeUsers map[string]bool

func (f fakeUsers) UserExists(ctx context.Context, uid string) (bool, error) {
	return f[uid], nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.VerdictResolved
}

func (p *recordingPublisher) Publish(ctx context.Context, ev events.VerdictResolved) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

type testEnv struct {
	srvc      *SubmSrvc
	judge     *fakeJudge
	repo      *InMemSubmRepo
	problems  *problem.InMemRepo
	published *recordingPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	problems := problem.NewInMemRepo()
	problemSrvc, err := problem.NewProblemSrvc(problems, nil, conf.DefaultLimits())
	require.NoError(t, err)

	env := &testEnv{
		judge:     newFakeJudge(),
		repo:      NewInMemSubmRepo(),
		problems:  problems,
		published: &recordingPublisher{},
	}
	env.srvc = NewSubmSrvc(env.judge, problemSrvc, fakeUsers{"u1": true},
		env.repo, env.published, conf.DefaultLimits())
	env.srvc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return env
}

func adHocParams() SubmitParams {
	return SubmitParams{
		UID:        "u1",
		SourceCode: "I2luY2x1ZGUgPGlvc3RyZWFtPg==",
		Language:   "cpp",
		Inputs:     []string{"MSAy"},
		Outputs:    []string{"Mw=="},
	}
}

func requireSrvcErr(t *testing.T, err error, code string, status int) *srvcerror.Error {
	t.Helper()
	require.Error(t, err)
	var se *srvcerror.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, code, se.ErrorCode())
	assert.Equal(t, status, se.HttpStatusCode())
	return se
}
