package subm

import (
	"context"
	"net/http"
	"testing"

	"github.com/ofast-team/backend/conf"
	"github.com/ofast-team/backend/judge"
	"github.com/ofast-team/backend/problem"
	"github.com/ofast-team/backend/srvcerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAdHoc(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.srvc.Submit(ctx, adHocParams())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Equal(t, 1, env.judge.createCalls())
	items := env.judge.batches[0]
	require.Len(t, items, 1)
	assert.Equal(t, 54, items[0].LanguageID)
	assert.Equal(t, "-g -O2 -std=c++17", items[0].CompilerOptions)
	assert.Equal(t, "MSAy", items[0].Stdin)
	assert.Equal(t, "Mw==", items[0].ExpectedOutput)
	assert.Equal(t, 1, items[0].CPUTimeLimit)
	assert.Equal(t, 256000, items[0].MemoryLimit)

	subm, err := env.repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, subm)
	assert.True(t, subm.Pending)
	assert.Equal(t, InitialVerdict, subm.Verdict)
	assert.Equal(t, AdHocProblemID, subm.ProblemID)
	assert.Equal(t, 1, subm.TotalCases)
	assert.Len(t, subm.Tokens, subm.TotalCases)
	assert.Equal(t, "cpp", subm.Language)
}

func TestSubmitLanguageDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	for _, tag := range []string{"c", "java", "py"} {
		p := adHocParams()
		p.Language = tag
		_, err := env.srvc.Submit(ctx, p)
		require.NoError(t, err)
	}
	require.Len(t, env.judge.batches, 3)

	c, java, py := env.judge.batches[0][0], env.judge.batches[1][0], env.judge.batches[2][0]
	assert.Equal(t, 50, c.LanguageID)
	assert.Equal(t, "-g -O2 -std=c11", c.CompilerOptions)
	assert.Equal(t, 62, java.LanguageID)
	assert.Equal(t, "-Xss64m -Xmx2048m", java.CommandLineArguments)
	assert.Empty(t, java.CompilerOptions)
	assert.Equal(t, 71, py.LanguageID)
	assert.Empty(t, py.CompilerOptions)
	assert.Empty(t, py.CommandLineArguments)
}

func TestSubmitMissingFields(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.srvc.Submit(context.Background(), SubmitParams{})
	se := requireSrvcErr(t, err, ErrCodeMissingFields, http.StatusBadRequest)
	assert.Equal(t, []string{
		"Missing uid",
		"Missing source_code",
		"Missing language",
		"Missing inputs array",
		"Missing outputs array",
	}, se.Details())

	// problem mode does not need inputs
	_, err = env.srvc.Submit(context.Background(), SubmitParams{ProblemID: "p1"})
	se = requireSrvcErr(t, err, ErrCodeMissingFields, http.StatusBadRequest)
	assert.Len(t, se.Details(), 3)
	assert.Zero(t, env.judge.createCalls())
}

func TestSubmitInvalidLanguage(t *testing.T) {
	env := newTestEnv(t)
	p := adHocParams()
	p.Language = "rust"

	_, err := env.srvc.Submit(context.Background(), p)
	se := requireSrvcErr(t, err, ErrCodeInvalidLanguage, http.StatusBadRequest)
	assert.Equal(t, "Invalid language", se.Error())
	assert.Zero(t, env.judge.createCalls())
}

func TestSubmitCaseCounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := adHocParams()
	p.Outputs = []string{"YQ==", "Yg=="}
	_, err := env.srvc.Submit(ctx, p)
	se := requireSrvcErr(t, err, ErrCodeCaseCountMismatch, http.StatusBadRequest)
	assert.Equal(t, "Different number of inputs and outputs.", se.Error())

	p = adHocParams()
	p.Inputs, p.Outputs = []string{}, []string{}
	_, err = env.srvc.Submit(ctx, p)
	requireSrvcErr(t, err, ErrCodeNoCases, http.StatusBadRequest)

	p = adHocParams()
	p.Inputs = make([]string, 101)
	p.Outputs = make([]string, 101)
	_, err = env.srvc.Submit(ctx, p)
	se = requireSrvcErr(t, err, ErrCodeTooManyCases, http.StatusBadRequest)
	assert.Equal(t, "Too many cases (max of 100)", se.Error())

	p.Inputs = make([]string, 100)
	p.Outputs = make([]string, 100)
	_, err = env.srvc.Submit(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 1, env.judge.createCalls())
}

func TestSubmitClampsLimits(t *testing.T) {
	tests := []struct {
		name       string
		time, mem  int
		wantTime   int
		wantMemKiB int
	}{
		{name: "below memory minimum", time: 2, mem: 1, wantTime: 2, wantMemKiB: 3000},
		{name: "above memory maximum", time: 2, mem: 9999, wantTime: 2, wantMemKiB: 512000},
		{name: "above time maximum", time: 50, mem: 64, wantTime: 10, wantMemKiB: 64000},
		{name: "unset", time: 0, mem: 0, wantTime: 1, wantMemKiB: 256000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			p := adHocParams()
			p.TimeLimit, p.MemoryLimit = tt.time, tt.mem
			_, err := env.srvc.Submit(context.Background(), p)
			require.NoError(t, err)
			item := env.judge.batches[0][0]
			assert.Equal(t, tt.wantTime, item.CPUTimeLimit)
			assert.Equal(t, tt.wantMemKiB, item.MemoryLimit)
		})
	}
}

func TestSubmitUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	p := adHocParams()
	p.UID = "ghost"

	_, err := env.srvc.Submit(context.Background(), p)
	se := requireSrvcErr(t, err, ErrCodeUserNotFound, http.StatusNotFound)
	assert.Equal(t, "User does not exist.", se.Error())
	assert.Zero(t, env.judge.createCalls())
}

func TestSubmitProblemMode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.problems.PutProblem(problem.Problem{ID: "sum", TimeLimit: 20, MemoryLimit: 128})
	env.problems.PutTestCases("sum", []problem.TestCase{
		{Input: "1 2", Output: "3"},
		{Input: "2 2", Output: "4"},
		{Input: "5 5", Output: "10"},
	})

	p := adHocParams()
	p.ProblemID = "sum"
	p.Inputs, p.Outputs = nil, nil
	p.TimeLimit, p.MemoryLimit = 1, 4
	id, err := env.srvc.Submit(ctx, p)
	require.NoError(t, err)

	items := env.judge.batches[0]
	require.Len(t, items, 3)
	assert.Equal(t, "MSAy", items[0].Stdin)
	assert.Equal(t, "MiAy", items[1].Stdin)
	assert.Equal(t, "NSA1", items[2].Stdin)
	assert.Equal(t, "MTA=", items[2].ExpectedOutput)
	// problem limits win over the request, then get clamped
	assert.Equal(t, 10, items[0].CPUTimeLimit)
	assert.Equal(t, 128000, items[0].MemoryLimit)

	subm, err := env.repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "sum", subm.ProblemID)
	assert.Equal(t, 3, subm.TotalCases)
	assert.Len(t, subm.Tokens, 3)
}

func TestSubmitUnknownProblem(t *testing.T) {
	env := newTestEnv(t)
	p := adHocParams()
	p.ProblemID = "nope"

	_, err := env.srvc.Submit(context.Background(), p)
	requireSrvcErr(t, err, problem.ErrCodeProblemNotFound, http.StatusNotFound)
	assert.Zero(t, env.judge.createCalls())
}

func TestClampLimits(t *testing.T) {
	lim := conf.DefaultLimits()
	assert.Equal(t, effectiveLimits{TimeLimit: 10, MemoryLimit: 3000}, clampLimits(11, 2, lim))
	assert.Equal(t, effectiveLimits{TimeLimit: 1, MemoryLimit: 256000}, clampLimits(-1, -5, lim))
}

func TestSubmitRejectsShortTokenList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.judge.dropLast = true
	env.problems.PutProblem(problem.Problem{ID: "sum"})
	env.problems.PutTestCases("sum", []problem.TestCase{
		{Input: "1 2", Output: "3"},
		{Input: "2 2", Output: "4"},
		{Input: "5 5", Output: "10"},
	})

	p := adHocParams()
	p.ProblemID = "sum"
	p.Inputs, p.Outputs = nil, nil
	_, err := env.srvc.Submit(ctx, p)
	se := requireSrvcErr(t, err, srvcerror.ErrCodeInternalServerError, http.StatusInternalServerError)
	assert.ErrorIs(t, se, judge.ErrTokenCountMismatch)

	// nothing was stored for the user
	subms, err := env.repo.ListByUser(ctx, p.UID)
	require.NoError(t, err)
	assert.Empty(t, subms)
}
