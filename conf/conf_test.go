package conf_test

import (
	"testing"
	"time"

	"github.com/ofast-team/backend/conf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLimits(t *testing.T) {
	l := conf.DefaultLimits()
	assert.Equal(t, 100, l.MaxCases)
	assert.Equal(t, 10, l.MaxTimeLimit)
	assert.Equal(t, 1, l.DefaultTimeLimit)
	assert.Equal(t, 512, l.MaxMemoryLimit)
	assert.Equal(t, 3, l.MinMemoryLimit)
	assert.Equal(t, 256, l.DefaultMemoryLimit)
}

func TestApplyToml(t *testing.T) {
	cfg := conf.Default()
	err := cfg.ApplyToml([]byte(`
judge_url = "http://judge.local:2358"
judge_timeout_secs = 5

[tables]
submissions = "SubmissionsDev"

[limits]
max_cases = 20
`))
	require.NoError(t, err)

	assert.Equal(t, "http://judge.local:2358", cfg.JudgeURL)
	assert.Equal(t, 5*time.Second, cfg.JudgeTimeout)
	assert.Equal(t, "SubmissionsDev", cfg.Tables.Submissions)
	assert.Equal(t, "Problems", cfg.Tables.Problems)
	assert.Equal(t, 20, cfg.Limits.MaxCases)
	assert.Equal(t, 512, cfg.Limits.MaxMemoryLimit)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JUDGE_URL", "http://127.0.0.1:2358")
	t.Setenv("JWT_KEY", "secret")
	t.Setenv("MAX_TIME_LIMIT", "5")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")

	cfg, err := conf.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:2358", cfg.JudgeURL)
	assert.Equal(t, 5, cfg.Limits.MaxTimeLimit)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CorsOrigins)
}

func TestValidateRejectsMissingJudge(t *testing.T) {
	cfg := conf.Default()
	cfg.JwtKey = "secret"
	require.Error(t, cfg.Validate())
}

func TestReadSkipsValidation(t *testing.T) {
	t.Setenv("JUDGE_URL", "")
	t.Setenv("JWT_KEY", "")
	t.Setenv("S3_TESTFILE_BUCKET", "ofast-testfiles")

	cfg, err := conf.Read()
	require.NoError(t, err)
	assert.Equal(t, "ofast-testfiles", cfg.TestfileBucket)

	_, err = conf.Load()
	assert.Error(t, err)
}
