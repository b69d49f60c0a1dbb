package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Limits are the system-wide bounds applied to every judge batch.
type Limits struct {
	MaxCases           int `toml:"max_cases"`
	MaxTimeLimit       int `toml:"max_time_limit"` // seconds
	DefaultTimeLimit   int `toml:"default_time_limit"`
	MaxMemoryLimit     int `toml:"max_memory_limit"` // megabytes
	MinMemoryLimit     int `toml:"min_memory_limit"`
	DefaultMemoryLimit int `toml:"default_memory_limit"`
}

type Tables struct {
	Submissions string `toml:"submissions"`
	Problems    string `toml:"problems"`
	ProblemData string `toml:"problem_data"`
	UserData    string `toml:"user_data"`
	JudgeData   string `toml:"judge_data"`
}

type Config struct {
	ListenAddr string `toml:"listen_addr"`
	Env        string `toml:"env"` // tag attached to request logs

	JudgeURL         string        `toml:"judge_url"`
	JudgeTimeout     time.Duration `toml:"-"`
	JudgeTimeoutSecs int           `toml:"judge_timeout_secs"`

	AwsRegion      string `toml:"aws_region"`
	DdbEndpoint    string `toml:"ddb_endpoint"` // optional, e.g. DynamoDB Local
	TestfileBucket string `toml:"testfile_bucket"`
	EventsQueueURL string `toml:"events_queue_url"` // optional

	JwtKey      string   `toml:"-"`
	CorsOrigins []string `toml:"cors_origins"`

	Tables Tables `toml:"tables"`
	Limits Limits `toml:"limits"`
}

func DefaultLimits() Limits {
	return Limits{
		MaxCases:           100,
		MaxTimeLimit:       10,
		DefaultTimeLimit:   1,
		MaxMemoryLimit:     512,
		MinMemoryLimit:     3,
		DefaultMemoryLimit: 256,
	}
}

func Default() *Config {
	return &Config{
		ListenAddr:   ":8080",
		Env:          "dev",
		JudgeTimeout: 30 * time.Second,
		AwsRegion:    "us-east-1",
		CorsOrigins: []string{
			"http://localhost:3000",
			"https://ofast.io",
			"https://ofast-e6866.web.app",
			"https://ofast-e6866.firebaseapp.com",
		},
		Tables: Tables{
			Submissions: "Submissions",
			Problems:    "Problems",
			ProblemData: "ProblemData",
			UserData:    "UserData",
			JudgeData:   "JudgeData",
		},
		Limits: DefaultLimits(),
	}
}

// Load builds the configuration from defaults, an optional TOML file named by
// OFAST_CONFIG and finally environment variables (a .env file is honoured).
func Load() (*Config, error) {
	cfg, err := Read()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Read is Load without validation, for tools that need only part of the
// configuration.
func Read() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := Default()

	if path := os.Getenv("OFAST_CONFIG"); path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := cfg.ApplyToml(content); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) ApplyToml(content []byte) error {
	err := toml.Unmarshal(content, c)
	if err != nil {
		return fmt.Errorf("failed to parse config toml: %w", err)
	}
	if c.JudgeTimeoutSecs > 0 {
		c.JudgeTimeout = time.Duration(c.JudgeTimeoutSecs) * time.Second
	}
	return nil
}

func (c *Config) applyEnv() error {
	setStr := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setStr(&c.ListenAddr, "LISTEN_ADDR")
	setStr(&c.Env, "APP_ENV")
	setStr(&c.JudgeURL, "JUDGE_URL")
	setStr(&c.AwsRegion, "AWS_REGION")
	setStr(&c.DdbEndpoint, "DDB_ENDPOINT")
	setStr(&c.TestfileBucket, "S3_TESTFILE_BUCKET")
	setStr(&c.EventsQueueURL, "EVENTS_SQS_QUEUE_URL")
	setStr(&c.JwtKey, "JWT_KEY")
	setStr(&c.Tables.Submissions, "DDB_SUBM_TABLE_NAME")
	setStr(&c.Tables.Problems, "DDB_PROBLEM_TABLE_NAME")
	setStr(&c.Tables.ProblemData, "DDB_PROBLEM_DATA_TABLE_NAME")
	setStr(&c.Tables.UserData, "DDB_USER_TABLE_NAME")
	setStr(&c.Tables.JudgeData, "DDB_JUDGE_TABLE_NAME")

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CorsOrigins = strings.Split(v, ",")
	}

	if v := os.Getenv("JUDGE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid JUDGE_TIMEOUT %q: %w", v, err)
		}
		c.JudgeTimeout = d
	}

	ints := map[string]*int{
		"MAX_CASES":            &c.Limits.MaxCases,
		"MAX_TIME_LIMIT":       &c.Limits.MaxTimeLimit,
		"DEFAULT_TIME_LIMIT":   &c.Limits.DefaultTimeLimit,
		"MAX_MEMORY_LIMIT":     &c.Limits.MaxMemoryLimit,
		"MIN_MEMORY_LIMIT":     &c.Limits.MinMemoryLimit,
		"DEFAULT_MEMORY_LIMIT": &c.Limits.DefaultMemoryLimit,
	}
	for key, dst := range ints {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, v, err)
		}
		*dst = n
	}

	return nil
}

func (c *Config) Validate() error {
	if c.JudgeURL == "" {
		return errors.New("JUDGE_URL is not set")
	}
	if c.JwtKey == "" {
		return errors.New("JWT_KEY is not set")
	}
	l := c.Limits
	if l.MaxCases <= 0 || l.MaxTimeLimit <= 0 || l.MinMemoryLimit <= 0 {
		return fmt.Errorf("limits must be positive: %+v", l)
	}
	if l.MinMemoryLimit > l.MaxMemoryLimit {
		return fmt.Errorf("min memory limit %d exceeds max %d", l.MinMemoryLimit, l.MaxMemoryLimit)
	}
	return nil
}
