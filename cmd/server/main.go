package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/ofast-team/backend/conf"
	"github.com/ofast-team/backend/events"
	"github.com/ofast-team/backend/http"
	"github.com/ofast-team/backend/judge"
	"github.com/ofast-team/backend/problem"
	"github.com/ofast-team/backend/s3bucket"
	"github.com/ofast-team/backend/subm"
	"github.com/ofast-team/backend/user"
)

func main() {
	cfg, err := conf.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	awsCfg, err := cfg.AwsConfig(ctx)
	if err != nil {
		slog.Error("failed to load aws config", "error", err)
		os.Exit(1)
	}
	ddbClient := cfg.DynamoDbClient(awsCfg)

	var problemSrvc *problem.ProblemSrvc
	if cfg.TestfileBucket != "" {
		bucket := s3bucket.NewS3Bucket(awsCfg, cfg.TestfileBucket)
		problemSrvc, err = problem.NewDdbProblemSrvc(ddbClient, cfg.Tables, bucket, cfg.Limits)
	} else {
		slog.Warn("no test file bucket configured, only inline test cases are served")
		problemSrvc, err = problem.NewDdbProblemSrvc(ddbClient, cfg.Tables, nil, cfg.Limits)
	}
	if err != nil {
		slog.Error("failed to create problem service", "error", err)
		os.Exit(1)
	}

	userSrvc := user.NewDdbUserSrvc(ddbClient, cfg.Tables.UserData, []byte(cfg.JwtKey))
	recordVerdict := func(ctx context.Context, ev events.VerdictResolved) error {
		return userSrvc.RecordVerdict(ctx, ev.UID, ev.ProblemID, ev.Verdict)
	}

	var verdicts events.Publisher = events.NewDirect(recordVerdict)
	if cfg.EventsQueueURL != "" {
		queue, err := events.NewSqsQueue(sqs.NewFromConfig(awsCfg), cfg.EventsQueueURL)
		if err != nil {
			slog.Error("failed to create event queue", "error", err)
			os.Exit(1)
		}
		go func() {
			err := queue.Receive(ctx, recordVerdict)
			if err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("event receiver stopped", "error", err)
			}
		}()
		verdicts = queue
	}

	judgeClient := judge.NewClient(cfg.JudgeURL, cfg.JudgeTimeout)
	heartbeat := judge.NewHeartbeat(judgeClient, judge.NewDdbJudgeData(ddbClient, cfg.Tables.JudgeData))

	submSrvc := subm.NewSubmSrvc(
		judgeClient,
		problemSrvc,
		userSrvc,
		subm.NewDynamoDbSubmTable(ddbClient, cfg.Tables.Submissions),
		verdicts,
		cfg.Limits,
	)

	httpServer := http.NewHttpServer(cfg, submSrvc, problemSrvc, userSrvc, heartbeat)

	slog.Info("starting server", "address", cfg.ListenAddr, "env", cfg.Env)
	err = httpServer.Start(ctx, cfg.ListenAddr)
	if err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
