package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ofast-team/backend/conf"
	"github.com/ofast-team/backend/judge"
	"github.com/ofast-team/backend/problem"
	"github.com/ofast-team/backend/s3bucket"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "ofast-admin",
		Usage: "manage the ofast judge backend",
		Commands: []*cli.Command{
			{
				Name:  "problem",
				Usage: "manage the problem catalog",
				Commands: []*cli.Command{
					{
						Name:  "import",
						Usage: "publish a problem from a directory",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "dir",
								Usage:    "problem directory containing problem.toml and tests/",
								Required: true,
							},
						},
						Action: importProblem,
					},
					{
						Name:   "list",
						Usage:  "list published problems",
						Action: listProblems,
					},
				},
			},
			{
				Name:  "judge",
				Usage: "inspect the judge",
				Commands: []*cli.Command{
					{
						Name:   "ping",
						Usage:  "check that the judge answers",
						Action: pingJudge,
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newProblemSrvc(ctx context.Context) (*problem.ProblemSrvc, error) {
	cfg, err := conf.Read()
	if err != nil {
		return nil, err
	}
	awsCfg, err := cfg.AwsConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.TestfileBucket == "" {
		return problem.NewDdbProblemSrvc(cfg.DynamoDbClient(awsCfg), cfg.Tables, nil, cfg.Limits)
	}
	bucket := s3bucket.NewS3Bucket(awsCfg, cfg.TestfileBucket)
	return problem.NewDdbProblemSrvc(cfg.DynamoDbClient(awsCfg), cfg.Tables, bucket, cfg.Limits)
}

func importProblem(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.String("dir")
	p, cases, err := problem.ReadProblemDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}

	srvc, err := newProblemSrvc(ctx)
	if err != nil {
		return err
	}

	slog.Info("importing problem", "problemID", p.ID, "name", p.Name, "cases", len(cases))
	err = srvc.ImportProblem(ctx, p, cases)
	if err != nil {
		return err
	}
	slog.Info("problem imported", "problemID", p.ID)
	return nil
}

func listProblems(ctx context.Context, cmd *cli.Command) error {
	srvc, err := newProblemSrvc(ctx)
	if err != nil {
		return err
	}
	problems, err := srvc.ListProblems(ctx)
	if err != nil {
		return err
	}
	for _, p := range problems {
		fmt.Printf("%s\t%s\t%ds\t%dMB\n", p.ID, p.Name, p.TimeLimit, p.MemoryLimit)
	}
	return nil
}

func pingJudge(ctx context.Context, cmd *cli.Command) error {
	cfg, err := conf.Read()
	if err != nil {
		return err
	}
	about, err := judge.NewClient(cfg.JudgeURL, cfg.JudgeTimeout).About(ctx)
	if err != nil {
		return fmt.Errorf("judge at %s did not answer: %w", cfg.JudgeURL, err)
	}
	fmt.Printf("%s is online (version %s)\n", cfg.JudgeURL, about.Version)
	return nil
}
