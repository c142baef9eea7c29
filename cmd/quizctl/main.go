package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/container"
	"github.com/urfave/cli/v2"
)

const containerKey = "container"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctx = config.ContextWithRunID(ctx, uuid.NewString())

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "quizctl",
		Usage:    "onboarding and quizzes in the terminal",
		Metadata: map[string]interface{}{},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file or directory holding quizctl.yaml",
				EnvVars: []string{"QUIZCTL_CONFIG"},
			},
			&cli.StringFlag{Name: "log-level", Usage: "log level (debug, info, warn, error)"},
			&cli.StringFlag{Name: "log-file", Usage: "write logs to a rotated file instead of stderr"},
			&cli.Int64Flag{Name: "seed", Usage: "shuffle seed, 0 picks one from the clock"},
			&cli.StringFlag{Name: "bank-file", Usage: "YAML or JSON question bank used by practice"},
		},
		Before: setup,
		After: func(c *cli.Context) error {
			if cont, ok := c.App.Metadata[containerKey].(*container.Container); ok {
				return cont.Close()
			}
			return nil
		},
		Commands: []*cli.Command{
			guidedCommand(),
			practiceCommand(),
			onboardCommand(),
			startCommand(),
			banksCommand(),
		},
	}
}

func setup(c *cli.Context) error {
	overrides := map[string]interface{}{}
	if c.IsSet("log-level") {
		overrides["log.level"] = c.String("log-level")
	}
	if c.IsSet("log-file") {
		overrides["log.file"] = c.String("log-file")
	}
	if c.IsSet("seed") {
		overrides["quiz.seed"] = c.Int64("seed")
	}
	if c.IsSet("bank-file") {
		overrides["quiz.bank_file"] = c.String("bank-file")
	}

	cfg, err := config.LoadConfig(c.String("config"), overrides)
	if err != nil {
		return err
	}

	cont, err := container.New(c.Context, cfg)
	if err != nil {
		return err
	}
	c.App.Metadata[containerKey] = cont
	return nil
}

func fromContext(c *cli.Context) *container.Container {
	return c.App.Metadata[containerKey].(*container.Container)
}
