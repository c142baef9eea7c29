package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/container"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"github.com/saulo-duarte/chronos-quiz/internal/screen"
	"github.com/saulo-duarte/chronos-quiz/internal/terminal"
	"github.com/urfave/cli/v2"
)

func guidedCommand() *cli.Command {
	return &cli.Command{
		Name:  quiz.ModeGuided,
		Usage: "take the fixed three question quiz, back navigation allowed",
		Action: func(c *cli.Context) error {
			cont := fromContext(c)
			mode, err := cont.QuizContainer.Mode(quiz.ModeGuided)
			if err != nil {
				return err
			}
			return runQuiz(c.Context, cont, newConsole(), mode)
		},
	}
}

func practiceCommand() *cli.Command {
	return &cli.Command{
		Name:  quiz.ModePractice,
		Usage: "take a randomized forward-only quiz drawn from the practice bank",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "number of questions to draw"},
		},
		Action: func(c *cli.Context) error {
			cont := fromContext(c)
			mode, err := cont.QuizContainer.Mode(quiz.ModePractice)
			if err != nil {
				return err
			}
			if c.IsSet("count") {
				if c.Int("count") <= 0 {
					return fmt.Errorf("%w: --count must be positive, got %d", quiz.ErrInvalidSampleSize, c.Int("count"))
				}
				mode.Count = c.Int("count")
			}
			return runQuiz(c.Context, cont, newConsole(), mode)
		},
	}
}

func onboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "onboard",
		Usage: "walk through the onboarding steps",
		Action: func(c *cli.Context) error {
			_, err := runOnboarding(c.Context, fromContext(c), newConsole())
			return err
		},
	}
}

func startCommand() *cli.Command {
	return &cli.Command{
		Name:  "start",
		Usage: "onboarding, then the course list, then a practice quiz",
		Action: func(c *cli.Context) error {
			ctx := c.Context
			cont := fromContext(c)
			console := newConsole()

			done, err := runOnboarding(ctx, cont, console)
			if err != nil || !done {
				return err
			}

			if err := waitForScreen(ctx, cont, screen.Courses, cont.OnboardingContainer.Service.RedirectDelay()); err != nil {
				return err
			}
			console.Say("\nCourses: " + strings.Join(cont.QuizContainer.Service.ListBanks(ctx), ", "))

			mode, err := cont.QuizContainer.Mode(quiz.ModePractice)
			if err != nil {
				return err
			}
			return runQuiz(ctx, cont, console, mode)
		},
	}
}

func banksCommand() *cli.Command {
	return &cli.Command{
		Name:  "banks",
		Usage: "list the available question banks",
		Action: func(c *cli.Context) error {
			for _, name := range fromContext(c).QuizContainer.Service.ListBanks(c.Context) {
				fmt.Fprintln(c.App.Writer, name)
			}
			return nil
		},
	}
}

func newConsole() *terminal.Console {
	return terminal.NewConsole(os.Stdin, os.Stdout)
}

func runQuiz(ctx context.Context, cont *container.Container, console *terminal.Console, mode quiz.Mode) error {
	service := cont.QuizContainer.Service

	session, err := service.StartSession(ctx, mode)
	if err != nil {
		return err
	}
	if err := cont.Navigator.Activate(screen.Quiz); err != nil {
		return err
	}

	if err := console.RunQuiz(ctx, session); err != nil {
		if errors.Is(err, terminal.ErrAborted) {
			config.WithContext(ctx).WithField("session_id", session.ID.String()).Info("Quiz session discarded")
			console.Say("Quiz closed. Answers were discarded.")
			return nil
		}
		return err
	}

	result, err := service.FinishSummary(ctx, session)
	if err != nil {
		return err
	}
	console.Say(fmt.Sprintf("%d%% correct.", result.Percent))
	return nil
}

// runOnboarding reports false without an error when the user quits.
func runOnboarding(ctx context.Context, cont *container.Container, console *terminal.Console) (bool, error) {
	service := cont.OnboardingContainer.Service

	if err := cont.Navigator.Activate(screen.Onboarding); err != nil {
		return false, err
	}

	wizard, err := service.NewWizard(ctx)
	if err != nil {
		return false, err
	}
	if err := console.RunOnboarding(ctx, wizard); err != nil {
		if errors.Is(err, terminal.ErrAborted) {
			console.Say("Onboarding cancelled.")
			return false, nil
		}
		return false, err
	}

	if _, err := service.Complete(ctx, wizard); err != nil {
		return false, err
	}
	return true, nil
}

// waitForScreen schedules the switch to id and blocks until it happens.
func waitForScreen(ctx context.Context, cont *container.Container, id string, delay time.Duration) error {
	arrived := make(chan struct{})
	var once sync.Once
	cont.Navigator.OnChange(func(active string) {
		if active == id {
			once.Do(func() { close(arrived) })
		}
	})

	if err := cont.Navigator.After(delay, id); err != nil {
		return err
	}

	select {
	case <-arrived:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
