package container

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/onboarding"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"github.com/saulo-duarte/chronos-quiz/internal/screen"
)

type Container struct {
	Config              *config.Config
	QuizContainer       *quiz.QuizContainer
	OnboardingContainer *onboarding.Container
	Navigator           *screen.Navigator
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	if err := config.InitLogger(cfg.Log); err != nil {
		return nil, err
	}
	log := config.WithContext(ctx)

	quizContainer, err := quiz.NewQuizContainer(ctx, cfg.Quiz)
	if err != nil {
		log.WithError(err).Error("Failed to build quiz container")
		return nil, fmt.Errorf("quiz: %w", err)
	}

	onboardingContainer := onboarding.NewContainer(cfg.Onboarding)

	navigator, err := screen.NewNavigator(screen.AllScreens, screen.Home, screen.ClockScheduler())
	if err != nil {
		return nil, err
	}
	navigator.OnChange(func(id string) {
		log.WithField("screen", id).Debug("Screen activated")
	})

	log.WithField("banks", quizContainer.Service.ListBanks(ctx)).Debug("Container ready")

	return &Container{
		Config:              cfg,
		QuizContainer:       quizContainer,
		OnboardingContainer: onboardingContainer,
		Navigator:           navigator,
	}, nil
}

func (c *Container) Close() error {
	return config.CloseLogger()
}
