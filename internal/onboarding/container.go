package onboarding

import "github.com/saulo-duarte/chronos-quiz/internal/config"

type Container struct {
	Service Service
}

func NewContainer(cfg config.OnboardingConfig) *Container {
	return &Container{
		Service: NewService(DefaultSteps(), cfg.RedirectDelay),
	}
}
