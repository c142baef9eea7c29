package onboarding

import (
	"context"
	"time"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/sirupsen/logrus"
)

type Service interface {
	NewWizard(ctx context.Context) (*Wizard, error)
	Complete(ctx context.Context, w *Wizard) (map[string]string, error)
	RedirectDelay() time.Duration
}

type service struct {
	steps []Step
	delay time.Duration
}

func NewService(steps []Step, delay time.Duration) Service {
	return &service{steps: steps, delay: delay}
}

func (s *service) NewWizard(ctx context.Context) (*Wizard, error) {
	log := config.WithContext(ctx)

	w, err := NewWizard(s.steps)
	if err != nil {
		log.WithError(err).Error("Failed to create onboarding wizard")
		return nil, err
	}

	log.WithField("steps", len(s.steps)).Debug("Onboarding started")
	return w, nil
}

func (s *service) Complete(ctx context.Context, w *Wizard) (map[string]string, error) {
	log := config.WithContext(ctx)

	values, err := w.Values()
	if err != nil {
		log.WithError(err).Warn("Onboarding completion requested too early")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"goal":  values["goal"],
		"level": values["level"],
	}).Info("Onboarding completed")
	return values, nil
}

func (s *service) RedirectDelay() time.Duration {
	return s.delay
}
