package terminal

import (
	"context"
	"errors"

	"github.com/saulo-duarte/chronos-quiz/internal/onboarding"
)

const (
	cmdBack = ":back"
	cmdQuit = ":quit"
)

// RunOnboarding prompts for every field of the current step, then tries to
// move on. An empty answer keeps the value already entered.
func (c *Console) RunOnboarding(ctx context.Context, w *onboarding.Wizard) error {
	for !w.Done() {
		view := w.View()
		c.renderer.RenderStep(view)

		back, err := c.fillStep(ctx, w, view)
		if err != nil {
			return err
		}
		if back {
			if err := w.Back(); errors.Is(err, onboarding.ErrAtFirstStep) {
				c.renderer.RenderMessage("This is the first step.")
			} else if err != nil {
				return err
			}
			continue
		}

		var verr *onboarding.ValidationError
		if err := w.Next(); errors.As(err, &verr) {
			c.renderer.RenderMessage(verr.Message)
		} else if err != nil {
			return err
		}
	}

	c.renderer.RenderMessage("You're all set! Redirecting to the course list.")
	return nil
}

func (c *Console) fillStep(ctx context.Context, w *onboarding.Wizard, view onboarding.StepView) (bool, error) {
	for _, f := range view.Fields {
		c.renderer.RenderPrompt(f.Label, f.Value)

		line, err := c.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch line {
		case cmdQuit:
			return false, ErrAborted
		case cmdBack:
			return true, nil
		case "":
			continue
		}
		if err := w.Set(f.Name, line); err != nil {
			return false, err
		}
	}
	return false, nil
}
