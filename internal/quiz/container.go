package quiz

import (
	"context"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
)

type QuizContainer struct {
	Repo    BankRepository
	Service QuizService

	practiceBank  string
	practiceCount int
}

// NewQuizContainer wires the quiz feature. A configured bank file is
// imported up front and replaces the built-in practice bank.
func NewQuizContainer(ctx context.Context, cfg config.QuizConfig) (*QuizContainer, error) {
	repo := NewRepository()
	service := NewService(repo, NewRandSource(cfg.Seed))

	c := &QuizContainer{
		Repo:          repo,
		Service:       service,
		practiceBank:  BankPractice,
		practiceCount: cfg.PracticeCount,
	}

	if cfg.BankFile != "" {
		bank, err := service.ImportBank(ctx, cfg.BankFile)
		if err != nil {
			return nil, err
		}
		c.practiceBank = bank.Name
	}

	return c, nil
}

// Mode returns the named preset with configuration overrides applied.
func (c *QuizContainer) Mode(name string) (Mode, error) {
	mode, err := LookupMode(name)
	if err != nil {
		return Mode{}, err
	}
	if mode.Name == ModePractice {
		mode.Bank = c.practiceBank
		if c.practiceCount > 0 {
			mode.Count = c.practiceCount
		}
	}
	return mode, nil
}
