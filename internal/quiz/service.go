package quiz

import (
	"context"
	"sync"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/sirupsen/logrus"
)

type QuizService interface {
	StartSession(ctx context.Context, mode Mode) (*Session, error)
	FinishSummary(ctx context.Context, session *Session) (Result, error)
	ImportBank(ctx context.Context, path string) (Bank, error)
	ListBanks(ctx context.Context) []string
}

type quizService struct {
	repo BankRepository

	mu  sync.Mutex
	rnd RandSource
}

func NewService(repo BankRepository, rnd RandSource) QuizService {
	return &quizService{
		repo: repo,
		rnd:  rnd,
	}
}

func (s *quizService) StartSession(ctx context.Context, mode Mode) (*Session, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"mode": mode.Name,
		"bank": mode.Bank,
	})
	log.Debug("Starting quiz session")

	bank, err := s.repo.GetBank(ctx, mode.Bank)
	if err != nil {
		log.WithError(err).Warn("Question bank lookup failed")
		return nil, err
	}

	s.mu.Lock()
	questions, err := mode.prepare(bank, s.rnd)
	s.mu.Unlock()
	if err != nil {
		log.WithError(err).Error("Failed to prepare questions")
		return nil, err
	}

	session, err := NewSession(questions,
		WithModeName(mode.Name),
		WithBackNavigation(mode.AllowBack),
	)
	if err != nil {
		log.WithError(err).Error("Failed to create quiz session")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"session_id": session.ID.String(),
		"questions":  session.Len(),
	}).Info("Quiz session started")
	return session, nil
}

func (s *quizService) FinishSummary(ctx context.Context, session *Session) (Result, error) {
	log := config.WithContext(ctx).WithField("session_id", session.ID.String())

	result, ok := session.Result()
	if !ok {
		log.Warn("Summary requested before the quiz was finished")
		return Result{}, ErrSessionInProgress
	}

	log.WithFields(logrus.Fields{
		"score":   result.Score,
		"total":   result.Total,
		"percent": result.Percent,
	}).Info("Quiz session finished")
	return result, nil
}

func (s *quizService) ImportBank(ctx context.Context, path string) (Bank, error) {
	log := config.WithContext(ctx).WithField("path", path)

	bank, err := LoadBankFile(path)
	if err != nil {
		log.WithError(err).Error("Failed to load question bank")
		return Bank{}, err
	}

	if err := s.repo.SaveBank(ctx, bank); err != nil {
		log.WithError(err).Error("Failed to register question bank")
		return Bank{}, err
	}

	log.WithFields(logrus.Fields{
		"bank":      bank.Name,
		"questions": len(bank.Questions),
	}).Info("Question bank imported")
	return bank, nil
}

func (s *quizService) ListBanks(ctx context.Context) []string {
	return s.repo.ListBanks(ctx)
}
