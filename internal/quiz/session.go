package quiz

import (
	"fmt"

	"github.com/google/uuid"
)

type State string

const (
	StateInProgress State = "IN_PROGRESS"
	StateFinished   State = "FINISHED"
)

// Session is one attempt at a quiz. It is owned by a single caller and is
// not safe for concurrent use.
type Session struct {
	ID   uuid.UUID
	Mode string

	questions  []PresentedQuestion
	current    int
	selections map[int]int
	state      State
	score      int
	allowBack  bool
}

type SessionOption func(*Session)

func WithBackNavigation(allow bool) SessionOption {
	return func(s *Session) { s.allowBack = allow }
}

func WithModeName(name string) SessionOption {
	return func(s *Session) { s.Mode = name }
}

func NewSession(questions []PresentedQuestion, opts ...SessionOption) (*Session, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: session needs at least one question", ErrInvalidSampleSize)
	}

	s := &Session{
		ID:         uuid.New(),
		questions:  make([]PresentedQuestion, len(questions)),
		selections: make(map[int]int, len(questions)),
		state:      StateInProgress,
	}
	for i, q := range questions {
		s.questions[i] = q.clone()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Finished() bool {
	return s.state == StateFinished
}

func (s *Session) Len() int {
	return len(s.questions)
}

func (s *Session) AllowsBack() bool {
	return s.allowBack
}

// SelectOption records index as the answer to the current question,
// replacing any earlier selection.
func (s *Session) SelectOption(index int) error {
	if s.Finished() {
		return ErrSessionFinished
	}

	q := s.questions[s.current]
	if index < 0 || index >= len(q.Options) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidOptionIndex, index, len(q.Options))
	}

	s.selections[s.current] = index
	return nil
}

// Selection returns the recorded answer for question i.
func (s *Session) Selection(i int) (int, bool) {
	sel, ok := s.selections[i]
	return sel, ok
}

// Advance moves to the next question, or finishes the session and computes
// the score when the current question is the last one.
func (s *Session) Advance() error {
	if s.Finished() {
		return ErrSessionFinished
	}
	if _, ok := s.selections[s.current]; !ok {
		return ErrNoSelectionMade
	}

	if s.current < len(s.questions)-1 {
		s.current++
		return nil
	}

	s.score = s.computeScore()
	s.state = StateFinished
	return nil
}

func (s *Session) GoBack() error {
	if s.Finished() {
		return ErrSessionFinished
	}
	if !s.allowBack {
		return ErrBackNotAllowed
	}
	if s.current == 0 {
		return ErrAtFirstQuestion
	}

	s.current--
	return nil
}

func (s *Session) computeScore() int {
	score := 0
	for i, q := range s.questions {
		if sel, ok := s.selections[i]; ok && sel == q.CorrectIndex {
			score++
		}
	}
	return score
}
