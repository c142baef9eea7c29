package terminal

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
)

// RunQuiz drives session until it finishes or the user quits, re-rendering
// after every command.
func (c *Console) RunQuiz(ctx context.Context, session *quiz.Session) error {
	c.renderer.RenderQuiz(session.CurrentView(), session.Progress())

	for !session.Finished() {
		line, err := c.readLine(ctx)
		if err != nil {
			return err
		}

		msg, quit := handleQuizCommand(session, line)
		if quit {
			return ErrAborted
		}

		c.renderer.RenderQuiz(session.CurrentView(), session.Progress())
		c.renderer.RenderMessage(msg)
	}
	return nil
}

func handleQuizCommand(s *quiz.Session, line string) (string, bool) {
	switch cmd := strings.ToLower(line); cmd {
	case "":
		return "", false
	case "q", "quit":
		return "", true
	case "n", "next":
		return quizMessage(s.Advance()), false
	case "b", "back":
		return quizMessage(s.GoBack()), false
	default:
		n, err := strconv.Atoi(cmd)
		if err != nil {
			return "Unknown command.", false
		}
		return quizMessage(s.SelectOption(n - 1)), false
	}
}

func quizMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, quiz.ErrNoSelectionMade):
		return "Pick an answer to continue."
	case errors.Is(err, quiz.ErrAtFirstQuestion):
		return "This is the first question."
	case errors.Is(err, quiz.ErrBackNotAllowed):
		return "This quiz only moves forward."
	case errors.Is(err, quiz.ErrInvalidOptionIndex):
		return "Unknown option."
	case errors.Is(err, quiz.ErrSessionFinished):
		return "The quiz is already finished."
	default:
		return err.Error()
	}
}
