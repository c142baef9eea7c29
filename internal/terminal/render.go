package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/saulo-duarte/chronos-quiz/internal/onboarding"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
)

type Renderer interface {
	RenderQuiz(view quiz.View, progress quiz.Progress)
	RenderStep(view onboarding.StepView)
	RenderPrompt(label, current string)
	RenderMessage(msg string)
}

type textRenderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) Renderer {
	return &textRenderer{w: w}
}

func (r *textRenderer) RenderQuiz(view quiz.View, progress quiz.Progress) {
	if view.State == quiz.StateFinished {
		fmt.Fprintf(r.w, "\nQuiz complete. Score: %d/%d\n", view.Score, view.Total)
		return
	}

	fmt.Fprintf(r.w, "\nQuestion %d of %d  %s %d%%\n", progress.Current+1, progress.Total, progressBar(progress.Percent, 20), progress.Percent)
	fmt.Fprintf(r.w, "%s\n", view.Question.Prompt)
	for i, option := range view.Question.Options {
		marker := " "
		if view.HasSelection && view.Selection == i {
			marker = "x"
		}
		fmt.Fprintf(r.w, "  [%s] %d. %s\n", marker, i+1, option)
	}

	next := "n=Next"
	if view.IsLast {
		next = "n=Finish"
	}
	actions := []string{fmt.Sprintf("1-%d=Select", len(view.Question.Options)), next}
	if view.CanGoBack {
		actions = append(actions, "b=Back")
	}
	actions = append(actions, "q=Quit")
	fmt.Fprintf(r.w, "%s\n", strings.Join(actions, "  "))
}

func (r *textRenderer) RenderStep(view onboarding.StepView) {
	fmt.Fprintf(r.w, "\nStep %d of %d: %s\n", view.Index+1, view.Total, view.Title)
}

func (r *textRenderer) RenderPrompt(label, current string) {
	if current != "" {
		fmt.Fprintf(r.w, "%s [%s]: ", label, current)
		return
	}
	fmt.Fprintf(r.w, "%s: ", label)
}

func (r *textRenderer) RenderMessage(msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintf(r.w, "%s\n", msg)
}

func progressBar(percent, width int) string {
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
