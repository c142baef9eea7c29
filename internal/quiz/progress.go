package quiz

import "math"

type Progress struct {
	Current  int `json:"current"`
	Total    int `json:"total"`
	Percent  int `json:"percent"`
	Answered int `json:"answered"`
}

type Result struct {
	Score   int `json:"score"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// View is what a renderer needs to draw the session. It holds copies, so
// changing it does not affect the session. Question, Selection and
// the navigation flags are only meaningful while the session is in
// progress; Score only once it has finished.
type View struct {
	State        State             `json:"state"`
	Index        int               `json:"index"`
	Total        int               `json:"total"`
	Question     PresentedQuestion `json:"question"`
	Selection    int               `json:"selection"`
	HasSelection bool              `json:"has_selection"`
	IsLast       bool              `json:"is_last"`
	CanGoBack    bool              `json:"can_go_back"`
	Score        int               `json:"score"`
}

func (s *Session) Progress() Progress {
	total := len(s.questions)
	return Progress{
		Current:  s.current,
		Total:    total,
		Percent:  int(math.Round(100 * float64(s.current+1) / float64(total))),
		Answered: len(s.selections),
	}
}

func (s *Session) CurrentView() View {
	total := len(s.questions)
	if s.Finished() {
		return View{
			State: StateFinished,
			Index: s.current,
			Total: total,
			Score: s.score,
		}
	}

	sel, ok := s.selections[s.current]
	return View{
		State:        StateInProgress,
		Index:        s.current,
		Total:        total,
		Question:     s.questions[s.current].clone(),
		Selection:    sel,
		HasSelection: ok,
		IsLast:       s.current == total-1,
		CanGoBack:    s.allowBack && s.current > 0,
	}
}

// Result reports the final score. ok is false while the session is still in
// progress.
func (s *Session) Result() (Result, bool) {
	if !s.Finished() {
		return Result{}, false
	}
	total := len(s.questions)
	return Result{
		Score:   s.score,
		Total:   total,
		Percent: s.score * 100 / total,
	}, true
}

func (s *Session) Score() int {
	return s.score
}
