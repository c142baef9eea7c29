package quiz

type QuestionRecord struct {
	Prompt       string   `json:"prompt" yaml:"prompt" validate:"required"`
	Options      []string `json:"options" yaml:"options" validate:"min=2,dive,required"`
	CorrectIndex int      `json:"correct_index" yaml:"correct_index" validate:"gte=0"`
}

// PresentedQuestion is a QuestionRecord ready for display. Options may be
// permuted; CorrectIndex always points at the source's correct option.
type PresentedQuestion struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	SourceIndex  int      `json:"source_index"`
}

func (q PresentedQuestion) CorrectOption() string {
	return q.Options[q.CorrectIndex]
}

func (q PresentedQuestion) clone() PresentedQuestion {
	q.Options = append([]string(nil), q.Options...)
	return q
}

type Bank struct {
	Name      string           `json:"name" yaml:"name"`
	Questions []QuestionRecord `json:"questions" yaml:"questions"`
}
