package quiz

import "fmt"

const (
	ModeGuided   = "guided"
	ModePractice = "practice"
)

// Mode is a named engine configuration. A shuffling mode draws Count
// questions; a mode that does not shuffle presents the whole bank, and a
// zero Count stands for that.
type Mode struct {
	Name      string `mapstructure:"name"`
	Bank      string `mapstructure:"bank"`
	Count     int    `mapstructure:"count"`
	Shuffle   bool   `mapstructure:"shuffle"`
	AllowBack bool   `mapstructure:"allow_back"`
}

var AllModes = []Mode{
	{Name: ModeGuided, Bank: BankGuided, Count: 0, Shuffle: false, AllowBack: true},
	{Name: ModePractice, Bank: BankPractice, Count: 5, Shuffle: true, AllowBack: false},
}

func LookupMode(name string) (Mode, error) {
	for _, m := range AllModes {
		if m.Name == name {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

func (m Mode) prepare(bank []QuestionRecord, rnd RandSource) ([]PresentedQuestion, error) {
	if m.Shuffle {
		return Sample(bank, m.Count, rnd)
	}
	if m.Count != 0 && m.Count != len(bank) {
		return nil, fmt.Errorf("%w: mode %q does not shuffle, so it must use the whole bank", ErrInvalidSampleSize, m.Name)
	}
	return Present(bank)
}
