package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RandSource is the uniform generator used for shuffling. *rand.Rand
// satisfies it.
type RandSource interface {
	Intn(n int) int
}

// NewRandSource returns a generator seeded with seed, or with the current
// time when seed is zero.
func NewRandSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (r QuestionRecord) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}
	if r.CorrectIndex >= len(r.Options) {
		return fmt.Errorf("%w: correct index %d out of range for %d options", ErrInvalidQuestion, r.CorrectIndex, len(r.Options))
	}
	return nil
}

func ValidateBank(bank []QuestionRecord) error {
	for i, rec := range bank {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
	}
	return nil
}

// Sample draws count distinct records from bank in random order and shuffles
// the options of each one. The bank is not modified.
func Sample(bank []QuestionRecord, count int, rnd RandSource) ([]PresentedQuestion, error) {
	if count <= 0 || count > len(bank) {
		return nil, fmt.Errorf("%w: requested %d of %d questions", ErrInvalidSampleSize, count, len(bank))
	}
	if err := ValidateBank(bank); err != nil {
		return nil, err
	}

	order := permutation(len(bank), rnd)[:count]

	presented := make([]PresentedQuestion, 0, count)
	for _, idx := range order {
		presented = append(presented, shuffleOptions(bank[idx], idx, rnd))
	}
	return presented, nil
}

// Present returns the whole bank in its original order with options
// untouched.
func Present(bank []QuestionRecord) ([]PresentedQuestion, error) {
	if len(bank) == 0 {
		return nil, fmt.Errorf("%w: empty bank", ErrInvalidSampleSize)
	}
	if err := ValidateBank(bank); err != nil {
		return nil, err
	}

	presented := make([]PresentedQuestion, len(bank))
	for i, rec := range bank {
		options := make([]string, len(rec.Options))
		copy(options, rec.Options)
		presented[i] = PresentedQuestion{
			Prompt:       rec.Prompt,
			Options:      options,
			CorrectIndex: rec.CorrectIndex,
			SourceIndex:  i,
		}
	}
	return presented, nil
}

// permutation is a Fisher-Yates shuffle of [0, n).
func permutation(n int, rnd RandSource) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// shuffleOptions tracks the correct option by its original index so
// duplicated option text cannot move the answer.
func shuffleOptions(rec QuestionRecord, source int, rnd RandSource) PresentedQuestion {
	perm := permutation(len(rec.Options), rnd)

	options := make([]string, len(perm))
	correct := 0
	for pos, orig := range perm {
		options[pos] = rec.Options[orig]
		if orig == rec.CorrectIndex {
			correct = pos
		}
	}

	return PresentedQuestion{
		Prompt:       rec.Prompt,
		Options:      options,
		CorrectIndex: correct,
		SourceIndex:  source,
	}
}
