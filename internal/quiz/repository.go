package quiz

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

const (
	BankGuided   = "guided"
	BankPractice = "practice"
)

type BankRepository interface {
	GetBank(ctx context.Context, name string) ([]QuestionRecord, error)
	SaveBank(ctx context.Context, bank Bank) error
	ListBanks(ctx context.Context) []string
}

type memoryBankRepository struct {
	mu    sync.RWMutex
	banks map[string][]QuestionRecord
}

// NewRepository returns an in-memory repository holding the built-in banks.
func NewRepository() BankRepository {
	return &memoryBankRepository{
		banks: map[string][]QuestionRecord{
			BankGuided:   GuidedBank(),
			BankPractice: PracticeBank(),
		},
	}
}

func (r *memoryBankRepository) GetBank(ctx context.Context, name string) ([]QuestionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bank, ok := r.banks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBankNotFound, name)
	}
	return cloneBank(bank), nil
}

func (r *memoryBankRepository) SaveBank(ctx context.Context, bank Bank) error {
	if bank.Name == "" {
		return fmt.Errorf("%w: bank name required", ErrInvalidQuestion)
	}
	if err := ValidateBank(bank.Questions); err != nil {
		return fmt.Errorf("bank %q: %w", bank.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.banks[bank.Name] = cloneBank(bank.Questions)
	return nil
}

func (r *memoryBankRepository) ListBanks(ctx context.Context) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.banks))
	for name := range r.banks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func cloneBank(bank []QuestionRecord) []QuestionRecord {
	out := make([]QuestionRecord, len(bank))
	for i, rec := range bank {
		out[i] = QuestionRecord{
			Prompt:       rec.Prompt,
			Options:      append([]string(nil), rec.Options...),
			CorrectIndex: rec.CorrectIndex,
		}
	}
	return out
}
