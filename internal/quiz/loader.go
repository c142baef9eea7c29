package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadBankFile reads a bank from a .yaml, .yml or .json file. When the file
// does not name the bank, the file name without extension is used.
func LoadBankFile(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, fmt.Errorf("failed to read bank file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))

	var bank Bank
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &bank)
	case ".json":
		err = json.Unmarshal(data, &bank)
	default:
		return Bank{}, fmt.Errorf("%w: %q", ErrUnsupportedBankFormat, ext)
	}
	if err != nil {
		return Bank{}, fmt.Errorf("failed to decode bank file %s: %w", path, err)
	}

	if bank.Name == "" {
		bank.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if len(bank.Questions) == 0 {
		return Bank{}, fmt.Errorf("%w: bank %q has no questions", ErrInvalidSampleSize, bank.Name)
	}
	if err := ValidateBank(bank.Questions); err != nil {
		return Bank{}, fmt.Errorf("bank %q: %w", bank.Name, err)
	}

	return bank, nil
}
