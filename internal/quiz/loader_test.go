package quiz_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const yamlBank = `name: statistics
questions:
  - prompt: What does the median measure?
    options:
      - Spread
      - Central tendency
    correct_index: 1
  - prompt: Which value appears most often?
    options: [Mode, Mean, Range]
    correct_index: 0
`

func TestLoadBankFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		bank, err := quiz.LoadBankFile(writeFile(t, "stats.yaml", yamlBank))
		require.NoError(t, err)

		assert.Equal(t, "statistics", bank.Name)
		require.Len(t, bank.Questions, 2)
		assert.Equal(t, []string{"Mode", "Mean", "Range"}, bank.Questions[1].Options)
		assert.Equal(t, 1, bank.Questions[0].CorrectIndex)
	})

	t.Run("json without a name uses the file name", func(t *testing.T) {
		content := `{"questions":[{"prompt":"2+2?","options":["3","4"],"correct_index":1}]}`

		bank, err := quiz.LoadBankFile(writeFile(t, "arithmetic.json", content))
		require.NoError(t, err)

		assert.Equal(t, "arithmetic", bank.Name)
		require.Len(t, bank.Questions, 1)
		assert.Equal(t, "4", bank.Questions[0].Options[bank.Questions[0].CorrectIndex])
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := quiz.LoadBankFile(writeFile(t, "bank.txt", yamlBank))
		assert.ErrorIs(t, err, quiz.ErrUnsupportedBankFormat)
	})

	t.Run("no questions", func(t *testing.T) {
		_, err := quiz.LoadBankFile(writeFile(t, "empty.yml", "name: empty\n"))
		assert.ErrorIs(t, err, quiz.ErrInvalidSampleSize)
	})

	t.Run("invalid question", func(t *testing.T) {
		content := `{"questions":[{"prompt":"?","options":["only"],"correct_index":0}]}`

		_, err := quiz.LoadBankFile(writeFile(t, "bad.json", content))
		assert.ErrorIs(t, err, quiz.ErrInvalidQuestion)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := quiz.LoadBankFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := quiz.LoadBankFile(writeFile(t, "broken.yaml", "questions: [\n"))
		assert.Error(t, err)
	})
}
