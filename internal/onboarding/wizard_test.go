package onboarding_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/onboarding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultWizard(t *testing.T) *onboarding.Wizard {
	t.Helper()
	w, err := onboarding.NewWizard(onboarding.DefaultSteps())
	require.NoError(t, err)
	return w
}

func fillAll(t *testing.T, w *onboarding.Wizard, values map[string]string) {
	t.Helper()
	for !w.Done() {
		for _, f := range w.View().Fields {
			require.NoError(t, w.Set(f.Name, values[f.Name]))
		}
		require.NoError(t, w.Next())
	}
}

var validProfile = map[string]string{
	"name":         "Ada Lovelace",
	"email":        "ada@example.com",
	"goal":         "career",
	"level":        "beginner",
	"weekly_hours": "6",
}

func TestNewWizard(t *testing.T) {
	_, err := onboarding.NewWizard(nil)
	assert.ErrorIs(t, err, onboarding.ErrNoSteps)

	w := newDefaultWizard(t)
	view := w.View()
	assert.Equal(t, 0, view.Index)
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, "About you", view.Title)
	assert.False(t, view.CanGoBack)
	assert.False(t, view.IsLast)
	require.Len(t, view.Fields, 2)
	assert.Equal(t, "name", view.Fields[0].Name)
}

func TestWizard_Next(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]string
		field   string
		message string
	}{
		{
			name:    "missing name",
			values:  map[string]string{"email": "ada@example.com"},
			field:   "name",
			message: "Please fill out this field.",
		},
		{
			name:    "short name",
			values:  map[string]string{"name": "A", "email": "ada@example.com"},
			field:   "name",
			message: "Please use at least 2 characters.",
		},
		{
			name:    "bad email",
			values:  map[string]string{"name": "Ada", "email": "ada"},
			field:   "email",
			message: "Please enter an email address.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newDefaultWizard(t)
			for k, v := range tt.values {
				require.NoError(t, w.Set(k, v))
			}

			err := w.Next()

			var verr *onboarding.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.message, verr.Message)
			assert.Equal(t, 0, w.View().Index)
		})
	}
}

func TestWizard_StepMessages(t *testing.T) {
	w := newDefaultWizard(t)
	require.NoError(t, w.Set("name", "Ada"))
	require.NoError(t, w.Set("email", "ada@example.com"))
	require.NoError(t, w.Next())

	require.NoError(t, w.Set("goal", "fame"))
	require.NoError(t, w.Set("level", "beginner"))

	var verr *onboarding.ValidationError
	require.True(t, errors.As(w.Next(), &verr))
	assert.Equal(t, "Please choose one of: career, hobby, research.", verr.Message)

	require.NoError(t, w.Set("goal", "hobby"))
	require.NoError(t, w.Next())

	require.NoError(t, w.Set("weekly_hours", "ten"))
	require.True(t, errors.As(w.Next(), &verr))
	assert.Equal(t, "weekly_hours", verr.Field)
	assert.Equal(t, "Please enter a number.", verr.Message)
}

func TestWizard_Set(t *testing.T) {
	w := newDefaultWizard(t)

	err := w.Set("goal", "career")
	assert.ErrorIs(t, err, onboarding.ErrUnknownField)

	require.NoError(t, w.Set("name", "  Ada  "))
	assert.Equal(t, "Ada", w.View().Fields[0].Value)
}

func TestWizard_Back(t *testing.T) {
	w := newDefaultWizard(t)
	assert.ErrorIs(t, w.Back(), onboarding.ErrAtFirstStep)

	require.NoError(t, w.Set("name", "Ada"))
	require.NoError(t, w.Set("email", "ada@example.com"))
	require.NoError(t, w.Next())
	assert.True(t, w.View().CanGoBack)

	require.NoError(t, w.Back())
	view := w.View()
	assert.Equal(t, 0, view.Index)
	assert.Equal(t, "Ada", view.Fields[0].Value)
}

func TestWizard_Complete(t *testing.T) {
	w := newDefaultWizard(t)

	_, err := w.Values()
	assert.ErrorIs(t, err, onboarding.ErrWizardInProgress)

	fillAll(t, w, validProfile)

	assert.True(t, w.Done())
	assert.True(t, w.View().Done)
	assert.False(t, w.View().CanGoBack)

	values, err := w.Values()
	require.NoError(t, err)
	assert.Equal(t, validProfile, values)

	values["name"] = "changed"
	again, err := w.Values()
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", again["name"])

	assert.ErrorIs(t, w.Next(), onboarding.ErrWizardCompleted)
	assert.ErrorIs(t, w.Back(), onboarding.ErrWizardCompleted)
	assert.ErrorIs(t, w.Set("weekly_hours", "2"), onboarding.ErrWizardCompleted)
}

func TestWizard_FieldWithoutRules(t *testing.T) {
	w, err := onboarding.NewWizard([]onboarding.Step{
		{Title: "Optional", Fields: []onboarding.Field{{Name: "nickname", Label: "Nickname"}}},
	})
	require.NoError(t, err)

	require.NoError(t, w.Next())
	assert.True(t, w.Done())
}

func TestService(t *testing.T) {
	ctx := config.ContextWithRunID(context.Background(), "onboarding-test")
	c := onboarding.NewContainer(config.OnboardingConfig{RedirectDelay: 900 * time.Millisecond})

	assert.Equal(t, 900*time.Millisecond, c.Service.RedirectDelay())

	w, err := c.Service.NewWizard(ctx)
	require.NoError(t, err)

	_, err = c.Service.Complete(ctx, w)
	assert.ErrorIs(t, err, onboarding.ErrWizardInProgress)

	fillAll(t, w, validProfile)

	values, err := c.Service.Complete(ctx, w)
	require.NoError(t, err)
	assert.Equal(t, "career", values["goal"])

	_, err = onboarding.NewService(nil, 0).NewWizard(ctx)
	assert.ErrorIs(t, err, onboarding.ErrNoSteps)
}
