package onboarding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNoSteps          = errors.New("wizard needs at least one step")
	ErrUnknownField     = errors.New("unknown field for current step")
	ErrAtFirstStep      = errors.New("already at first step")
	ErrWizardCompleted  = errors.New("wizard already completed")
	ErrWizardInProgress = errors.New("wizard not completed yet")
)

const fallbackMessage = "Please complete the required fields."

var validate = validator.New()

type Field struct {
	Name  string
	Label string
	Rules string
}

type Step struct {
	Title  string
	Fields []Field
}

type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Wizard walks a user through ordered steps, refusing to leave a step until
// all of its fields pass validation.
type Wizard struct {
	steps   []Step
	current int
	values  map[string]string
	done    bool
}

func NewWizard(steps []Step) (*Wizard, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}
	return &Wizard{
		steps:  steps,
		values: make(map[string]string),
	}, nil
}

type FieldView struct {
	Field
	Value string
}

type StepView struct {
	Index     int
	Total     int
	Title     string
	Fields    []FieldView
	IsLast    bool
	CanGoBack bool
	Done      bool
}

func (w *Wizard) View() StepView {
	step := w.steps[w.current]
	fields := make([]FieldView, len(step.Fields))
	for i, f := range step.Fields {
		fields[i] = FieldView{Field: f, Value: w.values[f.Name]}
	}
	return StepView{
		Index:     w.current,
		Total:     len(w.steps),
		Title:     step.Title,
		Fields:    fields,
		IsLast:    w.current == len(w.steps)-1,
		CanGoBack: !w.done && w.current > 0,
		Done:      w.done,
	}
}

func (w *Wizard) Done() bool {
	return w.done
}

func (w *Wizard) Set(name, value string) error {
	if w.done {
		return ErrWizardCompleted
	}
	for _, f := range w.steps[w.current].Fields {
		if f.Name == name {
			w.values[name] = strings.TrimSpace(value)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Next validates the current step and moves forward. On the last step a
// successful Next completes the wizard.
func (w *Wizard) Next() error {
	if w.done {
		return ErrWizardCompleted
	}
	if err := w.validateStep(); err != nil {
		return err
	}
	if w.current < len(w.steps)-1 {
		w.current++
		return nil
	}
	w.done = true
	return nil
}

func (w *Wizard) Back() error {
	if w.done {
		return ErrWizardCompleted
	}
	if w.current == 0 {
		return ErrAtFirstStep
	}
	w.current--
	return nil
}

// Values returns a copy of everything entered once the wizard is complete.
func (w *Wizard) Values() (map[string]string, error) {
	if !w.done {
		return nil, ErrWizardInProgress
	}
	out := make(map[string]string, len(w.values))
	for k, v := range w.values {
		out[k] = v
	}
	return out, nil
}

func (w *Wizard) validateStep() error {
	for _, f := range w.steps[w.current].Fields {
		if f.Rules == "" {
			continue
		}
		if err := validate.Var(w.values[f.Name], f.Rules); err != nil {
			return &ValidationError{
				Field:   f.Name,
				Message: messageFor(err),
				Err:     err,
			}
		}
	}
	return nil
}

func messageFor(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fallbackMessage
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return "Please fill out this field."
	case "email":
		return "Please enter an email address."
	case "oneof":
		return fmt.Sprintf("Please choose one of: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("Please use at least %s characters.", fe.Param())
	case "numeric", "number":
		return "Please enter a number."
	default:
		return fallbackMessage
	}
}
