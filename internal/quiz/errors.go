package quiz

import "errors"

var (
	ErrInvalidSampleSize     = errors.New("invalid sample size")
	ErrInvalidQuestion       = errors.New("invalid question")
	ErrInvalidOptionIndex    = errors.New("invalid option index")
	ErrNoSelectionMade       = errors.New("no option selected")
	ErrAtFirstQuestion       = errors.New("already at first question")
	ErrBackNotAllowed        = errors.New("back navigation disabled")
	ErrSessionFinished       = errors.New("quiz session finished")
	ErrSessionInProgress     = errors.New("quiz session still in progress")
	ErrBankNotFound          = errors.New("question bank not found")
	ErrUnsupportedBankFormat = errors.New("unsupported bank file format")
	ErrUnknownMode           = errors.New("unknown quiz mode")
)
