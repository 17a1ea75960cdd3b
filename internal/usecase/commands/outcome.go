package commands

import "github.com/Technologic101/nextjs-dashboard/internal/validation"

type OutcomeKind int

const (
	OutcomeRedirect OutcomeKind = iota + 1
	OutcomeSuccess
	OutcomeFailure
)

// Outcome is what a mutation tells the caller to do next. Failures carry a
// user-facing message and, for invalid input, the per-field errors.
type Outcome struct {
	Kind       OutcomeKind
	RedirectTo string
	Message    string
	Errors     validation.FieldErrors
}

func Redirect(path string) Outcome {
	return Outcome{Kind: OutcomeRedirect, RedirectTo: path}
}

func Success(message string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Message: message}
}

func Failure(message string, fieldErrors validation.FieldErrors) Outcome {
	return Outcome{Kind: OutcomeFailure, Message: message, Errors: fieldErrors}
}

func (o Outcome) IsRedirect() bool { return o.Kind == OutcomeRedirect }
func (o Outcome) IsFailure() bool  { return o.Kind == OutcomeFailure }
