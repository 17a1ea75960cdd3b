package response

import (
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/commands"
	"github.com/Technologic101/nextjs-dashboard/internal/validation"
)

// FormState is the body of every mutation response that is not a redirect.
type FormState struct {
	Message string                 `json:"message"`
	Errors  validation.FieldErrors `json:"errors,omitempty"`
}

func FromOutcome(o commands.Outcome) FormState {
	return FormState{
		Message: o.Message,
		Errors:  o.Errors,
	}
}

func Message(msg string) FormState {
	return FormState{Message: msg}
}
