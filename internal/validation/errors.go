package validation

import (
	"slices"
	"strings"

	"github.com/Technologic101/nextjs-dashboard/internal/pkg/errs"
)

var ErrValidation = errs.New("validation failed")

// FieldErrors maps an input field name to its human-readable messages.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Fields returns the failing field names in sorted order.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

// Error is returned by Schema.Parse when the input does not satisfy the schema.
type Error struct {
	Fields FieldErrors
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Fields.Fields(), ", ")
}

func (e *Error) Is(target error) bool {
	return target == ErrValidation
}
