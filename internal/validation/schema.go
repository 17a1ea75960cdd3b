package validation

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Coercer converts a raw value into a typed one. present is false when the
// field was not submitted at all; ok is false when coercion failed.
type Coercer func(raw string, present bool) (value any, ok bool)

// Check is a constraint on a coerced value. Every failing check contributes its message.
type Check struct {
	Test    func(v any) bool
	Message string
}

type Field struct {
	Name string
	// Message is reported when the value is absent or cannot be coerced.
	Message string
	Coerce  Coercer
	Checks  []Check
}

// Values are the coerced field values handed to a schema's constructor.
type Values map[string]any

func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v Values) Decimal(name string) decimal.Decimal {
	d, _ := v[name].(decimal.Decimal)
	return d
}

type Schema[T any] struct {
	fields []Field
	build  func(Values) T
}

func NewSchema[T any](build func(Values) T, fields ...Field) Schema[T] {
	return Schema[T]{fields: fields, build: build}
}

// Omit returns a copy of the schema without the named fields.
func (s Schema[T]) Omit(names ...string) Schema[T] {
	fields := make([]Field, 0, len(s.fields))
	for _, f := range s.fields {
		if !slices.Contains(names, f.Name) {
			fields = append(fields, f)
		}
	}
	return Schema[T]{fields: fields, build: s.build}
}

func (s Schema[T]) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// SafeParse never fails hard; the outcome is carried in the Result.
func (s Schema[T]) SafeParse(form Form) Result[T] {
	values := make(Values, len(s.fields))
	fieldErrors := FieldErrors{}

	for _, f := range s.fields {
		raw, present := form.Get(f.Name)
		v, ok := f.Coerce(raw, present)
		if !ok {
			fieldErrors.Add(f.Name, f.Message)
			continue
		}
		for _, c := range f.Checks {
			if !c.Test(v) {
				fieldErrors.Add(f.Name, c.Message)
			}
		}
		values[f.Name] = v
	}

	if len(fieldErrors) > 0 {
		return Failure[T](fieldErrors)
	}
	return Success(s.build(values))
}

// Parse is the parse-or-fail variant: invalid input yields a *Error.
func (s Schema[T]) Parse(form Form) (T, error) {
	res := s.SafeParse(form)
	if !res.OK() {
		var zero T
		return zero, &Error{Fields: res.Errors()}
	}
	return res.Data(), nil
}
