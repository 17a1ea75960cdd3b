package validation

// Result holds either parsed data or field errors, never both.
type Result[T any] struct {
	data   T
	errors FieldErrors
}

func Success[T any](data T) Result[T] {
	return Result[T]{data: data}
}

// Failure panics on an empty error set: a failed result must say why.
func Failure[T any](fieldErrors FieldErrors) Result[T] {
	if len(fieldErrors) == 0 {
		panic("validation.Failure: fieldErrors cannot be empty")
	}
	return Result[T]{errors: fieldErrors}
}

func (r Result[T]) OK() bool {
	return r.errors == nil
}

func (r Result[T]) Data() T {
	return r.data
}

func (r Result[T]) Errors() FieldErrors {
	return r.errors
}
