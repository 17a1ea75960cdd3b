package validation

import "net/url"

// Form is raw submitted input. A missing key means the field was absent.
type Form map[string]string

func (f Form) Get(name string) (string, bool) {
	v, ok := f[name]
	return v, ok
}

// FormFromValues keeps the first value of every submitted key.
func FormFromValues(values url.Values) Form {
	form := make(Form, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			form[k] = vs[0]
		}
	}
	return form
}
