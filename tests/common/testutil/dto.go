//go:build unit || e2e

package testutil

import "net/url"

// FormValues copies base and applies muts to the copy.
func FormValues(base url.Values, muts ...func(url.Values)) url.Values {
	v := make(url.Values, len(base))
	for k, vs := range base {
		v[k] = append([]string(nil), vs...)
	}
	for _, f := range muts {
		f(v)
	}
	return v
}
