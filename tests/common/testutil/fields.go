//go:build unit || e2e

package testutil

import "net/url"

// a helper function for dynamically modifying form fields in tests
func Field(key string, value any) func(url.Values) {
	return func(v url.Values) {
		s, ok := value.(string)
		if value == nil || !ok {
			v.Del(key)
			return
		}
		v.Set(key, s)
	}
}
