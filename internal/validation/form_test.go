//go:build unit

package validation_test

import (
	"net/url"
	"testing"

	"github.com/Technologic101/nextjs-dashboard/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestFormFromValues(t *testing.T) {
	form := validation.FormFromValues(url.Values{
		"customerId": {"c-1", "c-2"},
		"amount":     {""},
		"status":     {},
	})

	v, ok := form.Get("customerId")
	assert.True(t, ok)
	assert.Equal(t, "c-1", v)

	v, ok = form.Get("amount")
	assert.True(t, ok, "an empty submitted value is still present")
	assert.Empty(t, v)

	_, ok = form.Get("status")
	assert.False(t, ok)
}
