//go:build unit || e2e

package builder

import "net/url"

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "user@nextmail.com",
		Password: "123456",
	}
}

func (a *AuthBuilder) BuildValues() url.Values {
	return url.Values{
		"email":    {a.Email},
		"password": {a.Password},
	}
}
