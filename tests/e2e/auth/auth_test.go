//go:build e2e

package auth_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/Technologic101/nextjs-dashboard/internal/handler/api"
	"github.com/Technologic101/nextjs-dashboard/tests/common/dbtest"
	"github.com/Technologic101/nextjs-dashboard/tests/common/httptest"
	"github.com/Technologic101/nextjs-dashboard/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL     = "/login"
	dashboardURL = "/dashboard"

	userEmail    = "user@nextmail.com"
	userPassword = "123456"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	dbtest.CreateTestUser(s.T(), s.DB, "User", userEmail, userPassword)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "valid credentials redirect to the dashboard",
			email:          userEmail,
			password:       userPassword,
			expectedStatus: http.StatusSeeOther,
		},
		{
			name:           "unknown user",
			email:          "nobody@nextmail.com",
			password:       userPassword,
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    api.MsgInvalidCredentials,
		},
		{
			name:           "wrong password",
			email:          userEmail,
			password:       "654321",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    api.MsgInvalidCredentials,
		},
		{
			name:           "password shorter than six characters",
			email:          userEmail,
			password:       "12345",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    api.MsgInvalidCredentials,
		},
		{
			name:           "malformed email",
			email:          "not-an-email",
			password:       userPassword,
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    api.MsgInvalidCredentials,
		},
		{
			name:           "empty email",
			email:          "",
			password:       userPassword,
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    api.MsgInvalidCredentials,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			form := url.Values{"email": {tt.email}, "password": {tt.password}}
			w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, loginURL, form)

			if tt.expectedStatus == http.StatusSeeOther {
				httptest.AssertRedirect(t, w, dashboardURL)
				return
			}
			require.Empty(t, httptest.Location(w))
			httptest.AssertFormState(t, w, tt.expectedStatus, tt.expectedMsg)
		})
	}
}

func (s *authSuite) TestLoginMultipart() {
	s.Run("browser FormData submissions are accepted", func() {
		form := url.Values{"email": {userEmail}, "password": {userPassword}}
		w := httptest.PerformMultipartRequest(s.T(), s.Router, http.MethodPost, loginURL, form)
		httptest.AssertRedirect(s.T(), w, dashboardURL)
	})
}
