//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"washbook/internal/domain/user"
	reqdto "washbook/internal/handler/dto/request"
	resdto "washbook/internal/handler/dto/response"
	"washbook/tests/common/dbtest"
	"washbook/tests/common/httptest"
	"washbook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	verifyURL = "/api/auth/verify"
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

	dbtest.CreateTestUser(s.T(), s.DB, "admin@lavadero.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "inactiva@lavadero.com", string(user.RoleClerk))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactiva@lavadero.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials log in",
			email:          "admin@lavadero.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown email is rejected",
			email:          "nadie@lavadero.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password is rejected",
			email:          "admin@lavadero.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive user cannot log in",
			email:          "inactiva@lavadero.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty email is rejected",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password is rejected",
			email:          "admin@lavadero.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := reqdto.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, "unexpected status: %s", w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var resp resdto.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
				require.NotEmpty(t, resp.Token)
				require.Equal(t, tt.email, resp.User.Email)
			}
		})
	}
}

func (s *authSuite) TestVerify() {
	s.Run("valid token resolves to its user", func() {
		t := s.T()
		token := s.Login(t, "admin@lavadero.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, verifyURL, nil, token)

		var resp resdto.VerifyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Equal(t, "admin@lavadero.com", resp.User.Email)
		require.Equal(t, string(user.RoleAdmin), resp.User.Role)
	})

	s.Run("missing token is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, verifyURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("garbage token is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, verifyURL, nil, "not-a-jwt")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}
