//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"washbook/internal/handler/api"
	resdto "washbook/internal/handler/dto/response"
	"washbook/internal/usecase/commands"
	"washbook/internal/usecase/queries"
	"washbook/tests/common/builder"
	"washbook/tests/common/httptest"
	"washbook/tests/common/testutil"
	commandsmock "washbook/tests/mock/commands"
	queriesmock "washbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/verify", func(c *gin.Context) {
		// Mock middleware behavior for /auth/verify
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", int64(1))
		}
		s.handler.Verify(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().BuildReadModel()
	expectedToken := "test-jwt-token"

	s.Run("success: returns 200 OK with token and user", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(&commands.LoginResult{Token: expectedToken, User: returnUser}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(expectedToken, response.Token)
		s.Equal(returnUser.Email, response.User.Email)
		s.Equal(returnUser.Role, response.User.Role)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty email", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "password below 8 chars", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Credenciales inválidas",
			},
			{
				name:           "authentication failed",
				commandsError:  commands.ErrAuthenticationFailed,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Credenciales inválidas",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Error interno del servidor",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestVerify() {
	url := "/auth/verify"
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns the token's user", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), int64(1)).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.VerifyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.User.Email)
	})

	s.Run("error: 401 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 404 when the user vanished or is inactive", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), int64(1)).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Usuario no encontrado")
	})
}
