package api

import (
	"errors"
	"net/http"

	reqdto "washbook/internal/handler/dto/request"
	resdto "washbook/internal/handler/dto/response"
	"washbook/internal/handler/middleware"
	"washbook/internal/usecase/commands"
	"washbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
	}
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email y contraseña son requeridos",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Credenciales inválidas",
			})
		case errors.Is(err, commands.ErrAuthenticationFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Credenciales inválidas",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		Message: "Login exitoso",
		Token:   result.Token,
		User:    resdto.FromUserView(result.User),
	})
}

// @Summary Verify token
// @Description Confirm the bearer token is valid and return its user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.VerifyResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Usuario no autenticado",
		})
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Usuario no encontrado",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.VerifyResponse{User: resdto.FromUserView(view)})
}
