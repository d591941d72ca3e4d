//go:build unit

package user_test

import (
	"testing"

	"washbook/internal/domain/user"
	"washbook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser(t *testing.T) {
	t.Run("new user is active", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, u)

		assert.True(t, u.IsActive())
		assert.Equal(t, "Secretaria", u.Name())
		assert.Equal(t, user.RoleClerk, u.Role())
	})

	t.Run("email validation", func(t *testing.T) {
		cases := []struct {
			name  string
			email string
			errIs error
		}{
			{name: "valid email", email: "valid@example.com"},
			{name: "empty email", email: "", errIs: user.ErrInvalidEmail},
			{name: "missing at sign", email: "invalid.example.com", errIs: user.ErrInvalidEmail},
			{name: "missing tld", email: "invalid@example", errIs: user.ErrInvalidEmail},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := builder.NewUserBuilder().WithEmail(tc.email).BuildDomain()
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
				} else {
					require.NoError(t, err)
				}
			})
		}
	})

	t.Run("role validation", func(t *testing.T) {
		for _, role := range []string{"admin", "secretario"} {
			_, err := builder.NewUserBuilder().WithRole(role).BuildDomain()
			require.NoError(t, err, "role %s should be valid", role)
		}

		_, err := builder.NewUserBuilder().WithRole("gerente").BuildDomain()
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestCredentials(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		c, err := user.NewCredentials("secretaria@lavadero.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "secretaria@lavadero.com", c.Email().Value())
	})

	t.Run("short password is too weak", func(t *testing.T) {
		_, err := user.NewCredentials("secretaria@lavadero.com", "short")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})

	t.Run("email is trimmed before validation", func(t *testing.T) {
		c, err := user.NewCredentials("  secretaria@lavadero.com  ", "password123")
		require.NoError(t, err)
		assert.Equal(t, "secretaria@lavadero.com", c.Email().Value())
	})
}
