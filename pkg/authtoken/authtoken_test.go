package authtoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	token, err := mgr.Issue("user-1", RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.Validate(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.SubjectID)
	require.Equal(t, RoleUser, claims.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).Issue("user-1", RoleUser)
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Validate(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	// TTL заведомо за пределами leeway
	token, err := NewManager("secret", -time.Hour).Issue("user-1", RoleUser)
	require.NoError(t, err)

	_, err = NewManager("secret", -time.Hour).Validate(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := NewManager("secret", time.Hour).Validate("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAdminRoleRoundTrip(t *testing.T) {
	mgr := NewManager("secret", time.Hour)

	token, err := mgr.Issue("admin-1", RoleAdmin)
	require.NoError(t, err)

	claims, err := mgr.Validate(token)
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, claims.Role)
}
