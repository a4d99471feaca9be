package identity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	roleID := uuid.New()

	t.Run("creates active user with hashed password", func(t *testing.T) {
		user, err := NewUser("Reception.One", "secret1234", roleID)
		require.NoError(t, err)

		assert.Equal(t, "reception.one", user.Username) // lowercased
		assert.Equal(t, UserStatusActive, user.Status)
		assert.Equal(t, roleID, user.RoleID)
		assert.NotEqual(t, "secret1234", user.PasswordHash)
		assert.True(t, user.VerifyPassword("secret1234"))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		_, err := NewUser("reception", "short1", roleID)
		assert.Error(t, err)

		_, err = NewUser("reception", "onlyletters", roleID)
		assert.Error(t, err)

		_, err = NewUser("reception", "12345678", roleID)
		assert.Error(t, err)
	})

	t.Run("rejects invalid usernames", func(t *testing.T) {
		_, err := NewUser("ab", "secret1234", roleID)
		assert.Error(t, err)

		_, err = NewUser("bad user!", "secret1234", roleID)
		assert.Error(t, err)
	})

	t.Run("requires a role", func(t *testing.T) {
		_, err := NewUser("reception", "secret1234", uuid.Nil)
		assert.Error(t, err)
	})
}

func TestUser_PasswordChange(t *testing.T) {
	user, err := NewUser("reception", "secret1234", uuid.New())
	require.NoError(t, err)

	assert.Error(t, user.ChangePassword("wrongold", "newpass123"))

	require.NoError(t, user.ChangePassword("secret1234", "newpass123"))
	assert.True(t, user.VerifyPassword("newpass123"))
	assert.False(t, user.VerifyPassword("secret1234"))
}

func TestUser_Lockout(t *testing.T) {
	user, err := NewUser("reception", "secret1234", uuid.New())
	require.NoError(t, err)

	locked := user.RecordLoginFailure(3, time.Hour)
	assert.False(t, locked)
	locked = user.RecordLoginFailure(3, time.Hour)
	assert.False(t, locked)
	locked = user.RecordLoginFailure(3, time.Hour)
	assert.True(t, locked)

	assert.True(t, user.IsLocked())
	assert.False(t, user.CanLogin())

	require.NoError(t, user.Activate())
	assert.True(t, user.CanLogin())
	assert.Zero(t, user.FailedAttempts)

	user.RecordLoginSuccess("10.0.0.5")
	assert.NotNil(t, user.LastLoginAt)
	assert.Equal(t, "10.0.0.5", user.LastLoginIP)
}

func TestUser_Deactivate(t *testing.T) {
	user, err := NewUser("reception", "secret1234", uuid.New())
	require.NoError(t, err)

	require.NoError(t, user.Deactivate())
	assert.False(t, user.CanLogin())
	assert.Error(t, user.Deactivate())
}
