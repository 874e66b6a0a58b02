package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/rentpro/internal/models"
	"github.com/ukydev/rentpro/internal/store"
)

func newService(t *testing.T) (*Service, store.Store) {
	t.Helper()
	s := store.NewMemory()
	svc, err := NewService(s)
	require.NoError(t, err)
	return svc, s
}

func TestNewService_SeedsAdmin(t *testing.T) {
	svc, s := newService(t)

	users := s.LoadUsers()
	require.Len(t, users, 1)
	assert.Equal(t, "admin@rentpro.com", users[0].Email)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.NotEmpty(t, users[0].PasswordHash)
	assert.NotEqual(t, "admin123", users[0].PasswordHash)

	// A second open over the same store must not duplicate the admin
	_, err := NewService(s)
	require.NoError(t, err)
	assert.Len(t, s.LoadUsers(), 1)
	assert.Len(t, svc.Users(), 1)
}

func TestLogin_Admin(t *testing.T) {
	svc, _ := newService(t)

	user, err := svc.Login("admin@rentpro.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Empty(t, user.PasswordHash)

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login("admin@rentpro.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, ok := svc.Current()
	assert.False(t, ok)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login("nobody@rentpro.com", "whatever1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EmailCaseSensitive(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login("Admin@Rentpro.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister(t *testing.T) {
	svc, s := newService(t)

	user, err := svc.Register("jane@example.com", "password123", "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role, "self-registration never grants admin")
	assert.NotEmpty(t, user.ID)

	// Registration signs the user in
	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)

	// Password is stored hashed, and the new user can log back in with it
	require.NoError(t, svc.Logout())
	stored := s.LoadUsers()[1]
	assert.NotEqual(t, "password123", stored.PasswordHash)
	_, err = svc.Login("jane@example.com", "password123")
	assert.NoError(t, err)
}

func TestRegister_ReservedAdminEmail(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register("admin@rentpro.com", "password123", "Imposter")
	assert.ErrorIs(t, err, ErrReservedEmail)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register("jane@example.com", "password123", "Jane Doe")
	require.NoError(t, err)
	_, err = svc.Register("jane@example.com", "otherpass1", "Second Jane")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register("not-an-email", "password123", "Jane")
	assert.Error(t, err)
	_, err = svc.Register("jane@example.com", "short", "Jane")
	assert.Error(t, err)
	_, err = svc.Register("jane@example.com", "password123", " ")
	assert.Error(t, err)
}

func TestLogout(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login("admin@rentpro.com", "admin123")
	require.NoError(t, err)
	require.NoError(t, svc.Logout())

	_, ok := svc.Current()
	assert.False(t, ok)
}

func TestCurrent_RejectsTamperedToken(t *testing.T) {
	svc, s := newService(t)

	_, err := svc.Login("admin@rentpro.com", "admin123")
	require.NoError(t, err)

	session, ok := s.LoadSession()
	require.True(t, ok)
	session.Token = session.Token + "x"
	require.NoError(t, s.SaveSession(session))

	_, ok = svc.Current()
	assert.False(t, ok)
}

func TestCurrent_SurvivesRestart(t *testing.T) {
	s := store.NewMemory()
	svc, err := NewService(s)
	require.NoError(t, err)
	user, err := svc.Login("admin@rentpro.com", "admin123")
	require.NoError(t, err)

	// A fresh service over the same store resumes the session
	svc2, err := NewService(s)
	require.NoError(t, err)
	current, ok := svc2.Current()
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestTokenRoundTrip(t *testing.T) {
	svc, _ := newService(t)

	user := &models.User{ID: "u1", Email: "a@b.com", Role: models.RoleUser}
	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Greater(t, claims.Exp, time.Now().Unix())

	_, err = svc.ValidateToken("invalid-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSetRole(t *testing.T) {
	svc, s := newService(t)
	user, err := svc.Register("jane@example.com", "password123", "Jane Doe")
	require.NoError(t, err)

	require.NoError(t, svc.SetRole(user.ID, models.RoleAdmin))
	for _, u := range s.LoadUsers() {
		if u.ID == user.ID {
			assert.Equal(t, models.RoleAdmin, u.Role)
		}
	}

	// Invalid role and unknown id are no-ops
	assert.NoError(t, svc.SetRole(user.ID, models.Role("manager")))
	assert.NoError(t, svc.SetRole("nonexistent-id", models.RoleUser))
}

func TestDeleteUser(t *testing.T) {
	svc, s := newService(t)
	user, err := svc.Register("jane@example.com", "password123", "Jane Doe")
	require.NoError(t, err)
	admin := s.LoadUsers()[0]

	// An admin cannot delete their own account through this pathway
	assert.ErrorIs(t, svc.DeleteUser(admin.ID, admin.ID), ErrSelfDelete)

	require.NoError(t, svc.DeleteUser(user.ID, admin.ID))
	assert.Len(t, s.LoadUsers(), 1)

	// Unknown id is a no-op
	assert.NoError(t, svc.DeleteUser("nonexistent-id", admin.ID))
}

func TestUsers_Sanitized(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Register("jane@example.com", "password123", "Jane Doe")
	require.NoError(t, err)

	for _, u := range svc.Users() {
		assert.Empty(t, u.PasswordHash)
	}
}
