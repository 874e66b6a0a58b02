package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/ukydev/rentpro/internal/models"
	"github.com/ukydev/rentpro/internal/store"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrReservedEmail      = errors.New("email is reserved")
	ErrSelfDelete         = errors.New("cannot delete own account")
)

// Service handles authentication, the persisted session and account
// administration. Every account, the seeded admin included, is verified
// against a bcrypt hash.
type Service struct {
	store      store.Store
	jwtSecret  []byte
	tokenExp   time.Duration
	adminEmail string
}

// NewService creates an authentication service over the given store and
// seeds the admin account if the user collection has none.
func NewService(s store.Store) (*Service, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default-secret-key-change-in-production"
	}

	exp := 24 * time.Hour
	if expStr := os.Getenv("JWT_EXPIRY"); expStr != "" {
		if parsed, err := time.ParseDuration(expStr); err == nil {
			exp = parsed
		}
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@rentpro.com"
	}

	svc := &Service{
		store:      s,
		jwtSecret:  []byte(secret),
		tokenExp:   exp,
		adminEmail: adminEmail,
	}
	if err := svc.seedAdmin(); err != nil {
		return nil, err
	}
	return svc, nil
}

// seedAdmin writes the reserved admin account when no admin exists yet.
func (s *Service) seedAdmin() error {
	users := s.store.LoadUsers()
	for _, u := range users {
		if u.Role == models.RoleAdmin {
			return nil
		}
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := s.HashPassword(password)
	if err != nil {
		return err
	}

	users = append(users, models.User{
		ID:           "admin-1",
		Email:        s.adminEmail,
		Name:         "Admin User",
		Role:         models.RoleAdmin,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	})
	if err := s.store.SaveUsers(users); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	log.WithField("email", s.adminEmail).Info("Seeded admin account")
	return nil
}

// HashPassword hashes a password using bcrypt
func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword checks if a password matches a hash
func (s *Service) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Login verifies the credentials and persists the session. Emails are
// matched exactly as stored; the password check applies to every account,
// admin or not.
func (s *Service) Login(email, password string) (models.User, error) {
	for _, u := range s.store.LoadUsers() {
		if u.Email != email {
			continue
		}
		if !s.CheckPassword(password, u.PasswordHash) {
			return models.User{}, ErrInvalidCredentials
		}
		if err := s.openSession(u); err != nil {
			return models.User{}, err
		}
		log.WithFields(log.Fields{"user_id": u.ID, "role": u.Role}).Info("User logged in")
		return u.Sanitized(), nil
	}
	return models.User{}, ErrInvalidCredentials
}

// Register creates a user account and signs it in. The role is always user;
// the reserved admin email and already-registered emails are refused.
func (s *Service) Register(email, password, name string) (models.User, error) {
	if err := s.ValidateEmail(email); err != nil {
		return models.User{}, err
	}
	if err := s.ValidatePassword(password); err != nil {
		return models.User{}, err
	}
	if err := s.ValidateName(name); err != nil {
		return models.User{}, err
	}
	if email == s.adminEmail {
		return models.User{}, ErrReservedEmail
	}

	users := s.store.LoadUsers()
	for _, u := range users {
		if u.Email == email {
			return models.User{}, ErrEmailTaken
		}
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         models.RoleUser,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.store.SaveUsers(append(users, user)); err != nil {
		return models.User{}, fmt.Errorf("failed to register user: %w", err)
	}
	if err := s.openSession(user); err != nil {
		return models.User{}, err
	}

	log.WithFields(log.Fields{"user_id": user.ID, "email": email}).Info("User registered")
	return user.Sanitized(), nil
}

// Logout clears the persisted session.
func (s *Service) Logout() error {
	return s.store.ClearSession()
}

// Current returns the signed-in identity from the persisted session. A
// missing, tampered or expired session token reads as signed out.
func (s *Service) Current() (models.User, bool) {
	session, ok := s.store.LoadSession()
	if !ok {
		return models.User{}, false
	}
	claims, err := s.ValidateToken(session.Token)
	if err != nil || claims.UserID != session.User.ID {
		return models.User{}, false
	}
	return session.User, true
}

func (s *Service) openSession(user models.User) error {
	token, err := s.GenerateToken(&user)
	if err != nil {
		return err
	}
	if err := s.store.SaveSession(models.Session{User: user.Sanitized(), Token: token}); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Users returns every account without password hashes.
func (s *Service) Users() []models.User {
	users := s.store.LoadUsers()
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	return out
}

// SetRole changes an account's role. Unknown ids and invalid roles are
// silent no-ops.
func (s *Service) SetRole(id string, role models.Role) error {
	if !models.IsValidRole(role) {
		return nil
	}
	users := s.store.LoadUsers()
	for i := range users {
		if users[i].ID == id {
			users[i].Role = role
			if err := s.store.SaveUsers(users); err != nil {
				return fmt.Errorf("failed to update role: %w", err)
			}
			return nil
		}
	}
	return nil
}

// DeleteUser removes an account. Deleting the acting account is refused;
// an unknown id is a silent no-op.
func (s *Service) DeleteUser(id, actingID string) error {
	if id == actingID {
		return ErrSelfDelete
	}
	users := s.store.LoadUsers()
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return nil
	}
	if err := s.store.SaveUsers(kept); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	log.WithField("user_id", id).Info("Deleted user")
	return nil
}

// Claims represents the session token claims.
type Claims struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	Exp    int64       `json:"exp"`
}

// GenerateToken signs a session token for a user.
func (s *Service) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenExp).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a session token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID: userID,
		Email:  email,
		Role:   models.Role(roleStr),
		Exp:    int64(exp),
	}, nil
}

// ValidatePassword validates password strength
func (s *Service) ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters long")
	}
	return nil
}

// ValidateEmail validates email format
func (s *Service) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return errors.New("invalid email format")
	}
	return nil
}

// ValidateName validates display name length
func (s *Service) ValidateName(name string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return errors.New("name must be at least 2 characters long")
	}
	if len(name) > 100 {
		return errors.New("name must be less than 100 characters")
	}
	return nil
}
