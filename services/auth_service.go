package services

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-management-backend/models"
	"hotel-management-backend/utils"
)

const (
	// SessionTimeout is the idle time after which a session is invalidated.
	SessionTimeout = 30 * time.Minute
	// SessionWarning is the remaining-time threshold for the expiry warning.
	SessionWarning = 5 * time.Minute

	maxLoginAttempts = 3
	lockoutDuration  = 15 * time.Minute
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

	hasLower   = regexp.MustCompile(`[a-z]`)
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasDigit   = regexp.MustCompile(`[0-9]`)
	hasSpecial = regexp.MustCompile(`[@$!%*?&]`)

	weakSubstrings = []string{"password", "123456", "admin", "guest", "hotel"}
)

// Session is the server-side state for one logged-in user. Tokens are opaque
// hex strings; role checks read the role captured at login time.
type Session struct {
	Token        string      `json:"-"`
	UserID       uint        `json:"user_id"`
	Username     string      `json:"username"`
	Role         models.Role `json:"role"`
	FullName     string      `json:"fullName"`
	LoginAt      time.Time   `json:"login_at"`
	LastActivity time.Time   `json:"last_activity"`
}

func (s *Session) HasRole(role models.Role) bool {
	return s != nil && s.Role == role
}

func (s *Session) IsAdmin() bool { return s.HasRole(models.RoleAdmin) }

// IsStaff reports booking-management capability: staff and admin both qualify.
func (s *Session) IsStaff() bool { return s != nil && s.Role.CanManageBookings() }

// SessionInfo is the session status exposed to clients: how long until the
// idle timeout fires and whether the expiry warning should show.
type SessionInfo struct {
	Username  string      `json:"username"`
	Role      models.Role `json:"role"`
	FullName  string      `json:"fullName"`
	Remaining int64       `json:"remaining_seconds"`
	Warning   bool        `json:"warning"`
}

type loginAttempts struct {
	count       int
	lastFailure time.Time
}

// AuthService validates credentials and owns session state: idle timeout,
// lockout bookkeeping and role checks. Sessions live in an in-memory cache
// whose janitor evicts entries that were never explicitly logged out. They are
// stored by value, so every lookup works on its own copy and concurrent
// requests carrying the same token never share mutable state.
type AuthService struct {
	DB       *gorm.DB
	sessions *cache.Cache

	mu       sync.Mutex
	attempts map[string]*loginAttempts

	// NowFunc supplies the clock for the timeout and lockout windows.
	NowFunc func() time.Time
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		DB:       db,
		sessions: cache.New(SessionTimeout, 10*time.Minute),
		attempts: make(map[string]*loginAttempts),
		NowFunc:  time.Now,
	}
}

// Authenticate checks the credentials and opens a session. After three
// consecutive failures for a username, every further attempt is rejected for
// the lockout window regardless of credential correctness; the lock clears on
// its own once the window elapses.
func (s *AuthService) Authenticate(username, password string) (*Session, error) {
	username = strings.TrimSpace(username)

	if locked, remaining := s.isLockedOut(username); locked {
		return nil, fmt.Errorf("%w: try again in %d minute(s)",
			ErrAccountLocked, int(remaining.Minutes())+1)
	}

	if err := ValidateUsername(username); err != nil {
		s.recordFailure(username)
		return nil, err
	}
	if password == "" {
		s.recordFailure(username)
		return nil, validationf("password cannot be empty")
	}

	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.recordFailure(username)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		s.recordFailure(username)
		return nil, ErrInvalidCredentials
	}

	s.resetFailures(username)

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := s.NowFunc()
	session := Session{
		Token:        token,
		UserID:       user.ID,
		Username:     user.Username,
		Role:         user.Role,
		FullName:     user.FullName,
		LoginAt:      now,
		LastActivity: now,
	}
	s.sessions.Set(token, session, SessionTimeout)

	log.Printf("login successful for %s (role %s)", user.Username, user.Role)
	return &session, nil
}

// ValidateSession resolves a token, enforcing the idle timeout. A valid
// lookup counts as activity and slides the expiry window forward.
func (s *AuthService) ValidateSession(token string) (*Session, error) {
	value, found := s.sessions.Get(token)
	if !found {
		return nil, ErrSessionExpired
	}
	session := value.(Session)

	if s.NowFunc().Sub(session.LastActivity) > SessionTimeout {
		s.sessions.Delete(token)
		return nil, ErrSessionExpired
	}

	session.LastActivity = s.NowFunc()
	s.sessions.Set(token, session, SessionTimeout)
	return &session, nil
}

// IsLoggedIn reports whether the token still maps to a live session. Unlike
// ValidateSession it does not refresh the activity clock.
func (s *AuthService) IsLoggedIn(token string) bool {
	value, found := s.sessions.Get(token)
	if !found {
		return false
	}
	session := value.(Session)
	if s.NowFunc().Sub(session.LastActivity) > SessionTimeout {
		s.sessions.Delete(token)
		return false
	}
	return true
}

// Logout drops the session. Unknown tokens are a no-op.
func (s *AuthService) Logout(token string) {
	if value, found := s.sessions.Get(token); found {
		log.Printf("logout for %s", value.(Session).Username)
	}
	s.sessions.Delete(token)
}

// GetSessionInfo returns the remaining idle time and the warning flag. The
// lookup deliberately does not count as activity: clients poll this endpoint
// to drive the expiry warning, and polling must not keep the session alive.
func (s *AuthService) GetSessionInfo(token string) (*SessionInfo, error) {
	value, found := s.sessions.Get(token)
	if !found {
		return nil, ErrSessionExpired
	}
	session := value.(Session)

	remaining := SessionTimeout - s.NowFunc().Sub(session.LastActivity)
	if remaining <= 0 {
		s.sessions.Delete(token)
		return nil, ErrSessionExpired
	}

	return &SessionInfo{
		Username:  session.Username,
		Role:      session.Role,
		FullName:  session.FullName,
		Remaining: int64(remaining.Seconds()),
		Warning:   remaining <= SessionWarning,
	}, nil
}

// ChangePassword verifies the current password and applies the password
// policy to the new one.
func (s *AuthService) ChangePassword(session *Session, currentPassword, newPassword string) error {
	if session == nil {
		return ErrSessionExpired
	}

	var user models.User
	if err := s.DB.First(&user, session.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", ErrNotFound, session.UserID)
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)) != nil {
		return validationf("current password is incorrect")
	}
	if currentPassword == newPassword {
		return validationf("new password must be different from current password")
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.DB.Model(&user).Update("password", string(hash)).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	log.Printf("password changed for %s", user.Username)
	return nil
}

func (s *AuthService) isLockedOut(username string) (bool, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[username]
	if !ok || attempt.count < maxLoginAttempts {
		return false, 0
	}

	expiry := attempt.lastFailure.Add(lockoutDuration)
	if s.NowFunc().Before(expiry) {
		return true, expiry.Sub(s.NowFunc())
	}

	// Lockout window elapsed.
	delete(s.attempts, username)
	return false, 0
}

func (s *AuthService) recordFailure(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[username]
	if !ok {
		attempt = &loginAttempts{}
		s.attempts[username] = attempt
	}
	attempt.count++
	attempt.lastFailure = s.NowFunc()

	if attempt.count >= maxLoginAttempts {
		log.Printf("account %q locked after %d failed login attempts", username, attempt.count)
	}
}

func (s *AuthService) resetFailures(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, username)
}

// ValidateUsername enforces the 3-20 character alphanumeric/underscore rule.
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return validationf("username cannot be empty")
	}
	if len(username) < 3 {
		return validationf("username must be at least 3 characters long")
	}
	if len(username) > 20 {
		return validationf("username cannot exceed 20 characters")
	}
	if !usernamePattern.MatchString(username) {
		return validationf("username can only contain letters, numbers, and underscores")
	}
	return nil
}

// ValidatePassword enforces the account-creation password policy. Login never
// applies this: existing credentials predating a policy change must keep
// working.
func ValidatePassword(password string) error {
	if password == "" {
		return validationf("password cannot be empty")
	}
	if len(password) < 8 {
		return validationf("password must be at least 8 characters long")
	}
	if len(password) > 128 {
		return validationf("password cannot exceed 128 characters")
	}
	if !hasLower.MatchString(password) {
		return validationf("password must contain at least one lowercase letter")
	}
	if !hasUpper.MatchString(password) {
		return validationf("password must contain at least one uppercase letter")
	}
	if !hasDigit.MatchString(password) {
		return validationf("password must contain at least one digit")
	}
	if !hasSpecial.MatchString(password) {
		return validationf("password must contain at least one special character (@$!%%*?&)")
	}

	lower := strings.ToLower(password)
	for _, weak := range weakSubstrings {
		if strings.Contains(lower, weak) {
			return validationf("password contains common weak patterns")
		}
	}
	return nil
}
