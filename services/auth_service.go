package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/dgf281219-blip/metodo/models"
)

// SessionTTL is how long an exchanged session stays valid.
const SessionTTL = 7 * 24 * time.Hour

// ErrInvalidSession covers every way the exchange with the identity
// provider can fail; callers treat it as the caller's fault.
var ErrInvalidSession = errors.New("invalid session_id")

type AuthService struct {
	db       *gorm.DB
	identity *IdentityService
	now      func() time.Time
}

func NewAuthService(db *gorm.DB, identity *IdentityService) *AuthService {
	return &AuthService{db: db, identity: identity, now: time.Now}
}

// ProcessSession exchanges a one-time session id, finds or creates the
// user behind the returned email, and stores a session row with a 7-day
// expiry. The returned token is what the client presents afterwards.
func (s *AuthService) ProcessSession(sessionID string) (*models.User, string, error) {
	data, err := s.identity.ExchangeSession(sessionID)
	if err != nil {
		// Surfaced as a client error; the cause stays server-side.
		log.WithError(err).Error("session exchange failed")
		return nil, "", ErrInvalidSession
	}

	var user models.User
	err = s.db.Where("email = ?", data.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			UserID:  fmt.Sprintf("user_%s", strings.ReplaceAll(uuid.NewString(), "-", "")[:12]),
			Email:   data.Email,
			Name:    data.Name,
			Picture: data.Picture,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, "", err
		}
	} else if err != nil {
		return nil, "", err
	}

	session := models.UserSession{
		UserID:       user.UserID,
		SessionToken: data.SessionToken,
		ExpiresAt:    s.now().UTC().Add(SessionTTL),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, "", err
	}

	return &user, data.SessionToken, nil
}

// UserForToken resolves a bearer token to its user. A nil user with a nil
// error means "unauthenticated": unknown token, lapsed expiry, or a session
// whose owner no longer exists. Lapsed sessions are not deleted here.
func (s *AuthService) UserForToken(token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	var session models.UserSession
	err := s.db.Where("session_token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if session.ExpiresAt.Before(s.now().UTC()) {
		return nil, nil
	}

	var user models.User
	err = s.db.Where("user_id = ?", session.UserID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout deletes the session row for the given token.
func (s *AuthService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.db.Where("session_token = ?", token).Delete(&models.UserSession{}).Error
}
