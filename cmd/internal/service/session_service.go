package service

import (
	"errors"
	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/utils"
	"newsnotes/cmd/internal/utils/apierror"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

var ErrNoSession = errors.New("no active session")

type SessionRepository interface {
	Save(session *entity.Session) error
	FindActive(id string, now int64) (*entity.Session, error)
	Delete(id string) error
	DeleteExpired(before int64) (int64, error)
}

type SessionService struct {
	SessionRepo SessionRepository
	UserRepo    UserRepository
	Signer      *utils.TokenSigner
	TTL         time.Duration
}

func NewSessionService(sessionRepo SessionRepository, userRepo UserRepository, signer *utils.TokenSigner, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = entity.DefaultSessionTTL
	}
	return &SessionService{
		SessionRepo: sessionRepo,
		UserRepo:    userRepo,
		Signer:      signer,
		TTL:         ttl,
	}
}

// Start opens a new session for user and returns the signed cookie token.
func (s *SessionService) Start(user *entity.User) (string, apierror.ErrorResponse) {
	now := utils.NowUTC()
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now + s.TTL.Milliseconds(),
		CreatedAt: now,
	}

	if err := s.SessionRepo.Save(session); err != nil {
		log.Errorf("failed to save session for user %d: %v", user.ID, err)
		return "", apierror.InternalServerError
	}

	token, err := s.Signer.Sign(&utils.TokenData{
		Sub:       strconv.FormatInt(user.ID, 10),
		SessionID: session.ID,
		Exp:       session.ExpiresAt,
	})
	if err != nil {
		log.Errorf("failed to sign session token for user %d: %v", user.ID, err)
		return "", apierror.InternalServerError
	}
	return token, nil
}

// Resolve turns a cookie token back into its user and session ID.
// It returns ErrNoSession for any token that should be treated as anonymous.
func (s *SessionService) Resolve(token string) (*entity.User, string, error) {
	data, err := s.Signer.ValidateToken(token)
	if err != nil {
		return nil, "", ErrNoSession
	}

	userID, err := data.UserID()
	if err != nil {
		return nil, "", ErrNoSession
	}

	session, err := s.SessionRepo.FindActive(data.SessionID, utils.NowUTC())
	if err != nil {
		return nil, "", err
	}

	if session == nil || session.UserID != userID {
		return nil, "", ErrNoSession
	}

	user, err := s.UserRepo.FindActiveByID(userID)
	if err != nil {
		return nil, "", err
	}

	if user == nil {
		// User deleted in DB but still has a valid session???
		_ = s.SessionRepo.Delete(session.ID)
		return nil, "", ErrNoSession
	}
	return user, session.ID, nil
}

func (s *SessionService) End(sessionID string) apierror.ErrorResponse {
	if sessionID == "" {
		return nil
	}

	if err := s.SessionRepo.Delete(sessionID); err != nil {
		log.Errorf("failed to delete session %s: %v", sessionID, err)
		return apierror.InternalServerError
	}
	return nil
}

// SweepExpired deletes sessions that are already past their expiry.
func (s *SessionService) SweepExpired() (int64, error) {
	return s.SessionRepo.DeleteExpired(utils.NowUTC())
}
