package service

import (
	"fmt"
	"go-atm-sim/common"
	"go-atm-sim/logger"
	"go-atm-sim/repository"
	"time"

	"github.com/google/uuid"
)

// SessionService decides whether an existing session can be reused or must be
// replaced, and resolves presented tokens back to an account.
type SessionService struct {
	accountRepo repository.IAccountRepository
	sessionRepo repository.ISessionRepository
	ttl         time.Duration
}

func NewSessionService(accountRepo repository.IAccountRepository, sessionRepo repository.ISessionRepository, ttl time.Duration) *SessionService {
	return &SessionService{
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		ttl:         ttl,
	}
}

// Login authenticates the credentials and returns a session token. A still
// active session is reused as-is; otherwise a fresh token is minted with a
// new expiry and upserted over the old row.
func (s *SessionService) Login(username, pin string) (string, error) {
	log := logger.Log.WithField("username", username)

	account, err := s.accountRepo.GetAccount(username, pin)
	if err != nil {
		return "", fmt.Errorf("could not look up account: %w", err)
	}
	if account == nil {
		log.Info("No account matched the supplied credentials")
		return "", common.ErrInvalidCredentials
	}

	session, err := s.sessionRepo.GetSessionByAccountID(account.ID)
	if err != nil {
		return "", fmt.Errorf("could not look up session: %w", err)
	}

	now := time.Now()
	if session != nil && session.ActiveAt(now) {
		log.WithField("account_id", account.ID).Debug("Found active session, reusing its token")
		return session.Token.String(), nil
	}

	log.WithField("account_id", account.ID).Info("No active session found, creating a new one")

	token := uuid.New()
	expires := now.Add(s.ttl)
	if err := s.sessionRepo.UpsertSession(account.ID, token, expires); err != nil {
		return "", fmt.Errorf("could not persist session: %w", err)
	}
	return token.String(), nil
}

// Resolve maps a presented token to its account id, enforcing expiry. Every
// failure mode comes back as ErrInvalidToken.
func (s *SessionService) Resolve(token string) (int, error) {
	parsed, err := uuid.Parse(token)
	if err != nil {
		logger.Log.Info("Presented token is not a valid UUID")
		return 0, common.ErrInvalidToken
	}

	session, err := s.sessionRepo.GetSessionByToken(parsed)
	if err != nil {
		return 0, fmt.Errorf("could not look up session: %w", err)
	}
	if session == nil || !session.ActiveAt(time.Now()) {
		logger.Log.Info("Session was not found, or has expired")
		return 0, common.ErrInvalidToken
	}
	return session.AccountID, nil
}
