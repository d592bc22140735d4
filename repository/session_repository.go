package repository

import (
	"database/sql"
	"go-atm-sim/common"
	"go-atm-sim/logger"
	"go-atm-sim/model"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ISessionRepository defines the contract for session database operations.
// Lookups by account and by token are two distinct queries on purpose; the
// uniqueness of both columns guarantees at most one row either way.
type ISessionRepository interface {
	GetSessionByAccountID(accountID int) (*model.Session, error)
	GetSessionByToken(token uuid.UUID) (*model.Session, error)
	UpsertSession(accountID int, token uuid.UUID, expires time.Time) error
}

// SessionRepository implements ISessionRepository.
type SessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// GetSessionByAccountID returns the session row for an account, or (nil, nil)
// when none exists.
func (r *SessionRepository) GetSessionByAccountID(accountID int) (*model.Session, error) {
	query := `SELECT id, account_id, token, expires FROM session WHERE account_id = ? LIMIT 1`
	return r.querySession(query, accountID)
}

// GetSessionByToken returns the session row holding the token, or (nil, nil)
// when none exists.
func (r *SessionRepository) GetSessionByToken(token uuid.UUID) (*model.Session, error) {
	query := `SELECT id, account_id, token, expires FROM session WHERE token = ? LIMIT 1`
	return r.querySession(query, token.String())
}

func (r *SessionRepository) querySession(query string, arg interface{}) (*model.Session, error) {
	session := &model.Session{}
	var token string
	err := r.DB.QueryRow(query, arg).Scan(&session.ID, &session.AccountID, &token, &session.Expires)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute get session query")
		return nil, err
	}

	session.Token, err = uuid.Parse(token)
	if err != nil {
		logger.Log.WithError(err).Error("Stored session token is not a valid UUID")
		return nil, err
	}
	return session, nil
}

// UpsertSession writes the session row for an account, replacing the token
// and expiry when a row already exists. Expiry must be strictly in the
// future at write time.
func (r *SessionRepository) UpsertSession(accountID int, token uuid.UUID, expires time.Time) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"expires":    expires,
	})

	if accountID <= 0 {
		return common.NewValidationError("accountId", "is required")
	}
	if token == uuid.Nil {
		return common.NewValidationError("token", "is required")
	}
	if !expires.After(time.Now()) {
		return common.NewValidationError("expires", "must be strictly in the future")
	}

	log.Info("Executing query to persist session")

	query := `INSERT INTO session (account_id, token, expires) VALUES (?, ?, ?)
		ON CONFLICT(account_id) DO UPDATE SET token = excluded.token, expires = excluded.expires`
	_, err := r.DB.Exec(query, accountID, token.String(), expires)
	if err != nil {
		log.WithError(err).Error("Failed to execute persist session query")
		return err
	}
	return nil
}
