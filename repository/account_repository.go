package repository

import (
	"database/sql"
	"go-atm-sim/common"
	"go-atm-sim/logger"
	"go-atm-sim/model"
	"regexp"
	"strings"
)

// IAccountRepository defines the contract for account database operations.
type IAccountRepository interface {
	CreateAccount(username, pin string) (*model.Account, error)
	GetAccount(username, pin string) (*model.Account, error)
}

// AccountRepository implements IAccountRepository.
type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

// CreateAccount validates and inserts a new account. The unique constraint on
// username surfaces as the driver error.
func (r *AccountRepository) CreateAccount(username, pin string) (*model.Account, error) {
	log := logger.Log.WithField("username", username)

	if strings.TrimSpace(username) == "" {
		return nil, common.NewValidationError("username", "cannot be blank or empty")
	}
	if !pinPattern.MatchString(pin) {
		return nil, common.NewValidationError("pin", "must be exactly 4 digits")
	}

	log.Info("Executing query to create a new account")

	query := `INSERT INTO account (username, pin) VALUES (?, ?)`
	result, err := r.DB.Exec(query, username, pin)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.WithError(err).Error("Failed to read new account id")
		return nil, err
	}

	return &model.Account{ID: int(id), Username: username, PIN: pin}, nil
}

// GetAccount looks up an account by exact username and pin match. Returns
// (nil, nil) when no account matches.
func (r *AccountRepository) GetAccount(username, pin string) (*model.Account, error) {
	log := logger.Log.WithField("username", username)

	account := &model.Account{}
	query := `SELECT id, username, pin FROM account WHERE username = ? AND pin = ? LIMIT 1`
	err := r.DB.QueryRow(query, username, pin).Scan(&account.ID, &account.Username, &account.PIN)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.WithError(err).Error("Failed to execute get account query")
		return nil, err
	}
	return account, nil
}
