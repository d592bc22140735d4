package repository

import (
	"database/sql"
	"go-atm-sim/common"
	"go-atm-sim/logger"
	"go-atm-sim/model"

	"github.com/sirupsen/logrus"
)

// IBalanceRepository defines the contract for balance database operations.
type IBalanceRepository interface {
	GetBalance(accountID int) (*model.Balance, error)
	UpsertBalance(balance *model.Balance) error
}

// BalanceRepository implements IBalanceRepository.
type BalanceRepository struct {
	DB *sql.DB
}

func NewBalanceRepository(db *sql.DB) *BalanceRepository {
	return &BalanceRepository{DB: db}
}

// GetBalance returns the balance row for an account, or (nil, nil) when the
// account has never deposited or withdrawn.
func (r *BalanceRepository) GetBalance(accountID int) (*model.Balance, error) {
	log := logger.Log.WithField("account_id", accountID)

	balance := &model.Balance{}
	query := `SELECT id, account_id, balance FROM balance WHERE account_id = ? LIMIT 1`
	err := r.DB.QueryRow(query, accountID).Scan(&balance.ID, &balance.AccountID, &balance.Balance)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.WithError(err).Error("Failed to execute get balance query")
		return nil, err
	}
	return balance, nil
}

// UpsertBalance writes the balance row for an account. The conflict target is
// account_id, which keeps the row id stable across updates and enforces one
// row per account.
func (r *BalanceRepository) UpsertBalance(balance *model.Balance) error {
	if balance == nil || balance.AccountID <= 0 {
		return common.NewValidationError("accountId", "is required")
	}

	log := logger.Log.WithFields(logrus.Fields{
		"account_id": balance.AccountID,
		"balance":    balance.Balance,
	})
	log.Info("Executing query to persist balance")

	query := `INSERT INTO balance (account_id, balance) VALUES (?, ?)
		ON CONFLICT(account_id) DO UPDATE SET balance = excluded.balance`
	_, err := r.DB.Exec(query, balance.AccountID, balance.Balance)
	if err != nil {
		log.WithError(err).Error("Failed to execute persist balance query")
		return err
	}
	return nil
}
