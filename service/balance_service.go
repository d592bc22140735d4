package service

import (
	"fmt"
	"go-atm-sim/common"
	"go-atm-sim/logger"
	"go-atm-sim/model"
	"go-atm-sim/repository"

	"github.com/sirupsen/logrus"
)

// BalanceService handles the read-modify-write protocol for balances. Every
// operation first resolves the presented token to an account.
type BalanceService struct {
	sessions    *SessionService
	balanceRepo repository.IBalanceRepository
}

func NewBalanceService(sessions *SessionService, balanceRepo repository.IBalanceRepository) *BalanceService {
	return &BalanceService{
		sessions:    sessions,
		balanceRepo: balanceRepo,
	}
}

// ViewBalance returns the current balance in cents. An account without a
// balance row has a balance of 0. Pure read, no write.
func (s *BalanceService) ViewBalance(token string) (int64, error) {
	accountID, err := s.sessions.Resolve(token)
	if err != nil {
		return 0, err
	}

	row, err := s.balanceRepo.GetBalance(accountID)
	if err != nil {
		return 0, fmt.Errorf("could not read balance: %w", err)
	}
	if row == nil {
		return 0, nil
	}
	return row.Balance, nil
}

// Deposit adds amount cents to the account's balance and returns the new
// balance.
func (s *BalanceService) Deposit(token string, amount int64) (int64, error) {
	return s.applyDelta(token, amount)
}

// Withdraw subtracts amount cents from the account's balance and returns the
// new balance. There is no overdraft check; balances may go negative.
func (s *BalanceService) Withdraw(token string, amount int64) (int64, error) {
	return s.applyDelta(token, -amount)
}

func (s *BalanceService) applyDelta(token string, delta int64) (int64, error) {
	accountID, err := s.sessions.Resolve(token)
	if err != nil {
		return 0, err
	}

	row, err := s.balanceRepo.GetBalance(accountID)
	if err != nil {
		return 0, fmt.Errorf("could not read balance: %w", err)
	}

	var current int64
	if row != nil {
		current = row.Balance
	}

	newBalance, err := addChecked(current, delta)
	if err != nil {
		return 0, err
	}

	// Reuse the existing row so its id stays stable across updates.
	if row == nil {
		row = &model.Balance{AccountID: accountID}
	}
	row.Balance = newBalance

	if err := s.balanceRepo.UpsertBalance(row); err != nil {
		return 0, fmt.Errorf("could not persist balance: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"balance":    newBalance,
	}).Info("Balance updated")
	return newBalance, nil
}

// addChecked rejects updates that would wrap around int64 rather than
// saturating, so a failed operation never fabricates a balance.
func addChecked(current, delta int64) (int64, error) {
	sum := current + delta
	if (delta > 0 && sum < current) || (delta < 0 && sum > current) {
		return 0, common.NewValidationError("amount", "overflows the account balance")
	}
	return sum, nil
}
