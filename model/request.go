package model

// CreateAccountRequest defines the inputs for creating a new account.
// It includes validation tags to ensure data integrity at the entry point.
type CreateAccountRequest struct {
	Username string `validate:"required"`
	PIN      string `validate:"required,len=4,numeric"`
}

// LoginRequest defines the inputs for authenticating an account. The pin
// format is deliberately not checked here; a malformed pin simply fails the
// credential lookup.
type LoginRequest struct {
	Username string `validate:"required"`
	PIN      string `validate:"required"`
}

// TokenRequest defines the inputs for viewing a balance.
type TokenRequest struct {
	Token string `validate:"required"`
}

// AmountRequest defines the inputs for deposits and withdrawals. Amounts are
// whole cents and must be positive.
type AmountRequest struct {
	Token  string `validate:"required"`
	Amount int64  `validate:"required,gt=0"`
}
