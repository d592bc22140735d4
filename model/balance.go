package model

// Balance holds the current funds of an account in minor currency units
// (cents). Exactly one row per account once the first deposit or withdrawal
// creates it; the implicit prior value is 0. Individual transactions are not
// tracked.
type Balance struct {
	ID        int   `json:"id"`
	AccountID int   `json:"account_id"`
	Balance   int64 `json:"balance"`
}
