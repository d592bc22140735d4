package model

// Account identifies a user of the ATM. The id is what the session and
// balance tables key on; username and pin exist only for login.
type Account struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	PIN      string `json:"-"` // never exposed once stored
}
