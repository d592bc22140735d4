package cli

import (
	"go-atm-sim/common"
	"go-atm-sim/logger"
	"go-atm-sim/model"
	"strconv"
)

func (c *CLI) createAccount(args []string) bool {
	username, _ := ParseArg(args, "username")
	pin, _ := ParseArg(args, "pin")

	req := model.CreateAccountRequest{Username: username, PIN: pin}
	if err := common.ValidateStruct(req); err != nil {
		logger.Log.WithError(err).Warn("cannot create an account without a username and a 4-digit pin")
		printUsage()
		return false
	}

	if _, err := c.accounts.CreateAccount(req.Username, req.PIN); err != nil {
		logger.Log.WithError(err).Error("user creation failed")
		return false
	}

	logger.Log.Info("user created successfully")
	return true
}

func (c *CLI) login(args []string) bool {
	username, _ := ParseArg(args, "username")
	pin, _ := ParseArg(args, "pin")

	req := model.LoginRequest{Username: username, PIN: pin}
	if err := common.ValidateStruct(req); err != nil {
		logger.Log.WithError(err).Warn("cannot login without a username and pin")
		printUsage()
		return false
	}

	token, err := c.sessions.Login(req.Username, req.PIN)
	if err != nil {
		logger.Log.Warn("login failed")
		return false
	}

	logger.Log.Infof("login success, your session token is %s", token)
	return true
}

func (c *CLI) viewBalance(args []string) bool {
	token, _ := ParseArg(args, "token")

	req := model.TokenRequest{Token: token}
	if err := common.ValidateStruct(req); err != nil {
		logger.Log.Warn("must provide a valid token to view a balance")
		return false
	}

	balance, err := c.balances.ViewBalance(req.Token)
	if err != nil {
		logger.Log.WithError(err).Warn("could not view balance")
		return false
	}

	logger.Log.Infof("your balance is %d cents", balance)
	return true
}

func (c *CLI) deposit(args []string) bool {
	req, ok := c.amountRequest(args, "deposit")
	if !ok {
		return false
	}

	newBalance, err := c.balances.Deposit(req.Token, req.Amount)
	if err != nil {
		logger.Log.WithError(err).Warn("deposit failed")
		return false
	}

	logger.Log.Infof("your new balance is %d cents", newBalance)
	return true
}

func (c *CLI) withdraw(args []string) bool {
	req, ok := c.amountRequest(args, "withdrawal")
	if !ok {
		return false
	}

	newBalance, err := c.balances.Withdraw(req.Token, req.Amount)
	if err != nil {
		logger.Log.WithError(err).Warn("withdrawal failed")
		return false
	}

	logger.Log.Infof("your new balance is %d cents", newBalance)
	return true
}

func (c *CLI) amountRequest(args []string, verb string) (model.AmountRequest, bool) {
	token, _ := ParseArg(args, "token")
	amountArg, _ := ParseArg(args, "amount")

	amount, err := strconv.ParseInt(amountArg, 10, 64)
	if err != nil {
		logger.Log.Warnf("must provide a valid amount to make a %s", verb)
		return model.AmountRequest{}, false
	}

	req := model.AmountRequest{Token: token, Amount: amount}
	if err := common.ValidateStruct(req); err != nil {
		logger.Log.WithError(err).Warnf("must provide a valid token and a positive amount to make a %s", verb)
		return model.AmountRequest{}, false
	}
	return req, true
}
