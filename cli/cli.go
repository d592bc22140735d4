package cli

import (
	"go-atm-sim/logger"
	"go-atm-sim/repository"
	"go-atm-sim/service"
	"strings"
)

// CLI dispatches one action per invocation against the wired services.
type CLI struct {
	accounts repository.IAccountRepository
	sessions *service.SessionService
	balances *service.BalanceService
}

func New(accounts repository.IAccountRepository, sessions *service.SessionService, balances *service.BalanceService) *CLI {
	return &CLI{
		accounts: accounts,
		sessions: sessions,
		balances: balances,
	}
}

// Run parses the action argument and executes it, reporting success. All
// outcomes are communicated through log lines.
func (c *CLI) Run(args []string) bool {
	if len(args) == 0 {
		printUsage()
		return false
	}

	action, ok := ParseArg(args, "action")
	if !ok {
		logger.Log.Warn("no action arg found")
		printUsage()
		return false
	}

	switch strings.ToLower(action) {
	case "createaccount":
		return c.createAccount(args)
	case "login":
		return c.login(args)
	case "viewbalance":
		return c.viewBalance(args)
	case "deposit":
		return c.deposit(args)
	case "withdraw":
		return c.withdraw(args)
	default:
		logger.Log.WithField("action", action).Warn("unknown action")
		printUsage()
		return false
	}
}

func printUsage() {
	logger.Log.Info("ATM Simulator. Can create accounts, view balances, make deposits (in cents), and withdrawals (in cents).")
	logger.Log.Info("First login to get a valid token, and use that to make a deposit, a withdrawal, or view the balance.")
	logger.Log.Info("action=<CreateAccount|Login|ViewBalance|Deposit|Withdraw>")
	logger.Log.Info("examples")
	logger.Log.Info("action=CreateAccount username=<username> pin=<pin>")
	logger.Log.Info("action=Login username=<username> pin=<pin>")
	logger.Log.Info("action=ViewBalance token=<token>")
	logger.Log.Info("action=Deposit token=<token> amount=<amount>")
	logger.Log.Info("action=Withdraw token=<token> amount=<amount>")
}
