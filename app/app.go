package app

import (
	"go-atm-sim/cli"
	"go-atm-sim/config"
	"go-atm-sim/db"
	"go-atm-sim/logger"
	"go-atm-sim/repository"
	"go-atm-sim/service"
	"time"
)

// Run wires the layers together, executes a single CLI action end-to-end and
// returns the process exit code. The database handle is released on every
// exit path.
func Run(args []string) int {
	config.LoadConfig(".")
	logger.Init()

	database, err := db.Connect()
	if err != nil {
		logger.Log.WithError(err).Error("Error connecting to the database")
		return 1
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		logger.Log.WithError(err).Error("Error preparing the database schema")
		return 1
	}

	accountRepo := repository.NewAccountRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	balanceRepo := repository.NewBalanceRepository(database)

	ttl := time.Duration(config.AppConfig.Session.TTLMinutes) * time.Minute
	sessionService := service.NewSessionService(accountRepo, sessionRepo, ttl)
	balanceService := service.NewBalanceService(sessionService, balanceRepo)

	if ok := cli.New(accountRepo, sessionService, balanceService).Run(args); !ok {
		return 1
	}
	return 0
}
