package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mockbank/ledger/internal/config"
	"github.com/mockbank/ledger/internal/ledger"
	"github.com/mockbank/ledger/internal/models"
	"github.com/mockbank/ledger/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting bank ledger demo",
		"overdraft_limit", cfg.App.OverdraftLimit,
		"log_level", cfg.Logger.Level,
	)

	account := ledger.NewAccountWithOverdraft(cfg.App.OverdraftLimit)

	account.Deposit(money(logger, 100), time.Now().UTC())
	withdraw(logger, account, 20)
	withdraw(logger, account, 200)
	account.Deposit(money(logger, 50), time.Now().UTC())
	withdraw(logger, account, 120)

	fmt.Println(render.Render(account.Statement()))
}

// withdraw reports a refused withdrawal on the console and keeps going;
// a rejection leaves the account untouched.
func withdraw(logger *slog.Logger, account *ledger.Account, cents uint64) {
	if err := account.Withdraw(money(logger, cents), time.Now().UTC()); err != nil {
		logger.Warn("withdrawal refused", "amount_cents", cents, "balance_cents", account.Balance())
		fmt.Println("Not enough money")
	}
}

func money(logger *slog.Logger, cents uint64) models.Money {
	m, err := models.NewMoney(cents)
	if err != nil {
		logger.Error("invalid amount", "amount_cents", cents, "error", err)
		os.Exit(1)
	}
	return m
}
