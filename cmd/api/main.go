package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/ysakols/spltr3-sub001/internal/audit"
	auditStore "github.com/ysakols/spltr3-sub001/internal/audit/store"
	"github.com/ysakols/spltr3-sub001/internal/balance"
	balanceStore "github.com/ysakols/spltr3-sub001/internal/balance/store"
	"github.com/ysakols/spltr3-sub001/internal/config"
	"github.com/ysakols/spltr3-sub001/internal/database"
	appHttp "github.com/ysakols/spltr3-sub001/internal/http"
	auditHandler "github.com/ysakols/spltr3-sub001/internal/http/audit"
	balancesHandler "github.com/ysakols/spltr3-sub001/internal/http/balances"
	recordHandler "github.com/ysakols/spltr3-sub001/internal/http/record"
	"github.com/ysakols/spltr3-sub001/internal/ledger"
	ledgerStore "github.com/ysakols/spltr3-sub001/internal/ledger/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		ledgerService  = ledger.NewService(ledgerStore.New(db))
		balanceService = balance.NewService(balanceStore.New(db))
		auditService   = audit.NewService(auditStore.New(db))
	)

	var (
		recordsH  = recordHandler.NewHandler(ledgerService)
		balancesH = balancesHandler.NewHandler(balanceService)
		auditH    = auditHandler.NewHandler(auditService)
	)

	router := appHttp.New(recordsH, balancesH, auditH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
