package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/ysakols/spltr3-sub001/internal/audit"
	auditStore "github.com/ysakols/spltr3-sub001/internal/audit/store"
	"github.com/ysakols/spltr3-sub001/internal/config"
	"github.com/ysakols/spltr3-sub001/internal/database"
	"github.com/ysakols/spltr3-sub001/internal/money"
)

// auditor scans every expense for share drift and, with -repair, reconciles
// the offenders one record at a time.
func main() {
	repair := flag.Bool("repair", false, "reconcile inconsistent records instead of only reporting them")
	flag.Parse()

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

	ctx := context.Background()
	svc := audit.NewService(auditStore.New(db))

	findings, err := svc.Scan(ctx)
	if err != nil {
		slog.Error("scan failed", "error", err)
		os.Exit(1)
	}

	if len(findings) == 0 {
		slog.Info("all records consistent")
		return
	}

	for _, f := range findings {
		slog.Warn("inconsistent record",
			"record", f.RecordID,
			"declared", money.FormatAmount(f.DeclaredTotal),
			"share_sum", money.FormatAmount(f.ShareSum),
			"delta", money.FormatAmount(f.Delta),
			"missing_shares", f.MissingShares,
			"payer_missing", f.PayerMissing,
		)
	}

	if !*repair {
		slog.Info("scan complete", "inconsistent", len(findings))
		return
	}

	repaired := 0

	for _, f := range findings {
		report, err := svc.Reconcile(ctx, f.RecordID)
		if err != nil {
			// Keep going; one failed repair must not sink the batch.
			slog.Error("repair failed", "record", f.RecordID, "error", err)
			continue
		}

		if report.Changed() {
			repaired++

			slog.Info("repaired record",
				"record", report.RecordID,
				"action", report.Action,
				"previous_sum", money.FormatAmount(report.PreviousSum),
				"new_sum", money.FormatAmount(report.NewSum),
			)
		}
	}

	slog.Info("repair complete", "inconsistent", len(findings), "repaired", repaired)
}
