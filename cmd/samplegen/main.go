package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"macropanel/internal/config"
	"macropanel/internal/exporter"
	"macropanel/internal/infrastructure"
	"macropanel/internal/synthetic"
)

func main() {
	outDir := flag.String("out", "", "output directory for the sample CSVs (defaults to MACRO_PATHS_OUTPUT_DIR)")
	loanCount := flag.Int("loans", synthetic.DefaultLoanCount, "number of loans to generate")
	seed := flag.Uint64("seed", 42, "random seed for reproducible output")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}

	logger := infrastructure.InitializeLogger(cfg.Logging)

	g := synthetic.NewGenerator(*seed)
	loans := g.Loans(*loanCount)
	payments := g.Payments(loans)

	logger.Info("Generated synthetic portfolio",
		slog.Int("loans", len(loans)),
		slog.Int("payments", len(payments)),
		slog.Uint64("seed", *seed))

	w := exporter.NewWriter(cfg.Paths.OutputDir)
	now := time.Now()

	loansPath, err := synthetic.WriteLoans(w, loans, now)
	if err != nil {
		logger.Error("Failed to write loans", slog.String("error", err.Error()))
		os.Exit(1)
	}
	paymentsPath, err := synthetic.WritePayments(w, payments, now)
	if err != nil {
		logger.Error("Failed to write payment history", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Loan data saved to %s\n", loansPath)
	fmt.Printf("Payment history saved to %s\n", paymentsPath)
}
