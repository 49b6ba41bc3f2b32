package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"macropanel/internal/config"
	"macropanel/internal/infrastructure"
	"macropanel/internal/pipeline"
	"macropanel/pkg/contracts/domain"
)

func main() {
	dataDir := flag.String("data", "", "directory containing the raw extracts (defaults to MACRO_PATHS_DATA_DIR)")
	outDir := flag.String("out", "", "output directory for the consolidated panel (defaults to MACRO_PATHS_OUTPUT_DIR)")
	method := flag.String("method", "", "GDP interpolation method: forward_fill | linear | cubic | constant")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Flags win over environment configuration.
	if *dataDir != "" {
		cfg.Paths.DataDir = *dataDir
	}
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}
	if *method != "" {
		cfg.GDP.InterpolationMethod = *method
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.InitializeLogger(cfg.Logging)

	result, err := pipeline.NewRunner(cfg, logger).Run(context.Background())
	if err != nil {
		logger.Error("Consolidation run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	printSummary(result)
}

func printSummary(result *pipeline.Result) {
	index := result.Panel.Index()

	fmt.Println("Processing complete!")
	fmt.Printf("- Records: %d\n", result.Panel.Len())
	fmt.Printf("- Variables: %d\n", len(result.Panel.Columns()))
	if len(index) > 0 {
		fmt.Printf("- Date range: %s to %s\n",
			index[0].Format("2006-01-02"), index[len(index)-1].Format("2006-01-02"))
	}

	fmt.Println("\nBaseline scenario (trailing 12-month averages):")
	for _, name := range domain.KeyVariables {
		if v, ok := result.Scenarios.Baseline.Values[name]; ok {
			fmt.Printf("- %s: %.2f\n", name, v)
		}
	}

	fmt.Println("\nOutputs:")
	for _, path := range result.Outputs {
		fmt.Printf("- %s\n", path)
	}
}
