package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/simaogato/banksynth/internal/adapter/repository/filesystem"
	"github.com/simaogato/banksynth/internal/app"
	"github.com/simaogato/banksynth/internal/config"
	"github.com/simaogato/banksynth/internal/domain"
	"github.com/simaogato/banksynth/internal/metrics"
	"github.com/simaogato/banksynth/internal/usecase/pipeline"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := app.NewLogger(cfg.Log, true)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts, err := parseArgs(args, cfg.Output.Dir, func(msg string) {
		logger.Warn(msg)
	})
	if err != nil {
		return err
	}
	cfg.Output.Dir = opts.outputDir

	sinks, err := app.BuildSinks(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Generating synthetic data for %d customers...\n", opts.params.CustomerCount)

	svc := pipeline.NewService(logger, metrics.New(), nil, sinks...)
	ds, err := svc.Generate(ctx, opts.params)
	if err != nil {
		return fmt.Errorf("failed to generate dataset: %w", err)
	}

	printSummary(out, ds.Stats, opts.outputDir)
	return nil
}

func printSummary(out io.Writer, st domain.GenerationStats, dir string) {
	fmt.Fprintln(out, "\nData generation complete!")
	fmt.Fprintf(out, "Run: %s (seed %d)\n", st.RunID, st.Seed)
	fmt.Fprintf(out, "Generation time: %.2f seconds\n", st.ElapsedSeconds)
	fmt.Fprintf(out, "Customers: %d\n", st.CustomerCount)
	fmt.Fprintf(out, "KYC records: %d\n", st.KYCCount)
	fmt.Fprintf(out, "Accounts: %d\n", st.AccountCount)
	fmt.Fprintf(out, "Transactions: %d\n", st.TransactionCount)
	fmt.Fprintf(out, "Transfers: %d\n", st.TransferCount)

	for _, r := range st.Sinks {
		if !r.Saved {
			fmt.Fprintf(out, "Sink %s failed: %s\n", r.Sink, r.Error)
			continue
		}
		if r.Sink == filesystem.SinkName {
			abs, err := filepath.Abs(dir)
			if err != nil {
				abs = dir
			}
			fmt.Fprintf(out, "\nData saved to: %s\n", abs)
		}
	}
}
