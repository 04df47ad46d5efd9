package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/simaogato/banksynth/internal/domain"
	"github.com/spf13/pflag"
)

var errUsage = errors.New("usage: generate [customers] [avg_accounts] [avg_transactions] [transfers] [--seed N] [--days N] [--out DIR]")

// options are the parsed command line
type options struct {
	params    domain.GenerateParams
	outputDir string
}

// parseArgs reads flags and up to four positional values over the defaults.
// An unparsable customer count is an error; the other positionals fall back
// to their defaults and report a warning.
func parseArgs(args []string, defaultOutputDir string, warn func(string)) (options, error) {
	opts := options{params: domain.DefaultGenerateParams()}

	fs := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	fs.Uint64Var(&opts.params.Seed, "seed", domain.DefaultSeed, "random seed")
	fs.IntVar(&opts.params.MaxDaysBack, "days", domain.DefaultMaxDaysBack, "transaction window in days")
	fs.StringVar(&opts.outputDir, "out", defaultOutputDir, "output directory")
	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("%w: %v", errUsage, err)
	}

	pos := fs.Args()
	if len(pos) > 4 {
		return opts, errUsage
	}

	if len(pos) >= 1 {
		n, err := strconv.Atoi(pos[0])
		if err != nil {
			return opts, fmt.Errorf("number of customers must be an integer: %q", pos[0])
		}
		opts.params.CustomerCount = n
	}

	if len(pos) >= 2 {
		if f, err := strconv.ParseFloat(pos[1], 64); err == nil {
			opts.params.AvgAccountsPerCustomer = f
		} else {
			warn(fmt.Sprintf("invalid avg_accounts %q, using default (%g)", pos[1], domain.DefaultAvgAccountsPerCustomer))
		}
	}

	if len(pos) >= 3 {
		if n, err := strconv.Atoi(pos[2]); err == nil {
			opts.params.AvgTransactionsPerAccount = n
		} else {
			warn(fmt.Sprintf("invalid avg_transactions %q, using default (%d)", pos[2], domain.DefaultAvgTransactionsPerAccount))
		}
	}

	if len(pos) >= 4 {
		if n, err := strconv.Atoi(pos[3]); err == nil {
			opts.params.TransferCount = n
		} else {
			warn(fmt.Sprintf("invalid transfers %q, using default (%d)", pos[3], domain.DefaultTransferCount))
		}
	}

	return opts, nil
}
