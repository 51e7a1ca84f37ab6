// Command mbv checks email addresses against the MailboxValidator API.
//
//	mbv [flags] validate|disposable|free [address ...]
//
// With no addresses, stdin is scanned for anything that looks like an email
// address. Results are printed as one JSON object per line, in input order.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"
	mailboxvalidator "github.com/mailboxvalidator/client-go"
	"github.com/mcnijman/go-emailaddress"
)

const usage = "usage: mbv [flags] validate|disposable|free [address ...]"

const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	maxStdinLen = 10 << 20
)

type app struct {
	getenv       func(string) string
	stdin        io.Reader
	stdout       io.Writer
	stderr       io.Writer
	newValidator func(cfg *Config, logger *slog.Logger) (validator, error)
}

func newClient(cfg *Config, logger *slog.Logger) (validator, error) {
	return mailboxvalidator.New(cfg.APIKey,
		mailboxvalidator.WithLogger(logger),
		mailboxvalidator.WithTimeout(cfg.Timeout),
		mailboxvalidator.WithUserAgent("mbv/"+mailboxvalidator.Version),
	)
}

func (a *app) run(ctx context.Context, args []string) int {
	cfg, err := NewConfig(a.getenv)
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return exitUsage
	}

	fs := flag.NewFlagSet("mbv", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintln(a.stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.APIKey, "key", cfg.APIKey, "MailboxValidator API key (env MBV_API_KEY)")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "maximum parallel lookups (env MBV_CONCURRENCY)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout (env MBV_TIMEOUT)")
	levelFlag := fs.String("log-level", cfg.LogLevel.String(), "debug, info, warn or error (env MBV_LOG_LEVEL)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level, err := log.ParseLevel(*levelFlag)
	if err != nil {
		fmt.Fprintf(a.stderr, "invalid -log-level %q\n", *levelFlag)
		return exitUsage
	}
	cfg.LogLevel = level

	logger := log.NewWithOptions(a.stderr, log.Options{
		Level:           cfg.LogLevel,
		Prefix:          "mbv",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	if fs.NArg() < 1 {
		fs.Usage()
		return exitUsage
	}
	op, ok := operations[fs.Arg(0)]
	if !ok {
		logger.Error("unknown operation", "operation", fs.Arg(0))
		fmt.Fprintln(a.stderr, usage)
		return exitUsage
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return exitUsage
	}

	emails := fs.Args()[1:]
	if len(emails) == 0 {
		emails, err = readAddresses(a.stdin)
		if err != nil {
			logger.Error("failed to read stdin", "error", err)
			return exitFailed
		}
		logger.Debug("addresses extracted from stdin", "count", len(emails))
	}
	if len(emails) == 0 {
		logger.Warn("no email addresses to check")
		return exitOK
	}

	v, err := a.newValidator(cfg, slog.New(logger))
	if err != nil {
		logger.Error("failed to create client", "error", err)
		return exitUsage
	}

	records, failed := lookupAll(ctx, v, op, emails, cfg.Concurrency)

	enc := json.NewEncoder(a.stdout)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			logger.Error("failed to write result", "email", r.Email, "error", err)
			return exitFailed
		}
	}

	logger.Info("done", "operation", fs.Arg(0), "checked", len(records), "failed", failed)
	if failed > 0 {
		return exitFailed
	}
	return exitOK
}

// readAddresses extracts email addresses from free text, dropping duplicates
// while keeping first-seen order.
func readAddresses(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxStdinLen))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var emails []string
	for _, addr := range emailaddress.Find(data, false) {
		s := addr.String()
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		emails = append(emails, s)
	}
	return emails, nil
}
