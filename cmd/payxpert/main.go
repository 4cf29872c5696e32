package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/pflag"

	"github.com/payxpert/payxpert-go"
	"github.com/payxpert/payxpert-go/gateway"
	"github.com/payxpert/payxpert-go/internal/config"
	"github.com/payxpert/payxpert-go/redirect"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const usage = `usage: payxpert <command> [flags] [args]

commands:
  account                          Connect account information
  status <merchantToken>           Connect payment status
  query <transactionID>            Gateway transaction details
  export [--operation op] [--since 24h]
                                   Gateway transactions over a time window
  decrypt <data> <merchantToken>   decrypt a Connect redirect payload

Credentials and hosts are read from PAYXPERT_* environment variables.`

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		}
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	command, rest := args[0], args[1:]

	// decrypt works offline and needs no account.
	if command == "decrypt" {
		return decrypt(rest, out)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	px, err := payxpert.NewFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	var result any
	switch command {
	case "account":
		result, err = px.Connect().AccountInformation(ctx)
	case "status":
		if len(rest) != 1 {
			return fmt.Errorf("%w: status takes a merchant token", errUsage)
		}
		result, err = px.Connect().PaymentStatus(ctx, rest[0])
	case "query":
		if len(rest) != 1 {
			return fmt.Errorf("%w: query takes a transaction ID", errUsage)
		}
		result, err = px.Gateway().QueryTransaction(ctx, rest[0])
	case "export":
		result, err = export(ctx, px.Gateway(), rest)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
	if err != nil {
		return err
	}

	return printJSON(out, result)
}

func export(ctx context.Context, c *gateway.Client, args []string) (gateway.Result, error) {
	flags := pflag.NewFlagSet("export", pflag.ContinueOnError)
	operation := flags.String("operation", "", "only export one operation: sale, refund, credit, authorize, capture, cancel or rebill")
	since := flags.Duration("since", 24*time.Hour, "length of the window ending now")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if *since <= 0 {
		return nil, fmt.Errorf("%w: --since must be positive", errUsage)
	}

	now := time.Now()
	query := gateway.ExportQuery{
		StartDate: now.Add(-*since).Unix(),
		EndDate:   now.Unix(),
	}

	slog.Debug("exporting transactions",
		"operation", *operation,
		"start", query.StartDate,
		"end", query.EndDate,
	)

	return c.ExportTransactions(ctx, query, *operation)
}

func decrypt(args []string, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: decrypt takes the data and the merchant token", errUsage)
	}

	result, err := redirect.Decrypt(args[0], args[1])
	if err != nil {
		return err
	}
	return printJSON(out, result)
}

func printJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling json: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
