package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/bank"
	"github.com/etnz/bank/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type replayCmd struct {
	accountFlags
	file   string
	output string
	strict bool
}

func (*replayCmd) Name() string     { return "replay" }
func (*replayCmd) Synopsis() string { return "apply a transaction script to a fresh account" }
func (*replayCmd) Usage() string {
	return `teller replay -f <script.jsonl> [-o <history.jsonl>] [-strict] [account flags]

  Open the primary account of a client in a fresh branch, and register every
  transaction of a JSONL script on it, in order. Rejected transactions are
  reported and leave no trace. The resulting account and history are printed,
  and optionally written as JSONL.

  Reads the script from stdin when -f is "-".
`
}

func (c *replayCmd) SetFlags(f *flag.FlagSet) {
	c.accountFlags.SetFlags(f)
	f.StringVar(&c.file, "f", "-", "JSONL transaction script to apply")
	f.StringVar(&c.output, "o", "", "Write the resulting history to this JSONL file")
	f.BoolVar(&c.strict, "strict", false, "Fail if any transaction is rejected")
}

func (c *replayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, client, account, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	logger := newLogger(*Verbose)
	defer logger.Sync()

	var in io.Reader = os.Stdin
	if c.file != "-" {
		file, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	rejected, err := replay(in, os.Stdout, logger, client, account)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading script %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Details(account) + "\n" + renderer.History(account))

	if c.output != "" {
		if err := writeHistory(c.output, account.History()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Successfully wrote %d records to %s\n", account.History().Len(), c.output)
	}

	if c.strict && rejected > 0 {
		fmt.Fprintf(os.Stderr, "%d transactions rejected\n", rejected)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// replay registers every transaction decoded from r on account, reporting
// each rejection to out. It returns the number of rejected transactions. A
// script that cannot be decoded is rejected as a whole, before any
// transaction is registered.
func replay(r io.Reader, out io.Writer, log *zap.Logger, client *bank.Client, account *bank.Account) (int, error) {
	txs, err := bank.DecodeTransactions(r)
	if err != nil {
		return 0, err
	}
	rejected := 0
	for i, tx := range txs {
		if err := client.PerformTransaction(account, tx); err != nil {
			rejected++
			log.Warn("transaction rejected", zap.Int("index", i+1), zap.String("command", string(tx.What())), zap.Error(err))
			fmt.Fprintf(out, "#%d %s: %s\n", i+1, renderer.Transaction(tx), renderer.Rejection(err))
			continue
		}
		log.Debug("transaction registered", zap.Int("index", i+1), zap.Stringer("amount", tx.Amount()), zap.Stringer("balance", account.Balance()))
	}
	return rejected, nil
}

// writeHistory writes h to the named file as JSONL, replacing its content.
func writeHistory(name string, h *bank.History) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating history file %q: %w", name, err)
	}
	if err := bank.EncodeHistory(f, h); err != nil {
		f.Close()
		return fmt.Errorf("writing history file %q: %w", name, err)
	}
	return f.Close()
}
