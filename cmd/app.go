// Package cmd implements the teller command line application of the bank.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bank"
	"github.com/etnz/bank/date"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var defaultCurrency = flag.String("currency", bank.DefaultCurrency, "Currency of the branch and of its accounts")
var Verbose = flag.Bool("v", false, "Log every operation to stderr")

// Commands lists the teller subcommands. A main package registers them on a
// subcommands.Commander.
var Commands = []subcommands.Command{
	&menuCmd{},
	&replayCmd{},
	&topicCmd{},
}

// newLogger returns the operational logger: a no-op unless verbose is set.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot create logger: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

// printMarkdown renders md to the terminal.
func printMarkdown(md string) { renderMarkdown(os.Stdout, md) }

// renderMarkdown writes md styled for a terminal, or raw if it cannot be styled.
func renderMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprint(w, md)
}

// accountFlags describe the client and the primary account a command works on.
// Defaults are the sample client of the bank.
type accountFlags struct {
	holder         string
	cpf            string
	dob            string
	address        string
	number         string
	limit          string
	maxWithdrawals int
	unrestricted   bool
}

func (o *accountFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&o.holder, "holder", "John Doe", "Name of the account holder")
	f.StringVar(&o.cpf, "cpf", "123456789", "National ID (CPF) of the holder, digits only")
	f.StringVar(&o.dob, "dob", "1990-01-01", "Birth date of the holder. See the user manual for supported date formats.")
	f.StringVar(&o.address, "address", "123 Main St", "Address of the holder")
	f.StringVar(&o.number, "number", "123456", "Number of the primary account")
	f.StringVar(&o.limit, "limit", "500", "Maximum amount of a single withdrawal")
	f.IntVar(&o.maxWithdrawals, "max-withdrawals", bank.DefaultMaxWithdrawals, "Maximum number of withdrawals")
	f.BoolVar(&o.unrestricted, "unrestricted", false, "Open the primary account without withdrawal restriction")
}

// open creates a branch holding the client and its primary account.
func (o *accountFlags) open() (*bank.Branch, *bank.Client, *bank.Account, error) {
	dob, err := date.Parse(o.dob)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("parsing birth date: %w", err)
	}
	client, err := bank.NewIndividual(o.holder, dob, o.cpf, o.address)
	if err != nil {
		return nil, nil, nil, err
	}
	branch := bank.NewBranch(*defaultCurrency)
	if err := branch.RegisterClient(client); err != nil {
		return nil, nil, nil, err
	}

	var account *bank.Account
	if o.unrestricted {
		account = bank.NewAccount(client, o.number, branch.Currency())
	} else {
		limit, err := bank.ParseMoney(o.limit, "")
		if err != nil {
			return nil, nil, nil, fmt.Errorf("parsing limit: %w", err)
		}
		account, err = bank.NewCheckingAccount(client, o.number, branch.Currency(), limit, o.maxWithdrawals)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	if err := branch.AddAccount(account); err != nil {
		return nil, nil, nil, err
	}
	return branch, client, account, nil
}
