package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/bank"
	"github.com/etnz/bank/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type menuCmd struct {
	accountFlags
}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "operate an account from an interactive menu" }
func (*menuCmd) Usage() string {
	return `teller menu [-holder <name>] [-cpf <digits>] [-number <number>] [-limit <amount>] [-max-withdrawals <n>] [-unrestricted]

  Open the primary account of a client in a fresh branch, and operate it from
  an interactive menu: deposit, withdraw, view details and history, open and
  select other accounts. Nothing is kept once the menu exits.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) { c.accountFlags.SetFlags(f) }

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	branch, client, account, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	logger := newLogger(*Verbose)
	defer logger.Sync()

	s := newSession(os.Stdin, os.Stdout, logger, branch, client, account)
	if err := s.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// menu entries, in display order.
var menuEntries = []string{
	"Deposit",
	"Withdraw",
	"View Account Details",
	"View History Transactions",
	"Exit",
	"Open Account",
	"List Accounts",
	"Select Account",
}

// session is an interactive menu operating the accounts of a single client.
type session struct {
	in     *bufio.Scanner
	out    io.Writer
	render func(w io.Writer, md string)
	log    *zap.Logger

	branch  *bank.Branch
	client  *bank.Client
	account *bank.Account // selected account
}

func newSession(in io.Reader, out io.Writer, log *zap.Logger, branch *bank.Branch, client *bank.Client, account *bank.Account) *session {
	return &session{
		in:      bufio.NewScanner(in),
		out:     out,
		render:  renderMarkdown,
		log:     log,
		branch:  branch,
		client:  client,
		account: account,
	}
}

// run loops over the menu until Exit is chosen or the input ends.
func (s *session) run() error {
	for {
		fmt.Fprintln(s.out, "\nMain Menu:")
		for i, entry := range menuEntries {
			fmt.Fprintf(s.out, "%d. %s\n", i+1, entry)
		}
		choice, ok := s.prompt(fmt.Sprintf("Enter your choice (1-%d): ", len(menuEntries)))
		if !ok {
			return s.in.Err()
		}

		switch choice {
		case "1":
			s.transact(bank.CmdDeposit)
		case "2":
			s.transact(bank.CmdWithdrawal)
		case "3":
			s.render(s.out, renderer.Details(s.account))
		case "4":
			s.render(s.out, renderer.History(s.account))
		case "5":
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		case "6":
			s.openAccount()
		case "7":
			s.render(s.out, renderer.Accounts(s.client.Accounts()))
		case "8":
			s.selectAccount()
		default:
			fmt.Fprintf(s.out, "Invalid choice. Please enter a number between 1 and %d.\n", len(menuEntries))
		}
	}
}

// prompt prints msg and reads a trimmed line. It returns false at the end of
// the input.
func (s *session) prompt(msg string) (string, bool) {
	fmt.Fprint(s.out, msg)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// transact asks for an amount and registers a transaction of kind on the
// selected account.
func (s *session) transact(kind bank.CommandType) {
	label := "deposit"
	if kind == bank.CmdWithdrawal {
		label = "withdrawal"
	}
	text, ok := s.prompt(fmt.Sprintf("Enter the %s amount: ", label))
	if !ok {
		return
	}

	var tx bank.Transaction
	amount, err := bank.ParseMoney(text, "")
	if err == nil {
		switch kind {
		case bank.CmdDeposit:
			tx = bank.NewDeposit(amount)
		default:
			tx = bank.NewWithdrawal(amount)
		}
		err = s.client.PerformTransaction(s.account, tx)
	} else {
		err = fmt.Errorf("%w: %v", bank.ErrInvalidAmount, err)
	}

	if err != nil {
		s.log.Warn("transaction rejected",
			zap.String("account", s.account.Number()),
			zap.String("command", string(kind)),
			zap.String("input", text),
			zap.Error(err))
		fmt.Fprintf(s.out, "\n%s\n", renderer.Rejection(err))
		return
	}
	s.log.Debug("transaction registered",
		zap.String("account", s.account.Number()),
		zap.Stringer("amount", tx.Amount()),
		zap.String("command", string(kind)),
		zap.Stringer("balance", s.account.Balance()))
	fmt.Fprintf(s.out, "\n%s\n", renderer.Success(tx))
}

// openAccount opens a new account for the client and selects it.
func (s *session) openAccount() {
	answer, ok := s.prompt("Checking account with default withdrawal limits? (y/n): ")
	if !ok {
		return
	}
	var policy bank.WithdrawalPolicy = bank.Unrestricted{}
	if strings.HasPrefix(strings.ToLower(answer), "y") {
		policy = bank.DefaultCapped(s.branch.Currency())
	}
	a, err := s.branch.OpenAccount(s.client, policy)
	if err != nil {
		s.log.Warn("account not opened", zap.Error(err))
		fmt.Fprintf(s.out, "\n@@@ Operation failed! %v @@@\n", err)
		return
	}
	s.log.Debug("account opened", zap.String("account", a.Number()), zap.Stringer("policy", a.Policy()))
	s.account = a
	fmt.Fprintf(s.out, "\n=== Account %s opened (%s) ===\n", a.Number(), a.Policy())
}

// selectAccount switches the selected account to another one of the client.
func (s *session) selectAccount() {
	number, ok := s.prompt("Enter the account number: ")
	if !ok {
		return
	}
	a, err := s.branch.Account(number)
	if err == nil && a.Client() != s.client {
		err = fmt.Errorf("%w: %s", bank.ErrNotAccountHolder, number)
	}
	if err != nil {
		s.log.Warn("account not selected", zap.Error(err))
		fmt.Fprintf(s.out, "\n@@@ Operation failed! %v @@@\n", err)
		return
	}
	s.account = a
	fmt.Fprintf(s.out, "\n=== Account %s selected ===\n", a.Number())
}
