// Package renderer turns accounts and their history into markdown documents.
package renderer

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/etnz/bank"
	md "github.com/nao1215/markdown"
)

// TimeFormat is the layout of record timestamps.
const TimeFormat = "02-01-2006 15:04:05"

// Details renders the identification of an account and its balance.
func Details(a *bank.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Account Details")

	holder := ""
	if c := a.Client(); c != nil {
		holder = c.Name
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Field", "Value"},
		Rows: [][]string{
			{"Branch", a.Branch()},
			{"Account", a.Number()},
			{"Holder", holder},
			{"Balance", a.Balance().String()},
			{"Withdrawals", a.Policy().String()},
		},
	})
	return doc.String()
}

// History renders the records of an account, oldest first, and the current balance.
func History(a *bank.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("History Transactions")

	records := a.History().Records()
	if len(records) == 0 {
		doc.PlainText("No transactions.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
			Header:    []string{"Type", "Amount", "Date"},
			Rows:      [][]string{},
		}
		for _, r := range records {
			table.Rows = append(table.Rows, []string{
				Kind(r.Kind),
				r.Amount.String(),
				r.Time.Format(TimeFormat),
			})
		}
		doc.Table(table)
	}
	doc.PlainText(fmt.Sprintf("Balance: %s", a.Balance()))
	return doc.String()
}

// Accounts renders a list of accounts.
func Accounts(accounts []*bank.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Accounts")

	if len(accounts) == 0 {
		doc.PlainText("No accounts.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Branch", "Account", "Holder", "Balance"},
		Rows:      [][]string{},
	}
	for _, a := range accounts {
		holder := ""
		if c := a.Client(); c != nil {
			holder = c.Name
		}
		table.Rows = append(table.Rows, []string{a.Branch(), a.Number(), holder, a.Balance().String()})
	}
	doc.Table(table)
	return doc.String()
}

// Kind returns the display name of a transaction kind.
func Kind(kind bank.CommandType) string {
	switch kind {
	case bank.CmdDeposit:
		return "Deposit"
	case bank.CmdWithdrawal:
		return "Withdrawal"
	default:
		return string(kind)
	}
}

// Transaction renders a transaction to a string.
func Transaction(tx bank.Transaction) string {
	switch v := tx.(type) {
	case bank.Deposit:
		return fmt.Sprintf("Deposited %s", v.Amount())
	case bank.Withdrawal:
		return fmt.Sprintf("Withdrew %s", v.Amount())
	default:
		return string(tx.What())
	}
}

// Success is the message shown once a transaction is registered.
func Success(tx bank.Transaction) string {
	switch tx.What() {
	case bank.CmdDeposit:
		return "=== Deposit successful! ==="
	case bank.CmdWithdrawal:
		return "=== Withdrawal successful! ==="
	default:
		return "=== Operation successful! ==="
	}
}

// Rejection is the message shown when a transaction is rejected.
func Rejection(err error) string {
	switch {
	case errors.Is(err, bank.ErrInsufficientFunds):
		return "@@@ Operation failed! You do not have enough balance. @@@"
	case errors.Is(err, bank.ErrLimitExceeded):
		return "@@@ Operation failed! The withdrawal amount exceeds the limit. @@@"
	case errors.Is(err, bank.ErrWithdrawalsExceeded):
		return "@@@ Operation failed! Maximum number of withdrawals exceeded. @@@"
	case errors.Is(err, bank.ErrInvalidAmount):
		return "@@@ Operation failed! The entered amount is invalid. @@@"
	case errors.Is(err, bank.ErrCurrencyMismatch):
		return "@@@ Operation failed! The currency does not match the account. @@@"
	default:
		return fmt.Sprintf("@@@ Operation failed! %v @@@", err)
	}
}
