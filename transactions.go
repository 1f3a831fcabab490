package bank

import (
	"encoding/json"
	"fmt"
)

// CommandType is a typed string for identifying transaction commands.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdDeposit    CommandType = "deposit"
	CmdWithdrawal CommandType = "withdrawal"
)

// Transaction defines the common interface of the transactions an account
// accepts.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction.
	Amount() Money     // Amount returns the amount moved by the transaction.
	Equal(Transaction) bool
	// Register applies the transaction to the account, and records it in the
	// account History if and only if the account accepted it.
	Register(a *Account) error
}

// amountTx is the part common to all transactions. The command tag is not
// stored: it is given by the type embedding amountTx.
type amountTx struct {
	amount Money
}

func (t amountTx) Amount() Money { return t.amount }

// marshal writes the transaction as a JSON object tagged with cmd.
func (t amountTx) marshal(cmd CommandType) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", cmd)
	w.EmbedFrom(t.amount)
	return w.MarshalJSON()
}

// unmarshal reads a JSON object, that must be tagged with cmd if tagged at all.
func (t *amountTx) unmarshal(data []byte, cmd CommandType) error {
	var temp struct {
		Command CommandType `json:"command"`
		amountCmd
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.Command != "" && temp.Command != cmd {
		return fmt.Errorf("%w: %q in a %s", ErrUnknownCommand, temp.Command, cmd)
	}
	t.amount = temp.Money()
	return nil
}

// Deposit credits an amount to an account.
type Deposit struct {
	amountTx
}

// NewDeposit creates a new Deposit transaction.
func NewDeposit(amount Money) Deposit {
	return Deposit{amountTx{amount: amount}}
}

func (Deposit) What() CommandType { return CmdDeposit }

func (t Deposit) Equal(other Transaction) bool {
	o, ok := other.(Deposit)
	return ok && t.amount.Equal(o.amount)
}

func (t Deposit) Register(a *Account) error { return a.register(t) }

func (t Deposit) MarshalJSON() ([]byte, error)     { return t.marshal(CmdDeposit) }
func (t *Deposit) UnmarshalJSON(data []byte) error { return t.unmarshal(data, CmdDeposit) }

// Withdrawal debits an amount from an account.
type Withdrawal struct {
	amountTx
}

// NewWithdrawal creates a new Withdrawal transaction.
func NewWithdrawal(amount Money) Withdrawal {
	return Withdrawal{amountTx{amount: amount}}
}

func (Withdrawal) What() CommandType { return CmdWithdrawal }

func (t Withdrawal) Equal(other Transaction) bool {
	o, ok := other.(Withdrawal)
	return ok && t.amount.Equal(o.amount)
}

func (t Withdrawal) Register(a *Account) error { return a.register(t) }

func (t Withdrawal) MarshalJSON() ([]byte, error)     { return t.marshal(CmdWithdrawal) }
func (t *Withdrawal) UnmarshalJSON(data []byte) error { return t.unmarshal(data, CmdWithdrawal) }

// register applies tx under the account lock: either the balance changes and
// a record is appended, or nothing happens.
func (a *Account) register(tx Transaction) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	amount, err := a.normalize(tx.Amount())
	if err != nil {
		return fmt.Errorf("invalid %s: %w", tx.What(), err)
	}

	var kind CommandType
	switch tx.(type) {
	case Deposit:
		kind, err = CmdDeposit, a.deposit(amount)
	case Withdrawal:
		kind, err = CmdWithdrawal, a.withdraw(amount)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommand, tx)
	}
	if err != nil {
		return err
	}
	a.history.add(kind, amount)
	return nil
}
