package bank

import (
	"fmt"
	"sync"
)

// DefaultBranch is the branch code of every account of the bank.
const DefaultBranch = "0001"

// Account is a bank account held by exactly one client.
//
// The balance is never negative. An account exclusively owns its History,
// created with it. All methods are safe for concurrent use: an account and
// its history are updated together under a single lock.
type Account struct {
	mu       sync.Mutex
	number   string
	branch   string
	currency string
	balance  Money
	client   *Client
	history  *History
	policy   WithdrawalPolicy
}

// NewAccount creates an account with an empty balance and no withdrawal
// restriction.
func NewAccount(client *Client, number, currency string) *Account {
	a, _ := newAccount(client, number, currency, Unrestricted{})
	return a
}

// NewCheckingAccount creates an account whose withdrawals are capped to limit
// each, and to maxWithdrawals in total.
func NewCheckingAccount(client *Client, number, currency string, limit Money, maxWithdrawals int) (*Account, error) {
	return newAccount(client, number, currency, Capped{Limit: limit, MaxWithdrawals: maxWithdrawals})
}

// NewAccountWithPolicy creates an account applying policy to withdrawals. A
// nil policy means Unrestricted. An invalid Capped policy returns
// ErrInvalidPolicy.
func NewAccountWithPolicy(client *Client, number, currency string, policy WithdrawalPolicy) (*Account, error) {
	if policy == nil {
		policy = Unrestricted{}
	}
	return newAccount(client, number, currency, policy)
}

func newAccount(client *Client, number, currency string, policy WithdrawalPolicy) (*Account, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	switch p := policy.(type) {
	case Capped:
		var err error
		if policy, err = p.validate(currency); err != nil {
			return nil, err
		}
	case *Capped:
		if p == nil {
			return nil, fmt.Errorf("%w: nil capped policy", ErrInvalidPolicy)
		}
		valid, err := p.validate(currency)
		if err != nil {
			return nil, err
		}
		policy = valid
	}
	return &Account{
		number:   number,
		branch:   DefaultBranch,
		currency: currency,
		balance:  M(0, currency),
		client:   client,
		history:  newHistory(),
		policy:   policy,
	}, nil
}

func (a *Account) Number() string           { return a.number }
func (a *Account) Branch() string           { return a.branch }
func (a *Account) Currency() string         { return a.currency }
func (a *Account) Client() *Client          { return a.client }
func (a *Account) History() *History        { return a.history }
func (a *Account) Policy() WithdrawalPolicy { return a.policy }

// Balance returns the current balance.
func (a *Account) Balance() Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit credits amount to the balance, without recording it in the History.
// It returns ErrInvalidAmount unless amount is positive.
func (a *Account) Deposit(amount Money) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	amount, err := a.normalize(amount)
	if err != nil {
		return err
	}
	return a.deposit(amount)
}

// Withdraw debits amount from the balance, without recording it in the History.
// The withdrawal policy is checked first, then ErrInsufficientFunds is
// returned if amount exceeds the balance and ErrInvalidAmount unless amount
// is positive.
func (a *Account) Withdraw(amount Money) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	amount, err := a.normalize(amount)
	if err != nil {
		return err
	}
	return a.withdraw(amount)
}

// String returns the account details.
func (a *Account) String() string {
	holder := ""
	if a.client != nil {
		holder = a.client.Name
	}
	return fmt.Sprintf("Branch:\t%s\nAccount:\t%s\nHolder:\t%s", a.branch, a.number, holder)
}

// normalize gives amount the account currency, or fails for a foreign one or
// for more decimals than the currency has.
func (a *Account) normalize(amount Money) (Money, error) {
	switch amount.Currency() {
	case "":
		amount = amount.In(a.currency)
	case a.currency:
	default:
		return amount, fmt.Errorf("%s on a %s account: %w", amount, a.currency, ErrCurrencyMismatch)
	}
	if !amount.Rounded().Equal(amount) {
		return amount, fmt.Errorf("%s has more decimals than %s: %w", amount.Decimal(), a.currency, ErrInvalidAmount)
	}
	return amount, nil
}

func (a *Account) deposit(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("deposit of %s: %w", amount, ErrInvalidAmount)
	}
	a.balance = a.balance.Add(amount)
	return nil
}

func (a *Account) withdraw(amount Money) error {
	if err := a.policy.Allow(amount, a.history); err != nil {
		return err
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("withdrawal of %s with a balance of %s: %w", amount, a.balance, ErrInsufficientFunds)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("withdrawal of %s: %w", amount, ErrInvalidAmount)
	}
	a.balance = a.balance.Sub(amount)
	return nil
}
