package bank

import (
	"fmt"
	"slices"
	"sync"

	"github.com/etnz/bank/date"
)

// Client is an individual holding accounts in the bank.
//
// A client references its accounts but does not own their lifecycle.
type Client struct {
	Name       string    `validate:"notblank"`
	BirthDate  date.Date
	NationalID string    `validate:"required,numeric"` // CPF, digits only.
	Address    string    `validate:"notblank"`

	mu       sync.Mutex
	accounts []*Account
}

// NewIndividual returns a validated client. The error wraps ErrInvalidClient.
func NewIndividual(name string, birthDate date.Date, nationalID, address string) (*Client, error) {
	c := &Client{Name: name, BirthDate: birthDate, NationalID: nationalID, Address: address}
	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidClient, err)
	}
	if birthDate.IsZero() || birthDate.After(date.Today()) {
		return nil, fmt.Errorf("%w: birth date %s", ErrInvalidClient, birthDate)
	}
	return c, nil
}

// AddAccount adds a to the accounts held by the client.
func (c *Client) AddAccount(a *Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts = append(c.accounts, a)
}

// Accounts returns the accounts held by the client, in the order they were added.
func (c *Client) Accounts() []*Account {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.accounts)
}

// PerformTransaction registers tx on a, an account held by the client.
func (c *Client) PerformTransaction(a *Account, tx Transaction) error {
	if a == nil {
		return fmt.Errorf("%w: no account", ErrNotAccountHolder)
	}
	if a.Client() != c {
		return fmt.Errorf("%w: %s", ErrNotAccountHolder, a.Number())
	}
	return tx.Register(a)
}
