package bank

import (
	"fmt"
	"strconv"
	"sync"
)

// Branch is the in-memory registry of the clients and accounts of the bank.
type Branch struct {
	mu       sync.Mutex
	code     string
	currency string
	next     int
	clients  map[string]*Client // index clients by national ID
	accounts []*Account         // in opening order
}

// NewBranch creates an empty branch whose accounts are held in currency.
func NewBranch(currency string) *Branch {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Branch{
		code:     DefaultBranch,
		currency: currency,
		next:     1,
		clients:  make(map[string]*Client),
	}
}

func (b *Branch) Code() string     { return b.code }
func (b *Branch) Currency() string { return b.currency }

// RegisterClient adds c to the branch. National IDs are unique.
func (b *Branch) RegisterClient(c *Client) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.clients[c.NationalID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateClient, c.NationalID)
	}
	b.clients[c.NationalID] = c
	return nil
}

// Client returns the client registered with nationalID.
func (b *Branch) Client(nationalID string) (*Client, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.clients[nationalID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrClientNotFound, nationalID)
	}
	return c, nil
}

// OpenAccount opens an account for a registered client with the next free
// account number, and adds it to the client's accounts. A nil policy means
// Unrestricted, an invalid Capped policy returns ErrInvalidPolicy.
func (b *Branch) OpenAccount(c *Client, policy WithdrawalPolicy) (*Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkHolder(c); err != nil {
		return nil, err
	}
	number := strconv.Itoa(b.next)
	for b.lookup(number) != nil {
		b.next++
		number = strconv.Itoa(b.next)
	}
	a, err := NewAccountWithPolicy(c, number, b.currency, policy)
	if err != nil {
		return nil, err
	}
	b.next++
	b.accounts = append(b.accounts, a)
	c.AddAccount(a)
	return a, nil
}

// AddAccount registers an account created outside the branch, for instance by
// NewCheckingAccount. Its holder must be a registered client, and its number
// and currency must fit the branch.
func (b *Branch) AddAccount(a *Account) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkHolder(a.Client()); err != nil {
		return err
	}
	if a.Currency() != b.currency {
		return fmt.Errorf("%s account in a %s branch: %w", a.Currency(), b.currency, ErrCurrencyMismatch)
	}
	if b.lookup(a.Number()) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateAccount, a.Number())
	}
	b.accounts = append(b.accounts, a)
	a.Client().AddAccount(a)
	return nil
}

func (b *Branch) checkHolder(c *Client) error {
	if c == nil {
		return fmt.Errorf("%w: no holder", ErrClientNotFound)
	}
	if registered, ok := b.clients[c.NationalID]; !ok || registered != c {
		return fmt.Errorf("%w: %s", ErrClientNotFound, c.NationalID)
	}
	return nil
}

func (b *Branch) lookup(number string) *Account {
	for _, a := range b.accounts {
		if a.Number() == number {
			return a
		}
	}
	return nil
}

// Account returns the account with number.
func (b *Branch) Account(number string) (*Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if a := b.lookup(number); a != nil {
		return a, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, number)
}

// Accounts returns all the accounts, in opening order.
func (b *Branch) Accounts() []*Account {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Account, len(b.accounts))
	copy(out, b.accounts)
	return out
}
