package bank

import (
	"testing"
	"time"

	"github.com/etnz/bank/date"
)

// BRL is a helper for test to create real money from const
func BRL(v float64) Money { return M(v, "BRL") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// sampleClient returns the sample client of the interactive menu.
func sampleClient(t *testing.T) *Client {
	t.Helper()
	c, err := NewIndividual("John Doe", date.MustParse("1990-01-01"), "123456789", "123 Main St")
	if err != nil {
		t.Fatalf("NewIndividual() error = %v", err)
	}
	return c
}

// sampleChecking returns a checking account with default settings.
func sampleChecking(t *testing.T) *Account {
	t.Helper()
	a, err := NewCheckingAccount(sampleClient(t), "123456", "BRL", NO(DefaultWithdrawalLimit), DefaultMaxWithdrawals)
	if err != nil {
		t.Fatalf("NewCheckingAccount() error = %v", err)
	}
	return a
}

// fixClock makes the history clock tick one minute per record from start.
func fixClock(t *testing.T, start time.Time) {
	t.Helper()
	prev := now
	tick := start
	now = func() time.Time {
		current := tick
		tick = tick.Add(time.Minute)
		return current
	}
	t.Cleanup(func() { now = prev })
}
