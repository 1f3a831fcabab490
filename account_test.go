package bank

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAccount_Deposit(t *testing.T) {
	testCases := []struct {
		name        string
		amount      Money
		wantErr     error
		wantBalance Money
	}{
		{name: "positive", amount: BRL(100), wantBalance: BRL(100)},
		{name: "weak currency", amount: NO(12.5), wantBalance: BRL(12.5)},
		{name: "zero", amount: BRL(0), wantErr: ErrInvalidAmount, wantBalance: BRL(0)},
		{name: "negative", amount: BRL(-10), wantErr: ErrInvalidAmount, wantBalance: BRL(0)},
		{name: "foreign currency", amount: M(10, "USD"), wantErr: ErrCurrencyMismatch, wantBalance: BRL(0)},
		{name: "below a cent", amount: NO(0.001), wantErr: ErrInvalidAmount, wantBalance: BRL(0)},
		{name: "sub-cent part", amount: BRL(10.005), wantErr: ErrInvalidAmount, wantBalance: BRL(0)},
		{name: "huge", amount: M(decimal.RequireFromString("100000000000000000000"), "BRL"), wantBalance: M(decimal.RequireFromString("100000000000000000000"), "BRL")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAccount(sampleClient(t), "1", "BRL")
			err := a.Deposit(tc.amount)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Deposit(%v) error = %v, want %v", tc.amount, err, tc.wantErr)
			}
			if got := a.Balance(); !got.Equal(tc.wantBalance) {
				t.Errorf("Balance() = %v, want %v", got, tc.wantBalance)
			}
		})
	}
}

func TestAccount_Withdraw(t *testing.T) {
	testCases := []struct {
		name        string
		amount      Money
		wantErr     error
		wantBalance Money
	}{
		{name: "part of the balance", amount: BRL(30), wantBalance: BRL(70)},
		{name: "whole balance", amount: BRL(100), wantBalance: BRL(0)},
		{name: "above balance", amount: BRL(100.01), wantErr: ErrInsufficientFunds, wantBalance: BRL(100)},
		{name: "zero", amount: BRL(0), wantErr: ErrInvalidAmount, wantBalance: BRL(100)},
		{name: "negative", amount: BRL(-1), wantErr: ErrInvalidAmount, wantBalance: BRL(100)},
		{name: "foreign currency", amount: M(1, "EUR"), wantErr: ErrCurrencyMismatch, wantBalance: BRL(100)},
		{name: "below a cent", amount: NO(0.001), wantErr: ErrInvalidAmount, wantBalance: BRL(100)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAccount(sampleClient(t), "1", "BRL")
			if err := a.Deposit(BRL(100)); err != nil {
				t.Fatal(err)
			}
			err := a.Withdraw(tc.amount)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Withdraw(%v) error = %v, want %v", tc.amount, err, tc.wantErr)
			}
			if got := a.Balance(); !got.Equal(tc.wantBalance) {
				t.Errorf("Balance() = %v, want %v", got, tc.wantBalance)
			}
		})
	}
}

// TestAccount_DirectOperationsDoNotRecord checks that only registered
// transactions reach the history.
func TestAccount_DirectOperationsDoNotRecord(t *testing.T) {
	a := sampleChecking(t)
	if err := a.Deposit(BRL(100)); err != nil {
		t.Fatal(err)
	}
	if err := a.Withdraw(BRL(50)); err != nil {
		t.Fatal(err)
	}
	if n := a.History().Len(); n != 0 {
		t.Errorf("History().Len() = %d, want 0", n)
	}
	if got, want := a.Balance(), BRL(50); !got.Equal(want) {
		t.Errorf("Balance() = %v, want %v", got, want)
	}
}

func TestAccount_Details(t *testing.T) {
	a := sampleChecking(t)
	if a.Branch() != "0001" {
		t.Errorf("Branch() = %q, want 0001", a.Branch())
	}
	want := "Branch:\t0001\nAccount:\t123456\nHolder:\tJohn Doe"
	if got := a.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewCheckingAccount_Invalid(t *testing.T) {
	c := sampleClient(t)
	testCases := []struct {
		name  string
		limit Money
		max   int
	}{
		{name: "negative limit", limit: BRL(-1), max: 3},
		{name: "negative count", limit: BRL(500), max: -1},
		{name: "foreign limit", limit: M(500, "USD"), max: 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCheckingAccount(c, "1", "BRL", tc.limit, tc.max); !errors.Is(err, ErrInvalidPolicy) {
				t.Errorf("NewCheckingAccount() error = %v, want %v", err, ErrInvalidPolicy)
			}
		})
	}
}

func TestNewAccount_DefaultCurrency(t *testing.T) {
	a := NewAccount(sampleClient(t), "1", "")
	if a.Currency() != DefaultCurrency {
		t.Errorf("Currency() = %q, want %q", a.Currency(), DefaultCurrency)
	}
	if _, ok := a.Policy().(Unrestricted); !ok {
		t.Errorf("Policy() = %v, want unrestricted", a.Policy())
	}
}
