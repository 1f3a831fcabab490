package bank

import "errors"

// Business rule rejections. None of them leaves a trace on the account: the
// balance and the History are unchanged when any of them is returned.
var (
	// ErrInvalidAmount is returned for a zero or negative amount.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrLimitExceeded is returned when a single withdrawal exceeds the cap of
	// a Capped policy.
	ErrLimitExceeded = errors.New("withdrawal amount exceeds the limit")

	// ErrWithdrawalsExceeded is returned once the maximum number of withdrawals
	// of a Capped policy has been reached.
	ErrWithdrawalsExceeded = errors.New("maximum number of withdrawals exceeded")

	// ErrCurrencyMismatch is returned for an amount in a foreign currency.
	ErrCurrencyMismatch = errors.New("currency does not match the account currency")
)

// Construction and registry errors.
var (
	ErrInvalidPolicy    = errors.New("invalid withdrawal policy")
	ErrInvalidClient    = errors.New("invalid client")
	ErrNotAccountHolder = errors.New("client does not hold the account")
	ErrDuplicateClient  = errors.New("client already registered")
	ErrClientNotFound   = errors.New("client not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateAccount = errors.New("account number already in use")
	ErrUnknownCommand   = errors.New("unknown transaction command")
)
