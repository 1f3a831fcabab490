package bank

import "fmt"

// Defaults of a checking account.
const (
	DefaultWithdrawalLimit = 500
	DefaultMaxWithdrawals  = 3
)

// WithdrawalPolicy decides whether an account accepts a withdrawal, before the
// balance itself is checked.
//
// There are two policies: Unrestricted and Capped.
type WithdrawalPolicy interface {
	// Allow returns nil if amount may be withdrawn from an account with
	// history h, or the business rule error rejecting it.
	Allow(amount Money, h *History) error
	String() string
}

// Unrestricted accepts every withdrawal, only the balance applies.
type Unrestricted struct{}

func (Unrestricted) Allow(Money, *History) error { return nil }
func (Unrestricted) String() string              { return "unrestricted" }

// Capped is the policy of a checking account: a single withdrawal cannot
// exceed Limit, and at most MaxWithdrawals withdrawals are ever accepted.
// There is no reset of the count.
type Capped struct {
	Limit          Money
	MaxWithdrawals int
}

// NewCapped returns a Capped policy, or ErrInvalidPolicy for a negative limit
// or count.
func NewCapped(limit Money, maxWithdrawals int) (Capped, error) {
	return Capped{Limit: limit, MaxWithdrawals: maxWithdrawals}.validate(limit.Currency())
}

// validate checks p for an account in currency, and gives a weak limit that
// currency.
func (p Capped) validate(currency string) (Capped, error) {
	if p.Limit.IsNegative() {
		return Capped{}, fmt.Errorf("%w: negative limit %s", ErrInvalidPolicy, p.Limit)
	}
	if p.MaxWithdrawals < 0 {
		return Capped{}, fmt.Errorf("%w: negative withdrawal count %d", ErrInvalidPolicy, p.MaxWithdrawals)
	}
	switch p.Limit.Currency() {
	case "":
		p.Limit = p.Limit.In(currency)
	case currency:
	default:
		return Capped{}, fmt.Errorf("%w: limit %s for a %s account", ErrInvalidPolicy, p.Limit, currency)
	}
	return p, nil
}

// DefaultCapped returns the policy of a checking account opened with default
// settings.
func DefaultCapped(currency string) Capped {
	return Capped{Limit: M(DefaultWithdrawalLimit, currency), MaxWithdrawals: DefaultMaxWithdrawals}
}

// Allow checks the cap first, then the number of withdrawals recorded in h.
func (p Capped) Allow(amount Money, h *History) error {
	if amount.GreaterThan(p.Limit) {
		return fmt.Errorf("withdrawal of %s above %s: %w", amount, p.Limit, ErrLimitExceeded)
	}
	if n := h.Count(CmdWithdrawal); n >= p.MaxWithdrawals {
		return fmt.Errorf("%d withdrawals already made: %w", n, ErrWithdrawalsExceeded)
	}
	return nil
}

func (p Capped) String() string {
	return fmt.Sprintf("capped at %s, %d withdrawals", p.Limit, p.MaxWithdrawals)
}
