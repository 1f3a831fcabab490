package bank

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of accounts opened without an explicit one.
const DefaultCurrency = "BRL"

// Money represents a monetary value.
//
// The currency may be empty: such an amount is "weak" and takes the currency
// of the account it is applied to.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns value as a Money in currency.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses a decimal string such as "100" or "12.50" into a Money.
func ParseMoney(s, currency string) (Money, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: v, cur: currency}, nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// fraction is the number of decimals of the currency, 2 for codes unknown to
// go-money.
func (m Money) fraction() int32 {
	if c := m.currency(); c.Template != "" {
		return int32(c.Fraction)
	}
	return 2
}

// String returns the string representation of the money value, laid out by
// the go-money formatter of its currency.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	c := m.currency()
	f := c.Formatter()
	if f.Template == "" {
		// unknown to go-money
		return m.value.String() + " " + m.cur
	}

	integer, fraction, _ := strings.Cut(m.value.Abs().StringFixed(int32(f.Fraction)), ".")
	if f.Thousand != "" {
		for i := len(integer) - 3; i > 0; i -= 3 {
			integer = integer[:i] + f.Thousand + integer[i:]
		}
	}
	amount := integer
	if fraction != "" {
		amount += f.Decimal + fraction
	}
	str := strings.Replace(f.Template, "1", amount, 1)
	str = strings.Replace(str, "$", f.Grapheme, 1)
	if m.value.Round(int32(f.Fraction)).IsNegative() {
		str = "-" + str
	}
	return str
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Money) In(currency string) Money { return Money{value: m.value, cur: currency} }
func (m Money) Rounded() Money           { return Money{value: m.value.Round(m.fraction()), cur: m.cur} }
func (m Money) Float() float64           { return m.value.InexactFloat64() }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// MarshalJSON writes the money as two fields, "currency" and "amount", so that
// it can be embedded in a transaction line.
func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value)
	return w.MarshalJSON()
}

// amountCmd is a specialized struct to read an amount written in two fields.
type amountCmd struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountCmd) Money() Money {
	return M(a.Amount, a.Currency)
}
