// Package bank provides the bookkeeping core of a single-branch banking ledger.
//
// It models clients, their accounts, and the two kinds of transactions an
// account accepts:
//   - Deposit: credits a strictly positive amount to the account.
//   - Withdrawal: debits a strictly positive amount, never below a zero balance,
//     and subject to the account's WithdrawalPolicy. Checking accounts use a
//     Capped policy limiting both the amount of a single withdrawal and the
//     number of withdrawals.
//
// Every transaction successfully registered on an account is appended to the
// account's History, an append-only, chronological log. A rejected
// transaction leaves both the balance and the History untouched.
//
// All state lives in memory for the lifetime of the process. The Branch type
// is a small registry of clients and accounts used by the `teller` command
// line tool.
package bank
