package bankbook

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account is a named balance holder with an append-only transaction log.
//
// An Account never mutates itself outside Deposit and Withdraw, and both
// keep the balance and the log consistent: either the balance moves and a
// record is appended, or nothing changes.
type Account struct {
	number       string
	name         string
	balance      decimal.Decimal
	transactions []Transaction
}

// NewAccount creates an account with the given number, holder name and
// initial deposit. The name is trimmed and must not be empty; the initial
// deposit must not be negative. A positive initial deposit is recorded as
// the first transaction, dated now.
func NewAccount(number, name string, initialDeposit decimal.Decimal) (*Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if initialDeposit.IsNegative() {
		return nil, ErrInvalidAmount
	}
	a := &Account{number: number, name: name, balance: initialDeposit}
	if initialDeposit.IsPositive() {
		a.log(TxDeposit, initialDeposit)
	}
	return a, nil
}

// Number returns the stable account number (e.g. "ACC001").
func (a *Account) Number() string { return a.number }

// Name returns the account holder's name.
func (a *Account) Name() string { return a.name }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Deposit increases the balance by amount and appends a deposit record.
// The amount must be strictly positive.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	a.log(TxDeposit, amount)
	return nil
}

// Withdraw decreases the balance by amount and appends a withdraw record.
// The amount must be strictly positive and must not exceed the balance.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	a.log(TxWithdraw, amount)
	return nil
}

// Transactions returns the transaction history in chronological order.
// The returned slice is a copy; mutating it does not affect the account.
func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// log appends a record with the current balance as the snapshot.
func (a *Account) log(kind TxKind, amount decimal.Decimal) {
	a.transactions = append(a.transactions, Transaction{
		Kind:         kind,
		Amount:       amount,
		Timestamp:    Now(),
		BalanceAfter: a.balance,
	})
}

// clone returns a deep copy of the account, used by the store to stage
// mutations that may have to be rolled back.
func (a *Account) clone() *Account {
	cp := *a
	cp.transactions = make([]Transaction, len(a.transactions))
	copy(cp.transactions, a.transactions)
	return &cp
}
