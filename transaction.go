package bankbook

import "github.com/shopspring/decimal"

// TxKind is a typed string identifying the kind of a transaction.
type TxKind string

// Transaction kinds recorded in the log.
const (
	TxDeposit  TxKind = "deposit"
	TxWithdraw TxKind = "withdraw"
)

// Valid reports whether k is a known transaction kind.
func (k TxKind) Valid() bool {
	return k == TxDeposit || k == TxWithdraw
}

// Transaction is an immutable record of one balance-changing event.
//
// BalanceAfter is a snapshot of the account balance right after the event
// was applied; it is stored, never recomputed.
type Transaction struct {
	Kind         TxKind          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Timestamp    Timestamp       `json:"timestamp"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
}

// Signed returns the transaction amount with its ledger sign: positive for
// deposits, negative for withdrawals.
func (tx Transaction) Signed() decimal.Decimal {
	if tx.Kind == TxWithdraw {
		return tx.Amount.Neg()
	}
	return tx.Amount
}

// Equal reports whether two transactions carry the same kind, amount,
// timestamp and balance snapshot.
func (tx Transaction) Equal(o Transaction) bool {
	return tx.Kind == o.Kind &&
		tx.Amount.Equal(o.Amount) &&
		tx.Timestamp.Equal(o.Timestamp) &&
		tx.BalanceAfter.Equal(o.BalanceAfter)
}
