package bankbook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// Balances and amounts are persisted as plain JSON numbers, compatible
	// with data files written before this implementation.
	decimal.MarshalJSONWithoutQuotes = true
}

// The durable document layout. Field names and nesting are fixed: existing
// data files must keep loading, and files written here must keep loading in
// any prior implementation.
type document struct {
	Accounts []accountRecord `json:"accounts"`
}

type accountRecord struct {
	AccountNumber string          `json:"account_number"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	Transactions  []Transaction   `json:"transactions"`
}

// EncodeAccounts writes the complete state of every account to w as one
// indented JSON document. Accounts are written in the given order.
func EncodeAccounts(w io.Writer, accounts []*Account) error {
	doc := document{Accounts: make([]accountRecord, 0, len(accounts))}
	for _, a := range accounts {
		doc.Accounts = append(doc.Accounts, accountRecord{
			AccountNumber: a.number,
			Name:          a.name,
			Balance:       a.balance,
			Transactions:  a.Transactions(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("could not encode accounts: %w", err)
	}
	return nil
}

// DecodeAccounts reads a durable document from r and rebuilds the accounts
// in document order. A document that does not parse, or that contains a
// transaction of unknown kind, yields an error wrapping ErrCorruptStorage.
func DecodeAccounts(r io.Reader) ([]*Account, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStorage, err)
	}
	accounts := make([]*Account, 0, len(doc.Accounts))
	for _, rec := range doc.Accounts {
		for _, tx := range rec.Transactions {
			if !tx.Kind.Valid() {
				return nil, fmt.Errorf("%w: unknown transaction type %q in account %s", ErrCorruptStorage, tx.Kind, rec.AccountNumber)
			}
		}
		accounts = append(accounts, &Account{
			number:       rec.AccountNumber,
			name:         rec.Name,
			balance:      rec.Balance,
			transactions: rec.Transactions,
		})
	}
	return accounts, nil
}
