package bankbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// accountNumberPrefix prefixes every generated account number; the numeric
// suffix is zero-padded to three digits and widens as needed.
const accountNumberPrefix = "ACC"

// Store is the aggregate owner of all accounts. It is the sole authority for
// account-number allocation and for persistence: every mutation goes through
// the store, and a successful mutation is durable before it is reported.
//
// Mutations are staged: the store applies the change, attempts the save, and
// restores the previous in-memory state if the save fails, so the caller
// never observes memory ahead of disk.
//
// A Store assumes one process and one writer; it is not safe for concurrent
// use.
type Store struct {
	path     string
	accounts map[string]*Account
}

// Open creates a store backed by the file at path and loads its content.
//
// An absent file is not an error: the store starts empty and the file is
// created on the first save. A file that cannot be decoded also yields a
// usable empty store, together with an error wrapping ErrCorruptStorage so
// the caller can warn; the unreadable content is left untouched on disk
// until the next successful save overwrites it.
func Open(path string) (*Store, error) {
	s := &Store{path: path, accounts: make(map[string]*Account)}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrCorruptStorage, err)
	}
	defer f.Close()

	accounts, err := DecodeAccounts(f)
	if err != nil {
		return s, fmt.Errorf("could not load %q: %w", path, err)
	}
	for _, a := range accounts {
		s.accounts[a.Number()] = a
	}
	return s, nil
}

// Path returns the durable file location backing the store.
func (s *Store) Path() string { return s.path }

// Len returns the number of accounts in the store.
func (s *Store) Len() int { return len(s.accounts) }

// CreateAccount allocates a fresh account number, creates the account with
// the given holder name and initial deposit, and persists the store. If the
// save fails the account is removed again and an error wrapping
// ErrPersistence is returned: the caller observes no account created.
func (s *Store) CreateAccount(name string, initialDeposit decimal.Decimal) (*Account, error) {
	number := s.nextAccountNumber()
	a, err := NewAccount(number, name, initialDeposit)
	if err != nil {
		return nil, err
	}
	s.accounts[number] = a
	if err := s.Save(); err != nil {
		delete(s.accounts, number)
		return nil, err
	}
	return a, nil
}

// Deposit adds amount to the identified account and persists the store.
// On save failure the account is restored to its previous state.
func (s *Store) Deposit(number string, amount decimal.Decimal) error {
	return s.apply(number, func(a *Account) error { return a.Deposit(amount) })
}

// Withdraw removes amount from the identified account and persists the
// store. On save failure the account is restored to its previous state.
func (s *Store) Withdraw(number string, amount decimal.Decimal) error {
	return s.apply(number, func(a *Account) error { return a.Withdraw(amount) })
}

// apply stages a mutation on the identified account: the change runs against
// the live account, and the pre-mutation copy is swapped back in if the save
// fails.
func (s *Store) apply(number string, mutate func(*Account) error) error {
	a, ok := s.accounts[number]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, number)
	}
	before := a.clone()
	if err := mutate(a); err != nil {
		return err
	}
	if err := s.Save(); err != nil {
		s.accounts[number] = before
		return err
	}
	return nil
}

// GetAccount returns the account with the given number, or
// ErrAccountNotFound.
func (s *Store) GetAccount(number string) (*Account, error) {
	a, ok := s.accounts[number]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, number)
	}
	return a, nil
}

// ListAccounts returns all accounts ordered by account number.
func (s *Store) ListAccounts() []*Account {
	out := make([]*Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		ni, iok := numberSuffix(out[i].Number())
		nj, jok := numberSuffix(out[j].Number())
		if iok && jok {
			return ni < nj
		}
		return out[i].Number() < out[j].Number()
	})
	return out
}

// TransactionHistory returns the ordered transaction log of the identified
// account, or ErrAccountNotFound.
func (s *Store) TransactionHistory(number string) ([]Transaction, error) {
	a, err := s.GetAccount(number)
	if err != nil {
		return nil, err
	}
	return a.Transactions(), nil
}

// Save serializes every account, in account-number order, to the durable
// file. The document is written to a temporary file first and renamed over
// the previous one, so a failed save leaves the prior content unchanged.
func (s *Store) Save() error {
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := EncodeAccounts(f, s.ListAccounts()); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// nextAccountNumber scans existing numbers, ignoring any that do not match
// the ACCnnn pattern, and returns the successor of the highest suffix. The
// first account is ACC001.
func (s *Store) nextAccountNumber() string {
	highest := 0
	for number := range s.accounts {
		if n, ok := numberSuffix(number); ok && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%03d", accountNumberPrefix, highest+1)
}

// numberSuffix parses the numeric suffix of an ACCnnn account number.
func numberSuffix(number string) (int, bool) {
	rest, ok := strings.CutPrefix(number, accountNumberPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
