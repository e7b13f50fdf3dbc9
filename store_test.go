package bankbook

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "bankbook.json"))
	require.NoError(t, err)
	return store
}

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestOpenCorruptFileStartsEmptyWithWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankbook.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store, err := Open(path)
	require.ErrorIs(t, err, ErrCorruptStorage)
	require.NotNil(t, store)
	assert.Equal(t, 0, store.Len())

	// the unreadable file is left in place until the next successful save
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestCreateAccount(t *testing.T) {
	store := newTestStore(t)

	account, err := store.CreateAccount("Alice", amount("100.00"))
	require.NoError(t, err)
	assert.Equal(t, "ACC001", account.Number())
	assert.Equal(t, "Alice", account.Name())
	assert.True(t, account.Balance().Equal(amount("100.00")))

	txs := account.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, TxDeposit, txs[0].Kind)
	assert.True(t, txs[0].BalanceAfter.Equal(amount("100.00")))

	// the store is durable right away
	reloaded, err := Open(store.Path())
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Len())
}

func TestCreateAccountValidation(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateAccount("   ", amount("10"))
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = store.CreateAccount("Alice", amount("-10"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.Equal(t, 0, store.Len())
}

func TestAccountNumberAllocation(t *testing.T) {
	store := newTestStore(t)

	for i := 1; i <= 12; i++ {
		account, err := store.CreateAccount(fmt.Sprintf("Holder %d", i), amount("1"))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("ACC%03d", i), account.Number())
	}
	assert.Equal(t, 12, store.Len())
}

func TestAccountNumberAllocationSkipsForeignNumbers(t *testing.T) {
	store := newTestStore(t)
	// numbers not matching the ACCnnn pattern are ignored by the scan
	foreign, err := NewAccount("LEGACY-7", "Old", amount("0"))
	require.NoError(t, err)
	store.accounts[foreign.Number()] = foreign

	account, err := store.CreateAccount("Alice", amount("0"))
	require.NoError(t, err)
	assert.Equal(t, "ACC001", account.Number())
}

func TestAccountNumberWidensPast999(t *testing.T) {
	store := newTestStore(t)
	high, err := NewAccount("ACC999", "High", amount("0"))
	require.NoError(t, err)
	store.accounts[high.Number()] = high

	account, err := store.CreateAccount("Alice", amount("0"))
	require.NoError(t, err)
	assert.Equal(t, "ACC1000", account.Number())
}

func TestDepositAndWithdraw(t *testing.T) {
	store := newTestStore(t)
	account, err := store.CreateAccount("Alice", amount("100.00"))
	require.NoError(t, err)

	require.NoError(t, store.Withdraw(account.Number(), amount("30.00")))
	assert.True(t, account.Balance().Equal(amount("70.00")))
	require.Len(t, account.Transactions(), 2)

	err = store.Withdraw(account.Number(), amount("1000.00"))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, account.Balance().Equal(amount("70.00")))
	assert.Len(t, account.Transactions(), 2)

	require.NoError(t, store.Deposit(account.Number(), amount("5.25")))
	assert.True(t, account.Balance().Equal(amount("75.25")))

	history, err := store.TransactionHistory(account.Number())
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.True(t, history[2].BalanceAfter.Equal(amount("75.25")))
}

func TestUnknownAccount(t *testing.T) {
	store := newTestStore(t)

	assert.ErrorIs(t, store.Deposit("ACC999", amount("10.00")), ErrAccountNotFound)
	assert.ErrorIs(t, store.Withdraw("ACC999", amount("10.00")), ErrAccountNotFound)

	_, err := store.GetAccount("ACC999")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	_, err = store.TransactionHistory("ACC999")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	assert.Equal(t, 0, store.Len())
}

func TestCreateRollbackOnPersistenceFailure(t *testing.T) {
	// a path whose directory does not exist makes every save fail
	store, err := Open(filepath.Join(t.TempDir(), "missing", "bankbook.json"))
	require.NoError(t, err)

	_, err = store.CreateAccount("Alice", amount("100"))
	require.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, 0, store.Len())
}

func TestMutationRollbackOnPersistenceFailure(t *testing.T) {
	dir, err := os.MkdirTemp("", "bankbook")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	store, err := Open(filepath.Join(dir, "bankbook.json"))
	require.NoError(t, err)
	account, err := store.CreateAccount("Alice", amount("100.00"))
	require.NoError(t, err)

	// removing the directory makes the next save fail
	require.NoError(t, os.RemoveAll(dir))

	err = store.Deposit(account.Number(), amount("50.00"))
	require.ErrorIs(t, err, ErrPersistence)

	// memory never runs ahead of disk: the mutation is rolled back
	current, err := store.GetAccount(account.Number())
	require.NoError(t, err)
	assert.True(t, current.Balance().Equal(amount("100.00")))
	assert.Len(t, current.Transactions(), 1)
}

func TestRoundTrip(t *testing.T) {
	store := newTestStore(t)

	alice, err := store.CreateAccount("Alice", amount("100.00"))
	require.NoError(t, err)
	_, err = store.CreateAccount("Bob", amount("0"))
	require.NoError(t, err)
	require.NoError(t, store.Withdraw(alice.Number(), amount("30.00")))
	require.NoError(t, store.Deposit(alice.Number(), amount("0.10")))
	require.NoError(t, store.Deposit(alice.Number(), amount("0.20")))

	reloaded, err := Open(store.Path())
	require.NoError(t, err)
	require.Equal(t, store.Len(), reloaded.Len())

	for _, want := range store.ListAccounts() {
		got, err := reloaded.GetAccount(want.Number())
		require.NoError(t, err)
		assert.Equal(t, want.Name(), got.Name())
		assert.True(t, got.Balance().Equal(want.Balance()), "balance %s != %s", got.Balance(), want.Balance())

		wantTxs, gotTxs := want.Transactions(), got.Transactions()
		require.Len(t, gotTxs, len(wantTxs))
		for i := range wantTxs {
			assert.True(t, gotTxs[i].Equal(wantTxs[i]), "transaction %d differs: %+v != %+v", i, gotTxs[i], wantTxs[i])
		}
	}

	// decimal arithmetic stays exact across the round trip
	got, err := reloaded.GetAccount(alice.Number())
	require.NoError(t, err)
	assert.True(t, got.Balance().Equal(amount("70.30")))
}

func TestListAccountsOrder(t *testing.T) {
	store := newTestStore(t)
	for _, name := range []string{"C", "A", "B"} {
		_, err := store.CreateAccount(name, amount("1"))
		require.NoError(t, err)
	}
	// widened numbers sort numerically, not lexicographically
	wide, err := NewAccount("ACC1000", "Wide", amount("0"))
	require.NoError(t, err)
	store.accounts[wide.Number()] = wide

	var numbers []string
	for _, a := range store.ListAccounts() {
		numbers = append(numbers, a.Number())
	}
	assert.Equal(t, []string{"ACC001", "ACC002", "ACC003", "ACC1000"}, numbers)
}
