package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bibek0707/finance-tracker1/internal/model"
	"github.com/bibek0707/finance-tracker1/internal/repository"
	"github.com/bibek0707/finance-tracker1/internal/repository/mocks"
)

func newFileLedger(dir string) *Ledger {
	return NewLedger(
		NewAuth(repository.NewUserFile(filepath.Join(dir, "users.dat"))),
		repository.NewEntryFile(filepath.Join(dir, "myincome.bin")),
		repository.NewEntryFile(filepath.Join(dir, "myexpense.bin")),
		repository.NewSnapshotFile(filepath.Join(dir, "record.bin")),
	)
}

func login(t *testing.T, l *Ledger, username, password string) {
	t.Helper()
	ok, err := l.Authenticate(context.Background(), username, password)
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, ok)
}

type mockedLedger struct {
	ledger   *Ledger
	users    *mocks.User
	income   *mocks.Entries
	expenses *mocks.Entries
	snapshot *mocks.Snapshot
}

// newMockedLedger returns a ledger already logged in as alice with empty lists.
func newMockedLedger(t *testing.T) *mockedLedger {
	m := &mockedLedger{
		users:    mocks.NewUser(t),
		income:   mocks.NewEntries(t),
		expenses: mocks.NewEntries(t),
		snapshot: mocks.NewSnapshot(t),
	}
	m.ledger = NewLedger(NewAuth(m.users), m.income, m.expenses, m.snapshot)

	m.users.On("Exists", mock.Anything, mock.Anything).Return(true, nil).Once()
	m.income.On("Load", mock.Anything).Return(nil, nil).Once()
	m.expenses.On("Load", mock.Anything).Return(nil, nil).Once()
	m.snapshot.On("Load", mock.Anything).Return(model.Totals{}, false, nil).Once()
	login(t, m.ledger, "alice", "secret")
	return m
}

func TestLedger_Scenario(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	l := newFileLedger(dir)
	require.NoError(t, l.Register(ctx, "alice", "secret"))
	login(t, l, "alice", "secret")

	_, err := l.AddIncome(ctx, "2024-01-01", 100, "salary")
	require.NoError(t, err)
	_, err = l.AddExpense(ctx, "2024-01-02", 40, "food")
	require.NoError(t, err)

	balance, err := l.Balance()
	require.NoError(t, err)
	require.Equal(t, 60.0, balance)

	// a new process reads the same files, without a logout in between
	restarted := newFileLedger(dir)
	login(t, restarted, "alice", "secret")

	balance, err = restarted.Balance()
	require.NoError(t, err)
	require.Equal(t, 60.0, balance)

	income, err := restarted.Income()
	require.NoError(t, err)
	require.Equal(t, []model.Entry{{Date: "2024-01-01", Amount: 100, Category: "salary"}}, income)

	expenses, err := restarted.Expenses()
	require.NoError(t, err)
	require.Equal(t, []model.Entry{{Date: "2024-01-02", Amount: 40, Category: "food"}}, expenses)
}

func TestLedger_AuthenticateResults(t *testing.T) {
	ctx := context.Background()
	l := newFileLedger(t.TempDir())

	// no credentials file yet
	ok, err := l.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, Unauthenticated, l.State())

	require.NoError(t, l.Register(ctx, "alice", "secret"))

	ok, err = l.Authenticate(ctx, "alice", "wrong")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = l.Authenticate(ctx, "bob", "x")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, Unauthenticated, l.State())

	ok, err = l.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Authenticated, l.State())
	require.Equal(t, "alice", l.Username())
}

func TestLedger_StateMachine(t *testing.T) {
	ctx := context.Background()
	l := newFileLedger(t.TempDir())

	_, err := l.AddIncome(ctx, "d", 1, "c")
	require.ErrorIs(t, err, InvalidStateErr)
	_, err = l.Income()
	require.ErrorIs(t, err, InvalidStateErr)
	_, err = l.Balance()
	require.ErrorIs(t, err, InvalidStateErr)
	require.ErrorIs(t, l.Logout(ctx), InvalidStateErr)

	require.NoError(t, l.Register(ctx, "alice", "secret"))
	login(t, l, "alice", "secret")

	require.ErrorIs(t, l.Register(ctx, "bob", "x"), InvalidStateErr)
	_, err = l.Authenticate(ctx, "alice", "secret")
	require.ErrorIs(t, err, InvalidStateErr)

	require.NoError(t, l.Logout(ctx))
	require.Equal(t, Terminated, l.State())

	_, err = l.AddExpense(ctx, "d", 1, "c")
	require.ErrorIs(t, err, InvalidStateErr)
	_, err = l.Authenticate(ctx, "alice", "secret")
	require.ErrorIs(t, err, InvalidStateErr)
	require.ErrorIs(t, l.Logout(ctx), InvalidStateErr)
}

func TestLedger_RejectsNegativeAmount(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	l := newFileLedger(dir)
	require.NoError(t, l.Register(ctx, "alice", "secret"))
	login(t, l, "alice", "secret")

	_, err := l.AddIncome(ctx, "2024-01-01", -5, "salary")
	require.ErrorIs(t, err, ValidationErr)

	income, err := l.Income()
	require.NoError(t, err)
	require.Empty(t, income)

	totals, err := l.Totals()
	require.NoError(t, err)
	require.Equal(t, model.Totals{}, totals)

	_, err = os.Stat(filepath.Join(dir, "myincome.bin"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLedger_SnapshotMatchesList(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	l := newFileLedger(dir)
	require.NoError(t, l.Register(ctx, "alice", "secret"))
	login(t, l, "alice", "secret")

	for _, amount := range []float64{0.1, 0.2, 0.3, 1234.56, 1e-7} {
		_, err := l.AddIncome(ctx, "2024-01-01", amount, "misc")
		require.NoError(t, err)
	}
	for _, amount := range []float64{9.99, 0.01} {
		_, err := l.AddExpense(ctx, "2024-01-01", amount, "misc")
		require.NoError(t, err)
	}

	totals, ok, err := repository.NewSnapshotFile(filepath.Join(dir, "record.bin")).Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	income, err := l.Income()
	require.NoError(t, err)
	expenses, err := l.Expenses()
	require.NoError(t, err)
	require.Equal(t, model.NewEntryList(income...).Sum(), totals.Income)
	require.Equal(t, model.NewEntryList(expenses...).Sum(), totals.Expense)
}

func TestLedger_LogoutPersists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	l := newFileLedger(dir)
	require.NoError(t, l.Register(ctx, "alice", "secret"))
	login(t, l, "alice", "secret")

	_, err := l.AddIncome(ctx, "01-01-2024", 10, "gift")
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(dir, "record.bin")))
	require.NoError(t, l.Logout(ctx))

	totals, ok, err := repository.NewSnapshotFile(filepath.Join(dir, "record.bin")).Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, model.Totals{Income: 10}, totals)

	expenses, err := repository.NewEntryFile(filepath.Join(dir, "myexpense.bin")).Load(ctx)
	require.NoError(t, err)
	require.Empty(t, expenses)
}

func TestLedger_AddWriteFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	m := newMockedLedger(t)

	m.income.On("Save", mock.Anything, mock.Anything).Return(errors.Join(repository.IOErr, errors.New("disk full"))).Once()

	_, err := m.ledger.AddIncome(ctx, "01-01-2024", 100, "salary")
	require.ErrorIs(t, err, repository.IOErr)

	income, err := m.ledger.Income()
	require.NoError(t, err)
	require.Empty(t, income)

	totals, err := m.ledger.Totals()
	require.NoError(t, err)
	require.Equal(t, model.Totals{}, totals)
	m.snapshot.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestLedger_AddSavesWholeList(t *testing.T) {
	ctx := context.Background()
	m := newMockedLedger(t)

	first := model.NewEntry("01-01-2024", 40, "food")
	second := model.NewEntry("02-01-2024", 2.5, "coffee")
	m.expenses.On("Save", mock.Anything, []model.Entry{first}).Return(nil).Once()
	m.expenses.On("Save", mock.Anything, []model.Entry{first, second}).Return(nil).Once()
	m.snapshot.On("Save", mock.Anything, model.Totals{Expense: 40}).Return(nil).Once()
	m.snapshot.On("Save", mock.Anything, model.Totals{Expense: 42.5}).Return(nil).Once()

	_, err := m.ledger.AddExpense(ctx, first.Date, first.Amount, first.Category)
	require.NoError(t, err)
	_, err = m.ledger.AddExpense(ctx, second.Date, second.Amount, second.Category)
	require.NoError(t, err)

	balance, err := m.ledger.Balance()
	require.NoError(t, err)
	require.Equal(t, -42.5, balance)
}

func TestLedger_SnapshotFailureKeepsEntry(t *testing.T) {
	ctx := context.Background()
	m := newMockedLedger(t)

	m.income.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
	m.snapshot.On("Save", mock.Anything, mock.Anything).Return(repository.IOErr).Once()

	_, err := m.ledger.AddIncome(ctx, "01-01-2024", 100, "salary")
	require.NoError(t, err)

	totals, err := m.ledger.Totals()
	require.NoError(t, err)
	require.Equal(t, 100.0, totals.Income)
}

func TestLedger_LogoutFailureStaysOpen(t *testing.T) {
	ctx := context.Background()
	m := newMockedLedger(t)

	m.snapshot.On("Save", mock.Anything, mock.Anything).Return(repository.IOErr).Once()
	m.income.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
	m.expenses.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	err := m.ledger.Logout(ctx)
	require.ErrorIs(t, err, repository.IOErr)
	require.Equal(t, Authenticated, m.ledger.State())

	m.snapshot.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
	m.income.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
	m.expenses.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
	require.NoError(t, m.ledger.Logout(ctx))
	require.Equal(t, Terminated, m.ledger.State())
}

func TestLedger_LoadFailureStaysUnauthenticated(t *testing.T) {
	users := mocks.NewUser(t)
	income := mocks.NewEntries(t)
	expenses := mocks.NewEntries(t)
	snapshot := mocks.NewSnapshot(t)
	l := NewLedger(NewAuth(users), income, expenses, snapshot)

	users.On("Exists", mock.Anything, mock.Anything).Return(true, nil).Once()
	income.On("Load", mock.Anything).Return(nil, repository.IOErr).Once()

	ok, err := l.Authenticate(context.Background(), "alice", "secret")
	require.ErrorIs(t, err, repository.IOErr)
	require.False(t, ok)
	require.Equal(t, Unauthenticated, l.State())
}

func TestLedger_LoadUsesStoredTotals(t *testing.T) {
	users := mocks.NewUser(t)
	income := mocks.NewEntries(t)
	expenses := mocks.NewEntries(t)
	snapshot := mocks.NewSnapshot(t)
	l := NewLedger(NewAuth(users), income, expenses, snapshot)

	users.On("Exists", mock.Anything, mock.Anything).Return(true, nil).Once()
	income.On("Load", mock.Anything).Return([]model.Entry{model.NewEntry("d", 7, "c")}, nil).Once()
	expenses.On("Load", mock.Anything).Return(nil, nil).Once()
	// totals are cached values, a stale snapshot is kept as it is
	snapshot.On("Load", mock.Anything).Return(model.Totals{Income: 5}, true, nil).Once()

	login(t, l, "alice", "secret")
	totals, err := l.Totals()
	require.NoError(t, err)
	require.Equal(t, model.Totals{Income: 5}, totals)
}

func TestState_String(t *testing.T) {
	require.Equal(t, "unauthenticated", Unauthenticated.String())
	require.Equal(t, "authenticated", Authenticated.String())
	require.Equal(t, "terminated", Terminated.String())
	require.Equal(t, "State(7)", State(7).String())
}
