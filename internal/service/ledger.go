package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/bibek0707/finance-tracker1/internal/model"
	"github.com/bibek0707/finance-tracker1/internal/repository"
)

var InvalidStateErr = errors.New("operation isn't allowed in this session state")

type State int

const (
	Unauthenticated State = iota
	Authenticated
	Terminated
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Ledger is one session of the finance tracker: it owns the income and expense
// lists and their totals from login until logout. It is not safe for concurrent use.
type Ledger struct {
	auth        Authorization
	incomeRepo  repository.Entries
	expenseRepo repository.Entries
	snapshot    repository.Snapshot

	state    State
	username string
	income   *model.EntryList
	expenses *model.EntryList
	totals   model.Totals
}

func NewLedger(auth Authorization, incomeRepo, expenseRepo repository.Entries, snapshot repository.Snapshot) *Ledger {
	return &Ledger{
		auth:        auth,
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		snapshot:    snapshot,
		state:       Unauthenticated,
		income:      model.NewEntryList(),
		expenses:    model.NewEntryList(),
	}
}

func (l *Ledger) State() State {
	return l.state
}

// Username is the authenticated user, empty before login.
func (l *Ledger) Username() string {
	return l.username
}

func (l *Ledger) Register(ctx context.Context, username, password string) error {
	if err := l.require(Unauthenticated); err != nil {
		return err
	}
	if err := l.auth.Register(ctx, username, password); err != nil {
		return fmt.Errorf("service.Ledger, register %s: %w", username, err)
	}
	logrus.Infof("user %s registered", username)
	return nil
}

// Authenticate checks the credentials and, when they match, loads the stored
// lists and totals and opens the session. Wrong credentials leave the ledger
// unauthenticated and are not an error.
func (l *Ledger) Authenticate(ctx context.Context, username, password string) (bool, error) {
	if err := l.require(Unauthenticated); err != nil {
		return false, err
	}
	ok, err := l.auth.Authenticate(ctx, username, password)
	if err != nil {
		return false, fmt.Errorf("service.Ledger, authenticate %s: %w", username, err)
	}
	if !ok {
		logrus.Infof("user %s not found or password incorrect", username)
		return false, nil
	}
	if err = l.load(ctx); err != nil {
		return false, fmt.Errorf("service.Ledger, authenticate %s: %w", username, err)
	}
	l.state = Authenticated
	l.username = username
	logrus.Infof("user %s logged in with %d income and %d expense entries", username, l.income.Len(), l.expenses.Len())
	return true, nil
}

func (l *Ledger) load(ctx context.Context) error {
	income, err := l.incomeRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load income: %w", err)
	}
	expenses, err := l.expenseRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}
	totals, found, err := l.snapshot.Load(ctx)
	if err != nil {
		return fmt.Errorf("load totals: %w", err)
	}

	l.income = model.NewEntryList(income...)
	l.expenses = model.NewEntryList(expenses...)
	if found {
		l.totals = totals
	}
	if l.totals.Income != l.income.Sum() || l.totals.Expense != l.expenses.Sum() {
		logrus.Warnf("stored totals %+v don't match the stored entries (income %v, expense %v)",
			l.totals, l.income.Sum(), l.expenses.Sum())
	}
	return nil
}

func (l *Ledger) AddIncome(ctx context.Context, date string, amount float64, category string) (model.Entry, error) {
	return l.add(ctx, model.Income, date, amount, category)
}

func (l *Ledger) AddExpense(ctx context.Context, date string, amount float64, category string) (model.Entry, error) {
	return l.add(ctx, model.Expense, date, amount, category)
}

// add writes the list with the new entry to disk before touching memory, so a
// failed write leaves both the list and its total as they were.
func (l *Ledger) add(ctx context.Context, kind model.Kind, date string, amount float64, category string) (model.Entry, error) {
	if err := l.require(Authenticated); err != nil {
		return model.Entry{}, err
	}
	if err := validateAmount(amount); err != nil {
		return model.Entry{}, err
	}

	list, repo := l.income, l.incomeRepo
	if kind == model.Expense {
		list, repo = l.expenses, l.expenseRepo
	}

	entry := model.NewEntry(date, amount, category)
	if err := repo.Save(ctx, append(list.Entries(), entry)); err != nil {
		return model.Entry{}, fmt.Errorf("service.Ledger, add %s: %w", kind, err)
	}
	list.Append(entry)
	l.totals.Record(kind, entry.Amount)

	if err := l.snapshot.Save(ctx, l.totals); err != nil {
		logrus.Errorf("service.Ledger couldn't save totals after adding %s, they are saved again on logout: %v", kind, err)
	}
	logrus.Debugf("%s added %s: %s %.2f %s", l.username, kind, entry.Date, entry.Amount, entry.Category)
	return entry, nil
}

func (l *Ledger) Income() ([]model.Entry, error) {
	if err := l.require(Authenticated); err != nil {
		return nil, err
	}
	return l.income.Entries(), nil
}

func (l *Ledger) Expenses() ([]model.Entry, error) {
	if err := l.require(Authenticated); err != nil {
		return nil, err
	}
	return l.expenses.Entries(), nil
}

func (l *Ledger) Totals() (model.Totals, error) {
	if err := l.require(Authenticated); err != nil {
		return model.Totals{}, err
	}
	return l.totals, nil
}

// Balance is total income minus total expense.
func (l *Ledger) Balance() (float64, error) {
	if err := l.require(Authenticated); err != nil {
		return 0, err
	}
	return l.totals.Balance(), nil
}

// Logout writes the totals and both lists and closes the session. If any write
// fails the session stays open so the caller can try again.
func (l *Ledger) Logout(ctx context.Context) error {
	if err := l.require(Authenticated); err != nil {
		return err
	}
	err := errors.Join(
		l.snapshot.Save(ctx, l.totals),
		l.incomeRepo.Save(ctx, l.income.Entries()),
		l.expenseRepo.Save(ctx, l.expenses.Entries()),
	)
	if err != nil {
		return fmt.Errorf("service.Ledger, logout %s: %w", l.username, err)
	}
	l.state = Terminated
	logrus.Infof("user %s logged out", l.username)
	return nil
}

func (l *Ledger) require(state State) error {
	if l.state != state {
		return fmt.Errorf("%w: session is %s, need %s", InvalidStateErr, l.state, state)
	}
	return nil
}
