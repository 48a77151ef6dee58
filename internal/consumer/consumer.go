// Package consumer holds the front ends that drive a ledger session: an
// interactive terminal menu and a telegram bot. Both only parse input and render
// results, the ledger does the rest.
package consumer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bibek0707/finance-tracker1/internal/model"
	"github.com/bibek0707/finance-tracker1/internal/service"
)

// Ledger is the session the front ends work with, implemented by service.Ledger.
type Ledger interface {
	State() service.State
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (bool, error)
	AddIncome(ctx context.Context, date string, amount float64, category string) (model.Entry, error)
	AddExpense(ctx context.Context, date string, amount float64, category string) (model.Entry, error)
	Income() ([]model.Entry, error)
	Expenses() ([]model.Entry, error)
	Totals() (model.Totals, error)
	Logout(ctx context.Context) error
}

var _ Ledger = (*service.Ledger)(nil)

const (
	usernameMaxLength = model.UsernameSize - 1
	passwordMaxLength = 31
)

var InvalidCredentialsErr = errors.New("invalid username or password")

// ValidateCredentials keeps usernames within what the credentials file can store:
// at most 31 bytes and no colon, which separates the fields.
func ValidateCredentials(v *validator.Validate, username, password string) error {
	if err := v.Var(username, fmt.Sprintf("required,max=%d,excludesall=:", usernameMaxLength)); err != nil {
		return fmt.Errorf("%w: username: %v", InvalidCredentialsErr, err)
	}
	if len(username) > usernameMaxLength || strings.ContainsAny(username, "\r\n") {
		return fmt.Errorf("%w: username must fit in %d bytes on one line", InvalidCredentialsErr, usernameMaxLength)
	}
	if err := v.Var(password, fmt.Sprintf("max=%d", passwordMaxLength)); err != nil {
		return fmt.Errorf("%w: password: %v", InvalidCredentialsErr, err)
	}
	return nil
}

func kindTitle(kind model.Kind) string {
	if kind == model.Expense {
		return "Expense"
	}
	return "Income"
}

func entries(l Ledger, kind model.Kind) ([]model.Entry, error) {
	if kind == model.Expense {
		return l.Expenses()
	}
	return l.Income()
}

func addEntry(ctx context.Context, l Ledger, kind model.Kind, date string, amount float64, category string) (model.Entry, error) {
	if kind == model.Expense {
		return l.AddExpense(ctx, date, amount, category)
	}
	return l.AddIncome(ctx, date, amount, category)
}

func FormatEntry(e model.Entry) string {
	return fmt.Sprintf("Date: %s | Amount: %s | Category: %s", e.Date, service.FormatAmount(e.Amount), e.Category)
}

func FormatTotals(t model.Totals) string {
	return fmt.Sprintf("Total Income: %s | Total Expense: %s | Balance: %s",
		service.FormatAmount(t.Income), service.FormatAmount(t.Expense), service.FormatAmount(t.Balance()))
}
