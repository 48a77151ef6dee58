package consumer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/bibek0707/finance-tracker1/internal/model"
	"github.com/bibek0707/finance-tracker1/internal/service"
)

const mainMenu = `
==== Personal Finance Tracker ====
1. Register
2. Login
3. Exit
Choose an option: `

const financeMenu = `1. Add Income
2. Add Expense
3. View Income
4. View Expense
5. Logout
Choose an option: `

// Terminal is the interactive menu front end. It reads one answer per line and
// treats the end of input as Exit, or as Logout once a user is logged in.
type Terminal struct {
	in        *bufio.Scanner
	out       io.Writer
	validator *validator.Validate
	ledger    Ledger
}

func NewTerminal(in io.Reader, out io.Writer, validator *validator.Validate, ledger Ledger) *Terminal {
	return &Terminal{
		in:        bufio.NewScanner(in),
		out:       out,
		validator: validator,
		ledger:    ledger,
	}
}

// Consume runs the menus until the user exits or logs out. The returned error is
// a failure to persist the ledger on logout.
func (t *Terminal) Consume(ctx context.Context) error {
	logrus.Info("terminal consumer started")

	loggedIn, err := t.mainLoop(ctx)
	if err != nil || !loggedIn {
		return err
	}
	return t.financeLoop(ctx)
}

func (t *Terminal) mainLoop(ctx context.Context) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		t.print(mainMenu)
		line, ok := t.readLine()
		if !ok {
			return false, nil
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			t.println("[INFO] Invalid option.")
			continue
		}

		switch choice {
		case 1:
			if !t.register(ctx) {
				return false, nil
			}
		case 2:
			loggedIn, open := t.login(ctx)
			if loggedIn {
				return true, nil
			}
			if !open {
				return false, nil
			}
		case 3:
			t.println("[INFO] Exiting.")
			return false, nil
		default:
			t.println("[INFO] Invalid option.")
		}
	}
}

func (t *Terminal) financeLoop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return errors.Join(err, t.logout(context.WithoutCancel(ctx)))
		}
		totals, err := t.ledger.Totals()
		if err != nil {
			return err
		}
		t.print("\n==== Finance Dashboard ====\n" + FormatTotals(totals) + "\n" + financeMenu)

		line, ok := t.readLine()
		if !ok {
			return t.logout(ctx)
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			t.println("[INFO] Invalid choice.")
			continue
		}

		switch choice {
		case 1:
			ok = t.add(ctx, model.Income)
		case 2:
			ok = t.add(ctx, model.Expense)
		case 3:
			t.display(model.Income)
		case 4:
			t.display(model.Expense)
		case 5:
			if err = t.logout(ctx); err != nil {
				continue
			}
			return nil
		default:
			t.println("[INFO] Invalid choice.")
		}
		if !ok {
			return t.logout(ctx)
		}
	}
}

// register reports false when the input ended.
func (t *Terminal) register(ctx context.Context) bool {
	username, ok := t.prompt("Enter a username: ")
	if !ok {
		return false
	}
	password, ok := t.prompt("Enter a password: ")
	if !ok {
		return false
	}
	if err := ValidateCredentials(t.validator, username, password); err != nil {
		logrus.Infof("terminal, register: %v", err)
		t.printf("[ERROR] Username must be 1 to %d characters without ':' and password at most %d.\n",
			usernameMaxLength, passwordMaxLength)
		return true
	}
	if err := t.ledger.Register(ctx, username, password); err != nil {
		logrus.Errorf("terminal, register: %v", err)
		t.println("[ERROR] Unable to save user data.")
		return true
	}
	t.println("[INFO] User registered successfully.")
	return true
}

func (t *Terminal) login(ctx context.Context) (loggedIn bool, open bool) {
	username, ok := t.prompt("Enter username: ")
	if !ok {
		return false, false
	}
	password, ok := t.prompt("Enter password: ")
	if !ok {
		return false, false
	}
	loggedIn, err := t.ledger.Authenticate(ctx, username, password)
	if err != nil {
		logrus.Errorf("terminal, login: %v", err)
		t.println("[ERROR] Unable to load user data.")
		return false, true
	}
	if !loggedIn {
		t.println("[INFO] User not found or password incorrect.")
		return false, true
	}
	t.println("[INFO] Login successful.")
	return true, true
}

func (t *Terminal) add(ctx context.Context, kind model.Kind) bool {
	date, ok := t.prompt("Enter date (DD-MM-YYYY): ")
	if !ok {
		return false
	}
	input, ok := t.prompt("Enter amount: ")
	if !ok {
		return false
	}
	amount, err := service.ParseAmount(input)
	if err != nil {
		logrus.Infof("terminal, add %s: %v", kind, err)
		t.println("[ERROR] Invalid amount.")
		return true
	}
	category, ok := t.prompt("Enter category: ")
	if !ok {
		return false
	}

	if _, err = addEntry(ctx, t.ledger, kind, date, amount, category); err != nil {
		logrus.Errorf("terminal, add %s: %v", kind, err)
		t.printf("[ERROR] Failed to save %s entry.\n", strings.ToLower(kindTitle(kind)))
		return true
	}
	t.printf("[INFO] %s entry added successfully.\n", kindTitle(kind))
	return true
}

func (t *Terminal) display(kind model.Kind) {
	list, err := entries(t.ledger, kind)
	if err != nil {
		logrus.Errorf("terminal, display %s: %v", kind, err)
		return
	}
	if len(list) == 0 {
		t.printf("[INFO] No %s records to display.\n", kindTitle(kind))
		return
	}
	t.printf("\n--- %s Records ---\n", kindTitle(kind))
	for _, e := range list {
		t.println(FormatEntry(e))
	}
}

func (t *Terminal) logout(ctx context.Context) error {
	if err := t.ledger.Logout(ctx); err != nil {
		logrus.Errorf("terminal, logout: %v", err)
		t.println("[ERROR] Failed to save your data, try again.")
		return err
	}
	t.println("[INFO] Exiting Finance Tracker.")
	return nil
}

func (t *Terminal) prompt(text string) (string, bool) {
	t.print(text)
	return t.readLine()
}

func (t *Terminal) readLine() (string, bool) {
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			logrus.Errorf("terminal, read input: %v", err)
		}
		return "", false
	}
	return strings.TrimRight(t.in.Text(), "\r"), true
}

func (t *Terminal) print(text string) {
	fmt.Fprint(t.out, text)
}

func (t *Terminal) println(text string) {
	fmt.Fprintln(t.out, text)
}

func (t *Terminal) printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}
