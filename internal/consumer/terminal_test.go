package consumer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/bibek0707/finance-tracker1/internal/service"
)

func runTerminal(t *testing.T, ledger Ledger, input ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	terminal := NewTerminal(strings.NewReader(strings.Join(input, "\n")+"\n"), &out, validator.New(), ledger)
	err := terminal.Consume(context.Background())
	return out.String(), err
}

func TestTerminal_Session(t *testing.T) {
	dir := t.TempDir()
	ledger := newFileLedger(dir)

	out, err := runTerminal(t, ledger,
		"1", "alice", "secret",
		"2", "alice", "secret",
		"1", "01-01-2024", "100", "salary",
		"2", "02-01-2024", "40", "food",
		"3",
		"5",
	)
	require.NoError(t, err)
	require.Contains(t, out, "[INFO] User registered successfully.")
	require.Contains(t, out, "[INFO] Login successful.")
	require.Contains(t, out, "[INFO] Income entry added successfully.")
	require.Contains(t, out, "[INFO] Expense entry added successfully.")
	require.Contains(t, out, "Total Income: 100.00 | Total Expense: 40.00 | Balance: 60.00")
	require.Contains(t, out, "--- Income Records ---\nDate: 01-01-2024 | Amount: 100.00 | Category: salary\n")
	require.Contains(t, out, "[INFO] Exiting Finance Tracker.")
	require.Equal(t, service.Terminated, ledger.State())

	restarted := newFileLedger(dir)
	out, err = runTerminal(t, restarted, "2", "alice", "secret", "4", "5")
	require.NoError(t, err)
	require.Contains(t, out, "Total Income: 100.00 | Total Expense: 40.00 | Balance: 60.00")
	require.Contains(t, out, "Date: 02-01-2024 | Amount: 40.00 | Category: food")
}

func TestTerminal_WrongPassword(t *testing.T) {
	ledger := newFileLedger(t.TempDir())

	out, err := runTerminal(t, ledger,
		"1", "alice", "secret",
		"2", "alice", "wrong",
		"3",
	)
	require.NoError(t, err)
	require.Contains(t, out, "[INFO] User not found or password incorrect.")
	require.Contains(t, out, "[INFO] Exiting.")
	require.Equal(t, service.Unauthenticated, ledger.State())
}

func TestTerminal_RejectsBadInput(t *testing.T) {
	ledger := newFileLedger(t.TempDir())

	out, err := runTerminal(t, ledger,
		"x",
		"1", "al:ice", "secret",
		"9",
		"3",
	)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "[INFO] Invalid option."))
	require.Contains(t, out, "[ERROR] Username must be 1 to 31 characters")
	require.Equal(t, service.Unauthenticated, ledger.State())
}

func TestTerminal_EndOfInputLogsOut(t *testing.T) {
	dir := t.TempDir()
	ledger := newFileLedger(dir)

	out, err := runTerminal(t, ledger,
		"1", "bob", "pw",
		"2", "bob", "pw",
		"4",
		"1", "01-01-2024", "-5",
		"1", "01-01-2024", "12.5",
	)
	require.NoError(t, err)
	require.Contains(t, out, "[INFO] No Expense records to display.")
	require.Contains(t, out, "[ERROR] Invalid amount.")
	require.Contains(t, out, "[INFO] Exiting Finance Tracker.")
	require.Equal(t, service.Terminated, ledger.State())

	// the last entry ran out of input before its category, so only the snapshot
	// and empty lists were written on logout
	_, err = os.Stat(filepath.Join(dir, "record.bin"))
	require.NoError(t, err)
	restarted := newFileLedger(dir)
	ok, err := restarted.Authenticate(context.Background(), "bob", "pw")
	require.NoError(t, err)
	require.True(t, ok)
	totals, err := restarted.Totals()
	require.NoError(t, err)
	require.Equal(t, 0.0, totals.Income)
}

func TestTerminal_EndOfInputBeforeLogin(t *testing.T) {
	ledger := newFileLedger(t.TempDir())

	out, err := runTerminal(t, ledger, "2", "alice")
	require.NoError(t, err)
	require.NotContains(t, out, "Login successful")
	require.Equal(t, service.Unauthenticated, ledger.State())
}
