// Package command exposes the ledger as subcommands: the interactive terminal,
// the telegram bot and one-shot commands for scripts.
package command

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"

	"github.com/bibek0707/finance-tracker1/internal/config"
	"github.com/bibek0707/finance-tracker1/internal/repository"
	"github.com/bibek0707/finance-tracker1/internal/service"
)

var loginFailedErr = errors.New("user not found or password incorrect")

// app is what every command shares.
type app struct {
	cfg config.Config
	in  io.Reader
	out io.Writer
}

// Register adds the commands to c. Terminal input and output go through in and out.
func Register(c *subcommands.Commander, cfg config.Config, in io.Reader, out io.Writer) {
	a := &app{cfg: cfg, in: in, out: out}

	c.Register(&runCmd{app: a}, "session")
	c.Register(&botCmd{app: a}, "session")

	c.Register(&registerCmd{app: a}, "records")
	c.Register(&addCmd{app: a}, "records")
	c.Register(&listCmd{app: a}, "records")
	c.Register(&balanceCmd{app: a}, "records")
	c.Register(&reportCmd{app: a}, "records")
}

func (a *app) openLedger() *service.Ledger {
	s := a.cfg.Storage
	return service.NewLedger(
		service.NewAuth(repository.NewUserFile(s.Path(s.UsersFile))),
		repository.NewEntryFile(s.Path(s.IncomeFile)),
		repository.NewEntryFile(s.Path(s.ExpenseFile)),
		repository.NewSnapshotFile(s.Path(s.RecordFile)),
	)
}

type credentials struct {
	username string
	password string
}

func (c *credentials) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username.")
	f.StringVar(&c.password, "p", "", "Password.")
}

// session logs in with the credentials from the flags, runs fn and logs out,
// which writes the ledger back whatever fn did.
func (a *app) session(ctx context.Context, c credentials, fn func(l *service.Ledger) error) error {
	if c.username == "" {
		return errors.New("-u is required")
	}
	l := a.openLedger()
	ok, err := l.Authenticate(ctx, c.username, c.password)
	if err != nil {
		return err
	}
	if !ok {
		return loginFailedErr
	}
	return errors.Join(fn(l), l.Logout(ctx))
}

func (a *app) fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(a.out, "[ERROR] %v\n", err)
	return subcommands.ExitFailure
}
