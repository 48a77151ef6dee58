package command

import (
	"context"
	"flag"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/subcommands"

	"github.com/bibek0707/finance-tracker1/internal/consumer"
	"github.com/bibek0707/finance-tracker1/internal/model"
	"github.com/bibek0707/finance-tracker1/internal/service"
)

type registerCmd struct {
	*app
	credentials
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "add a user" }
func (*registerCmd) Usage() string {
	return `register -u <username> -p <password>
`
}

func (r *registerCmd) SetFlags(f *flag.FlagSet) {
	r.credentials.setFlags(f)
}

func (r *registerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := consumer.ValidateCredentials(validator.New(), r.username, r.password); err != nil {
		fmt.Fprintf(r.out, "[ERROR] %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := r.openLedger().Register(ctx, r.username, r.password); err != nil {
		return r.fail(err)
	}
	fmt.Fprintln(r.out, "[INFO] User registered successfully.")
	return subcommands.ExitSuccess
}

// kindFlag reads -k as income or expense.
func kindFlag(f *flag.FlagSet, kind *model.Kind) {
	*kind = model.Income
	f.Func("k", "Record kind, income or expense (default income).", func(s string) error {
		switch model.Kind(s) {
		case model.Income, model.Expense:
			*kind = model.Kind(s)
			return nil
		}
		return fmt.Errorf("unknown kind %q", s)
	})
}

type addCmd struct {
	*app
	credentials
	kind     model.Kind
	date     string
	amount   string
	category string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an income or expense entry" }
func (*addCmd) Usage() string {
	return `add -u <username> -p <password> [-k income|expense] -d <date> -a <amount> [-c <category>]
`
}

func (a *addCmd) SetFlags(f *flag.FlagSet) {
	a.credentials.setFlags(f)
	kindFlag(f, &a.kind)
	f.StringVar(&a.date, "d", "", "Date of the entry, DD-MM-YYYY.")
	f.StringVar(&a.amount, "a", "", "Amount, a non-negative number.")
	f.StringVar(&a.category, "c", "", "Category.")
}

func (a *addCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := service.ParseAmount(a.amount)
	if err != nil {
		fmt.Fprintf(a.out, "[ERROR] %v\n", err)
		return subcommands.ExitUsageError
	}
	err = a.session(ctx, a.credentials, func(l *service.Ledger) error {
		add := l.AddIncome
		if a.kind == model.Expense {
			add = l.AddExpense
		}
		e, err := add(ctx, a.date, amount, a.category)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, consumer.FormatEntry(e))
		return nil
	})
	if err != nil {
		return a.fail(err)
	}
	return subcommands.ExitSuccess
}

type listCmd struct {
	*app
	credentials
	kind model.Kind
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "print the income or expense entries" }
func (*listCmd) Usage() string {
	return `list -u <username> -p <password> [-k income|expense]
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.setFlags(f)
	kindFlag(f, &c.kind)
}

func (c *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := c.session(ctx, c.credentials, func(l *service.Ledger) error {
		list, err := l.Income()
		if c.kind == model.Expense {
			list, err = l.Expenses()
		}
		if err != nil {
			return err
		}
		for _, e := range list {
			fmt.Fprintln(c.out, consumer.FormatEntry(e))
		}
		return nil
	})
	if err != nil {
		return c.fail(err)
	}
	return subcommands.ExitSuccess
}

type balanceCmd struct {
	*app
	credentials
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "print total income, total expense and balance" }
func (*balanceCmd) Usage() string {
	return `balance -u <username> -p <password>
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.setFlags(f)
}

func (c *balanceCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := c.session(ctx, c.credentials, func(l *service.Ledger) error {
		totals, err := l.Totals()
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, consumer.FormatTotals(totals))
		return nil
	})
	if err != nil {
		return c.fail(err)
	}
	return subcommands.ExitSuccess
}

type reportCmd struct {
	*app
	credentials
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "print income and expenses grouped by category" }
func (*reportCmd) Usage() string {
	return `report -u <username> -p <password>
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.setFlags(f)
}

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := c.session(ctx, c.credentials, func(l *service.Ledger) error {
		income, err := l.Income()
		if err != nil {
			return err
		}
		expenses, err := l.Expenses()
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, service.RenderReport(service.Summarize(income, expenses)))
		return nil
	})
	if err != nil {
		return c.fail(err)
	}
	return subcommands.ExitSuccess
}
