package command

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/bibek0707/finance-tracker1/internal/consumer"
	"github.com/bibek0707/finance-tracker1/internal/repository"
	"github.com/bibek0707/finance-tracker1/internal/service"
)

type runCmd struct {
	*app
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "start the interactive finance tracker (default)" }
func (*runCmd) Usage() string {
	return `run

  Shows the Register/Login/Exit menu and, after login, the finance dashboard.
  Everything is saved on logout or when the input ends.
`
}
func (*runCmd) SetFlags(*flag.FlagSet) {}

func (r *runCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	terminal := consumer.NewTerminal(r.in, r.out, validator.New(), r.openLedger())
	if err := terminal.Consume(ctx); err != nil {
		logrus.Errorf("run: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type botCmd struct {
	*app
}

func (*botCmd) Name() string     { return "bot" }
func (*botCmd) Synopsis() string { return "serve the ledger to a telegram chat" }
func (*botCmd) Usage() string {
	return `bot

  Polls telegram with the TG_TOKEN bot. The first chat that logs in owns the
  ledger until /logout, then the bot stops.
`
}
func (*botCmd) SetFlags(*flag.FlagSet) {}

func (b *botCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if b.cfg.Telegram.Token == "" {
		return b.fail(errors.New("TG_TOKEN is not set"))
	}
	api, err := tgbotapi.NewBotAPI(b.cfg.Telegram.Token)
	if err != nil {
		return b.fail(err)
	}
	api.Debug = b.cfg.Telegram.Debug
	logrus.Infof("authorized on telegram account %s", api.Self.UserName)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, os.Interrupt)
	defer stop()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.Telegram.Timeout
	updates := api.GetUpdatesChan(u)
	defer api.StopReceivingUpdates()

	ledger := b.openLedger()
	chats := service.NewChats(repository.NewChatsLocalStorage())
	consumer.NewBot(api, updates, validator.New(), ledger, chats).Consume(ctx)

	if ledger.State() == service.Authenticated {
		if err = ledger.Logout(context.WithoutCancel(ctx)); err != nil {
			logrus.Errorf("bot: %v", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
