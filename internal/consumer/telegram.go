package consumer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/bibek0707/finance-tracker1/internal/model"
	"github.com/bibek0707/finance-tracker1/internal/service"
)

const (
	start    = "start"
	help     = "help"
	register = "register"
	login    = "login"
	income   = "income"
	expense  = "expense"
	incomes  = "incomes"
	expenses = "expenses"
	balance  = "balance"
	report   = "report"
	logout   = "logout"
)

const helpText = `Personal finance tracker
/register <username> <password>
/login <username> <password>
/income <date> <amount> <category>
/expense <date> <amount> <category>
/incomes, /expenses - list the records
/balance - totals and balance
/report - totals by category
/logout - save everything and stop`

const requestTimeout = 10 * time.Second

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Chats binds the ledger session to the chat that logged in, implemented by service.Chats.
type Chats interface {
	Claim(ctx context.Context, chatID int64, username string) error
	Owns(ctx context.Context, chatID int64) (bool, error)
	Release(ctx context.Context, chatID int64) error
}

var _ Chats = (*service.Chats)(nil)

// Bot reads commands from the telegram updates channel and runs them against the
// ledger. The first chat that logs in owns the session until /logout, after
// which the bot stops.
type Bot struct {
	bot         sender
	updatesChan tgbotapi.UpdatesChannel
	validator   *validator.Validate
	ledger      Ledger
	chats       Chats
}

func NewBot(bot sender, updatesChan tgbotapi.UpdatesChannel, validator *validator.Validate, ledger Ledger,
	chats Chats) *Bot {
	return &Bot{
		bot:         bot,
		updatesChan: updatesChan,
		validator:   validator,
		ledger:      ledger,
		chats:       chats,
	}
}

func (b *Bot) Consume(ctx context.Context) {
	logrus.Info("telegram bot started consuming")

	for {
		select {
		case <-ctx.Done():
			logrus.Infof("bot consumer stopped: %v", ctx.Err())
			return

		case update, ok := <-b.updatesChan:
			if !ok {
				logrus.Info("bot consumer stopped: updates channel closed")
				return
			}
			if update.Message == nil || update.Message.Chat == nil {
				continue
			}
			if !update.Message.IsCommand() {
				logrus.Debugf("received message: %s", update.Message.Text)
				b.reply(update.Message, helpText)
				continue
			}

			newCtx, cancel := context.WithTimeout(ctx, requestTimeout)
			stop := b.handle(newCtx, update.Message)
			cancel()
			if stop {
				logrus.Info("bot consumer stopped: ledger logged out")
				return
			}
		}
	}
}

// handle runs one command and reports whether the session is over.
func (b *Bot) handle(ctx context.Context, message *tgbotapi.Message) bool {
	command := message.Command()
	logrus.Infof("chat %d: %s command started executing", message.Chat.ID, command)

	if b.ledger.State() == service.Authenticated {
		owns, err := b.chats.Owns(ctx, message.Chat.ID)
		if err != nil {
			b.replyError(message, command, err)
			return false
		}
		if !owns {
			b.reply(message, "The ledger is in use by another chat")
			return false
		}
	}

	args := strings.Fields(message.CommandArguments())
	switch command {
	case start, help:
		b.reply(message, helpText)
	case register:
		b.register(ctx, message, args)
	case login:
		b.login(ctx, message, args)
	case income:
		b.add(ctx, message, model.Income, args)
	case expense:
		b.add(ctx, message, model.Expense, args)
	case incomes:
		b.list(message, model.Income)
	case expenses:
		b.list(message, model.Expense)
	case balance:
		b.balance(message)
	case report:
		b.report(message)
	case logout:
		return b.logout(ctx, message)
	default:
		logrus.Infof("unknown command: %s", message.Text)
		b.reply(message, "Unknown command\n\n"+helpText)
	}
	return false
}

func (b *Bot) register(ctx context.Context, message *tgbotapi.Message, args []string) {
	if len(args) != 2 {
		b.reply(message, "Usage: /register <username> <password>")
		return
	}
	if err := ValidateCredentials(b.validator, args[0], args[1]); err != nil {
		logrus.Infof("register error: %v", err)
		b.reply(message, fmt.Sprintf("Username must be 1 to %d characters without ':' and password at most %d",
			usernameMaxLength, passwordMaxLength))
		return
	}
	if err := b.ledger.Register(ctx, args[0], args[1]); err != nil {
		b.replyError(message, register, err)
		return
	}
	b.reply(message, fmt.Sprintf("Thank you, %s! You have successfully registered", args[0]))
}

func (b *Bot) login(ctx context.Context, message *tgbotapi.Message, args []string) {
	if len(args) != 2 {
		b.reply(message, "Usage: /login <username> <password>")
		return
	}
	ok, err := b.ledger.Authenticate(ctx, args[0], args[1])
	if err != nil {
		b.replyError(message, login, err)
		return
	}
	if !ok {
		b.reply(message, "User not found or password incorrect")
		return
	}
	if err = b.chats.Claim(ctx, message.Chat.ID, args[0]); err != nil {
		logrus.Errorf("login error: %v", err)
	}
	b.reply(message, fmt.Sprintf("Welcome, %s!\n%s", args[0], b.totalsText()))
}

func (b *Bot) add(ctx context.Context, message *tgbotapi.Message, kind model.Kind, args []string) {
	if len(args) < 2 {
		b.reply(message, fmt.Sprintf("Usage: /%s <date> <amount> <category>", strings.ToLower(kindTitle(kind))))
		return
	}
	amount, err := service.ParseAmount(args[1])
	if err != nil {
		b.replyError(message, "add "+string(kind), err)
		return
	}
	e, err := addEntry(ctx, b.ledger, kind, args[0], amount, strings.Join(args[2:], " "))
	if err != nil {
		b.replyError(message, "add "+string(kind), err)
		return
	}
	b.reply(message, fmt.Sprintf("%s entry added\n%s\n%s", kindTitle(kind), FormatEntry(e), b.totalsText()))
}

func (b *Bot) list(message *tgbotapi.Message, kind model.Kind) {
	list, err := entries(b.ledger, kind)
	if err != nil {
		b.replyError(message, "list "+string(kind), err)
		return
	}
	if len(list) == 0 {
		b.reply(message, fmt.Sprintf("No %s records to display", strings.ToLower(kindTitle(kind))))
		return
	}
	lines := make([]string, 0, len(list)+1)
	lines = append(lines, fmt.Sprintf("%s Records", kindTitle(kind)))
	for _, e := range list {
		lines = append(lines, FormatEntry(e))
	}
	b.reply(message, strings.Join(lines, "\n"))
}

func (b *Bot) balance(message *tgbotapi.Message) {
	if _, err := b.ledger.Totals(); err != nil {
		b.replyError(message, balance, err)
		return
	}
	b.reply(message, b.totalsText())
}

func (b *Bot) report(message *tgbotapi.Message) {
	income, err := b.ledger.Income()
	if err != nil {
		b.replyError(message, report, err)
		return
	}
	expenses, err := b.ledger.Expenses()
	if err != nil {
		b.replyError(message, report, err)
		return
	}
	b.reply(message, service.RenderReport(service.Summarize(income, expenses)))
}

func (b *Bot) logout(ctx context.Context, message *tgbotapi.Message) bool {
	if err := b.ledger.Logout(ctx); err != nil {
		b.replyError(message, logout, err)
		return false
	}
	if err := b.chats.Release(ctx, message.Chat.ID); err != nil {
		logrus.Errorf("logout error: %v", err)
	}
	b.reply(message, "Your data is saved. Bye!")
	return true
}

func (b *Bot) totalsText() string {
	totals, err := b.ledger.Totals()
	if err != nil {
		return ""
	}
	return FormatTotals(totals)
}

func (b *Bot) replyError(message *tgbotapi.Message, command string, err error) {
	switch {
	case errors.Is(err, service.InvalidStateErr):
		switch b.ledger.State() {
		case service.Unauthenticated:
			b.reply(message, "Log in first: /login <username> <password>")
		case service.Authenticated:
			b.reply(message, "You are already logged in")
		default:
			b.reply(message, "The session is closed")
		}
	case errors.Is(err, service.ValidationErr):
		b.reply(message, "Amount must be a non-negative number")
	default:
		logrus.Errorf("%s error: %v", command, err)
		b.reply(message, fmt.Sprintf("Couldn't %s, try again later", command))
	}
}

func (b *Bot) reply(message *tgbotapi.Message, text string) {
	if err := b.sendMessage(message, text); err != nil {
		logrus.Error(err)
	}
}

func (b *Bot) sendMessage(message *tgbotapi.Message, text string) error {
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyToMessageID = message.MessageID

	_, err := b.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("sendMessage, telegram bot couldn't send message: %v", err)
	}
	return nil
}
