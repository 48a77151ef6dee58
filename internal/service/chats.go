package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bibek0707/finance-tracker1/internal/repository"
)

var ChatBusyErr = errors.New("the ledger is used by another chat")

// Chats lets a single telegram chat own the ledger session at a time.
type Chats struct {
	repo repository.Chats
}

func NewChats(repo repository.Chats) *Chats {
	return &Chats{
		repo: repo,
	}
}

// Claim binds the chat to username. It fails with ChatBusyErr while another chat
// holds the session.
func (c *Chats) Claim(ctx context.Context, chatID int64, username string) error {
	owns, err := c.Owns(ctx, chatID)
	if err != nil {
		return err
	}
	if !owns {
		n, err := c.repo.Len(ctx)
		if err != nil {
			return fmt.Errorf("service.Chats, claim chat %d: %w", chatID, err)
		}
		if n > 0 {
			return ChatBusyErr
		}
	}
	return c.repo.Add(ctx, chatID, username)
}

func (c *Chats) Owns(ctx context.Context, chatID int64) (bool, error) {
	_, err := c.repo.Get(ctx, chatID)
	if errors.Is(err, repository.NotFoundErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("service.Chats, get chat %d: %w", chatID, err)
	}
	return true, nil
}

func (c *Chats) Release(ctx context.Context, chatID int64) error {
	return c.repo.Delete(ctx, chatID)
}
