package repository

import (
	"context"
	"fmt"
)

// Chats remembers which telegram chat is logged in as which user.
type Chats interface {
	Add(ctx context.Context, chatID int64, username string) error
	Get(ctx context.Context, chatID int64) (string, error)
	Delete(ctx context.Context, chatID int64) error
	Len(ctx context.Context) (int, error)
}

type ChatsLocalStorage struct {
	m map[int64]string
}

func NewChatsLocalStorage() *ChatsLocalStorage {
	return &ChatsLocalStorage{
		m: make(map[int64]string),
	}
}

func (l *ChatsLocalStorage) Add(_ context.Context, chatID int64, username string) error {
	l.m[chatID] = username
	return nil
}

func (l *ChatsLocalStorage) Get(_ context.Context, chatID int64) (string, error) {
	v, ok := l.m[chatID]
	if !ok {
		return "", fmt.Errorf("repository.ChatsLocalStorage.Get chat %d: %w", chatID, NotFoundErr)
	}
	return v, nil
}

func (l *ChatsLocalStorage) Delete(_ context.Context, chatID int64) error {
	delete(l.m, chatID)
	return nil
}

func (l *ChatsLocalStorage) Len(_ context.Context) (int, error) {
	return len(l.m), nil
}
