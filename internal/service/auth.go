package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/bibek0707/finance-tracker1/internal/model"
	"github.com/bibek0707/finance-tracker1/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (bool, error)
}

type Auth struct {
	repo repository.User
}

func NewAuth(repo repository.User) *Auth {
	return &Auth{
		repo: repo,
	}
}

// Register stores the user without looking at existing records, registering the
// same username again adds a second record.
func (a *Auth) Register(ctx context.Context, username, password string) error {
	return a.repo.Create(ctx, &model.User{
		Username: username,
		Checksum: Checksum(password),
	})
}

// Authenticate reports whether a record with this username and password exists.
// When nobody has registered yet the answer is false, not an error.
func (a *Auth) Authenticate(ctx context.Context, username, password string) (bool, error) {
	ok, err := a.repo.Exists(ctx, &model.User{
		Username: username,
		Checksum: Checksum(password),
	})
	if errors.Is(err, repository.NotFoundErr) {
		logrus.Infof("no user data found, %s has to register first", username)
		return false, nil
	}
	return ok, err
}

// Checksum is the djb2 string hash (h = h*33 + b, starting at 5381) on 32 bits,
// printed in decimal. It only keeps the stored format compatible with existing
// credential files. It is trivial to reverse and must not be mistaken for
// password hashing.
func Checksum(password string) string {
	var h uint32 = 5381
	for i := 0; i < len(password); i++ {
		h = h*33 + uint32(password[i])
	}
	return strconv.FormatUint(uint64(h), 10)
}
