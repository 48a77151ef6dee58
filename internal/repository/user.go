package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bibek0707/finance-tracker1/internal/model"
)

//go:generate mockery --name=User

type User interface {
	Create(ctx context.Context, user *model.User) error
	Exists(ctx context.Context, user *model.User) (bool, error)
}

// UserFile keeps credentials in a text file, one "username:checksum" line per
// registration. The file is only ever appended to: a username registered twice
// has two lines and the first matching line wins on lookup.
type UserFile struct {
	path string
}

func NewUserFile(path string) *UserFile {
	return &UserFile{
		path: path,
	}
}

func (u *UserFile) Create(ctx context.Context, user *model.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.OpenFile(u.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("repository.UserFile, create user: %w", errors.Join(IOErr, err))
	}
	_, err = fmt.Fprintf(f, "%s:%s\n", user.Username, user.Checksum)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("repository.UserFile, create user: %w", errors.Join(IOErr, err))
	}
	return nil
}

// Exists scans the file for a line with the same username and checksum.
// It returns NotFoundErr when the file has not been created yet.
func (u *UserFile) Exists(ctx context.Context, user *model.User) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	f, err := os.Open(u.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("repository.UserFile, %s: %w", u.path, NotFoundErr)
	}
	if err != nil {
		return false, fmt.Errorf("repository.UserFile, find user: %w", errors.Join(IOErr, err))
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.Errorf("repository.UserFile couldn't close %s: %v", u.path, err)
		}
	}()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		stored, ok := parseCredential(scanner.Text())
		if !ok {
			continue
		}
		if stored.Username == user.Username && stored.Checksum == user.Checksum {
			return true, nil
		}
	}
	if err = scanner.Err(); err != nil {
		return false, fmt.Errorf("repository.UserFile, find user: %w", errors.Join(IOErr, err))
	}
	return false, nil
}

const blanks = " \t\n\v\f\r"

// parseCredential reads a "username:checksum" line. The username is 1 to
// UsernameSize-1 bytes before the first colon, the checksum is the first word
// after it cut to UsernameSize-1 bytes. Lines that don't fit are skipped.
func parseCredential(line string) (model.User, bool) {
	i := strings.IndexByte(line, ':')
	if i <= 0 || i > model.UsernameSize-1 {
		return model.User{}, false
	}
	checksum := strings.TrimLeft(line[i+1:], blanks)
	if end := strings.IndexAny(checksum, blanks); end >= 0 {
		checksum = checksum[:end]
	}
	if checksum == "" {
		return model.User{}, false
	}
	if len(checksum) > model.UsernameSize-1 {
		checksum = checksum[:model.UsernameSize-1]
	}
	return model.User{Username: line[:i], Checksum: checksum}, true
}
