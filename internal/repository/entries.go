package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/bibek0707/finance-tracker1/internal/model"
)

//go:generate mockery --name=Entries

type Entries interface {
	Save(ctx context.Context, entries []model.Entry) error
	Load(ctx context.Context) ([]model.Entry, error)
}

// EntryFile stores an entry list as a sequence of fixed size records with no
// header or count, the end of the file is the end of the list.
type EntryFile struct {
	path string
}

func NewEntryFile(path string) *EntryFile {
	return &EntryFile{
		path: path,
	}
}

// Save replaces the whole file with the given entries. It is not atomic: a crash
// in the middle leaves a shorter file, which Load reads up to the last full record.
func (e *EntryFile) Save(ctx context.Context, entries []model.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("repository.EntryFile, save: %w", errors.Join(IOErr, err))
	}

	w := bufio.NewWriter(f)
	record := make([]byte, entryRecordSize)
	for i := range entries {
		encodeEntry(record, entries[i])
		if _, err = w.Write(record); err != nil {
			break
		}
	}
	if err == nil {
		err = w.Flush()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("repository.EntryFile, save %s: %w", e.path, errors.Join(IOErr, err))
	}
	logrus.Debugf("repository.EntryFile saved %d entries to %s", len(entries), e.path)
	return nil
}

// Load reads all complete records in file order. A missing file is an empty list.
func (e *EntryFile) Load(ctx context.Context) ([]model.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(e.path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Debugf("repository.EntryFile %s doesn't exist, starting with an empty list", e.path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repository.EntryFile, load: %w", errors.Join(IOErr, err))
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.Errorf("repository.EntryFile couldn't close %s: %v", e.path, err)
		}
	}()

	r := bufio.NewReader(f)
	record := make([]byte, entryRecordSize)
	var entries []model.Entry
	for {
		n, err := io.ReadFull(r, record)
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			logrus.Warnf("repository.EntryFile %s ends with a partial record of %d bytes, dropped", e.path, n)
			break
		}
		if err != nil {
			return nil, fmt.Errorf("repository.EntryFile, load %s: %w", e.path, errors.Join(IOErr, err))
		}
		entries = append(entries, decodeEntry(record))
	}
	return entries, nil
}
