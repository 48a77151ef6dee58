package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/bibek0707/finance-tracker1/internal/model"
)

//go:generate mockery --name=Snapshot

type Snapshot interface {
	Save(ctx context.Context, totals model.Totals) error
	Load(ctx context.Context) (model.Totals, bool, error)
}

// SnapshotFile keeps the income and expense totals as one fixed size record.
type SnapshotFile struct {
	path string
}

func NewSnapshotFile(path string) *SnapshotFile {
	return &SnapshotFile{
		path: path,
	}
}

func (s *SnapshotFile) Save(ctx context.Context, totals model.Totals) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	record := make([]byte, totalsRecordSize)
	encodeTotals(record, totals)
	if err := os.WriteFile(s.path, record, 0o644); err != nil {
		return fmt.Errorf("repository.SnapshotFile, save: %w", errors.Join(IOErr, err))
	}
	return nil
}

// Load returns the stored totals. The bool is false when there is no complete
// record to read, in which case the caller keeps the totals it already has.
func (s *SnapshotFile) Load(ctx context.Context) (model.Totals, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.Totals{}, false, err
	}
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Debugf("repository.SnapshotFile %s doesn't exist", s.path)
		return model.Totals{}, false, nil
	}
	if err != nil {
		return model.Totals{}, false, fmt.Errorf("repository.SnapshotFile, load: %w", errors.Join(IOErr, err))
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.Errorf("repository.SnapshotFile couldn't close %s: %v", s.path, err)
		}
	}()

	record := make([]byte, totalsRecordSize)
	if _, err = io.ReadFull(f, record); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			logrus.Warnf("repository.SnapshotFile %s has no complete record, ignored", s.path)
			return model.Totals{}, false, nil
		}
		return model.Totals{}, false, fmt.Errorf("repository.SnapshotFile, load %s: %w", s.path, errors.Join(IOErr, err))
	}
	return decodeTotals(record), true, nil
}
