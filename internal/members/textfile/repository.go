// Package textfile stores gym members in a flat text file, one
// '|'-delimited record per line:
//
//	name|id|membershipType|workoutPlan|height|weight
//
// The whole file is rewritten on every save. Lines that cannot be decoded on
// load are skipped with a warning instead of failing the load.
package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gymkeeper/internal/filex"
	"github.com/dmitrijs2005/gymkeeper/internal/logging"
	"github.com/dmitrijs2005/gymkeeper/internal/members"
)

// DefaultFileName is the data file used when none is configured.
const DefaultFileName = "gym_members.txt"

const maxLineSize = 1 << 20

// Repository implements members.Repository on top of a single text file.
type Repository struct {
	path string
	log  logging.Logger
}

var _ members.Repository = (*Repository)(nil)

func NewRepository(path string, log logging.Logger) *Repository {
	return &Repository{path: path, log: log.With("file", path)}
}

// Path returns the data file location.
func (r *Repository) Path() string { return r.path }

// Load reads all members. A missing file yields an empty list.
func (r *Repository) Load(ctx context.Context) ([]members.Member, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.log.Debug(ctx, "data file does not exist yet, starting empty")
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	return r.decode(ctx, f)
}

func (r *Repository) decode(ctx context.Context, src io.Reader) ([]members.Member, error) {
	var (
		out  []members.Member
		seen = make(map[int]struct{})
	)

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		m, err := DecodeLine(line)
		switch {
		case errors.Is(err, ErrUnknownPlan):
			r.log.Warn(ctx, "dropping unknown workout plan", "line", lineNo, "id", m.ID, "err", err)
		case err != nil:
			r.log.Warn(ctx, "skipping malformed member record", "line", lineNo, "err", err)
			continue
		}
		if _, dup := seen[m.ID]; dup {
			r.log.Warn(ctx, "skipping member record with duplicate id", "line", lineNo, "id", m.ID)
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	r.log.Debug(ctx, "members loaded", "count", len(out))
	return out, nil
}

// Save replaces the file with the given members. The data goes to a
// temporary file in the same directory first and is renamed over the target,
// so readers never observe a partially written file.
func (r *Repository) Save(ctx context.Context, ms []members.Member) (err error) {
	dir, err := filex.EnsureParentDir(r.path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, m := range ms {
		if _, err = w.WriteString(EncodeLine(m) + "\n"); err != nil {
			return fmt.Errorf("write %s: %w", tmp.Name(), err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", tmp.Name(), err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("rename to %s: %w", r.path, err)
	}

	r.log.Debug(ctx, "members saved", "count", len(ms))
	return nil
}
