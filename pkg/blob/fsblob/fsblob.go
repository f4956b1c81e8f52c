// Package fsblob implements blob.Store on a local directory.
package fsblob

import (
	"context"
	"errors"
	"fmt"
	"intake/pkg/blob"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store writes blobs as files under Dir. Locators are file paths made of Dir
// and the generated file name.
type Store struct {
	dir string
	now func() time.Time
}

// Ensure Store implements blob.Store.
var _ blob.Store = (*Store)(nil)

// New creates the directory if needed and returns a Store rooted at it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("could not create blob dir: %w", err)
	}

	return &Store{dir: dir, now: time.Now}, nil
}

// FileName builds the stored name: upload time in unix milliseconds, a random
// suffix and the sanitized client name, e.g. "1718000000000-1b4e28ba-dni.pdf".
func FileName(now time.Time, name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "document"
	}
	base = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}

		return r
	}, base)

	return fmt.Sprintf("%d-%s-%s", now.UnixMilli(), uuid.NewString()[:8], base)
}

// Put copies content into a new file and syncs it before returning, so the
// locator only escapes once the bytes are durable. A partially written file is
// removed.
func (s *Store) Put(ctx context.Context, name string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("could not store blob: %w", err)
	}

	locator := filepath.Join(s.dir, FileName(s.now(), name))
	f, err := os.OpenFile(locator, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("could not create blob file: %w", err)
	}

	_, err = io.Copy(f, content)
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(locator)

		return "", fmt.Errorf("could not write blob file: %w", err)
	}

	return locator, nil
}

// Delete removes the file behind locator. Locators outside the store's
// directory are refused.
func (s *Store) Delete(_ context.Context, locator string) error {
	rel, err := filepath.Rel(s.dir, locator)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("locator %q is outside the blob dir", locator)
	}

	if err := os.Remove(locator); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not delete blob file: %w", err)
	}

	return nil
}
