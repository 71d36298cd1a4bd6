package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Permission constants for created entries.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// FileToWrite pairs a destination path with its content.
type FileToWrite struct {
	Path    string
	Content string
}

// Helper performs filesystem operations and reports best-effort failures to
// its logger. The zero value is not usable; call New.
type Helper struct {
	log *zap.Logger

	// Primitives, replaceable in tests.
	stat      func(string) (fs.FileInfo, error)
	rename    func(string, string) error
	removeAll func(string) error
}

// New returns a Helper backed by the os package. A nil logger discards
// diagnostics.
func New(log *zap.Logger) *Helper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Helper{
		log:       log,
		stat:      os.Stat,
		rename:    os.Rename,
		removeAll: os.RemoveAll,
	}
}

// Exists reports whether path exists. A missing path is (false, nil); any
// other stat failure, such as a permission error, is returned.
func (h *Helper) Exists(path string) (bool, error) {
	_, err := h.stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}

// EnsureDirectories creates every path and its missing parents concurrently.
// Existing directories are left alone.
func (h *Helper) EnsureDirectories(ctx context.Context, paths []string) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := os.MkdirAll(p, DirPerm); err != nil {
				return fmt.Errorf("creating directory %s: %w", p, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// WriteFiles writes all files concurrently, creating parent directories as
// needed. The first failure is returned.
func (h *Helper) WriteFiles(ctx context.Context, files []FileToWrite) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(f.Path), DirPerm); err != nil {
				return fmt.Errorf("creating directory for %s: %w", f.Path, err)
			}
			if err := os.WriteFile(f.Path, []byte(f.Content), FilePerm); err != nil {
				return fmt.Errorf("writing %s: %w", f.Path, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// MoveDirectoryContents moves every direct child of src into dst under the
// same name, replacing colliding entries. The move is not atomic across
// children: a failure leaves earlier children moved.
func (h *Helper) MoveDirectoryContents(src, dst string) error {
	ok, err := h.Exists(src)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("Source path does not exist: %s", src)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())
		if err := h.move(from, to); err != nil {
			return err
		}
	}

	h.log.Debug("moved directory contents", zap.String("from", src), zap.String("to", dst), zap.Int("entries", len(entries)))
	return nil
}

// move relocates a single entry, overwriting to.
func (h *Helper) move(from, to string) error {
	exists, err := h.Exists(to)
	if err != nil {
		return err
	}
	if exists {
		if err := h.removeAll(to); err != nil {
			return fmt.Errorf("replacing %s: %w", to, err)
		}
	}

	err = h.rename(from, to)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return fmt.Errorf("moving %s to %s: %w", from, to, err)
	}

	// Rename cannot cross filesystems; copy then delete the source.
	if err := copyTree(from, to); err != nil {
		return fmt.Errorf("copying %s to %s: %w", from, to, err)
	}
	if err := h.removeAll(from); err != nil {
		return fmt.Errorf("removing %s after copy: %w", from, err)
	}
	return nil
}

// SafeRemove recursively removes path if it exists. It never fails: errors
// are logged as warnings.
func (h *Helper) SafeRemove(path string) {
	ok, err := h.Exists(path)
	if err != nil {
		h.log.Warn("failed to remove", zap.String("path", path), zap.Error(err))
		return
	}
	if !ok {
		return
	}
	if err := h.removeAll(path); err != nil {
		h.log.Warn("failed to remove", zap.String("path", path), zap.Error(err))
		return
	}
	h.log.Debug("removed", zap.String("path", path))
}

// CleanupTempFiles removes every path concurrently with SafeRemove. Removal
// failures are only logged; once all removals have settled, any path that
// is still present is reported in the returned error.
func (h *Helper) CleanupTempFiles(ctx context.Context, paths []string) error {
	h.log.Debug("cleaning up temporary files", zap.Strings("paths", paths))

	var g errgroup.Group
	for _, p := range paths {
		g.Go(func() error {
			h.SafeRemove(p)
			return nil
		})
	}
	_ = g.Wait()

	var leftover []string
	for _, p := range paths {
		if ok, err := h.Exists(p); ok || err != nil {
			leftover = append(leftover, p)
		}
	}
	if len(leftover) > 0 {
		return fmt.Errorf("cleanup incomplete: %s", strings.Join(leftover, ", "))
	}
	return ctx.Err()
}
