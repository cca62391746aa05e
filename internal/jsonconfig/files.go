package jsonconfig

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"zizutil/internal/fileutil"
)

// writeDocument replaces path atomically. A missing parent directory
// surfaces as an fs.ErrNotExist error so Persist can recover from it.
func writeDocument(path string, doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := fileutil.WriteAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// acquire takes the advisory lock when enabled. The lock file lives next to
// the config, so the directory is created first.
func (r *Reconciler) acquire(loc Location) (func(), error) {
	if !r.lock {
		return func() {}, nil
	}
	if err := os.MkdirAll(loc.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config directory %q: %w", loc.Dir, err)
	}
	lockPath := loc.Path() + ".lock"
	lock := flock.New(lockPath)
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", lockPath, err)
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Warn("failed to release config lock", "lock", lockPath, "error", err)
		}
	}, nil
}
