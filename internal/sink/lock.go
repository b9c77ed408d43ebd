package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockDataDir takes an exclusive lock on the data dir so two concurrent runs
// cannot interleave output files. Callers must Unlock when the run finishes.
func LockDataDir(dataDir string) (*flock.Flock, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	lock := flock.New(filepath.Join(dataDir, ".run.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock data dir: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("data dir %s is locked by another run", dataDir)
	}
	return lock, nil
}
