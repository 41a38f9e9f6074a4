// Cross-process advisory locking.
//
// The lock lives on a sidecar <path>.lock file, not the data file itself:
// save replaces the data file via rename, which would silently detach any
// lock held on its old inode. The sidecar file is created on first acquire
// and never removed.
//
// Acquisition is bounded — TryLockContext retries until the configured
// timeout, after which the operation fails with ErrLockTimeout rather than
// blocking forever behind a stuck process.
package carton

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// lockRetryDelay is the interval between lock acquisition attempts.
const lockRetryDelay = 100 * time.Millisecond

// fileLock wraps an advisory flock on the sidecar lock file.
type fileLock struct {
	fl      *flock.Flock
	timeout time.Duration
}

func newFileLock(path string, timeout time.Duration) *fileLock {
	return &fileLock{fl: flock.New(path), timeout: timeout}
}

// acquire takes the exclusive advisory lock, retrying until the timeout.
func (l *fileLock) acquire() error {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	locked, err := l.fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %s", ErrLockTimeout, l.fl.Path())
		}
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrLockTimeout, l.fl.Path())
	}
	return nil
}

// release drops the advisory lock.
func (l *fileLock) release() error {
	return l.fl.Unlock()
}
