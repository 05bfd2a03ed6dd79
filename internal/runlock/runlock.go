package runlock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/anaik-zam/CardConvert/internal/services"
)

const lockFileName = ".cardconvert.lock"

// Lock guards an output tree against concurrent converter runs.
type Lock struct {
	path string
	lock *flock.Flock
}

// Acquire takes an exclusive advisory lock inside dir. It fails immediately
// when another converter already holds it rather than waiting.
func Acquire(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrTransient, "runlock", "acquire", dir, err)
	}

	path := filepath.Join(dir, lockFileName)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "runlock", "acquire", path, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrConfiguration, "runlock", "acquire",
			fmt.Sprintf("another conversion holds %s", path), nil)
	}
	return &Lock{path: path, lock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock. Safe to call on a nil lock.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return services.Wrap(services.ErrTransient, "runlock", "release", l.path, err)
	}
	return nil
}
