package runlock

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anaik-zam/CardConvert/internal/services"
)

func TestAcquireAndRelease(t *testing.T) {
	dir := t.TempDir()

	lock, err := Acquire(dir)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if _, err := os.Stat(lock.Path()); err != nil {
		t.Fatalf("lock file missing: %v", err)
	}
	if filepath.Dir(lock.Path()) != dir {
		t.Fatalf("lock placed outside target dir: %s", lock.Path())
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
}

func TestAcquireHeldLock(t *testing.T) {
	dir := t.TempDir()

	first, err := Acquire(dir)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	defer first.Release()

	second, err := Acquire(dir)
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("second acquire should fail with configuration error, got %v", err)
	}
	if second != nil {
		t.Fatal("failed acquire should not return a lock")
	}
	if !strings.Contains(err.Error(), lockFileName) {
		t.Fatalf("error should name the lock file: %v", err)
	}
}

func TestAcquireAfterRelease(t *testing.T) {
	dir := t.TempDir()

	first, err := Acquire(dir)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if err := first.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}

	second, err := Acquire(dir)
	if err != nil {
		t.Fatalf("reacquire after release: %v", err)
	}
	defer second.Release()
}

func TestAcquireCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")

	lock, err := Acquire(dir)
	if err != nil {
		t.Fatalf("acquire in missing dir: %v", err)
	}
	defer lock.Release()
}

func TestReleaseNil(t *testing.T) {
	var lock *Lock
	if err := lock.Release(); err != nil {
		t.Fatalf("nil release should be a no-op: %v", err)
	}
}
