package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// DefaultDirName is the working directory created under the invocation
// directory when no configuration overrides it.
const DefaultDirName = "temp_continuous"

const (
	audioFileName = "extracted_audio.wav"
	lockFileName  = ".murmur.lock"
)

// Workspace is a handle on one run's working directory.
type Workspace struct {
	dir  string
	lock *flock.Flock
}

// Create ensures the working directory exists under root and acquires its
// lock. It fails when another run already holds the directory.
func Create(root, name string) (*Workspace, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultDirName
	}
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	lock := flock.New(filepath.Join(dir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock workspace: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("workspace %s is in use by another run", dir)
	}

	return &Workspace{dir: dir, lock: lock}, nil
}

// Dir returns the working directory path.
func (w *Workspace) Dir() string {
	return w.dir
}

// AudioPath returns the path of the full-length extracted waveform.
func (w *Workspace) AudioPath() string {
	return filepath.Join(w.dir, audioFileName)
}

// ClipPath returns the waveform path for the segment at the given index,
// named deterministically with a zero-padded index.
func (w *Workspace) ClipPath(index int) string {
	return filepath.Join(w.dir, fmt.Sprintf("segment_%04d.wav", index))
}

// Release drops the workspace lock. The directory and its contents are
// kept for postmortem inspection.
func (w *Workspace) Release() error {
	if w.lock == nil {
		return nil
	}
	return w.lock.Unlock()
}
