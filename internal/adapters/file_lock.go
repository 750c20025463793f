package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"xsysroot/internal/ports"
	"xsysroot/internal/types"
)

// FileLocker takes advisory locks with flock(2) on unix and LockFileEx on
// windows. Every guard owns its own descriptor, so two guards in the same
// process contend with each other exactly like two processes would. The
// kernel drops the lock when the holder exits, including on a crash.
type FileLocker struct{}

func NewFileLocker() FileLocker {
	return FileLocker{}
}

func (l FileLocker) AcquireShared(path string, subject string) (ports.Guard, error) {
	return acquireFileLock(path, subject, types.LockShared)
}

func (l FileLocker) AcquireExclusive(path string, subject string) (ports.Guard, error) {
	return acquireFileLock(path, subject, types.LockExclusive)
}

func acquireFileLock(path string, subject string, mode types.LockMode) (*fileGuard, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to create directory for %s", subject)).
			WithCause(err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to open lock file for %s", subject)).
			WithCause(err)
	}

	err = lockFile(file, mode, false)
	if err != nil && isWouldBlock(err) {
		log.Info().
			Str("subject", subject).
			Str("mode", string(mode)).
			Msg("Blocking waiting for file lock")
		err = lockFile(file, mode, true)
	}
	if err != nil {
		_ = file.Close()
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to lock %s", subject)).
			WithCause(err)
	}

	log.Debug().
		Str("path", path).
		Str("mode", string(mode)).
		Msg("lock acquired")
	return &fileGuard{file: file, path: path, subject: subject, mode: mode}, nil
}

type fileGuard struct {
	mu      sync.Mutex
	file    *os.File
	path    string
	subject string
	mode    types.LockMode
}

func (g *fileGuard) Release() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.file == nil {
		return nil
	}
	if err := unlockFile(g.file); err != nil {
		log.Debug().Err(err).Str("path", g.path).Msg("unlock failed")
	}
	err := g.file.Close()
	g.file = nil
	return err
}

func (g *fileGuard) Path() string {
	return g.path
}

func (g *fileGuard) Subject() string {
	return g.subject
}

func (g *fileGuard) Mode() types.LockMode {
	return g.mode
}

var _ ports.Locker = FileLocker{}
var _ ports.Guard = (*fileGuard)(nil)
