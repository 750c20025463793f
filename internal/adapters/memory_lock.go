package adapters

import (
	"sync"

	"xsysroot/internal/ports"
	"xsysroot/internal/types"
)

// MemoryLocker grants the same reader/writer modes as FileLocker within a
// single process. Like flock, a waiting writer does not stop new readers,
// so a holder may take a second shared lock on a path it already reads.
type MemoryLocker struct {
	mu    sync.Mutex
	cond  *sync.Cond
	state map[string]*memoryLockState
}

type memoryLockState struct {
	readers int
	writer  bool
}

func NewMemoryLocker() *MemoryLocker {
	l := &MemoryLocker{state: map[string]*memoryLockState{}}
	l.cond = sync.NewCond(&l.mu)
	return l
}

func (l *MemoryLocker) AcquireShared(path string, subject string) (ports.Guard, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	st := l.entry(path)
	for st.writer {
		l.cond.Wait()
	}
	st.readers++
	return &memoryGuard{locker: l, path: path, subject: subject, mode: types.LockShared}, nil
}

func (l *MemoryLocker) AcquireExclusive(path string, subject string) (ports.Guard, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	st := l.entry(path)
	for st.writer || st.readers > 0 {
		l.cond.Wait()
	}
	st.writer = true
	return &memoryGuard{locker: l, path: path, subject: subject, mode: types.LockExclusive}, nil
}

// Holders reports the current shared holder count and whether an exclusive
// holder exists for path.
func (l *MemoryLocker) Holders(path string) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, ok := l.state[path]
	if !ok {
		return 0, false
	}
	return st.readers, st.writer
}

func (l *MemoryLocker) entry(path string) *memoryLockState {
	st, ok := l.state[path]
	if !ok {
		st = &memoryLockState{}
		l.state[path] = st
	}
	return st
}

func (l *MemoryLocker) release(path string, mode types.LockMode) {
	l.mu.Lock()
	defer l.mu.Unlock()
	st := l.entry(path)
	if mode == types.LockExclusive {
		st.writer = false
	} else if st.readers > 0 {
		st.readers--
	}
	l.cond.Broadcast()
}

type memoryGuard struct {
	once    sync.Once
	locker  *MemoryLocker
	path    string
	subject string
	mode    types.LockMode
}

func (g *memoryGuard) Release() error {
	g.once.Do(func() {
		g.locker.release(g.path, g.mode)
	})
	return nil
}

func (g *memoryGuard) Path() string {
	return g.path
}

func (g *memoryGuard) Subject() string {
	return g.subject
}

func (g *memoryGuard) Mode() types.LockMode {
	return g.mode
}

var _ ports.Locker = (*MemoryLocker)(nil)
