package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"xsysroot/internal/ports"
	"xsysroot/internal/types"
)

const (
	defaultHomeDir = ".xargo"
	nativeMarker   = "HOST"
	sentinelName   = ".sentinel"
)

// SysrootHome is the cache root holding one sysroot per target triple.
// Native builds live under an extra HOST directory so they never share a
// tree with a cross build for the same triple.
type SysrootHome struct {
	path   string
	native bool
	locker ports.Locker
}

// ResolveHome picks XARGO_HOME when set, otherwise ~/.xargo.
func ResolveHome(env ports.EnvironmentPort, mode types.CompilationMode, locker ports.Locker) (SysrootHome, error) {
	base, ok := env.HomeOverride()
	if !ok {
		userHome, err := env.UserHomeDir()
		if err != nil || strings.TrimSpace(userHome) == "" {
			builder := errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("couldn't find your home directory. Is $HOME set?")
			if err != nil {
				builder = builder.WithCause(err)
			}
			return SysrootHome{}, builder
		}
		base = filepath.Join(userHome, defaultHomeDir)
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return SysrootHome{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("invalid sysroot home %q", base)).
			WithCause(err)
	}
	if mode.IsNative() {
		abs = filepath.Join(abs, nativeMarker)
	}
	return SysrootHome{path: abs, native: mode.IsNative(), locker: locker}, nil
}

func (h SysrootHome) Path() string {
	return h.path
}

func (h SysrootHome) IsNative() bool {
	return h.native
}

// SysrootPath is <home>/lib/rustlib/<triple>.
func (h SysrootHome) SysrootPath(triple string) string {
	return filepath.Join(h.path, "lib", "rustlib", triple)
}

func (h SysrootHome) SentinelPath(triple string) string {
	return filepath.Join(h.SysrootPath(triple), sentinelName)
}

// LockShared guards consumption of a triple's sysroot.
func (h SysrootHome) LockShared(triple string) (ports.Guard, error) {
	guard, err := h.locker.AcquireShared(h.SentinelPath(triple), subjectFor(triple))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("couldn't lock %s's sysroot as read-only", triple)).
			WithCause(err)
	}
	return guard, nil
}

// LockExclusive guards writes to a triple's sysroot.
func (h SysrootHome) LockExclusive(triple string) (ports.Guard, error) {
	guard, err := h.locker.AcquireExclusive(h.SentinelPath(triple), subjectFor(triple))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("couldn't lock %s's sysroot as read-write", triple)).
			WithCause(err)
	}
	return guard, nil
}

func subjectFor(triple string) string {
	return triple + "'s sysroot"
}
