package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xsysroot/internal/adapters"
	"xsysroot/internal/ports"
	"xsysroot/internal/types"
)

const (
	hostTriple  = "x86_64-unknown-linux-gnu"
	crossTriple = "thumbv7m-none-eabi"
)

func TestResolveHome_Override(t *testing.T) {
	base := t.TempDir()
	env := adapters.StaticEnvironment{Home: base, HomeDir: "/ignored"}

	home, err := ResolveHome(env, types.CrossMode(crossTriple), adapters.NewMemoryLocker())
	require.NoError(t, err)
	assert.Equal(t, base, home.Path())
	assert.False(t, home.IsNative())
}

func TestResolveHome_DefaultsToUserHome(t *testing.T) {
	userHome := t.TempDir()
	env := adapters.StaticEnvironment{HomeDir: userHome}

	home, err := ResolveHome(env, types.CrossMode(crossTriple), adapters.NewMemoryLocker())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(userHome, ".xargo"), home.Path())
}

func TestResolveHome_NoHomeIsConfigurationError(t *testing.T) {
	_, err := ResolveHome(adapters.StaticEnvironment{}, types.CrossMode(crossTriple), adapters.NewMemoryLocker())
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "couldn't find your home directory")
}

func TestResolveHome_NativeUsesHostMarker(t *testing.T) {
	base := t.TempDir()
	env := adapters.StaticEnvironment{Home: base}

	native, err := ResolveHome(env, types.NativeMode(hostTriple), adapters.NewMemoryLocker())
	require.NoError(t, err)
	cross, err := ResolveHome(env, types.CrossMode(hostTriple), adapters.NewMemoryLocker())
	require.NoError(t, err)

	assert.True(t, native.IsNative())
	assert.Equal(t, filepath.Join(base, "HOST"), native.Path())
	assert.Equal(t, filepath.Join(base, "HOST", "lib", "rustlib", hostTriple), native.SysrootPath(hostTriple))
	assert.Equal(t, filepath.Join(base, "lib", "rustlib", hostTriple), cross.SysrootPath(hostTriple))
	assert.NotEqual(t, native.SysrootPath(hostTriple), cross.SysrootPath(hostTriple))
}

func TestSysrootHome_LockSharedCreatesSentinel(t *testing.T) {
	base := t.TempDir()
	home, err := ResolveHome(adapters.StaticEnvironment{Home: base}, types.CrossMode(crossTriple), adapters.NewFileLocker())
	require.NoError(t, err)

	guard, err := home.LockShared(crossTriple)
	require.NoError(t, err)
	defer guard.Release()

	sentinel := filepath.Join(base, "lib", "rustlib", crossTriple, ".sentinel")
	_, err = os.Stat(sentinel)
	require.NoError(t, err)
	assert.Equal(t, sentinel, guard.Path())
	assert.Equal(t, crossTriple+"'s sysroot", guard.Subject())
	assert.Equal(t, types.LockShared, guard.Mode())
}

func TestSysrootHome_LockExclusiveMode(t *testing.T) {
	locker := adapters.NewMemoryLocker()
	home, err := ResolveHome(adapters.StaticEnvironment{Home: t.TempDir()}, types.CrossMode(crossTriple), locker)
	require.NoError(t, err)

	guard, err := home.LockExclusive(crossTriple)
	require.NoError(t, err)
	_, writer := locker.Holders(home.SentinelPath(crossTriple))
	assert.True(t, writer)
	require.NoError(t, guard.Release())
	_, writer = locker.Holders(home.SentinelPath(crossTriple))
	assert.False(t, writer)
}

type failingLocker struct{}

func (failingLocker) AcquireShared(string, string) (ports.Guard, error) {
	return nil, errors.New("permission denied")
}

func (failingLocker) AcquireExclusive(string, string) (ports.Guard, error) {
	return nil, errors.New("permission denied")
}

func TestSysrootHome_LockErrorsNameTriple(t *testing.T) {
	home, err := ResolveHome(adapters.StaticEnvironment{Home: t.TempDir()}, types.CrossMode(crossTriple), failingLocker{})
	require.NoError(t, err)

	_, err = home.LockShared(crossTriple)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "couldn't lock thumbv7m-none-eabi's sysroot as read-only")

	_, err = home.LockExclusive(crossTriple)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "couldn't lock thumbv7m-none-eabi's sysroot as read-write")
}
