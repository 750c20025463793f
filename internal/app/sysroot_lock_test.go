package app

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xsysroot/internal/types"
)

func TestSysrootLock_HoldsExclusiveLockWhileRunning(t *testing.T) {
	fx := newFixture(t, t.TempDir(), nil)
	sentinel := filepath.Join(fx.home, "lib", "rustlib", testTarget, ".sentinel")
	var readers int
	var writer bool
	fx.runner.onRun = func(types.Command) {
		readers, writer = fx.locker.Holders(sentinel)
	}

	result, err := fx.service.SysrootLock(t.Context(), SysrootLockRequest{
		Target:  testTarget,
		Command: []string{"make", "sysroot"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, readers)
	assert.True(t, writer)

	after, stillHeld := fx.locker.Holders(sentinel)
	assert.Equal(t, 0, after)
	assert.False(t, stillHeld)

	require.Len(t, fx.runner.commands, 1)
	cmd := fx.runner.commands[0]
	assert.Equal(t, "make", cmd.Program)
	assert.Equal(t, []string{"sysroot"}, cmd.Args)
	sysroot, _ := envValue(cmd, "XARGO_SYSROOT")
	assert.Equal(t, filepath.Join(fx.home, "lib", "rustlib", testTarget), sysroot)
	target, _ := envValue(cmd, "XARGO_TARGET")
	assert.Equal(t, testTarget, target)
	assert.Equal(t, testTarget, result.Triple)
	assert.Equal(t, sysroot, result.SysrootPath)
}

func TestSysrootLock_RequiresCommand(t *testing.T) {
	fx := newFixture(t, t.TempDir(), nil)

	_, err := fx.service.SysrootLock(t.Context(), SysrootLockRequest{Target: testTarget})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Empty(t, fx.runner.commands)
}

func TestSysrootLock_PropagatesExitStatus(t *testing.T) {
	fx := newFixture(t, t.TempDir(), nil)
	fx.runner.status = types.ExitStatus{Code: 3}

	result, err := fx.service.SysrootLock(t.Context(), SysrootLockRequest{Command: []string{"false"}})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Status.Code)
	assert.Equal(t, testHost, result.Triple)
}

func TestSysrootLock_WarnsOnStableToolchain(t *testing.T) {
	fx := newFixture(t, t.TempDir(), nil)
	fx.service.Toolchain = fakeToolchain{meta: types.VersionMeta{
		Host:    testHost,
		Release: "1.78.0",
		Channel: types.ChannelStable,
	}}

	_, err := fx.service.SysrootLock(t.Context(), SysrootLockRequest{Command: []string{"true"}})
	require.NoError(t, err)
	assert.Contains(t, fx.logs.String(), `"level":"warn"`)
	assert.Contains(t, fx.logs.String(), "building a sysroot requires a nightly toolchain")
}
