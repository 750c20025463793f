package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"xsysroot/internal/core"
	"xsysroot/internal/types"
)

// SysrootLock runs req.Command while holding the exclusive lock on the
// target's sysroot. This is the writer side of the shared locks Cargo
// takes; the command learns the directory through XARGO_SYSROOT.
func (s Service) SysrootLock(ctx context.Context, req SysrootLockRequest) (SysrootLockResult, error) {
	if len(req.Command) == 0 {
		return SysrootLockResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("a command to run under the lock is required")
	}
	meta, err := s.Toolchain.VersionMeta(ctx)
	if err != nil {
		return SysrootLockResult{}, err
	}
	if meta.Channel != types.ChannelNightly {
		s.Logger.Warn().
			Str("release", meta.Release).
			Msg("building a sysroot requires a nightly toolchain")
	}
	mode := types.ModeFor(req.Target, meta.Host)
	home, err := core.ResolveHome(s.Env, mode, s.Locker)
	if err != nil {
		return SysrootLockResult{}, err
	}

	guard, err := home.LockExclusive(mode.Triple())
	if err != nil {
		return SysrootLockResult{}, err
	}
	defer func() {
		if err := guard.Release(); err != nil {
			s.Logger.Debug().Err(err).Msg("lock release failed")
		}
	}()

	sysroot := home.SysrootPath(mode.Triple())
	status, err := s.Runner.Run(ctx, types.Command{
		Program: req.Command[0],
		Args:    req.Command[1:],
		Env: []string{
			"XARGO_SYSROOT=" + sysroot,
			"XARGO_TARGET=" + mode.Triple(),
		},
	})
	if err != nil {
		return SysrootLockResult{}, err
	}
	return SysrootLockResult{Triple: mode.Triple(), SysrootPath: sysroot, Status: status}, nil
}
