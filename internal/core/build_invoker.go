package core

import (
	"context"
	"fmt"
	"io"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"xsysroot/internal/ports"
	"xsysroot/internal/types"
)

const (
	DefaultCargo    = "cargo"
	rustFlagsEnv    = "RUSTFLAGS"
	rustDocFlagsEnv = "RUSTDOCFLAGS"
)

// DocFlagsProvider supplies RUSTDOCFLAGS for `cargo doc`.
type DocFlagsProvider interface {
	RustDocFlags(triple string) (types.Flags, error)
}

type BuildRequest struct {
	Args      types.Args
	Mode      types.CompilationMode
	RustFlags types.Flags
	Home      SysrootHome
	Meta      types.VersionMeta
	DocFlags  DocFlagsProvider
	Verbose   bool
}

// BuildInvoker runs cargo against the cached sysroots while holding shared
// locks on both the host and the target sysroot.
type BuildInvoker struct {
	runner  ports.CommandPort
	stderr  io.Writer
	program string
}

func NewBuildInvoker(runner ports.CommandPort, stderr io.Writer, program string) BuildInvoker {
	if strings.TrimSpace(program) == "" {
		program = DefaultCargo
	}
	return BuildInvoker{runner: runner, stderr: stderr, program: program}
}

// Run returns the child's exit status. A non-zero status is not an error;
// the error return is reserved for failures to lock or to launch.
func (b BuildInvoker) Run(ctx context.Context, req BuildRequest) (types.ExitStatus, error) {
	assert.NotEmpty(ctx, req.Meta.Host, "host triple must be set")
	assert.NotEmpty(ctx, req.Mode.Triple(), "target triple must be set")

	cmd := types.Command{
		Program: b.program,
		Args:    append([]string(nil), req.Args.All...),
	}

	if req.Args.Subcommand == types.SubcommandDoc && req.DocFlags != nil {
		docFlags, err := req.DocFlags.RustDocFlags(req.Mode.Triple())
		if err != nil {
			return types.ExitStatus{}, err
		}
		cmd.Env = append(cmd.Env, rustDocFlagsEnv+"="+docFlags.ForSysroot(req.Home.Path()))
	}

	flags := req.RustFlags.ForSysroot(req.Home.Path())
	if req.Verbose && b.stderr != nil {
		fmt.Fprintf(b.stderr, "+ %s=%q\n", rustFlagsEnv, flags)
	}
	cmd.Env = append(cmd.Env, rustFlagsEnv+"="+flags)

	hostLock, err := req.Home.LockShared(req.Meta.Host)
	if err != nil {
		return types.ExitStatus{}, err
	}
	defer releaseGuard(hostLock)

	targetLock, err := req.Home.LockShared(req.Mode.Triple())
	if err != nil {
		return types.ExitStatus{}, err
	}
	defer releaseGuard(targetLock)

	if req.Verbose && b.stderr != nil {
		fmt.Fprintf(b.stderr, "+ %s\n", strings.Join(append([]string{cmd.Program}, cmd.Args...), " "))
	}
	return b.runner.Run(ctx, cmd)
}

func releaseGuard(guard ports.Guard) {
	if err := guard.Release(); err != nil {
		log.Debug().Err(err).Str("subject", guard.Subject()).Msg("lock release failed")
	}
}
