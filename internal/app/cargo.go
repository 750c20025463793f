package app

import (
	"context"
	"strings"

	"xsysroot/internal/core"
	"xsysroot/internal/types"
)

// Cargo forwards args to cargo with RUSTFLAGS pointing at the cached
// sysroot. A non-zero cargo exit is reported in the result, not as error.
func (s Service) Cargo(ctx context.Context, req CargoRequest) (CargoResult, error) {
	args := types.ParseArgs(req.Args)
	meta, err := s.Toolchain.VersionMeta(ctx)
	if err != nil {
		return CargoResult{}, err
	}
	mode := types.ModeFor(args.Target, meta.Host)
	home, err := core.ResolveHome(s.Env, mode, s.Locker)
	if err != nil {
		return CargoResult{}, err
	}
	root, err := s.projectRoot(req.ProjectRoot)
	if err != nil {
		return CargoResult{}, err
	}

	resolver := core.NewConfigResolver(s.ConfigFiles, s.Logger)
	config, err := resolver.FindAndParse(root)
	if err != nil {
		return CargoResult{}, err
	}
	s.Logger.Debug().
		Str("mode", mode.String()).
		Str("home", home.Path()).
		Str("config", string(config.State)).
		Str("config_dir", config.Dir).
		Msg("sysroot context resolved")
	if src, ok := resolver.ExternalSource(config, root); ok {
		s.Logger.Debug().Str("rust_src", src.Path).Msg("external source override")
	}

	flags := s.FlagsFor(root)
	rustFlags, err := flags.RustFlags(mode.Triple())
	if err != nil {
		return CargoResult{}, err
	}

	program := core.DefaultCargo
	if value, ok := s.Env.LookupEnv("CARGO"); ok && strings.TrimSpace(value) != "" {
		program = value
	}
	invoker := core.NewBuildInvoker(s.Runner, s.Stderr, program)
	status, err := invoker.Run(ctx, core.BuildRequest{
		Args:      args,
		Mode:      mode,
		RustFlags: rustFlags,
		Home:      home,
		Meta:      meta,
		DocFlags:  flags,
		Verbose:   args.Verbose || req.Verbose,
	})
	if err != nil {
		return CargoResult{}, err
	}
	return CargoResult{
		Status:      status,
		Mode:        mode,
		Home:        home.Path(),
		ConfigState: config.State,
	}, nil
}
