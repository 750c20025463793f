package app

import (
	"context"

	"xsysroot/internal/core"
	"xsysroot/internal/types"
)

// Inspect reports where the sysroot for a target lives and what the
// nearest Xargo.toml contributes, without taking any lock.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	meta, err := s.Toolchain.VersionMeta(ctx)
	if err != nil {
		return InspectResult{}, err
	}
	mode := types.ModeFor(req.Target, meta.Host)
	home, err := core.ResolveHome(s.Env, mode, s.Locker)
	if err != nil {
		return InspectResult{}, err
	}
	root, err := s.projectRoot(req.ProjectRoot)
	if err != nil {
		return InspectResult{}, err
	}
	resolver := core.NewConfigResolver(s.ConfigFiles, s.Logger)
	config, err := resolver.FindAndParse(root)
	if err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{
		Host:        meta.Host,
		Triple:      mode.Triple(),
		Native:      mode.IsNative(),
		Release:     meta.Release,
		Channel:     meta.Channel,
		Home:        home.Path(),
		SysrootPath: home.SysrootPath(mode.Triple()),
		ProjectRoot: root,
		ConfigState: config.State,
		ConfigDir:   config.Dir,
	}
	if config.State == types.ConfigLoaded {
		_, result.HasDependencies = config.Document.Dependencies()
		_, result.HasTargetDependencies = config.Document.TargetDependencies(mode.Triple())
		_, result.HasPatch = config.Document.Patch()
	}
	if src, ok := resolver.ExternalSource(config, root); ok {
		result.ExternalSource = src.Path
	}
	return result, nil
}
