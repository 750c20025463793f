package core

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"xsysroot/internal/ports"
	"xsysroot/internal/types"
)

// ConfigResult is the outcome of looking for Xargo.toml. Dir is set when a
// file was found; Document only when it parsed; Err only when it did not.
type ConfigResult struct {
	State    types.ConfigState
	Dir      string
	Document *ConfigDocument
	Err      error
}

type ConfigResolver struct {
	files  ports.ConfigFilePort
	logger zerolog.Logger
}

func NewConfigResolver(files ports.ConfigFilePort, logger zerolog.Logger) ConfigResolver {
	return ConfigResolver{files: files, logger: logger}
}

// FindAndParse looks for the closest Xargo.toml at or above projectRoot.
// A missing file is not an error. A malformed one is returned both in the
// result and as the error.
func (r ConfigResolver) FindAndParse(projectRoot string) (ConfigResult, error) {
	dir, ok := r.files.Search(projectRoot, ConfigFileName)
	if !ok {
		return ConfigResult{State: types.ConfigAbsent}, nil
	}
	table, err := r.files.Parse(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return ConfigResult{State: types.ConfigInvalid, Dir: dir, Err: err}, err
	}
	return ConfigResult{
		State:    types.ConfigLoaded,
		Dir:      dir,
		Document: NewConfigDocument(table),
	}, nil
}

// ResolveExternalSource returns the canonical package.rust-src directory.
func (r ConfigResolver) ResolveExternalSource(projectRoot string) (types.ExternalSource, bool, error) {
	result, err := r.FindAndParse(projectRoot)
	if err != nil {
		return types.ExternalSource{}, false, err
	}
	src, ok := r.ExternalSource(result, projectRoot)
	return src, ok, nil
}

// ExternalSource extracts package.rust-src from an already parsed result.
// The value is written with forward slashes; relative paths are taken
// from projectRoot. A path that does not exist is dropped with a warning.
func (r ConfigResolver) ExternalSource(result ConfigResult, projectRoot string) (types.ExternalSource, bool) {
	if result.State != types.ConfigLoaded {
		return types.ExternalSource{}, false
	}
	pkg, ok := result.Document.Package()
	if !ok {
		return types.ExternalSource{}, false
	}
	table, ok := pkg.(map[string]any)
	if !ok {
		return types.ExternalSource{}, false
	}
	raw, ok := table["rust-src"].(string)
	if !ok {
		return types.ExternalSource{}, false
	}

	native := strings.Join(strings.Split(raw, "/"), string(filepath.Separator))
	if !filepath.IsAbs(native) && !strings.HasPrefix(raw, "/") {
		native = filepath.Join(projectRoot, native)
	}
	canonical, err := canonicalize(native)
	if err != nil {
		r.logger.Warn().
			Str("rust-src", raw).
			Msg("package.rust-src key exists but directory does not exist")
		return types.ExternalSource{}, false
	}
	r.logger.Debug().Str("path", canonical).Msg("using external rust-src")
	return types.ExternalSource{Path: canonical}, true
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
