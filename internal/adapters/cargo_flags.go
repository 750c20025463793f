package adapters

import (
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"xsysroot/internal/ports"
	"xsysroot/internal/shared"
	"xsysroot/internal/types"
)

var cargoConfigNames = []string{
	filepath.Join(".cargo", "config.toml"),
	filepath.Join(".cargo", "config"),
}

// CargoFlagsAdapter resolves flags the way cargo does: the environment
// variable wins, then target.<triple>.<key> and build.<key> from the
// nearest .cargo/config.toml above the project root.
type CargoFlagsAdapter struct {
	env   ports.EnvironmentPort
	files ports.ConfigFilePort
	root  string
}

func NewCargoFlagsAdapter(env ports.EnvironmentPort, files ports.ConfigFilePort, root string) CargoFlagsAdapter {
	return CargoFlagsAdapter{env: env, files: files, root: root}
}

func (a CargoFlagsAdapter) RustFlags(triple string) (types.Flags, error) {
	return a.flags("RUSTFLAGS", "rustflags", triple)
}

func (a CargoFlagsAdapter) RustDocFlags(triple string) (types.Flags, error) {
	return a.flags("RUSTDOCFLAGS", "rustdocflags", triple)
}

func (a CargoFlagsAdapter) flags(envKey string, configKey string, triple string) (types.Flags, error) {
	if value, ok := a.env.LookupEnv(envKey); ok {
		return types.SplitFlags(value), nil
	}
	table, path, err := a.cargoConfig()
	if err != nil || table == nil {
		return types.Flags{}, err
	}
	for _, segments := range [][]string{
		{"target", triple, configKey},
		{"build", configKey},
	} {
		value, ok := shared.LookupPath(table, segments...)
		if !ok {
			continue
		}
		values, ok := shared.StringList(value)
		if !ok {
			return types.Flags{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(path + ": " + strings.Join(segments, ".") + " must be a string or an array of strings")
		}
		log.Debug().
			Str("key", strings.Join(segments, ".")).
			Str("file", path).
			Msg("flags loaded from cargo config")
		return types.Flags{Values: values}, nil
	}
	return types.Flags{}, nil
}

func (a CargoFlagsAdapter) cargoConfig() (map[string]any, string, error) {
	if strings.TrimSpace(a.root) == "" {
		return nil, "", nil
	}
	nearest, nearestName := "", ""
	for _, name := range cargoConfigNames {
		dir, ok := a.files.Search(a.root, name)
		if !ok {
			continue
		}
		// config.toml is listed first, so it wins a tie in the same directory.
		if nearestName == "" || len(dir) > len(nearest) {
			nearest, nearestName = dir, name
		}
	}
	if nearestName == "" {
		return nil, "", nil
	}
	path := filepath.Join(nearest, nearestName)
	table, err := a.files.Parse(path)
	if err != nil {
		return nil, path, err
	}
	return table, path, nil
}

var _ ports.FlagsPort = CargoFlagsAdapter{}
