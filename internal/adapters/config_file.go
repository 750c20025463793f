package adapters

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/pelletier/go-toml/v2"

	"xsysroot/internal/ports"
)

type ConfigFileAdapter struct{}

func NewConfigFileAdapter() ConfigFileAdapter {
	return ConfigFileAdapter{}
}

// Search returns the closest ancestor of start (start included) that holds
// name. name may contain a subdirectory, e.g. ".cargo/config.toml".
func (a ConfigFileAdapter) Search(start string, name string) (string, bool) {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(name) == "" {
		return "", false
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		info, err := os.Stat(filepath.Join(dir, name))
		if err == nil && info.Mode().IsRegular() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func (a ConfigFileAdapter) Parse(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read %s", path)).
			WithCause(err)
	}
	table := map[string]any{}
	if err := toml.Unmarshal(content, &table); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			err = fmt.Errorf("line %d, column %d: %w", row, col, decodeErr)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse %s", path)).
			WithCause(err)
	}
	return table, nil
}

var _ ports.ConfigFilePort = ConfigFileAdapter{}
