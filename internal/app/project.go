package app

import (
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

const cargoManifest = "Cargo.toml"

// projectRoot returns explicit when given, otherwise the directory of the
// closest Cargo.toml above the working directory, falling back to the
// working directory itself.
func (s Service) projectRoot(explicit string) (string, error) {
	if root := strings.TrimSpace(explicit); root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid project root").
				WithCause(err)
		}
		return abs, nil
	}
	cwd, err := s.Getwd()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to determine working directory").
			WithCause(err)
	}
	if dir, ok := s.ConfigFiles.Search(cwd, cargoManifest); ok {
		return dir, nil
	}
	return cwd, nil
}
