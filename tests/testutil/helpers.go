// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// WriteFile creates path with its parent directories.
func WriteFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// WriteFakeCargo writes an executable shell script standing in for cargo.
// It records RUSTFLAGS and its arguments into marker, one per line, and
// exits with exitCode.
func WriteFakeCargo(t *testing.T, dir string, marker string, exitCode int) string {
	t.Helper()
	path := filepath.Join(dir, "fake-cargo")
	script := "#!/bin/sh\n" +
		"printf '%s\\n' \"$RUSTFLAGS\" > '" + marker + "'\n" +
		"printf '%s\\n' \"$*\" >> '" + marker + "'\n" +
		"exit " + strconv.Itoa(exitCode) + "\n"
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}
