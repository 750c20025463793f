//go:build unix

package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"xsysroot/tests/testutil"
)

const (
	hostTriple  = "x86_64-unknown-linux-gnu"
	crossTriple = "thumbv7m-none-eabi"
)

// buildBinary compiles the CLI once per test into a temp dir.
func buildBinary(t *testing.T) string {
	t.Helper()
	bin := filepath.Join(t.TempDir(), "xsysroot")
	cmd := exec.Command("go", "build", "-o", bin, "./cmd/xsysroot")
	cmd.Dir = testutil.RepoRoot(t)
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	return bin
}

// writeFakeRustc writes a rustc stand-in answering `rustc -vV`.
func writeFakeRustc(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "fake-rustc")
	script := "#!/bin/sh\n" +
		"cat <<'OUT'\n" +
		"rustc 1.78.0-nightly (9c3ad802d 2024-03-07)\n" +
		"binary: rustc\n" +
		"commit-hash: 9c3ad802d9b9633d60d3a74668eb1be819212d34\n" +
		"commit-date: 2024-03-07\n" +
		"host: " + hostTriple + "\n" +
		"release: 1.78.0-nightly\n" +
		"LLVM version: 18.1.0\n" +
		"OUT\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}
