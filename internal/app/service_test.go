package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"xsysroot/internal/adapters"
	"xsysroot/internal/ports"
	"xsysroot/internal/types"
)

const (
	testHost   = "x86_64-unknown-linux-gnu"
	testTarget = "thumbv7m-none-eabi"
)

type fakeToolchain struct {
	meta types.VersionMeta
	err  error
}

func (f fakeToolchain) VersionMeta(context.Context) (types.VersionMeta, error) {
	return f.meta, f.err
}

type captureRunner struct {
	commands []types.Command
	status   types.ExitStatus
	err      error
	onRun    func(cmd types.Command)
}

func (r *captureRunner) Run(_ context.Context, cmd types.Command) (types.ExitStatus, error) {
	r.commands = append(r.commands, cmd)
	if r.onRun != nil {
		r.onRun(cmd)
	}
	return r.status, r.err
}

type testFixture struct {
	service Service
	runner  *captureRunner
	locker  *adapters.MemoryLocker
	home    string
	logs    *bytes.Buffer
}

func nightlyMeta() types.VersionMeta {
	return types.VersionMeta{Host: testHost, Release: "1.78.0-nightly", Channel: types.ChannelNightly}
}

func newFixture(t *testing.T, cwd string, vars map[string]string) testFixture {
	t.Helper()
	home := filepath.Join(t.TempDir(), "xargo")
	env := adapters.StaticEnvironment{Home: home, Vars: vars}
	files := adapters.NewConfigFileAdapter()
	runner := &captureRunner{}
	locker := adapters.NewMemoryLocker()
	logs := &bytes.Buffer{}
	service := Service{
		Env:         env,
		Locker:      locker,
		ConfigFiles: files,
		Toolchain:   fakeToolchain{meta: nightlyMeta()},
		Runner:      runner,
		FlagsFor: func(projectRoot string) ports.FlagsPort {
			return adapters.NewCargoFlagsAdapter(env, files, projectRoot)
		},
		Stderr: io.Discard,
		Logger: zerolog.New(logs),
		Getwd: func() (string, error) {
			return cwd, nil
		},
	}
	return testFixture{service: service, runner: runner, locker: locker, home: home, logs: logs}
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func envValue(cmd types.Command, key string) (string, bool) {
	for _, kv := range cmd.Env {
		if k, v, ok := strings.Cut(kv, "="); ok && k == key {
			return v, true
		}
	}
	return "", false
}
