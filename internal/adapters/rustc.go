package adapters

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"xsysroot/internal/ports"
	"xsysroot/internal/shared"
	"xsysroot/internal/types"
)

// RustcAdapter queries the active toolchain with `rustc -vV`. The RUSTC
// environment variable selects a different compiler binary.
type RustcAdapter struct {
	Program string
}

func NewRustcAdapter() RustcAdapter {
	program := "rustc"
	if value, ok := os.LookupEnv("RUSTC"); ok && strings.TrimSpace(value) != "" {
		program = value
	}
	return RustcAdapter{Program: program}
}

func (a RustcAdapter) VersionMeta(ctx context.Context) (types.VersionMeta, error) {
	cmd := exec.CommandContext(ctx, a.Program, "-vV")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return types.VersionMeta{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("failed to query %s for its version", a.Program)).
			WithCause(shared.CommandError(output, err))
	}
	return parseVersionMeta(string(output))
}

func parseVersionMeta(output string) (types.VersionMeta, error) {
	meta := types.VersionMeta{}
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "host":
			meta.Host = value
		case "release":
			meta.Release = value
		case "commit-hash":
			meta.CommitHash = value
		}
	}
	if meta.Host == "" {
		return types.VersionMeta{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("rustc version output has no host triple")
	}
	if meta.Release == "" {
		return types.VersionMeta{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("rustc version output has no release")
	}
	version, err := semver.NewVersion(meta.Release)
	if err != nil {
		return types.VersionMeta{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid rustc release: %s", meta.Release)).
			WithCause(err)
	}
	meta.Channel = channelOf(version)
	return meta, nil
}

func channelOf(version *semver.Version) types.Channel {
	pre := version.Prerelease()
	switch {
	case pre == "":
		return types.ChannelStable
	case strings.HasPrefix(pre, "nightly"):
		return types.ChannelNightly
	case strings.HasPrefix(pre, "beta"):
		return types.ChannelBeta
	default:
		return types.ChannelDev
	}
}

var _ ports.ToolchainPort = RustcAdapter{}
