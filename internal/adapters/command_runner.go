package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"xsysroot/internal/ports"
	"xsysroot/internal/types"
)

// CommandRunnerAdapter runs a child process with inherited stdio and the
// caller's environment extended by cmd.Env.
type CommandRunnerAdapter struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func NewCommandRunnerAdapter() CommandRunnerAdapter {
	return CommandRunnerAdapter{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (a CommandRunnerAdapter) Run(ctx context.Context, cmd types.Command) (types.ExitStatus, error) {
	if strings.TrimSpace(cmd.Program) == "" {
		return types.ExitStatus{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("command program is empty")
	}
	child := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	child.Env = append(os.Environ(), cmd.Env...)
	child.Dir = cmd.Dir
	child.Stdin = a.Stdin
	child.Stdout = a.Stdout
	child.Stderr = a.Stderr

	log.Debug().
		Str("program", cmd.Program).
		Strs("args", cmd.Args).
		Strs("env", cmd.Env).
		Msg("running command")

	err := child.Run()
	if err == nil {
		return types.ExitStatus{Code: 0}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// terminated by a signal
			code = 1
		}
		return types.ExitStatus{Code: code}, nil
	}
	return types.ExitStatus{}, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("failed to launch %s", cmd.Program)).
		WithCause(err)
}

var _ ports.CommandPort = CommandRunnerAdapter{}
