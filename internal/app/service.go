package app

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"xsysroot/internal/adapters"
	"xsysroot/internal/ports"
)

type Service struct {
	Env         ports.EnvironmentPort
	Locker      ports.Locker
	ConfigFiles ports.ConfigFilePort
	Toolchain   ports.ToolchainPort
	Runner      ports.CommandPort
	FlagsFor    func(projectRoot string) ports.FlagsPort
	Stderr      io.Writer
	Logger      zerolog.Logger
	Getwd       func() (string, error)
}

func NewService() Service {
	env := adapters.NewEnvironmentAdapter(nil)
	files := adapters.NewConfigFileAdapter()
	return Service{
		Env:         env,
		Locker:      adapters.NewFileLocker(),
		ConfigFiles: files,
		Toolchain:   adapters.NewRustcAdapter(),
		Runner:      adapters.NewCommandRunnerAdapter(),
		FlagsFor: func(projectRoot string) ports.FlagsPort {
			return adapters.NewCargoFlagsAdapter(env, files, projectRoot)
		},
		Stderr: os.Stderr,
		Logger: log.Logger,
		Getwd:  os.Getwd,
	}
}
