package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xsysroot/internal/adapters"
	"xsysroot/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "XARGO"

// defaultTargetKey backs --target for inspect and sysroot-lock. It is
// XARGO_DEFAULT_TARGET in the environment, distinct from the XARGO_TARGET
// that sysroot-lock exports to its child.
const defaultTargetKey = "default_target"

// serviceFactory builds the app service for each command run.
var serviceFactory = newAppService

type RootConfig struct {
	ConfigFile string
	LogLevel   string
	Home       string
}

// exitStatusError carries a child process exit code up to Execute.
type exitStatusError struct {
	code int
}

func (e exitStatusError) Error() string {
	return fmt.Sprintf("child process exited with status %d", e.code)
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		var status exitStatusError
		if !errors.As(err, &status) {
			log.Error().Err(err).Msg(errorMessage(err))
		}
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:           "xsysroot",
		Short:         "Cross-compile with cached, lock-protected sysroots",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	// Root flags placed before a cargo subcommand are parsed by the root;
	// the subcommand receives only the arguments after its name.
	cmd.TraverseChildren = true
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "warn", "Log level")
	cmd.PersistentFlags().StringVar(&cfg.Home, "home", "", "Sysroot cache root (overrides XARGO_HOME)")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("home", cmd.PersistentFlags().Lookup("home"))

	cmd.AddCommand(newCargoCommand("cargo", "Run cargo against the cached sysroot"))
	for _, sub := range passthroughSubcommands {
		cmd.AddCommand(newCargoCommand(sub, "Run `cargo "+sub+"` against the cached sysroot"))
	}
	cmd.AddCommand(newInspectCommand())
	cmd.AddCommand(newSysrootLockCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("xsysroot")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/xsysroot")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

func newAppService() app.Service {
	service := app.NewService()
	service.Env = adapters.NewEnvironmentAdapter(viper.GetViper())
	service.Logger = log.Logger
	return service
}

func exitCodeForError(err error) int {
	var status exitStatusError
	if errors.As(err, &status) {
		return status.code
	}
	code := errbuilder.CodeOf(err)
	switch code {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeFailedPrecondition:
		return 4
	case errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
