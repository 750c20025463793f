package cli

import (
	"context"

	"github.com/spf13/cobra"

	"xsysroot/internal/app"
)

// passthroughSubcommands are forwarded to cargo under their own name, so
// `xsysroot build --target T` behaves like `xsysroot cargo build --target T`.
var passthroughSubcommands = []string{"build", "check", "doc", "test", "run", "rustc", "bench"}

func newCargoCommand(name string, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:                name + " [cargo args...]",
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			forwarded := args
			if name != "cargo" {
				forwarded = append([]string{name}, args...)
			}
			return runCargo(cmd.Context(), forwarded)
		},
	}
	return cmd
}

func runCargo(ctx context.Context, args []string) error {
	service := serviceFactory()
	result, err := service.Cargo(ctx, app.CargoRequest{Args: args})
	if err != nil {
		return err
	}
	if !result.Status.Success() {
		return exitStatusError{code: result.Status.Code}
	}
	return nil
}
