package cli

import (
	"context"

	"github.com/spf13/cobra"

	"xsysroot/internal/app"
)

type sysrootLockOptions struct {
	Target string
}

func newSysrootLockCommand() *cobra.Command {
	opts := sysrootLockOptions{}
	cmd := &cobra.Command{
		Use:   "sysroot-lock [--target T] -- command [args...]",
		Short: "Run a command while holding the exclusive lock on a sysroot",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSysrootLock(cmd.Context(), cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.Target, "target", "", "Target triple (defaults to the host)")
	return cmd
}

func runSysrootLock(ctx context.Context, cmd *cobra.Command, opts sysrootLockOptions, args []string) error {
	service := serviceFactory()
	result, err := service.SysrootLock(ctx, app.SysrootLockRequest{
		Target:  resolveString(cmd, opts.Target, defaultTargetKey, "target"),
		Command: args,
	})
	if err != nil {
		return err
	}
	if !result.Status.Success() {
		return exitStatusError{code: result.Status.Code}
	}
	return nil
}
