package ports

import (
	"context"

	"xsysroot/internal/types"
)

// CommandPort runs an external process to completion. A process that
// starts and exits non-zero is reported through ExitStatus, not error.
type CommandPort interface {
	Run(ctx context.Context, cmd types.Command) (types.ExitStatus, error)
}
