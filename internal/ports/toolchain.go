package ports

import (
	"context"

	"xsysroot/internal/types"
)

type ToolchainPort interface {
	VersionMeta(ctx context.Context) (types.VersionMeta, error)
}
