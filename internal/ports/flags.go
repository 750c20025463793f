package ports

import "xsysroot/internal/types"

// FlagsPort supplies the compiler and documentation flags for a triple
// before the sysroot flag is appended.
type FlagsPort interface {
	RustFlags(triple string) (types.Flags, error)
	RustDocFlags(triple string) (types.Flags, error)
}
