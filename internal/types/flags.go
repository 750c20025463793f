package types

import "strings"

// Flags is an ordered list of compiler flags such as RUSTFLAGS.
type Flags struct {
	Values []string
}

func SplitFlags(value string) Flags {
	return Flags{Values: strings.Fields(value)}
}

// ForSysroot renders the flags with a trailing --sysroot pointing at home.
func (f Flags) ForSysroot(home string) string {
	parts := make([]string, 0, len(f.Values)+2)
	parts = append(parts, f.Values...)
	parts = append(parts, "--sysroot", home)
	return strings.Join(parts, " ")
}
