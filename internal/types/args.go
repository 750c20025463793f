package types

import "strings"

// Args is the forwarded cargo command line together with the few pieces of
// it the wrapper needs to inspect.
type Args struct {
	All        []string
	Subcommand Subcommand
	Target     string
	Verbose    bool
}

// cargoValueFlags take the following token as their value, so that token
// is never the subcommand.
var cargoValueFlags = map[string]bool{
	"-Z":              true,
	"-C":              true,
	"--config":        true,
	"--color":         true,
	"--explain":       true,
	"--manifest-path": true,
}

// ParseArgs scans args without reordering or consuming them. A leading
// +toolchain selector is skipped when looking for the subcommand.
func ParseArgs(args []string) Args {
	parsed := Args{All: append([]string(nil), args...)}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return parsed
		case arg == "--target":
			if i+1 < len(args) {
				parsed.Target = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "--target="):
			parsed.Target = strings.TrimPrefix(arg, "--target=")
		case arg == "-v" || arg == "--verbose" || arg == "-vv":
			parsed.Verbose = true
		case cargoValueFlags[arg]:
			i++
		case parsed.Subcommand == SubcommandNone && strings.HasPrefix(arg, "+"):
			// toolchain selector
		case parsed.Subcommand == SubcommandNone && !strings.HasPrefix(arg, "-"):
			parsed.Subcommand = Subcommand(arg)
		}
	}
	return parsed
}
