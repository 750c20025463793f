package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"xsysroot/internal/app"
)

type inspectOptions struct {
	Target      string
	ProjectRoot string
	Format      string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the sysroot cache location and Xargo.toml summary for a target",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Target, "target", "", "Target triple (defaults to the host)")
	cmd.Flags().StringVar(&opts.ProjectRoot, "project-root", "", "Project root (defaults to the closest Cargo.toml)")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format: text or yaml")
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := serviceFactory()
	result, err := service.Inspect(cmd.Context(), app.InspectRequest{
		Target:      resolveString(cmd, opts.Target, defaultTargetKey, "target"),
		ProjectRoot: opts.ProjectRoot,
	})
	if err != nil {
		return err
	}
	return writeInspect(os.Stdout, result, resolveString(cmd, opts.Format, "format", "format"))
}

func writeInspect(w io.Writer, result app.InspectResult, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode inspect output").
				WithCause(err)
		}
		return encoder.Close()
	case "", "text":
		fmt.Fprintf(w, "host: %s (%s %s)\n", result.Host, result.Release, result.Channel)
		fmt.Fprintf(w, "target: %s (native=%t)\n", result.Triple, result.Native)
		fmt.Fprintf(w, "home: %s\n", result.Home)
		fmt.Fprintf(w, "sysroot: %s\n", result.SysrootPath)
		fmt.Fprintf(w, "Xargo.toml: %s", result.ConfigState)
		if result.ConfigDir != "" {
			fmt.Fprintf(w, " (%s)", result.ConfigDir)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "- dependencies: %t\n", result.HasDependencies)
		fmt.Fprintf(w, "- target dependencies: %t\n", result.HasTargetDependencies)
		fmt.Fprintf(w, "- patch: %t\n", result.HasPatch)
		if result.ExternalSource != "" {
			fmt.Fprintf(w, "- rust-src: %s\n", result.ExternalSource)
		}
		return nil
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported format: %s", format))
	}
}
