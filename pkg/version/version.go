package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const Name = "brewbook"

// Create a new version command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information and exit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(Info())
		},
	}
	return cmd
}

// Return the version of the binary, as recorded in the build info
func Version() string {
	buildinfo, ok := debug.ReadBuildInfo()
	if !ok || buildinfo.Main.Version == "" {
		return "(devel)"
	}
	return buildinfo.Main.Version
}

// Return formatted version information
func Info() string {
	return fmt.Sprintf("%s:\n    Version: %s\n    Go:      %s\n", Name, Version(), runtime.Version())
}
