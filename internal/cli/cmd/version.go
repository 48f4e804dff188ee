package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bookmark/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("bookmark %s\n", orUnknown(buildInfo.Version))
		fmt.Printf("  commit:     %s\n", orUnknown(buildInfo.Commit))
		fmt.Printf("  built:      %s\n", orUnknown(buildInfo.BuildDate))
		fmt.Printf("  go:         %s\n", orUnknown(buildInfo.GoVersion))
		fmt.Printf("  repository: %s\n", build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
