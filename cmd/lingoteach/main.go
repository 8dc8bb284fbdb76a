// LingoTeach - language-teaching voice skill backend
// License: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lingoteach/lingoteach/pkg/logger"
)

var (
	version   = "dev"
	gitCommit string
)

func formatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "lingoteach",
		Short: "Voice skill backend that speaks phrases in different languages",
		Long: "LingoTeach translates a spoken phrase, synthesizes it in the target\n" +
			"language voice and caches the audio per device so it can be repeated.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newLambdaCmd(),
		newInvokeCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lingoteach %s\n", formatVersion())
		},
	}
}
