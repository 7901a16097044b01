package cmd

import (
	"fmt"

	"github.com/dataeng-forge/forge/cli/util"
	"github.com/dataeng-forge/forge/cli/version"
	"github.com/spf13/cobra"
)

var (
	showShort  bool
	needCommit bool
)

// NewVersionCmd creates a new version command.
func NewVersionCmd() *cobra.Command {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show forge version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			util.HandleCmdErr(cmd, internalVersionModule(args))
		},
	}

	versionCmd.Flags().BoolVar(&showShort, "short", false, "Show version in short format")
	versionCmd.Flags().BoolVar(&needCommit, "commit", false, "Show commit")

	return versionCmd
}

// internalVersionModule is a default (internal) version module function.
func internalVersionModule(args []string) error {
	fmt.Println(version.GetVersion(showShort, needCommit))
	return nil
}
