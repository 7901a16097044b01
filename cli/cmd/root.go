package cmd

import (
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/dataeng-forge/forge/cli/cmdcontext"
	"github.com/dataeng-forge/forge/cli/config"
	"github.com/dataeng-forge/forge/cli/configure"
	"github.com/spf13/cobra"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	cliOpts *config.CliOpts
	rootCmd *cobra.Command
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forge",
		Short: "Data engineering project scaffolder",
		Long:  "Utility for generating data engineering project skeletons from templates",
		Example: `$ forge create dataeng --name my-project
  $ forge templates
  $ forge version`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose output")

	rootCmd.AddCommand(
		NewVersionCmd(),
		NewCreateCmd(),
		NewTemplatesCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf(err.Error())
	}
}

// InitRoot initializes global flags and loads the forge configuration.
func InitRoot() {
	rootCmd = NewCmdRoot()
	rootCmd.ParseFlags(os.Args)

	if err := configure.Cli(&cmdCtx); err != nil {
		log.Fatalf("Failed to configure forge: %s", err)
	}

	var err error
	cliOpts, cmdCtx.Cli.ConfigPath, err = configure.GetCliOpts(cmdCtx.Cli.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to get forge configuration: %s", err)
	}
	if cmdCtx.Cli.ConfigPath != "" {
		cmdCtx.Cli.ConfigDir = filepath.Dir(cmdCtx.Cli.ConfigPath)
	} else if cmdCtx.Cli.ConfigDir, err = os.Getwd(); err != nil {
		log.Fatalf("Failed to get working directory: %s", err)
	}
}
