package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dataeng-forge/forge/cli/create"
	"github.com/dataeng-forge/forge/cli/create/builtin_templates"
	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/util"
	"github.com/spf13/cobra"
)

var (
	projectName        string
	dstPath            string
	forceMode          bool
	nonInteractiveMode bool
	varsFromCli        *[]string
	varsFile           string

	// errNoProjectName is returned if -n option was not provided.
	errNoProjectName = util.NewArgError(`project name is required: ` +
		`specify it with the --name option.`)
)

// NewCreateCmd creates a project from a template.
func NewCreateCmd() *cobra.Command {
	var createCmd = &cobra.Command{
		Use:   "create <TEMPLATE_NAME> [flags]",
		Short: "Create a project from a template",
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			util.HandleCmdErr(cmd, internalCreateModule(args))
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("requires template name argument")
			}
			return nil
		},
		ValidArgsFunction: createValidArgsFunction,
		Long: `Create a project from a template.

Built-in templates:
	dataeng: a data engineering project skeleton with uv, mkdocs and CI workflows.`,
		Example: `
# Create a project my-project from the built-in template.

    $ forge create dataeng --name my-project

# Create my-project in /opt/projects/, force replacing of the project directory
# (my-project) if it exists. ` +
			`User interaction is disabled.

    $ forge create dataeng --name my-project -f --non-interactive --dst /opt/projects/

# Pre-define template variables.

    $ forge create dataeng --name my-project --var mkdocs=n --var codecov=n`,
	}

	createCmd.Flags().StringVarP(&projectName, "name", "n", "", "Project name")
	createCmd.Flags().BoolVarP(&forceMode, "force", "f", false,
		`Force rewrite project directory if already exists`)
	createCmd.Flags().BoolVarP(&nonInteractiveMode, "non-interactive", "s", false,
		`Non-interactive mode`)

	varsFromCli = createCmd.Flags().StringArray("var", []string{},
		"Variable definition. Usage: --var var_name=value")
	createCmd.Flags().StringVarP(&varsFile, "vars-file", "", "", "Variables definition file path")
	createCmd.Flags().StringVarP(&dstPath, "dst", "d", "",
		"Path to the directory where a project will be created.")

	return createCmd
}

// createValidArgsFunction returns valid templates for `create` command.
func createValidArgsFunction(
	_ *cobra.Command,
	args []string,
	toComplete string,
) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	templates := make([]string, 0, len(builtin_templates.Names))

	// Append built-in templates.
	templates = append(templates, builtin_templates.Names...)

	// Append configured template directories.
	for _, templateDir := range cliOpts.Templates {
		entries, err := os.ReadDir(templateDir.Path)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			eName := entry.Name()
			ext := filepath.Ext(eName)
			if entry.IsDir() {
				templates = append(templates, eName)
			} else if ext == ".tgz" {
				templates = append(templates, eName[:len(eName)-4])
			} else if ext == ".gz" && filepath.Ext(eName[:len(eName)-3]) == ".tar" {
				templates = append(templates, eName[:len(eName)-7])
			}
		}
	}
	return templates, cobra.ShellCompDirectiveNoFileComp
}

// internalCreateModule is a default create module.
func internalCreateModule(args []string) error {
	if len(projectName) == 0 {
		return errNoProjectName
	}

	if !forceMode && !nonInteractiveMode {
		targetDir := dstPath
		if targetDir == "" {
			targetDir, _ = os.Getwd()
		}
		projectDir := filepath.Join(targetDir, projectName)
		if util.IsDir(projectDir) {
			overwrite, err := util.AskConfirm(os.Stdin,
				fmt.Sprintf("%s already exists, overwrite?", projectDir))
			if err != nil || !overwrite {
				return fmt.Errorf("'%s' already exists", projectDir)
			}
			forceMode = true
		}
	}

	createCtx := create_ctx.CreateCtx{
		ProjectName:    projectName,
		ForceMode:      forceMode,
		SilentMode:     nonInteractiveMode,
		VarsFromCli:    *varsFromCli,
		VarsFile:       varsFile,
		DestinationDir: dstPath,
		CliOpts:        cliOpts,
	}

	if err := create.FillCtx(cliOpts, &createCtx, args); err != nil {
		return err
	}

	return create.Run(&createCtx)
}
