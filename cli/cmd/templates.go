package cmd

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"

	"github.com/dataeng-forge/forge/cli/create/builtin_templates"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
	"github.com/dataeng-forge/forge/cli/util"
	"github.com/spf13/cobra"
)

// NewTemplatesCmd lists the templates available to `forge create`.
func NewTemplatesCmd() *cobra.Command {
	var templatesCmd = &cobra.Command{
		Use:   "templates",
		Short: "Show available project templates",
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			util.HandleCmdErr(cmd, internalTemplatesModule(args))
		},
	}

	return templatesCmd
}

// builtinDescription reads the description field from a built-in template
// manifest. Missing manifest or description yields an empty string.
func builtinDescription(templateName string) string {
	manifestData, err := fs.ReadFile(builtin_templates.TemplatesFs,
		path.Join("templates", templateName, app_template.DefaultManifestName))
	if err != nil {
		return ""
	}
	var rawManifest map[string]interface{}
	if err := json.Unmarshal(manifestData, &rawManifest); err != nil {
		return ""
	}
	description, _ := rawManifest["description"].(string)
	return description
}

// internalTemplatesModule is a default templates module.
func internalTemplatesModule(args []string) error {
	fmt.Println("Built-in templates:")
	for _, templateName := range builtin_templates.Names {
		if description := builtinDescription(templateName); description != "" {
			fmt.Printf("  %s: %s\n", templateName, description)
		} else {
			fmt.Printf("  %s\n", templateName)
		}
	}

	if len(cliOpts.Templates) == 0 {
		return nil
	}

	fmt.Println("Template search paths:")
	for _, templateDir := range cliOpts.Templates {
		fmt.Printf("  %s\n", templateDir.Path)
	}
	return nil
}
