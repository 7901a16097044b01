package create_ctx

import "github.com/dataeng-forge/forge/cli/config"

// CreateCtx contains information for creating projects from templates.
type CreateCtx struct {
	// ProjectName is the name of the project to create.
	ProjectName string
	// WorkDir is forge launch working directory.
	WorkDir string
	// DestinationDir is the path where a project will be created.
	DestinationDir string
	// TemplateSearchPaths is a set of paths to search for a template.
	TemplateSearchPaths []string
	// TemplateName is a template to use for project creation.
	TemplateName string
	// VarsFromCli template variables definitions provided in command line.
	VarsFromCli []string
	// ForceMode - if flag is set, remove existing project directory.
	ForceMode bool
	// SilentMode if set, disables user interaction. All invalid format errors fail
	// project creation.
	SilentMode bool
	// VarsFile is a file with variables definitions.
	VarsFile string
	// CliOpts is loaded forge environment config.
	CliOpts *config.CliOpts
}
