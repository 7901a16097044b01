package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
)

// CreateTemporaryProjectDirectory represents create temporary project directory step.
// The template is rendered in a temporary directory first, so an aborted run
// leaves no partial output at the destination.
type CreateTemporaryProjectDirectory struct {
}

// Run creates temporary project directory.
func (CreateTemporaryProjectDirectory) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	var projectDirectory string
	var err error

	if createCtx.ProjectName == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	if createCtx.DestinationDir != "" {
		projectDirectory = filepath.Join(createCtx.DestinationDir, createCtx.ProjectName)
	} else {
		projectDirectory = filepath.Join(createCtx.WorkDir, createCtx.ProjectName)
	}

	if _, err = os.Stat(projectDirectory); err == nil {
		if !createCtx.ForceMode {
			return fmt.Errorf("project %s already exists: %s",
				createCtx.ProjectName, projectDirectory)
		}
	}

	projectDirectory, err = filepath.Abs(projectDirectory)
	if err != nil {
		return err
	}

	log.Infof("Creating project in %q", projectDirectory)
	templateCtx.TargetAppPath = projectDirectory

	templateCtx.AppPath, err = os.MkdirTemp("", createCtx.ProjectName+"*")
	if err != nil {
		return fmt.Errorf("failed to create temporary project directory: %s", err)
	}

	return nil
}
