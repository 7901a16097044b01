package steps

import (
	"fmt"
	"os"

	"github.com/apex/log"
	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
	"github.com/otiai10/copy"
)

// MoveProjectDirectory represents temporary project directory move step.
type MoveProjectDirectory struct {
}

// Run moves temporary project directory to destination.
func (MoveProjectDirectory) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	if templateCtx.TargetAppPath == "" {
		return nil
	}

	if _, err := os.Stat(templateCtx.TargetAppPath); err == nil {
		if !createCtx.ForceMode {
			return fmt.Errorf("'%s' already exists", templateCtx.TargetAppPath)
		}
		if err = os.RemoveAll(templateCtx.TargetAppPath); err != nil {
			return fmt.Errorf("failed to remove %s: %s", templateCtx.TargetAppPath, err)
		}
	}

	if err := copy.Copy(templateCtx.AppPath, templateCtx.TargetAppPath); err != nil {
		return err
	}

	if err := os.RemoveAll(templateCtx.AppPath); err != nil {
		log.Warnf("Failed to remove temporary directory: %s", err)
	}

	return nil
}
