package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
)

// LoadManifest represents manifest load step.
type LoadManifest struct {
}

// Run loads template manifest. Missing manifest is not an error.
// Flat manifest defaults are applied to variables that are not set yet,
// so command line definitions keep priority.
func (LoadManifest) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	manifestPath := filepath.Join(templateCtx.AppPath, app_template.DefaultManifestName)

	if _, err := os.Stat(manifestPath); err != nil {
		if os.IsNotExist(err) {
			log.Info("There is no manifest in template.")
			templateCtx.IsManifestPresent = false
			return nil
		}
	}

	manifest, err := app_template.LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest file: %s", err)
	}

	templateCtx.Manifest = manifest
	templateCtx.IsManifestPresent = true

	for name, value := range manifest.Defaults {
		if _, found := templateCtx.Vars[name]; !found {
			templateCtx.Vars[name] = value
		}
	}

	if err = os.Remove(manifestPath); err != nil {
		return fmt.Errorf("failed to remove manifest %s: %s", manifestPath, err)
	}

	return nil
}
