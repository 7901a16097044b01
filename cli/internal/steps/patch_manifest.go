package steps

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/apex/log"
	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
	"github.com/dataeng-forge/forge/cli/util"
)

const (
	// AstroCliVarName is a manifest variable controlling the optional
	// Astro CLI bootstrap.
	AstroCliVarName = "include_astro_cli"
	// astroCliPrompt is the prompt inserted on platforms where the
	// bootstrap is available.
	astroCliPrompt = "Do you want to initialise Astro CLI in this project? (y/n)"
)

// PatchManifest adjusts the template manifest for the host platform before
// the manifest is loaded. The Astro CLI bootstrap is only offered on macOS:
// the prompt is inserted there, removed entirely on Windows with the backing
// default forced to "n", and the manifest is left untouched elsewhere.
type PatchManifest struct {
	// Goos overrides host platform detection. Empty value means runtime.GOOS.
	Goos string
}

// findAstroCliVar returns the index of the Astro CLI prompt entry in the raw
// manifest vars list, or -1 if there is no such entry.
func findAstroCliVar(rawVars []interface{}) int {
	for i, rawVar := range rawVars {
		varMap, ok := rawVar.(map[string]interface{})
		if !ok {
			continue
		}
		if name, ok := varMap["name"].(string); ok && name == AstroCliVarName {
			return i
		}
	}
	return -1
}

// Run rewrites the template manifest for the host platform. A template
// without a manifest is skipped. A present but unreadable or malformed
// manifest is a fatal error, as is a failed write back.
func (patch PatchManifest) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	manifestPath := filepath.Join(templateCtx.AppPath, app_template.DefaultManifestName)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		log.Debug("No manifest. Skipping manifest patch step.")
		return nil
	}

	rawManifest, err := util.ParseJSON(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to patch template manifest: %s", err)
	}

	hostOs := patch.Goos
	if hostOs == "" {
		hostOs = runtime.GOOS
	}

	rawVars, _ := rawManifest["vars"].([]interface{})
	switch hostOs {
	case "darwin":
		if findAstroCliVar(rawVars) >= 0 {
			return nil
		}
		log.Debugf("Adding %s prompt for macOS", AstroCliVarName)
		rawManifest["vars"] = append(rawVars, map[string]interface{}{
			"name":    AstroCliVarName,
			"prompt":  astroCliPrompt,
			"default": "n",
			"re":      "^[yn]$",
		})
	case "windows":
		log.Debugf("Removing %s prompt for Windows", AstroCliVarName)
		if i := findAstroCliVar(rawVars); i >= 0 {
			rawManifest["vars"] = append(rawVars[:i], rawVars[i+1:]...)
		}
		rawManifest[AstroCliVarName] = "n"
	default:
		return nil
	}

	if err := util.WriteJSON(manifestPath, rawManifest); err != nil {
		return fmt.Errorf("failed to write patched manifest: %s", err)
	}

	return nil
}
