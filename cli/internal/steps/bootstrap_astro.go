package steps

import (
	"os/exec"
	"runtime"

	"github.com/apex/log"
	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
	"github.com/dataeng-forge/forge/cli/util"
	"github.com/fatih/color"
)

const astroInstallHint = `Astro CLI not found. Please install it first with:
  curl -sSL https://install.astronomer.io | sudo bash`

// BootstrapAstroCli represents the optional Astro CLI project initialization
// step. It is a developer convenience: any failure here is reported and
// never aborts the run.
type BootstrapAstroCli struct {
	// Goos overrides host platform detection. Empty value means runtime.GOOS.
	Goos string
	// LookPath overrides executable probing. Nil value means exec.LookPath.
	LookPath func(file string) (string, error)
}

// Run initializes an Astro project in the generated tree when requested and
// the host platform supports it.
func (bootstrap BootstrapAstroCli) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	hostOs := bootstrap.Goos
	if hostOs == "" {
		hostOs = runtime.GOOS
	}
	lookPath := bootstrap.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	if templateCtx.Vars[AstroCliVarName] != "y" || hostOs != "darwin" {
		log.Debug("Skipping Astro CLI initialization.")
		return nil
	}

	astroPath, err := lookPath("astro")
	if err != nil {
		color.Yellow(astroInstallHint)
		return nil
	}

	log.Infof("Initializing Astro project in %s", templateCtx.AppPath)
	if err := util.RunCommand(exec.Command(astroPath, "dev", "init"),
		templateCtx.AppPath, false); err != nil {
		log.Infof("Astro CLI initialization failed: %s", err)
		return nil
	}

	log.Info("Successfully initialized Astro project.")
	return nil
}
