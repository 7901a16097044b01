package create

import (
	"fmt"
	"os"

	"github.com/dataeng-forge/forge/cli/config"
	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
	"github.com/dataeng-forge/forge/cli/internal/steps"
)

// FillCtx fills create context.
func FillCtx(cliOpts *config.CliOpts, createCtx *create_ctx.CreateCtx, args []string) error {
	for _, p := range cliOpts.Templates {
		createCtx.TemplateSearchPaths = append(createCtx.TemplateSearchPaths, p.Path)
	}

	if len(args) >= 1 {
		createCtx.TemplateName = args[0]
	} else {
		return fmt.Errorf("missing template name argument. " +
			"Try `forge create --help` for more information")
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	createCtx.WorkDir = workingDir

	return nil
}

// rollbackOnErr removes temporary project directory.
func rollbackOnErr(templateCtx *app_template.TemplateCtx) {
	if templateCtx.AppPath != "" {
		os.RemoveAll(templateCtx.AppPath)
	}
	templateCtx.AppPath = ""
}

// Run creates a project from a template.
func Run(createCtx *create_ctx.CreateCtx) error {
	if err := checkCtx(createCtx); err != nil {
		return err
	}

	stepsChain := []steps.Step{
		steps.SetPredefinedVariables{},
		steps.LoadVarsFile{},
		steps.FillTemplateVarsFromCli{},
		steps.CreateTemporaryProjectDirectory{},
		steps.CopyProjectTemplate{},
		steps.PatchManifest{},
		steps.LoadManifest{},
		steps.CollectTemplateVarsFromUser{
			Reader:   steps.NewConsoleReader(),
			Selector: steps.NewConsoleSelector(),
		},
		steps.ValidateProjectIdentity{},
		steps.RunHook{HookType: "pre"},
		steps.RenderTemplate{},
		steps.RunHook{HookType: "post"},
		steps.CustomizeTree{},
		steps.BootstrapAstroCli{},
		steps.Cleanup{},
		steps.MoveProjectDirectory{},
		steps.PrintFollowUpMessage{Writer: os.Stdout},
	}

	templateCtx := app_template.NewTemplateContext()
	for _, step := range stepsChain {
		if err := step.Run(createCtx, &templateCtx); err != nil {
			rollbackOnErr(&templateCtx)
			return err
		}
	}

	return nil
}

// checkCtx checks create context for validity.
func checkCtx(createCtx *create_ctx.CreateCtx) error {
	if createCtx.TemplateName == "" {
		return fmt.Errorf("template name is missing")
	}

	return nil
}
