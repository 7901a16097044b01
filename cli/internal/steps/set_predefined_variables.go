package steps

import (
	"strings"
	"time"

	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
)

// SetPredefinedVariables represents a step for setting pre-defined variables.
type SetPredefinedVariables struct {
}

// SlugifyName derives a machine-safe project slug from a project name.
func SlugifyName(projectName string) string {
	return strings.ToLower(strings.ReplaceAll(projectName, "-", "_"))
}

// Run sets predefined variables values. The slug is derived from the project
// name and may be overridden by later variable definition steps.
func (SetPredefinedVariables) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	templateCtx.Vars["project_name"] = createCtx.ProjectName
	templateCtx.Vars["project_slug"] = SlugifyName(createCtx.ProjectName)
	templateCtx.Vars["year"] = time.Now().Format("2006")
	return nil
}
