package steps

import (
	"fmt"
	"regexp"

	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
)

// Project identity character policies. The name and the slug are mutually
// exclusive: the name forbids underscores, the slug forbids hyphens.
var (
	projectNamePattern = regexp.MustCompile(`^[-a-zA-Z][-a-zA-Z0-9]+$`)
	projectSlugPattern = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]+$`)
)

// ValidateProjectIdentity represents project name/slug validation step.
// It runs before any rendering, so a failure leaves no output behind.
type ValidateProjectIdentity struct {
}

// Run checks the project name and slug against their character policies.
func (ValidateProjectIdentity) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	projectName := templateCtx.Vars["project_name"]
	if projectName == "" {
		projectName = createCtx.ProjectName
	}
	if !projectNamePattern.MatchString(projectName) {
		return fmt.Errorf("the project name %q is not valid: "+
			"do not use an underscore, use - instead", projectName)
	}

	projectSlug := templateCtx.Vars["project_slug"]
	if !projectSlugPattern.MatchString(projectSlug) {
		return fmt.Errorf("the project slug %q is not valid: "+
			"do not use a hyphen, use _ instead", projectSlug)
	}

	return nil
}
