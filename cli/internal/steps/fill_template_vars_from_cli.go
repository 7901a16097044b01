package steps

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
)

const formatError = `wrong variable definition format: %s
Usage: --var "var-name=value"`

// varDefinition is a variable name/value pair.
type varDefinition struct {
	name  string
	value string
}

// parseVarDefinition parses var definition in `name=value` format.
func parseVarDefinition(in string) (varDefinition, error) {
	varName, value, found := strings.Cut(strings.TrimSpace(in), "=")
	if !found || varName == "" || value == "" {
		return varDefinition{}, fmt.Errorf(formatError, in)
	}
	return varDefinition{varName, value}, nil
}

// FillTemplateVarsFromCli represents a step for setting variables passed in command line.
type FillTemplateVarsFromCli struct {
}

// Run collects variables passed using command line args.
func (FillTemplateVarsFromCli) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	for _, varDefText := range createCtx.VarsFromCli {
		varDef, err := parseVarDefinition(varDefText)
		if err != nil {
			return err
		}
		log.Debugf("Setting var from CLI: %s = %s", varDef.name, varDef.value)
		templateCtx.Vars[varDef.name] = varDef.value
	}
	return nil
}
