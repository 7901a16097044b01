package steps

import (
	"bufio"
	"fmt"
	"os"

	"github.com/apex/log"
	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
)

// LoadVarsFile represents variables file load step.
type LoadVarsFile struct {
}

// Run collects variables from the definitions file.
func (LoadVarsFile) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	if createCtx.VarsFile == "" { // Skip if no file specified.
		return nil
	}

	varsFile, err := os.Open(createCtx.VarsFile)
	if err != nil {
		return fmt.Errorf("vars file loading error: %s", err)
	}
	defer varsFile.Close()

	scanner := bufio.NewScanner(varsFile)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		varDef, err := parseVarDefinition(line)
		if err != nil {
			return fmt.Errorf("failed to load vars from %s: %s", createCtx.VarsFile, err)
		}
		log.Debugf("Setting var from vars file: %s = %s", varDef.name, varDef.value)
		templateCtx.Vars[varDef.name] = varDef.value
	}

	if err = scanner.Err(); err != nil {
		return err
	}

	return nil
}
