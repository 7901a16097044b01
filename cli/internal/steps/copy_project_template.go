package steps

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/apex/log"
	"github.com/dataeng-forge/forge/cli/create/builtin_templates"
	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
	"github.com/dataeng-forge/forge/cli/util"
	"github.com/otiai10/copy"
)

const defaultPermissions = os.FileMode(0755)

// copyFromFS writes srcDir subtree of fsys to dstPath. File modes are not
// preserved by go:embed, so regular permissions are applied.
func copyFromFS(fsys fs.FS, srcDir string, dstPath string) error {
	return fs.WalkDir(fsys, srcDir, func(filePath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(srcDir, filePath)
		if err != nil {
			return err
		}
		dst := filepath.Join(dstPath, relPath)

		if entry.IsDir() {
			return util.CreateDirectory(dst, defaultPermissions)
		}

		content, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return err
		}
		return os.WriteFile(dst, content, 0o644)
	})
}

// CopyProjectTemplate represents copy template step.
type CopyProjectTemplate struct {
}

// Run copies/extracts project template to the temporary project directory.
// Template search paths are checked first, then built-in templates.
func (CopyProjectTemplate) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	templateName := createCtx.TemplateName

	for _, templatesLocation := range createCtx.TemplateSearchPaths {
		templatePath := path.Join(templatesLocation, templateName)
		if util.IsDir(templatePath) {
			log.Infof("Using template from %s", templatePath)
			if err := copy.Copy(templatePath, templateCtx.AppPath); err != nil {
				return fmt.Errorf("template copying failed: %s", err)
			}
			if err := os.Chmod(templateCtx.AppPath, defaultPermissions); err != nil {
				return fmt.Errorf("failed to change permissions of %s: %s",
					templateCtx.AppPath, err)
			}
			return nil
		}

		archivesToCheck := [2]string{
			path.Join(templatesLocation, templateName+".tgz"),
			path.Join(templatesLocation, templateName+".tar.gz"),
		}
		for _, archivePath := range archivesToCheck {
			if util.IsRegularFile(archivePath) {
				log.Infof("Using template from %s", archivePath)
				if err := util.ExtractTarGz(archivePath, templateCtx.AppPath); err != nil {
					return fmt.Errorf("template archive extraction failed: %s", err)
				}
				return nil
			}
		}
	}

	builtinPath := path.Join("templates", templateName)
	if _, err := fs.Stat(builtin_templates.TemplatesFs, builtinPath); err == nil {
		log.Infof("Using built-in template %s", templateName)
		if err := copyFromFS(builtin_templates.TemplatesFs, builtinPath,
			templateCtx.AppPath); err != nil {
			return fmt.Errorf("template copying failed: %s", err)
		}
		return nil
	}

	return fmt.Errorf("template '%s' is not found", templateName)
}
