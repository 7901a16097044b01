package steps

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
)

// RenderTemplate represents template render step.
type RenderTemplate struct{}

// templateFileNamePattern matches files whose content is to be rendered.
// Other files are copied as is, so generated CI workflows keep literal ${{ }}.
var templateFileNamePattern = regexp.MustCompile(`^(.*)\.fg\.template$`)

// renderFile renders the file content (for template-suffixed files) and the
// file name.
func renderFile(templateCtx *app_template.TemplateCtx, filePath string) error {
	fileName := filepath.Base(filePath)
	if matches := templateFileNamePattern.FindStringSubmatch(fileName); matches != nil {
		// File name matches template pattern. Render the file.
		resultFilePath := filepath.Join(filepath.Dir(filePath), matches[1])
		if err := templateCtx.Engine.RenderFile(filePath,
			resultFilePath, templateCtx.Vars); err != nil {
			return err
		}
		// Remove original template file.
		if err := os.Remove(filePath); err != nil {
			return fmt.Errorf("error removing %s: %s", filePath, err)
		}
		filePath = resultFilePath
		fileName = filepath.Base(filePath)
	}

	// Render file name.
	newFileName, err := templateCtx.Engine.RenderText(fileName, templateCtx.Vars)
	if err != nil {
		return fmt.Errorf("failed file name processing %s: %s", filePath, err)
	}
	if newFileName != fileName {
		newFilePath := filepath.Join(filepath.Dir(filePath), newFileName)
		if err = os.Rename(filePath, newFilePath); err != nil {
			return fmt.Errorf("error renaming %s to %s: %s", filePath, newFilePath, err)
		}
	}
	return nil
}

// Run renders template in the project directory: file contents first, then
// file names, then directory names starting from the deepest ones.
func (RenderTemplate) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	dirsToRename := make([]string, 0)
	err := filepath.Walk(templateCtx.AppPath,
		func(filePath string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fileInfo.IsDir() {
				if filePath != templateCtx.AppPath &&
					strings.Contains(filepath.Base(filePath), "{{") {
					dirsToRename = append(dirsToRename, filePath)
				}
				return nil
			}
			return renderFile(templateCtx, filePath)
		})
	if err != nil {
		return fmt.Errorf("template rendering error: %s", err)
	}

	// Deepest directories first, so pending parent renames stay valid.
	sort.Slice(dirsToRename, func(i, j int) bool {
		return strings.Count(dirsToRename[i], string(os.PathSeparator)) >
			strings.Count(dirsToRename[j], string(os.PathSeparator))
	})
	for _, dirPath := range dirsToRename {
		dirName := filepath.Base(dirPath)
		newDirName, err := templateCtx.Engine.RenderText(dirName, templateCtx.Vars)
		if err != nil {
			return fmt.Errorf("failed directory name processing %s: %s", dirPath, err)
		}
		if newDirName != dirName {
			newDirPath := filepath.Join(filepath.Dir(dirPath), newDirName)
			if err = os.Rename(dirPath, newDirPath); err != nil {
				return fmt.Errorf("error renaming %s to %s: %s", dirPath, newDirPath, err)
			}
		}
	}

	return nil
}
