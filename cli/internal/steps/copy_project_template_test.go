package steps

import (
	"archive/tar"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyProjectTemplateFromDirectory(t *testing.T) {
	templatesDir := t.TempDir()
	templatePath := filepath.Join(templatesDir, "basic")
	writeTree(t, templatePath, map[string]string{
		"README.md.fg.template": "# {{.project_name}}\n",
		"template.json":         "{}",
	})

	createCtx := create_ctx.CreateCtx{
		TemplateName:        "basic",
		TemplateSearchPaths: []string{templatesDir},
	}
	templateCtx := app_template.NewTemplateContext()
	templateCtx.AppPath = t.TempDir()

	copyTemplate := CopyProjectTemplate{}
	require.NoError(t, copyTemplate.Run(&createCtx, &templateCtx))
	assert.FileExists(t, filepath.Join(templateCtx.AppPath, "README.md.fg.template"))
	assert.FileExists(t, filepath.Join(templateCtx.AppPath, "template.json"))
}

func TestCopyProjectTemplateBuiltin(t *testing.T) {
	createCtx := create_ctx.CreateCtx{TemplateName: "dataeng"}
	templateCtx := app_template.NewTemplateContext()
	templateCtx.AppPath = t.TempDir()

	copyTemplate := CopyProjectTemplate{}
	require.NoError(t, copyTemplate.Run(&createCtx, &templateCtx))
	assert.FileExists(t, filepath.Join(templateCtx.AppPath, "template.json"))
	assert.FileExists(t, filepath.Join(templateCtx.AppPath, "pyproject.toml.fg.template"))
	assert.DirExists(t, filepath.Join(templateCtx.AppPath, "{{.project_slug}}"))
}

func TestCopyProjectTemplateSearchPathShadowsBuiltin(t *testing.T) {
	templatesDir := t.TempDir()
	templatePath := filepath.Join(templatesDir, "dataeng")
	writeTree(t, templatePath, map[string]string{"marker.txt": "custom"})

	createCtx := create_ctx.CreateCtx{
		TemplateName:        "dataeng",
		TemplateSearchPaths: []string{templatesDir},
	}
	templateCtx := app_template.NewTemplateContext()
	templateCtx.AppPath = t.TempDir()

	copyTemplate := CopyProjectTemplate{}
	require.NoError(t, copyTemplate.Run(&createCtx, &templateCtx))
	assert.FileExists(t, filepath.Join(templateCtx.AppPath, "marker.txt"))
	assert.NoFileExists(t, filepath.Join(templateCtx.AppPath, "template.json"))
}

func TestCopyProjectTemplateFromArchive(t *testing.T) {
	templatesDir := t.TempDir()
	writeTemplateArchive(t, filepath.Join(templatesDir, "packed.tgz"), map[string]string{
		"README.md": "# packed\n",
	})

	createCtx := create_ctx.CreateCtx{
		TemplateName:        "packed",
		TemplateSearchPaths: []string{templatesDir},
	}
	templateCtx := app_template.NewTemplateContext()
	templateCtx.AppPath = t.TempDir()

	copyTemplate := CopyProjectTemplate{}
	require.NoError(t, copyTemplate.Run(&createCtx, &templateCtx))
	assert.FileExists(t, filepath.Join(templateCtx.AppPath, "README.md"))
}

func TestCopyProjectTemplateNotFound(t *testing.T) {
	createCtx := create_ctx.CreateCtx{TemplateName: "no-such-template"}
	templateCtx := app_template.NewTemplateContext()
	templateCtx.AppPath = t.TempDir()

	copyTemplate := CopyProjectTemplate{}
	err := copyTemplate.Run(&createCtx, &templateCtx)
	require.EqualError(t, err, "template 'no-such-template' is not found")
}

// writeTemplateArchive creates a gzipped tar archive with the passed files.
func writeTemplateArchive(t *testing.T, archivePath string, files map[string]string) {
	t.Helper()
	archiveFile, err := os.Create(archivePath)
	require.NoError(t, err)
	defer archiveFile.Close()

	gzWriter := gzip.NewWriter(archiveFile)
	defer gzWriter.Close()
	tarWriter := tar.NewWriter(gzWriter)
	defer tarWriter.Close()

	for name, content := range files {
		require.NoError(t, tarWriter.WriteHeader(&tar.Header{
			Typeflag: tar.TypeReg,
			Name:     name,
			Mode:     0o644,
			Size:     int64(len(content)),
		}))
		_, err = tarWriter.Write([]byte(content))
		require.NoError(t, err)
	}
}
