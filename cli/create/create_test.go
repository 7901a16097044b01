package create

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dataeng-forge/forge/cli/config"
	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillCtx(t *testing.T) {
	cliOpts := &config.CliOpts{
		Templates: []config.TemplateOpts{{Path: "/opt/templates"}},
	}
	createCtx := create_ctx.CreateCtx{}
	require.NoError(t, FillCtx(cliOpts, &createCtx, []string{"dataeng"}))
	assert.Equal(t, "dataeng", createCtx.TemplateName)
	assert.Equal(t, []string{"/opt/templates"}, createCtx.TemplateSearchPaths)
	assert.NotEmpty(t, createCtx.WorkDir)
}

func TestFillCtxMissingTemplateName(t *testing.T) {
	createCtx := create_ctx.CreateCtx{}
	require.Error(t, FillCtx(&config.CliOpts{}, &createCtx, []string{}))
}

func TestRunMissingTemplateName(t *testing.T) {
	createCtx := create_ctx.CreateCtx{}
	require.Error(t, Run(&createCtx))
}

// generateProject runs the full creation pipeline for the built-in template
// in non-interactive mode and returns the generated project path.
func generateProject(t *testing.T, projectName string, vars []string) (string, error) {
	t.Helper()
	dstDir := t.TempDir()
	createCtx := create_ctx.CreateCtx{
		ProjectName:    projectName,
		TemplateName:   "dataeng",
		WorkDir:        dstDir,
		DestinationDir: dstDir,
		SilentMode:     true,
		VarsFromCli:    vars,
		CliOpts:        &config.CliOpts{},
	}
	return filepath.Join(dstDir, projectName), Run(&createCtx)
}

func TestRunGeneratesProject(t *testing.T) {
	projectPath, err := generateProject(t, "my-project", nil)
	require.NoError(t, err)

	readmePath := filepath.Join(projectPath, "README.md")
	require.FileExists(t, readmePath)
	buf, err := os.ReadFile(readmePath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(buf), "# my-project\n"))

	assert.FileExists(t, filepath.Join(projectPath, "pyproject.toml"))
	assert.FileExists(t, filepath.Join(projectPath, "Makefile"))
	assert.FileExists(t, filepath.Join(projectPath, ".gitignore"))

	// The slug directory is rendered from the project name.
	assert.FileExists(t, filepath.Join(projectPath, "my_project", "foo.py"))
	assert.FileExists(t, filepath.Join(projectPath, "tests", "test_foo.py"))
	assert.FileExists(t, filepath.Join(projectPath, "include", "foo.py"))

	// Default feature selection: docs and codecov on, the rest off.
	assert.FileExists(t, filepath.Join(projectPath, "mkdocs.yml"))
	assert.FileExists(t, filepath.Join(projectPath, "docs", "index.md"))
	assert.FileExists(t, filepath.Join(projectPath, "codecov.yaml"))
	assert.FileExists(t, filepath.Join(projectPath, "Dockerfile"))
	assert.NoDirExists(t, filepath.Join(projectPath, ".devcontainer"))
	assert.NoFileExists(t, filepath.Join(projectPath, ".github", "workflows", "publish.yml"))

	// No template machinery is left behind.
	assert.NoFileExists(t, filepath.Join(projectPath, "template.json"))
	assert.NoFileExists(t, filepath.Join(projectPath, "README.md.fg.template"))

	// MIT is the default license choice.
	require.FileExists(t, filepath.Join(projectPath, "LICENSE"))
	for _, leftover := range []string{"LICENSE_MIT", "LICENSE_BSD", "LICENSE_ISC",
		"LICENSE_APACHE", "LICENSE_GPL"} {
		assert.NoFileExists(t, filepath.Join(projectPath, leftover))
	}

	// Rendered test imports the slug package.
	buf, err = os.ReadFile(filepath.Join(projectPath, "tests", "test_foo.py"))
	require.NoError(t, err)
	assert.Contains(t, string(buf), "from my_project.foo import foo")

	// Workflow files keep their GitHub expressions verbatim.
	buf, err = os.ReadFile(filepath.Join(projectPath, ".github", "workflows", "main.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(buf), "${{ secrets.CODECOV_TOKEN }}")
}

func TestRunFeatureFlagsDisabled(t *testing.T) {
	projectPath, err := generateProject(t, "bare-project", []string{
		"mkdocs=n",
		"codecov=n",
		"dockerfile=n",
		"open_source_license=Not open source",
	})
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(projectPath, "mkdocs.yml"))
	assert.NoDirExists(t, filepath.Join(projectPath, "docs"))
	assert.NoFileExists(t, filepath.Join(projectPath, ".github", "workflows", "docs.yml"))
	assert.NoFileExists(t, filepath.Join(projectPath, "codecov.yaml"))
	assert.NoFileExists(t,
		filepath.Join(projectPath, ".github", "workflows", "validate-codecov-config.yml"))
	assert.NoFileExists(t, filepath.Join(projectPath, "Dockerfile"))
	assert.NoFileExists(t, filepath.Join(projectPath, "LICENSE"))

	// The Makefile drops documentation targets along with mkdocs.
	buf, err := os.ReadFile(filepath.Join(projectPath, "Makefile"))
	require.NoError(t, err)
	assert.NotContains(t, string(buf), "mkdocs serve")
}

func TestRunLicenseLineCounts(t *testing.T) {
	lineCounts := map[string]int{
		"MIT license":                   21,
		"BSD license":                   28,
		"ISC license":                   7,
		"Apache Software License 2.0":   202,
		"GNU General Public License v3": 674,
	}
	for choice, expectedLines := range lineCounts {
		projectPath, err := generateProject(t, "lic-project", []string{
			"open_source_license=" + choice,
		})
		require.NoError(t, err, "license choice %q", choice)

		buf, err := os.ReadFile(filepath.Join(projectPath, "LICENSE"))
		require.NoError(t, err)
		lines := strings.Count(string(buf), "\n")
		assert.Equal(t, expectedLines, lines, "license choice %q", choice)
	}
}

func TestRunInvalidProjectName(t *testing.T) {
	projectPath, err := generateProject(t, "my_project", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not use an underscore")

	// A failed run leaves no output behind.
	assert.NoDirExists(t, projectPath)
}

func TestRunTargetExists(t *testing.T) {
	dstDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dstDir, "my-project"), 0o755))

	createCtx := create_ctx.CreateCtx{
		ProjectName:    "my-project",
		TemplateName:   "dataeng",
		WorkDir:        dstDir,
		DestinationDir: dstDir,
		SilentMode:     true,
		CliOpts:        &config.CliOpts{},
	}
	require.Error(t, Run(&createCtx))
}
